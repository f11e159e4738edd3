// SPDX-License-Identifier: MIT

package sorting

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// BubbleSort returns a sorted copy of in.
//
// Complexity:
//
//	Time:   O(n²) worst case, O(n) on sorted input (early exit).
//	Memory: O(n) for the copy.
func BubbleSort[T constraints.Ordered](in []T) []T {
	out := slices.Clone(in)
	for n := len(out); n > 1; n-- {
		swapped := false
		for i := 1; i < n; i++ {
			if out[i] < out[i-1] {
				out[i], out[i-1] = out[i-1], out[i]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return out
}

// MergeSort returns a stably sorted copy of in.
func MergeSort[T constraints.Ordered](in []T) []T {
	return MergeSortFunc(in, func(a, b T) bool { return a < b })
}

// MergeSortFunc returns a copy of in sorted by less. Elements that compare
// equal keep their input order.
//
// Complexity:
//
//	Time:   O(n log n) in every case.
//	Memory: O(n) for the copy plus one shared buffer.
func MergeSortFunc[T any](in []T, less func(a, b T) bool) []T {
	out := slices.Clone(in)
	if len(out) < 2 {
		return out
	}
	buf := make([]T, len(out))
	mergeSort(out, buf, less)

	return out
}

func mergeSort[T any](s, buf []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	mergeSort(s[:mid], buf[:mid], less)
	mergeSort(s[mid:], buf[mid:], less)

	// Take from the right half only when strictly smaller; that keeps ties stable.
	i, j, k := 0, mid, 0
	for i < mid && j < len(s) {
		if less(s[j], s[i]) {
			buf[k] = s[j]
			j++
		} else {
			buf[k] = s[i]
			i++
		}
		k++
	}
	k += copy(buf[k:], s[i:mid])
	copy(buf[k:], s[j:])
	copy(s, buf[:len(s)])
}

// QuickSort returns a sorted copy of in.
//
// Complexity:
//
//	Time:   O(n log n) expected, O(n²) when the middle pivot is always extreme.
//	Memory: O(n) per level for the three partitions.
func QuickSort[T constraints.Ordered](in []T) []T {
	if len(in) < 2 {
		return slices.Clone(in)
	}
	pivot := in[len(in)/2]
	var less, equal, greater []T
	for _, v := range in {
		switch {
		case v < pivot:
			less = append(less, v)
		case v > pivot:
			greater = append(greater, v)
		default:
			equal = append(equal, v)
		}
	}

	out := make([]T, 0, len(in))
	out = append(out, QuickSort(less)...)
	out = append(out, equal...)

	return append(out, QuickSort(greater)...)
}
