// SPDX-License-Identifier: MIT

package search

import "golang.org/x/exp/constraints"

// BinarySearch returns an index of target in sorted, or -1.
//
// Complexity: O(log n). Memory: O(1).
func BinarySearch[T constraints.Ordered](sorted []T, target T) int {
	return BinarySearchFunc(sorted, target, func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}

// BinarySearchFunc is BinarySearch with a three-way comparator cmp(elem,
// target) returning <0, 0 or >0.
func BinarySearchFunc[E, T any](sorted []E, target T, cmp func(E, T) int) int {
	lo, hi := 0, len(sorted)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch c := cmp(sorted[mid], target); {
		case c == 0:
			return mid
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return -1
}

// SearchRange returns the first and last index of target in sorted, or
// [-1, -1] when absent.
//
// Complexity: two binary searches, O(log n).
func SearchRange[T constraints.Ordered](sorted []T, target T) [2]int {
	first := bound(sorted, target, true)
	if first < 0 {
		return [2]int{-1, -1}
	}

	return [2]int{first, bound(sorted, target, false)}
}

// bound finds the leftmost (or rightmost) occurrence by continuing the
// search past each hit.
func bound[T constraints.Ordered](sorted []T, target T, leftmost bool) int {
	lo, hi, found := 0, len(sorted)-1, -1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case sorted[mid] < target:
			lo = mid + 1
		case sorted[mid] > target:
			hi = mid - 1
		default:
			found = mid
			if leftmost {
				hi = mid - 1
			} else {
				lo = mid + 1
			}
		}
	}

	return found
}

// LinearSearch returns the first index of target in s, or -1.
//
// Complexity: O(n).
func LinearSearch[T comparable](s []T, target T) int {
	for i, v := range s {
		if v == target {
			return i
		}
	}

	return -1
}
