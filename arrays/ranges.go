// SPDX-License-Identifier: MIT

package arrays

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// PrefixSums answers inclusive range-sum queries in O(1).
type PrefixSums struct {
	sums []int // sums[i] = nums[0] + ... + nums[i-1]
}

// NewPrefixSums precomputes running totals of nums.
//
// Complexity: O(n) build, O(1) per Sum.
func NewPrefixSums(nums []int) *PrefixSums {
	p := &PrefixSums{sums: make([]int, len(nums)+1)}
	for i, v := range nums {
		p.sums[i+1] = p.sums[i] + v
	}

	return p
}

// Sum returns nums[lo] + ... + nums[hi].
func (p *PrefixSums) Sum(lo, hi int) (int, error) {
	if lo < 0 || hi >= len(p.sums)-1 || lo > hi {
		return 0, fmt.Errorf("%w: [%d,%d] of %d", ErrRange, lo, hi, len(p.sums)-1)
	}

	return p.sums[hi+1] - p.sums[lo], nil
}

// SparseTable answers inclusive range-minimum queries in O(1) over static
// data. table[j][i] is the minimum of nums[i : i+2^j].
type SparseTable[T constraints.Ordered] struct {
	table [][]T
}

// NewSparseTable builds the table in O(n log n).
func NewSparseTable[T constraints.Ordered](nums []T) *SparseTable[T] {
	st := &SparseTable[T]{}
	if len(nums) == 0 {
		return st
	}
	levels := bits.Len(uint(len(nums)))
	st.table = make([][]T, levels)
	st.table[0] = append([]T(nil), nums...)
	for j := 1; j < levels; j++ {
		half := 1 << (j - 1)
		width := len(nums) - (1 << j) + 1
		st.table[j] = make([]T, width)
		for i := 0; i < width; i++ {
			st.table[j][i] = min(st.table[j-1][i], st.table[j-1][i+half])
		}
	}

	return st
}

// Min returns the smallest of nums[lo..hi].
//
// Complexity: O(1), two overlapping power-of-two windows.
func (st *SparseTable[T]) Min(lo, hi int) (T, error) {
	var zero T
	n := 0
	if len(st.table) > 0 {
		n = len(st.table[0])
	}
	if lo < 0 || hi >= n || lo > hi {
		return zero, fmt.Errorf("%w: [%d,%d] of %d", ErrRange, lo, hi, n)
	}
	// Two overlapping power-of-two blocks cover [lo, hi].
	j := bits.Len(uint(hi-lo+1)) - 1

	return min(st.table[j][lo], st.table[j][hi-(1<<j)+1]), nil
}
