// SPDX-License-Identifier: MIT

package arrays

import (
	"slices"

	"github.com/katalvlaran/dsa/collections"
)

// TwoSum returns indices i < j with nums[i]+nums[j] == target. ok is false
// when no pair exists. The pair with the smallest j is returned.
//
// Complexity: O(n) time and memory.
func TwoSum(nums []int, target int) (i, j int, ok bool) {
	seen := make(map[int]int, len(nums))
	for k, v := range nums {
		if p, hit := seen[target-v]; hit {
			return p, k, true
		}
		if _, dup := seen[v]; !dup {
			seen[v] = k
		}
	}

	return -1, -1, false
}

// TopKFrequent returns the k most frequent values, most frequent first;
// equal counts are ordered by value. k larger than the number of distinct
// values returns them all.
//
// Complexity: O(n + d log d) for d distinct values.
func TopKFrequent(nums []int, k int) []int {
	count := make(map[int]int)
	for _, v := range nums {
		count[v]++
	}

	type kv struct{ val, n int }
	// Weakest on top: lower count, or same count and larger value.
	weaker := func(a, b kv) bool {
		if a.n != b.n {
			return a.n < b.n
		}
		return a.val > b.val
	}
	h := collections.NewMinHeap(weaker)
	for v, n := range count {
		h.Push(kv{v, n})
		if h.Len() > k {
			_, _ = h.Pop()
		}
	}

	out := make([]int, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		top, _ := h.Pop()
		out[i] = top.val
	}

	return out
}

// GroupAnagrams buckets words that are rearrangements of each other. Groups
// appear in order of their first word; words keep input order within a group.
//
// Complexity: O(n·L log L) for words of length L.
func GroupAnagrams(words []string) [][]string {
	index := make(map[string]int)
	var groups [][]string
	for _, w := range words {
		key := []rune(w)
		slices.Sort(key)
		k := string(key)
		if gi, ok := index[k]; ok {
			groups[gi] = append(groups[gi], w)
			continue
		}
		index[k] = len(groups)
		groups = append(groups, []string{w})
	}

	return groups
}

// SubarraySum counts contiguous runs of nums summing to k.
//
// Complexity: O(n) with a map of prefix sums.
func SubarraySum(nums []int, k int) int {
	seen := map[int]int{0: 1}
	sum, count := 0, 0
	for _, v := range nums {
		sum += v
		count += seen[sum-k]
		seen[sum]++
	}

	return count
}

// MajorityElement returns the value occurring more than len/2 times. It
// uses Boyer-Moore voting and verifies the candidate; ok is false when no
// majority exists.
//
// Complexity: O(n) time, O(1) memory.
func MajorityElement(nums []int) (v int, ok bool, err error) {
	if len(nums) == 0 {
		return 0, false, ErrEmptyInput
	}
	cand, votes := 0, 0
	for _, x := range nums {
		if votes == 0 {
			cand = x
		}
		if x == cand {
			votes++
		} else {
			votes--
		}
	}
	n := 0
	for _, x := range nums {
		if x == cand {
			n++
		}
	}

	return cand, n > len(nums)/2, nil
}
