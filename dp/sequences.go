// SPDX-License-Identifier: MIT

package dp

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// LongestCommonSubsequence returns the length of the longest sequence of
// runes appearing in both a and b in order, not necessarily contiguously.
//
// Complexity: O(m·n). Memory: O(n), two table rows.
func LongestCommonSubsequence(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	// prev and cur are rows i-1 and i of the (len(a)+1)×(len(b)+1) table.
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				cur[j] = prev[j-1] + 1
			} else {
				cur[j] = max(prev[j], cur[j-1])
			}
		}
		prev, cur = cur, prev
	}

	return prev[len(rb)]
}

// EditDistance returns the minimum number of single-rune insertions,
// deletions and substitutions turning a into b (Levenshtein distance).
//
// Complexity: O(m·n). Memory: O(n).
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				cur[j] = prev[j-1]
				continue
			}
			cur[j] = 1 + min(prev[j], cur[j-1], prev[j-1])
		}
		prev, cur = cur, prev
	}

	return prev[len(rb)]
}

// LengthOfLIS returns the length of the longest strictly increasing
// subsequence in O(n²).
func LengthOfLIS[T constraints.Ordered](nums []T) int {
	if len(nums) == 0 {
		return 0
	}
	best := 1
	dp := make([]int, len(nums))
	for i := range nums {
		dp[i] = 1
		for j := 0; j < i; j++ {
			if nums[j] < nums[i] && dp[j]+1 > dp[i] {
				dp[i] = dp[j] + 1
			}
		}
		best = max(best, dp[i])
	}

	return best
}

// LengthOfLISFast returns the same result as LengthOfLIS in O(n log n).
// tails[k] holds the smallest tail of any increasing subsequence of length k+1.
func LengthOfLISFast[T constraints.Ordered](nums []T) int {
	tails := make([]T, 0, len(nums))
	for _, v := range nums {
		i := sort.Search(len(tails), func(k int) bool { return tails[k] >= v })
		if i == len(tails) {
			tails = append(tails, v)
		} else {
			tails[i] = v
		}
	}

	return len(tails)
}

// MaxSubArray returns the largest sum of a non-empty contiguous run (Kadane).
//
// Complexity: O(n), O(1) memory.
func MaxSubArray(nums []int) (int, error) {
	if len(nums) == 0 {
		return 0, ErrEmptyInput
	}
	best, run := nums[0], nums[0]
	for _, v := range nums[1:] {
		run = max(v, run+v)
		best = max(best, run)
	}

	return best, nil
}
