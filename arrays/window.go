// SPDX-License-Identifier: MIT

package arrays

import "fmt"

// MaxSumWindow returns the largest sum of k consecutive elements.
func MaxSumWindow(nums []int, k int) (int, error) {
	if k < 1 || k > len(nums) {
		return 0, fmt.Errorf("%w: k=%d, len=%d", ErrBadWindow, k, len(nums))
	}
	sum := 0
	for _, v := range nums[:k] {
		sum += v
	}
	best := sum
	for i := k; i < len(nums); i++ {
		sum += nums[i] - nums[i-k]
		best = max(best, sum)
	}

	return best, nil
}

// LongestUniqueSubstring returns the length, in runes, of the longest run of
// s without a repeated rune.
//
// Complexity: O(n). Memory: O(distinct runes).
func LongestUniqueSubstring(s string) int {
	last := make(map[rune]int)
	best, start := 0, 0
	i := 0
	for _, r := range s {
		if p, ok := last[r]; ok && p >= start {
			start = p + 1
		}
		last[r] = i
		best = max(best, i-start+1)
		i++
	}

	return best
}

// MinWindow returns the shortest substring of s containing every rune of t
// with multiplicity, or "" if none exists. The leftmost shortest wins.
//
// Complexity:
//
//	Time:   O(|s| + |t|).
//	Memory: O(distinct runes of t).
func MinWindow(s, t string) string {
	if t == "" {
		return ""
	}
	need := make(map[rune]int)
	for _, r := range t {
		need[r]++
	}
	missing := len([]rune(t))
	src := []rune(s)
	bestL, bestLen := 0, -1

	l := 0
	for r, ch := range src {
		if need[ch] > 0 {
			missing--
		}
		need[ch]--
		// Shrink from the left while the window still covers t.
		for missing == 0 {
			if bestLen < 0 || r-l+1 < bestLen {
				bestL, bestLen = l, r-l+1
			}
			need[src[l]]++
			if need[src[l]] > 0 {
				missing++
			}
			l++
		}
	}
	if bestLen < 0 {
		return ""
	}

	return string(src[bestL : bestL+bestLen])
}
