// SPDX-License-Identifier: MIT

package arrays

import "slices"

// MaxArea returns the most water held between two of the vertical lines
// heights, with width equal to their index distance.
//
// Complexity: O(n), O(1) memory.
func MaxArea(heights []int) int {
	best := 0
	l, r := 0, len(heights)-1
	for l < r {
		best = max(best, (r-l)*min(heights[l], heights[r]))
		// Only moving the shorter side can find a taller bound.
		if heights[l] < heights[r] {
			l++
		} else {
			r--
		}
	}

	return best
}

// ThreeSum returns every distinct ascending triple from nums summing to 0,
// ordered lexicographically.
//
// Complexity: O(n²) after an O(n log n) sort of a copy.
func ThreeSum(nums []int) [][]int {
	s := slices.Clone(nums)
	slices.Sort(s)
	var out [][]int
	for i := 0; i < len(s)-2; i++ {
		if i > 0 && s[i] == s[i-1] {
			continue
		}
		l, r := i+1, len(s)-1
		for l < r {
			switch sum := s[i] + s[l] + s[r]; {
			case sum < 0:
				l++
			case sum > 0:
				r--
			default:
				out = append(out, []int{s[i], s[l], s[r]})
				for l < r && s[l] == s[l+1] {
					l++
				}
				for l < r && s[r] == s[r-1] {
					r--
				}
				l++
				r--
			}
		}
	}

	return out
}

// RemoveDuplicatesSorted compacts runs of equal values in a sorted slice in
// place and returns the unique prefix. Elements past it are unspecified.
func RemoveDuplicatesSorted[T comparable](nums []T) []T {
	if len(nums) == 0 {
		return nums
	}
	k := 1
	for i := 1; i < len(nums); i++ {
		if nums[i] != nums[k-1] {
			nums[k] = nums[i]
			k++
		}
	}

	return nums[:k]
}
