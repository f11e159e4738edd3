// SPDX-License-Identifier: MIT

// Package arrays holds classic array and string problems grouped by
// technique.
//
// Two pointers:     MaxArea, ThreeSum, RemoveDuplicatesSorted.
// Sliding window:   MaxSumWindow, LongestUniqueSubstring, MinWindow.
// Hashing:          TwoSum, TopKFrequent, GroupAnagrams, SubarraySum,
// MajorityElement.
// Matrix and scans: ProductExceptSelf, SpiralOrder, RotateSquare, RotateRight.
// Range queries:    PrefixSums (O(1) range sum) and SparseTable (O(1) range
// minimum after O(n log n) preprocessing).
//
// Functions that rearrange their argument say so; all others leave it
// untouched.
package arrays
