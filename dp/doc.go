// SPDX-License-Identifier: MIT

// Package dp collects classic dynamic-programming solutions.
//
// Memoized (top-down):
//
//   - Fibonacci: a cache keyed by n; repeated calls reuse earlier results.
//   - Memoize, MemoizeRec: wrap any pure (or self-recursive) function.
//
// Tabulated (bottom-up):
//
//   - LongestCommonSubsequence, EditDistance  O(m·n) tables over runes.
//   - Knapsack                                0/1 knapsack, O(n·W) one-row table.
//   - LengthOfLIS                             O(n²) table; LengthOfLISFast
//     keeps the smallest tail per length for O(n log n).
//   - MaxSubArray                             Kadane's running maximum.
//   - ClimbStairs, Rob, CoinChange            one-dimensional recurrences.
//   - TimeWarp                                dynamic time warping over
//     float64 series, with an optional Sakoe-Chiba window and slope penalty.
//     Two rows unless the alignment path is requested.
//
// Lazy sequences:
//
//   - Range, Map, Filter, Take build iter.Seq pipelines that compute
//     elements only when pulled; Reduce forces one.
//
// Strings are compared rune by rune, so multi-byte characters count once.
package dp
