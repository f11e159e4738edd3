// SPDX-License-Identifier: MIT

// Package backtrack enumerates solutions by extending a partial candidate,
// recursing, and undoing the extension before trying the next choice.
//
//   - GenerateParentheses  every balanced string of n pairs (Catalan(n) results).
//   - Permutations         all n! orderings, in lexicographic index order.
//   - Combinations         all k-subsets of 1..n in increasing order.
//   - Subsets              the 2^n power set.
//   - NQueens              every placement of n non-attacking queens.
//   - SolveSudoku          fills a 9×9 board in place.
//
// Output sizes grow exponentially; callers choose n accordingly.
package backtrack
