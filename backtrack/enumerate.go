// SPDX-License-Identifier: MIT

package backtrack

import "slices"

// GenerateParentheses returns every well-formed string of n bracket pairs.
//
// Complexity: O(4^n / √n) strings, the n-th Catalan number.
func GenerateParentheses(n int) []string {
	if n <= 0 {
		return []string{""}
	}
	var out []string
	buf := make([]byte, 0, 2*n)

	var walk func(open, closed int)
	walk = func(open, closed int) {
		if len(buf) == 2*n {
			out = append(out, string(buf))
			return
		}
		if open < n {
			buf = append(buf, '(')
			walk(open+1, closed)
			buf = buf[:len(buf)-1]
		}
		if closed < open {
			buf = append(buf, ')')
			walk(open, closed+1)
			buf = buf[:len(buf)-1]
		}
	}
	walk(0, 0)

	return out
}

// Permutations returns every ordering of items.
//
// Complexity:
//
//	Time:   O(n·n!).
//	Memory: O(n) recursion plus the n! results.
func Permutations[T any](items []T) [][]T {
	var out [][]T
	used := make([]bool, len(items))
	cur := make([]T, 0, len(items))

	var walk func()
	walk = func() {
		if len(cur) == len(items) {
			out = append(out, slices.Clone(cur))
			return
		}
		for i := range items {
			if used[i] {
				continue
			}
			used[i] = true
			cur = append(cur, items[i])
			walk()
			cur = cur[:len(cur)-1]
			used[i] = false
		}
	}
	walk()

	return out
}

// Combinations returns every k-element subset of 1..n, each ascending.
//
// Complexity: O(k·C(n,k)).
func Combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	var out [][]int
	cur := make([]int, 0, k)

	var walk func(start int)
	walk = func(start int) {
		if len(cur) == k {
			out = append(out, slices.Clone(cur))
			return
		}
		// Stop early when too few numbers remain to fill cur.
		for v := start; v <= n-(k-len(cur))+1; v++ {
			cur = append(cur, v)
			walk(v + 1)
			cur = cur[:len(cur)-1]
		}
	}
	walk(1)

	return out
}

// Subsets returns the power set of items, starting with the empty set.
//
// Complexity: O(n·2^n).
func Subsets[T any](items []T) [][]T {
	var out [][]T
	cur := make([]T, 0, len(items))

	var walk func(start int)
	walk = func(start int) {
		out = append(out, slices.Clone(cur))
		for i := start; i < len(items); i++ {
			cur = append(cur, items[i])
			walk(i + 1)
			cur = cur[:len(cur)-1]
		}
	}
	walk(0)

	return out
}
