// SPDX-License-Identifier: MIT

package backtrack

import "strings"

// NQueens returns every board of n non-attacking queens. Each board is n
// rows like "..Q." with 'Q' for a queen.
//
// Complexity: O(n!) placements in the worst case; column and diagonal
// sets make each check O(1). Memory: O(n).
func NQueens(n int) [][]string {
	if n <= 0 {
		return nil
	}
	cols := make([]bool, n)
	diag := make([]bool, 2*n-1) // r+c
	anti := make([]bool, 2*n-1) // r-c+n-1
	place := make([]int, n)     // place[r] = column of the queen in row r
	var out [][]string

	var walk func(r int)
	walk = func(r int) {
		if r == n {
			out = append(out, render(place))
			return
		}
		for c := 0; c < n; c++ {
			if cols[c] || diag[r+c] || anti[r-c+n-1] {
				continue
			}
			cols[c], diag[r+c], anti[r-c+n-1] = true, true, true
			place[r] = c
			walk(r + 1)
			cols[c], diag[r+c], anti[r-c+n-1] = false, false, false
		}
	}
	walk(0)

	return out
}

func render(place []int) []string {
	n := len(place)
	rows := make([]string, n)
	for r, c := range place {
		rows[r] = strings.Repeat(".", c) + "Q" + strings.Repeat(".", n-c-1)
	}

	return rows
}
