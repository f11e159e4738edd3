// SPDX-License-Identifier: MIT

package backtrack

import (
	"errors"
	"fmt"
	"strings"
)

// Empty marks an unfilled Sudoku cell.
const Empty byte = '.'

// ErrBadBoard is returned by ParseBoard for malformed input.
var ErrBadBoard = errors.New("backtrack: malformed sudoku board")

// Board is a 9×9 Sudoku grid of '1'..'9' and Empty.
type Board [9][9]byte

// ParseBoard reads nine rows of nine characters from '1'..'9' and '.'.
func ParseBoard(rows []string) (*Board, error) {
	if len(rows) != 9 {
		return nil, fmt.Errorf("%w: %d rows", ErrBadBoard, len(rows))
	}
	var b Board
	for r, row := range rows {
		if len(row) != 9 {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrBadBoard, r, len(row))
		}
		for c := 0; c < 9; c++ {
			ch := row[c]
			if ch != Empty && (ch < '1' || ch > '9') {
				return nil, fmt.Errorf("%w: row %d col %d %q", ErrBadBoard, r, c, ch)
			}
			b[r][c] = ch
		}
	}

	return &b, nil
}

// String renders the board as nine newline-separated rows.
func (b *Board) String() string {
	var sb strings.Builder
	for r := range b {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(b[r][:])
	}

	return sb.String()
}

// SolveSudoku fills every Empty cell so that each row, column and 3×3 box
// holds 1..9 exactly once. It reports false, leaving the board as given,
// when no solution exists, the givens already conflict, or a cell holds
// anything other than '1'..'9' or Empty (a zero Board included).
//
// Complexity: O(9^k) worst case for k blanks; constraint tables make each
// placement check O(1). Memory: O(k) for the blank list and recursion.
func SolveSudoku(b *Board) bool {
	var rows, cols, boxes [9][10]bool
	var blanks [][2]int

	// 1) Record the givens; a repeated digit or a byte outside '1'..'9' and
	//    Empty means no solution.
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			ch := b[r][c]
			if ch == Empty {
				blanks = append(blanks, [2]int{r, c})
				continue
			}
			if ch < '1' || ch > '9' {
				return false
			}
			d, bx := ch-'0', r/3*3+c/3
			if rows[r][d] || cols[c][d] || boxes[bx][d] {
				return false
			}
			rows[r][d], cols[c][d], boxes[bx][d] = true, true, true
		}
	}

	// 2) Fill blanks in scan order, undoing on dead ends.
	var fill func(i int) bool
	fill = func(i int) bool {
		if i == len(blanks) {
			return true
		}
		r, c := blanks[i][0], blanks[i][1]
		bx := r/3*3 + c/3
		for d := byte(1); d <= 9; d++ {
			if rows[r][d] || cols[c][d] || boxes[bx][d] {
				continue
			}
			rows[r][d], cols[c][d], boxes[bx][d] = true, true, true
			b[r][c] = '0' + d
			if fill(i + 1) {
				return true
			}
			rows[r][d], cols[c][d], boxes[bx][d] = false, false, false
			b[r][c] = Empty
		}

		return false
	}

	return fill(0)
}
