// SPDX-License-Identifier: MIT

package arrays

import "fmt"

// ProductExceptSelf returns out[i] = product of every nums[j], j != i,
// without division.
//
// Complexity: two passes, O(n). Memory: O(1) beyond the result.
func ProductExceptSelf(nums []int) []int {
	out := make([]int, len(nums))
	prefix := 1
	for i := range nums {
		out[i] = prefix
		prefix *= nums[i]
	}
	suffix := 1
	for i := len(nums) - 1; i >= 0; i-- {
		out[i] *= suffix
		suffix *= nums[i]
	}

	return out
}

// SpiralOrder reads a rectangular matrix clockwise from the top-left corner.
//
// Complexity: O(rows·cols).
func SpiralOrder(m [][]int) []int {
	if len(m) == 0 || len(m[0]) == 0 {
		return nil
	}
	top, bottom, left, right := 0, len(m)-1, 0, len(m[0])-1
	out := make([]int, 0, len(m)*len(m[0]))
	for top <= bottom && left <= right {
		for c := left; c <= right; c++ {
			out = append(out, m[top][c])
		}
		top++
		for r := top; r <= bottom; r++ {
			out = append(out, m[r][right])
		}
		right--
		if top <= bottom {
			for c := right; c >= left; c-- {
				out = append(out, m[bottom][c])
			}
			bottom--
		}
		if left <= right {
			for r := bottom; r >= top; r-- {
				out = append(out, m[r][left])
			}
			left++
		}
	}

	return out
}

// RotateSquare turns an n×n matrix 90° clockwise in place: transpose, then
// reverse each row.
//
// Complexity: O(n²) time, O(1) memory.
func RotateSquare(m [][]int) error {
	n := len(m)
	for r, row := range m {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, r, len(row), n)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m[i][j], m[j][i] = m[j][i], m[i][j]
		}
	}
	for _, row := range m {
		for l, r := 0, n-1; l < r; l, r = l+1, r-1 {
			row[l], row[r] = row[r], row[l]
		}
	}

	return nil
}

// RotateRight shifts nums right by k positions in place, wrapping around.
// Negative k shifts left.
//
// Three reversals: O(n) time, O(1) memory.
func RotateRight[T any](nums []T, k int) {
	n := len(nums)
	if n == 0 {
		return
	}
	k = ((k % n) + n) % n
	reverse(nums)
	reverse(nums[:k])
	reverse(nums[k:])
}

func reverse[T any](s []T) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
