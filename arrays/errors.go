// SPDX-License-Identifier: MIT

package arrays

import "errors"

var (
	// ErrEmptyInput is returned when the answer is undefined for empty input.
	ErrEmptyInput = errors.New("arrays: empty input")

	// ErrBadWindow is returned for a window size outside [1, len].
	ErrBadWindow = errors.New("arrays: invalid window size")

	// ErrRange is returned for a query range outside the data or with lo > hi.
	ErrRange = errors.New("arrays: range out of bounds")

	// ErrNotSquare is returned by RotateSquare for a non-square matrix.
	ErrNotSquare = errors.New("arrays: matrix is not square")
)
