// SPDX-License-Identifier: MIT

package dp

import "errors"

var (
	// ErrNegativeInput is returned for a negative index, amount or capacity.
	ErrNegativeInput = errors.New("dp: negative input")

	// ErrOverflow is returned when a result does not fit in an int.
	ErrOverflow = errors.New("dp: result overflows int")

	// ErrLengthMismatch is returned when paired slices differ in length.
	ErrLengthMismatch = errors.New("dp: slice lengths differ")

	// ErrEmptyInput is returned when a result is undefined for empty input.
	ErrEmptyInput = errors.New("dp: empty input")
)
