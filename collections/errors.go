// SPDX-License-Identifier: MIT

package collections

import "errors"

var (
	// ErrEmpty is returned by Pop, Peek, Dequeue and Front on an empty container.
	ErrEmpty = errors.New("collections: container is empty")

	// ErrFull is returned by CircularQueue.Enqueue when the ring is at capacity.
	ErrFull = errors.New("collections: queue is full")

	// ErrBadCapacity is returned by NewCircularQueue for a non-positive capacity.
	ErrBadCapacity = errors.New("collections: capacity must be positive")

	// ErrMalformedExpression is returned by EvalRPN when the token stream does
	// not reduce to exactly one value or contains an unknown token.
	ErrMalformedExpression = errors.New("collections: malformed RPN expression")

	// ErrDivisionByZero is returned by EvalRPN for a "/" with a zero divisor.
	ErrDivisionByZero = errors.New("collections: division by zero")

	// ErrBadWindow is returned by MaxSlidingWindow for a non-positive window size.
	ErrBadWindow = errors.New("collections: window size must be positive")
)
