// SPDX-License-Identifier: MIT

package dp

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Range yields start, start+step, ... stopping before end. A positive step
// counts up, a negative step counts down, and a zero step yields nothing.
// Nothing is computed until the sequence is ranged over.
func Range[T constraints.Integer](start, end, step T) iter.Seq[T] {
	return func(yield func(T) bool) {
		switch {
		case step > 0:
			for v := start; v < end; v += step {
				if !yield(v) {
					return
				}
			}
		case step < 0:
			for v := start; v > end; v += step {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Map lazily applies fn to every element of seq.
func Map[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Filter lazily keeps the elements of seq for which keep returns true.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Take yields at most n elements of seq and then stops pulling from it.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}

// Reduce folds seq into a single value, forcing the whole sequence.
func Reduce[T, A any](seq iter.Seq[T], init A, fn func(A, T) A) A {
	acc := init
	for v := range seq {
		acc = fn(acc, v)
	}

	return acc
}
