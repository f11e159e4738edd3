// SPDX-License-Identifier: MIT

package dp

import "fmt"

// maxFib is the largest n whose Fibonacci number fits in an int64.
const maxFib = 92

// Fibonacci memoizes F(n) with F(0)=0, F(1)=1.
type Fibonacci struct {
	memo map[int]int
}

// NewFibonacci returns a calculator with an empty cache.
func NewFibonacci() *Fibonacci {
	return &Fibonacci{memo: map[int]int{0: 0, 1: 1}}
}

// At returns F(n). n must be in [0, 92].
//
// Complexity: O(n) on the first call for n, O(1) once cached.
// Memory: O(n) cache entries, O(n) recursion depth.
func (f *Fibonacci) At(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: n=%d", ErrNegativeInput, n)
	}
	if n > maxFib {
		return 0, fmt.Errorf("%w: F(%d)", ErrOverflow, n)
	}

	return f.at(n), nil
}

func (f *Fibonacci) at(n int) int {
	if v, ok := f.memo[n]; ok {
		return v
	}
	v := f.at(n-1) + f.at(n-2)
	f.memo[n] = v

	return v
}

// Cached reports how many values are memoized.
func (f *Fibonacci) Cached() int { return len(f.memo) }
