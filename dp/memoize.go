// SPDX-License-Identifier: MIT

package dp

// Memoize wraps a pure function with an unbounded cache keyed by argument.
// The returned function is not safe for concurrent use.
//
// Memory: O(distinct arguments seen).
func Memoize[K comparable, V any](fn func(K) V) func(K) V {
	cache := make(map[K]V)

	return func(k K) V {
		if v, ok := cache[k]; ok {
			return v
		}
		v := fn(k)
		cache[k] = v

		return v
	}
}

// MemoizeRec memoizes a recursive function. fn receives the memoized
// function as self and must recurse through it.
//
//	fib := dp.MemoizeRec(func(self func(int) int, n int) int {
//		if n < 2 {
//			return n
//		}
//		return self(n-1) + self(n-2)
//	})
func MemoizeRec[K comparable, V any](fn func(self func(K) V, k K) V) func(K) V {
	cache := make(map[K]V)
	var self func(K) V
	self = func(k K) V {
		if v, ok := cache[k]; ok {
			return v
		}
		v := fn(self, k)
		cache[k] = v

		return v
	}

	return self
}
