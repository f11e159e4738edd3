// SPDX-License-Identifier: MIT

package collections

import (
	"fmt"
	"strconv"
)

// ValidParentheses reports whether every bracket in s is closed by the
// matching bracket in the right order. Characters other than ()[]{} are
// ignored.
//
// Complexity: O(n) time, O(n) stack.
func ValidParentheses(s string) bool {
	pairs := map[rune]rune{')': '(', ']': '[', '}': '{'}
	st := NewStack[rune](len(s))
	for _, r := range s {
		switch r {
		case '(', '[', '{':
			st.Push(r)
		case ')', ']', '}':
			top, err := st.Pop()
			if err != nil || top != pairs[r] {
				return false
			}
		}
	}

	return st.IsEmpty()
}

// EvalRPN evaluates a reverse Polish notation expression over integers.
// Division truncates toward zero.
//
// Errors: ErrMalformedExpression for unknown tokens, missing operands or
// leftover values; ErrDivisionByZero.
//
// Complexity: O(n).
func EvalRPN(tokens []string) (int, error) {
	st := NewStack[int](len(tokens))
	for _, tok := range tokens {
		switch tok {
		case "+", "-", "*", "/":
			b, errB := st.Pop()
			a, errA := st.Pop()
			if errA != nil || errB != nil {
				return 0, fmt.Errorf("%w: operator %q lacks operands", ErrMalformedExpression, tok)
			}
			switch tok {
			case "+":
				st.Push(a + b)
			case "-":
				st.Push(a - b)
			case "*":
				st.Push(a * b)
			case "/":
				if b == 0 {
					return 0, ErrDivisionByZero
				}
				st.Push(a / b)
			}
		default:
			n, err := strconv.Atoi(tok)
			if err != nil {
				return 0, fmt.Errorf("%w: token %q", ErrMalformedExpression, tok)
			}
			st.Push(n)
		}
	}
	if st.Len() != 1 {
		return 0, fmt.Errorf("%w: %d values left on stack", ErrMalformedExpression, st.Len())
	}
	v, _ := st.Pop()

	return v, nil
}

// DailyTemperatures returns, for each day, how many days pass until a warmer
// temperature (0 when none follows). Monotonic stack of indices, O(n).
func DailyTemperatures(temps []int) []int {
	out := make([]int, len(temps))
	st := NewStack[int](len(temps))
	for i, t := range temps {
		for !st.IsEmpty() {
			j, _ := st.Peek()
			if temps[j] >= t {
				break
			}
			_, _ = st.Pop()
			out[j] = i - j
		}
		st.Push(i)
	}

	return out
}

// MaxSlidingWindow returns the maximum of every window of size k over nums,
// using a monotonic deque of indices. O(n).
// A window larger than nums yields an empty result.
func MaxSlidingWindow(nums []int, k int) ([]int, error) {
	if k <= 0 {
		return nil, ErrBadWindow
	}
	if k > len(nums) {
		return []int{}, nil
	}
	out := make([]int, 0, len(nums)-k+1)
	deque := make([]int, 0, k) // indices, values decreasing front to back
	for i, v := range nums {
		// 1) evict the index that slid out of the window
		if len(deque) > 0 && deque[0] <= i-k {
			deque = deque[1:]
		}
		// 2) drop smaller values from the back; they can never be a maximum
		for len(deque) > 0 && nums[deque[len(deque)-1]] <= v {
			deque = deque[:len(deque)-1]
		}
		deque = append(deque, i)
		// 3) record once the first window is complete
		if i >= k-1 {
			out = append(out, nums[deque[0]])
		}
	}

	return out, nil
}
