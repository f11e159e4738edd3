// SPDX-License-Identifier: MIT

package dp

import "fmt"

// Knapsack returns the best total value of items (each used at most once)
// whose weights fit in capacity.
//
// Complexity: O(n·W) for n items and capacity W. Memory: O(W).
func Knapsack(weights, values []int, capacity int) (int, error) {
	if len(weights) != len(values) {
		return 0, fmt.Errorf("%w: %d weights, %d values", ErrLengthMismatch, len(weights), len(values))
	}
	if capacity < 0 {
		return 0, fmt.Errorf("%w: capacity=%d", ErrNegativeInput, capacity)
	}
	for i, w := range weights {
		if w < 0 {
			return 0, fmt.Errorf("%w: weight[%d]=%d", ErrNegativeInput, i, w)
		}
	}

	// best[c] is the best value within capacity c using items seen so far.
	// Iterating c downward keeps each item single-use.
	best := make([]int, capacity+1)
	for i, w := range weights {
		for c := capacity; c >= w; c-- {
			best[c] = max(best[c], best[c-w]+values[i])
		}
	}

	return best[capacity], nil
}

// ClimbStairs counts the ways to climb n steps taking 1 or 2 at a time.
//
// Complexity: O(n), O(1) memory.
func ClimbStairs(n int) int {
	if n < 0 {
		return 0
	}
	a, b := 1, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}

	return a
}

// Rob returns the largest sum of non-adjacent elements.
//
// Complexity: O(n), O(1) memory.
func Rob(houses []int) int {
	skip, take := 0, 0
	for _, v := range houses {
		skip, take = max(skip, take), skip+v
	}

	return max(skip, take)
}

// CoinChange returns the fewest coins summing to amount, or -1 if no
// combination works. Coins may be reused.
//
// Complexity:
//
//	Time:   O(amount · len(coins)).
//	Memory: O(amount).
func CoinChange(coins []int, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: amount=%d", ErrNegativeInput, amount)
	}
	const unreachable = int(^uint(0) >> 1)
	fewest := make([]int, amount+1)
	for a := 1; a <= amount; a++ {
		fewest[a] = unreachable
		for _, c := range coins {
			if c > 0 && c <= a && fewest[a-c] != unreachable {
				fewest[a] = min(fewest[a], fewest[a-c]+1)
			}
		}
	}
	if fewest[amount] == unreachable {
		return -1, nil
	}

	return fewest[amount], nil
}
