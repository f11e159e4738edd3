// SPDX-License-Identifier: MIT

package greedy

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrLengthMismatch is returned when paired slices differ in length.
	ErrLengthMismatch = errors.New("greedy: slice lengths differ")

	// ErrInvalidItem is returned for a non-positive weight, negative value,
	// negative capacity or an interval that finishes before it starts.
	ErrInvalidItem = errors.New("greedy: invalid item")
)

// ActivitySelection returns the indices (ascending by finish time) of a
// largest set of activities that do not overlap. An activity may start at
// the moment the previous one finishes.
//
// Complexity: O(n log n) for the sort, then one pass.
func ActivitySelection(start, finish []int) ([]int, error) {
	if len(start) != len(finish) {
		return nil, fmt.Errorf("%w: %d starts, %d finishes", ErrLengthMismatch, len(start), len(finish))
	}
	for i := range start {
		if finish[i] < start[i] {
			return nil, fmt.Errorf("%w: activity %d finishes at %d before starting at %d", ErrInvalidItem, i, finish[i], start[i])
		}
	}

	idx := make([]int, len(start))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return finish[idx[a]] < finish[idx[b]] })

	var chosen []int
	lastEnd := 0
	for k, i := range idx {
		if k == 0 || start[i] >= lastEnd {
			chosen = append(chosen, i)
			lastEnd = finish[i]
		}
	}

	return chosen, nil
}

// Knapsack is a fractional knapsack solution.
type Knapsack struct {
	TotalValue float64
	// Fractions[i] is the share of item i taken, in [0, 1].
	Fractions []float64
}

// FractionalKnapsack maximizes value within capacity when items may be taken
// partially. Items are considered by value/weight ratio, highest first.
//
// Complexity: O(n log n). Memory: O(n).
func FractionalKnapsack(weights, values []float64, capacity float64) (Knapsack, error) {
	if len(weights) != len(values) {
		return Knapsack{}, fmt.Errorf("%w: %d weights, %d values", ErrLengthMismatch, len(weights), len(values))
	}
	if capacity < 0 {
		return Knapsack{}, fmt.Errorf("%w: capacity %g", ErrInvalidItem, capacity)
	}
	for i := range weights {
		if weights[i] <= 0 || values[i] < 0 {
			return Knapsack{}, fmt.Errorf("%w: item %d weight %g value %g", ErrInvalidItem, i, weights[i], values[i])
		}
	}

	idx := make([]int, len(weights))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]]/weights[idx[a]] > values[idx[b]]/weights[idx[b]]
	})

	res := Knapsack{Fractions: make([]float64, len(weights))}
	left := capacity
	for _, i := range idx {
		if left <= 0 {
			break
		}
		if weights[i] <= left {
			res.Fractions[i] = 1
			res.TotalValue += values[i]
			left -= weights[i]
			continue
		}
		f := left / weights[i]
		res.Fractions[i] = f
		res.TotalValue += values[i] * f
		left = 0
	}

	return res, nil
}

// Job is a unit-time task that earns Profit if done by Deadline.
type Job struct {
	ID       string
	Deadline int
	Profit   int
}

// Schedule is the outcome of ScheduleJobs.
type Schedule struct {
	// Slots[t] is the job run in time slot t+1, or "" if idle.
	Slots       []string
	TotalProfit int
}

// Jobs returns the scheduled job IDs in slot order, skipping idle slots.
func (s Schedule) Jobs() []string {
	out := make([]string, 0, len(s.Slots))
	for _, id := range s.Slots {
		if id != "" {
			out = append(out, id)
		}
	}

	return out
}

// ScheduleJobs picks jobs by descending profit (ties keep input order) and
// puts each in the latest free slot not after its deadline. Jobs with a
// deadline below 1 never fit.
//
// At most len(jobs) slots can be busy, so the timeline is capped at
// min(max deadline, len(jobs)) and huge deadlines cost nothing extra.
//
// Complexity: O(n log n + n·h) with h the capped horizon.
// Memory: O(n).
func ScheduleJobs(jobs []Job) Schedule {
	sorted := append([]Job(nil), jobs...)
	sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].Profit > sorted[b].Profit })

	horizon := 0
	for _, j := range jobs {
		horizon = max(horizon, j.Deadline)
	}
	horizon = min(horizon, len(jobs))
	s := Schedule{Slots: make([]string, horizon)}
	for _, j := range sorted {
		for t := min(j.Deadline, horizon) - 1; t >= 0; t-- {
			if s.Slots[t] == "" {
				s.Slots[t] = j.ID
				s.TotalProfit += j.Profit
				break
			}
		}
	}

	return s
}
