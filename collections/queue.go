// SPDX-License-Identifier: MIT

package collections

// Queue is a slice-backed FIFO container. The zero value is an empty queue.
//
// Dequeue advances a head index instead of shifting the slice; the consumed
// prefix is reclaimed once it outgrows the live part.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty queue with room for capacity items.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T]{items: make([]T, 0, capacity)}
}

// Enqueue appends v at the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	q.items = append(q.items, v)
}

// Dequeue removes and returns the front item, or ErrEmpty.
//
// Complexity: amortized O(1).
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, ErrEmpty
	}
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	// compact once the dead prefix dominates
	if q.head > 32 && q.head*2 > len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return v, nil
}

// Front returns the front item without removing it, or ErrEmpty.
func (q *Queue[T]) Front() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}

	return q.items[q.head], nil
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.head >= len(q.items) }

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// Clear removes every item.
func (q *Queue[T]) Clear() {
	clear(q.items)
	q.items = q.items[:0]
	q.head = 0
}

// ToSlice returns a copy of the items, front first.
func (q *Queue[T]) ToSlice() []T {
	out := make([]T, q.Len())
	copy(out, q.items[q.head:])

	return out
}
