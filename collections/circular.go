// SPDX-License-Identifier: MIT

package collections

// CircularQueue is a FIFO ring buffer with a fixed capacity.
type CircularQueue[T any] struct {
	items []T
	front int // index of the oldest item
	rear  int // index of the next free slot
	count int
}

// NewCircularQueue returns an empty ring that holds at most capacity items.
// A non-positive capacity yields ErrBadCapacity.
func NewCircularQueue[T any](capacity int) (*CircularQueue[T], error) {
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}

	return &CircularQueue[T]{items: make([]T, capacity)}, nil
}

// Enqueue appends v, or returns ErrFull when the ring is at capacity.
func (q *CircularQueue[T]) Enqueue(v T) error {
	if q.IsFull() {
		return ErrFull
	}
	q.items[q.rear] = v
	q.rear = (q.rear + 1) % len(q.items)
	q.count++

	return nil
}

// Dequeue removes and returns the oldest item, or ErrEmpty.
func (q *CircularQueue[T]) Dequeue() (T, error) {
	var zero T
	if q.count == 0 {
		return zero, ErrEmpty
	}
	v := q.items[q.front]
	q.items[q.front] = zero
	q.front = (q.front + 1) % len(q.items)
	q.count--

	return v, nil
}

// Peek returns the oldest item without removing it, or ErrEmpty.
func (q *CircularQueue[T]) Peek() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return q.items[q.front], nil
}

// IsEmpty reports whether the ring holds no items.
func (q *CircularQueue[T]) IsEmpty() bool { return q.count == 0 }

// IsFull reports whether the ring is at capacity.
func (q *CircularQueue[T]) IsFull() bool { return q.count == len(q.items) }

// Len returns the number of queued items.
func (q *CircularQueue[T]) Len() int { return q.count }

// Cap returns the fixed capacity.
func (q *CircularQueue[T]) Cap() int { return len(q.items) }
