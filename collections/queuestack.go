// SPDX-License-Identifier: MIT

package collections

// QueueStack is a LIFO stack built only from two FIFO queues. Push is O(1);
// Pop and Peek move the other n-1 items across, O(n).
type QueueStack[T any] struct {
	in, spare *Queue[T]
}

var _ Stacker[int] = (*QueueStack[int])(nil)

// NewQueueStack returns an empty QueueStack.
func NewQueueStack[T any]() *QueueStack[T] {
	return &QueueStack[T]{in: NewQueue[T](0), spare: NewQueue[T](0)}
}

// Push places v on top.
func (s *QueueStack[T]) Push(v T) { s.in.Enqueue(v) }

// Pop removes and returns the most recently pushed item, or ErrEmpty.
//
// Complexity: O(n); Push is O(1).
func (s *QueueStack[T]) Pop() (T, error) {
	top, err := s.drainToLast()
	if err != nil {
		return top, err
	}
	s.in, s.spare = s.spare, s.in

	return top, nil
}

// Peek returns the most recently pushed item without removing it, or ErrEmpty.
//
// Complexity: O(n).
func (s *QueueStack[T]) Peek() (T, error) {
	top, err := s.drainToLast()
	if err != nil {
		return top, err
	}
	s.spare.Enqueue(top)
	s.in, s.spare = s.spare, s.in

	return top, nil
}

// drainToLast moves all but the last item of in to spare and dequeues the
// last one.
func (s *QueueStack[T]) drainToLast() (T, error) {
	if s.in.IsEmpty() {
		var zero T
		return zero, ErrEmpty
	}
	for s.in.Len() > 1 {
		v, _ := s.in.Dequeue()
		s.spare.Enqueue(v)
	}

	return s.in.Dequeue()
}

// IsEmpty reports whether the stack holds no items.
func (s *QueueStack[T]) IsEmpty() bool { return s.in.IsEmpty() }

// Len returns the number of items.
func (s *QueueStack[T]) Len() int { return s.in.Len() }
