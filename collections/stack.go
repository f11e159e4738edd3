// SPDX-License-Identifier: MIT

package collections

// Stacker is the behavior shared by LIFO containers.
type Stacker[T any] interface {
	Push(v T)
	Pop() (T, error)
	Peek() (T, error)
	IsEmpty() bool
	Len() int
}

// Stack is a slice-backed LIFO container. The zero value is an empty stack.
type Stack[T any] struct {
	items []T
}

var _ Stacker[int] = (*Stack[int])(nil)

// NewStack returns an empty stack with room for capacity items.
func NewStack[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top item, or ErrEmpty.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, ErrEmpty
	}
	v := s.items[n-1]
	s.items[n-1] = zero // drop the reference held by the backing array
	s.items = s.items[:n-1]

	return v, nil
}

// Peek returns the top item without removing it, or ErrEmpty.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return s.items[len(s.items)-1], nil
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// Clear removes every item.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// ToSlice returns a copy of the items, bottom first.
func (s *Stack[T]) ToSlice() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)

	return out
}
