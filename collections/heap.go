// SPDX-License-Identifier: MIT

package collections

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// MinHeap is a binary min-heap ordered by less. The root is the minimum
// between operations; sift-up/sift-down restore the heap property before
// Push and Pop return.
type MinHeap[T any] struct {
	h heapSlice[T]
}

// heapSlice adapts a slice and an ordering to container/heap.
type heapSlice[T any] struct {
	data []T
	less func(a, b T) bool
}

func (s heapSlice[T]) Len() int           { return len(s.data) }
func (s heapSlice[T]) Less(i, j int) bool { return s.less(s.data[i], s.data[j]) }
func (s heapSlice[T]) Swap(i, j int)      { s.data[i], s.data[j] = s.data[j], s.data[i] }

func (s *heapSlice[T]) Push(x any) { s.data = append(s.data, x.(T)) }

func (s *heapSlice[T]) Pop() any {
	var zero T
	n := len(s.data)
	v := s.data[n-1]
	s.data[n-1] = zero
	s.data = s.data[:n-1]

	return v
}

// NewMinHeap returns an empty heap ordered by less, which must be a strict
// weak ordering.
func NewMinHeap[T any](less func(a, b T) bool) *MinHeap[T] {
	return &MinHeap[T]{h: heapSlice[T]{less: less}}
}

// NewOrderedMinHeap returns an empty heap over a naturally ordered type.
func NewOrderedMinHeap[T constraints.Ordered]() *MinHeap[T] {
	return NewMinHeap(func(a, b T) bool { return a < b })
}

// HeapFrom builds a heap from items in O(n). The slice is copied.
func HeapFrom[T any](items []T, less func(a, b T) bool) *MinHeap[T] {
	data := make([]T, len(items))
	copy(data, items)
	mh := &MinHeap[T]{h: heapSlice[T]{data: data, less: less}}
	heap.Init(&mh.h)

	return mh
}

// Push inserts v. O(log n).
func (m *MinHeap[T]) Push(v T) {
	heap.Push(&m.h, v)
}

// Pop removes and returns the minimum, or ErrEmpty. O(log n).
func (m *MinHeap[T]) Pop() (T, error) {
	if m.h.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return heap.Pop(&m.h).(T), nil
}

// Peek returns the minimum without removing it, or ErrEmpty.
func (m *MinHeap[T]) Peek() (T, error) {
	if m.h.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return m.h.data[0], nil
}

// Len returns the number of items in the heap.
func (m *MinHeap[T]) Len() int { return m.h.Len() }

// IsEmpty reports whether the heap holds no items.
func (m *MinHeap[T]) IsEmpty() bool { return m.h.Len() == 0 }
