// SPDX-License-Identifier: MIT

package linkedlist

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by positional operations given an index
// outside the valid range.
var ErrIndexOutOfRange = errors.New("linkedlist: index out of range")

// Node is one link of a chain. Next is exclusively owned by this node.
type Node[T any] struct {
	Value T
	Next  *Node[T]
}

// LinkedList is a singly linked sequence. The zero value is an empty list.
type LinkedList[T comparable] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

// New returns an empty list.
func New[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// FromSlice builds a list holding values in order.
func FromSlice[T comparable](values []T) *LinkedList[T] {
	l := New[T]()
	for _, v := range values {
		l.Append(v)
	}

	return l
}

// Append adds v at the end. O(1).
func (l *LinkedList[T]) Append(v T) {
	n := &Node[T]{Value: v}
	if l.head == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.Next = n
		l.tail = n
	}
	l.size++
}

// Prepend adds v at the front. O(1).
func (l *LinkedList[T]) Prepend(v T) {
	l.head = &Node[T]{Value: v, Next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}
	l.size++
}

// Insert places v so that it ends up at position index.
// Returns ErrIndexOutOfRange unless 0 <= index <= Len().
//
// Complexity: O(index); O(1) at either end.
func (l *LinkedList[T]) Insert(index int, v T) error {
	if index < 0 || index > l.size {
		return fmt.Errorf("%w: insert at %d, size %d", ErrIndexOutOfRange, index, l.size)
	}
	switch index {
	case 0:
		l.Prepend(v)
	case l.size:
		l.Append(v)
	default:
		prev := l.nodeAt(index - 1)
		prev.Next = &Node[T]{Value: v, Next: prev.Next}
		l.size++
	}

	return nil
}

// RemoveAt unlinks the node at index and returns its value.
// Returns ErrIndexOutOfRange unless 0 <= index < Len().
//
// Complexity: O(index).
func (l *LinkedList[T]) RemoveAt(index int) (T, error) {
	var zero T
	if index < 0 || index >= l.size {
		return zero, fmt.Errorf("%w: remove at %d, size %d", ErrIndexOutOfRange, index, l.size)
	}
	var removed *Node[T]
	if index == 0 {
		removed = l.head
		l.head = removed.Next
		if l.head == nil {
			l.tail = nil
		}
	} else {
		prev := l.nodeAt(index - 1)
		removed = prev.Next
		prev.Next = removed.Next
		if removed == l.tail {
			l.tail = prev
		}
	}
	removed.Next = nil
	l.size--

	return removed.Value, nil
}

// Find returns the index of the first node holding v, or -1.
//
// Complexity: O(n).
func (l *LinkedList[T]) Find(v T) int {
	i := 0
	for cur := l.head; cur != nil; cur = cur.Next {
		if cur.Value == v {
			return i
		}
		i++
	}

	return -1
}

// Get returns the value at index.
// Returns ErrIndexOutOfRange unless 0 <= index < Len().
func (l *LinkedList[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, fmt.Errorf("%w: get at %d, size %d", ErrIndexOutOfRange, index, l.size)
	}

	return l.nodeAt(index).Value, nil
}

// ToSlice returns the values head to tail.
func (l *LinkedList[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.Next {
		out = append(out, cur.Value)
	}

	return out
}

// Len returns the number of nodes.
func (l *LinkedList[T]) Len() int { return l.size }

// IsEmpty reports whether the list has no nodes.
func (l *LinkedList[T]) IsEmpty() bool { return l.size == 0 }

// Head exposes the first node for read-only walks (nil when empty). The
// list caches its length and tail, so rewiring Next through the returned
// node leaves Len, Append and positional operations undefined.
func (l *LinkedList[T]) Head() *Node[T] { return l.head }

// Reverse reverses the list in place. O(n), O(1) extra space.
func (l *LinkedList[T]) Reverse() {
	l.tail = l.head
	l.head = ReverseChain(l.head)
}

// nodeAt walks to position i; callers guarantee 0 <= i < size.
func (l *LinkedList[T]) nodeAt(i int) *Node[T] {
	cur := l.head
	for ; i > 0; i-- {
		cur = cur.Next
	}

	return cur
}
