// SPDX-License-Identifier: MIT

package linkedlist

import "golang.org/x/exp/constraints"

// ReverseChain reverses a raw chain and returns its new head. Called on a
// list's Head it leaves that list inconsistent; use LinkedList.Reverse.
//
// Complexity: O(n), O(1) memory.
func ReverseChain[T any](head *Node[T]) *Node[T] {
	var prev *Node[T]
	for cur := head; cur != nil; {
		next := cur.Next
		cur.Next = prev
		prev, cur = cur, next
	}

	return prev
}

// HasCycle reports whether following Next from head ever revisits a node
// (Floyd's tortoise and hare). O(n) time, O(1) space.
func HasCycle[T any](head *Node[T]) bool {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
		if slow == fast {
			return true
		}
	}

	return false
}

// MergeSorted splices two ascending lists into one ascending list. Equal
// values keep a-before-b order. Both inputs are consumed and left empty.
// Passing the same list twice merges it with a copy of itself, so every
// value appears twice.
//
// Complexity: O(len(a) + len(b)). Memory: O(1) extra, O(n) when a == b.
func MergeSorted[T constraints.Ordered](a, b *LinkedList[T]) *LinkedList[T] {
	if a == b {
		b = FromSlice(a.ToSlice())
	}
	var dummy Node[T]
	tail := &dummy
	x, y := a.head, b.head
	for x != nil && y != nil {
		if x.Value <= y.Value {
			tail.Next, x = x, x.Next
		} else {
			tail.Next, y = y, y.Next
		}
		tail = tail.Next
	}
	if x != nil {
		tail.Next = x
	} else {
		tail.Next = y
	}
	for tail.Next != nil {
		tail = tail.Next
	}

	out := &LinkedList[T]{head: dummy.Next, size: a.size + b.size}
	if out.head != nil {
		out.tail = tail
	}
	*a, *b = LinkedList[T]{}, LinkedList[T]{}

	return out
}
