// SPDX-License-Identifier: MIT

package bst

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/dsa/collections"
)

// Node is a tree vertex. Left and Right are owned by this node.
type Node[T any] struct {
	Value       T
	Left, Right *Node[T]
}

// Tree is a binary search tree. The zero value is an empty tree.
type Tree[T constraints.Ordered] struct {
	root *Node[T]
	size int
}

// New returns an empty tree.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// FromSlice inserts values in order.
func FromSlice[T constraints.Ordered](values []T) *Tree[T] {
	t := New[T]()
	for _, v := range values {
		t.Insert(v)
	}

	return t
}

// Root exposes the root node, nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// Len returns the number of stored values.
func (t *Tree[T]) Len() int { return t.size }

// Insert adds v. It reports false when v was already present.
//
// Complexity: O(h) for tree height h; O(n) when degenerate.
func (t *Tree[T]) Insert(v T) bool {
	link := &t.root
	for *link != nil {
		switch n := *link; {
		case v < n.Value:
			link = &n.Left
		case v > n.Value:
			link = &n.Right
		default:
			return false
		}
	}
	*link = &Node[T]{Value: v}
	t.size++

	return true
}

// Search returns the node holding v, or nil.
//
// Complexity: O(h).
func (t *Tree[T]) Search(v T) *Node[T] {
	n := t.root
	for n != nil {
		switch {
		case v < n.Value:
			n = n.Left
		case v > n.Value:
			n = n.Right
		default:
			return n
		}
	}

	return nil
}

// Contains reports whether v is stored.
func (t *Tree[T]) Contains(v T) bool { return t.Search(v) != nil }

// Delete removes v and reports whether it was present.
//
// Complexity: O(h).
func (t *Tree[T]) Delete(v T) bool {
	var removed bool
	t.root = deleteNode(t.root, v, &removed)
	if removed {
		t.size--
	}

	return removed
}

func deleteNode[T constraints.Ordered](n *Node[T], v T, removed *bool) *Node[T] {
	if n == nil {
		return nil
	}
	switch {
	case v < n.Value:
		n.Left = deleteNode(n.Left, v, removed)
		return n
	case v > n.Value:
		n.Right = deleteNode(n.Right, v, removed)
		return n
	}

	*removed = true
	// 1) Zero or one child: splice.
	if n.Left == nil {
		return n.Right
	}
	if n.Right == nil {
		return n.Left
	}
	// 2) Two children: take the successor's value, then drop the successor.
	succ := minNode(n.Right)
	n.Value = succ.Value
	var ignored bool
	n.Right = deleteNode(n.Right, succ.Value, &ignored)

	return n
}

func minNode[T any](n *Node[T]) *Node[T] {
	for n.Left != nil {
		n = n.Left
	}

	return n
}

// Min returns the smallest value; ok is false on an empty tree.
func (t *Tree[T]) Min() (v T, ok bool) {
	if t.root == nil {
		return v, false
	}

	return minNode(t.root).Value, true
}

// Max returns the largest value; ok is false on an empty tree.
func (t *Tree[T]) Max() (v T, ok bool) {
	n := t.root
	if n == nil {
		return v, false
	}
	for n.Right != nil {
		n = n.Right
	}

	return n.Value, true
}

// InOrder returns values in ascending order.
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(*Node[T])
	walk = func(n *Node[T]) {
		if n == nil {
			return
		}
		walk(n.Left)
		out = append(out, n.Value)
		walk(n.Right)
	}
	walk(t.root)

	return out
}

// PreOrder returns values node-left-right.
func (t *Tree[T]) PreOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(*Node[T])
	walk = func(n *Node[T]) {
		if n == nil {
			return
		}
		out = append(out, n.Value)
		walk(n.Left)
		walk(n.Right)
	}
	walk(t.root)

	return out
}

// PostOrder returns values left-right-node.
func (t *Tree[T]) PostOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(*Node[T])
	walk = func(n *Node[T]) {
		if n == nil {
			return
		}
		walk(n.Left)
		walk(n.Right)
		out = append(out, n.Value)
	}
	walk(t.root)

	return out
}

// LevelOrder groups values by depth, left to right. Empty tree gives nil.
//
// Complexity: O(n). Memory: O(w) queue for the widest level w.
func (t *Tree[T]) LevelOrder() [][]T {
	return levels(t.root)
}

func levels[T any](root *Node[T]) [][]T {
	if root == nil {
		return nil
	}
	var out [][]T
	q := collections.NewQueue[*Node[T]](0)
	q.Enqueue(root)
	for !q.IsEmpty() {
		width := q.Len()
		level := make([]T, 0, width)
		for i := 0; i < width; i++ {
			n, _ := q.Dequeue()
			level = append(level, n.Value)
			if n.Left != nil {
				q.Enqueue(n.Left)
			}
			if n.Right != nil {
				q.Enqueue(n.Right)
			}
		}
		out = append(out, level)
	}

	return out
}

// MaxDepth counts nodes on the longest root-to-leaf path.
func (t *Tree[T]) MaxDepth() int { return depth(t.root) }

func depth[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}

	return 1 + max(depth(n.Left), depth(n.Right))
}

// IsValid checks the ordering invariant across the whole tree.
func (t *Tree[T]) IsValid() bool { return IsValid(t.root) }

// IsValid reports whether the tree under root satisfies strict BST ordering.
// Each node is checked against the open interval inherited from its
// ancestors, not just its parent.
//
// Complexity: O(n) time, O(h) stack.
func IsValid[T constraints.Ordered](root *Node[T]) bool {
	var check func(n *Node[T], lo, hi *T) bool
	check = func(n *Node[T], lo, hi *T) bool {
		if n == nil {
			return true
		}
		if lo != nil && n.Value <= *lo {
			return false
		}
		if hi != nil && n.Value >= *hi {
			return false
		}

		return check(n.Left, lo, &n.Value) && check(n.Right, &n.Value, hi)
	}

	return check(root, nil, nil)
}
