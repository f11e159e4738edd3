// SPDX-License-Identifier: MIT

package bst

import "golang.org/x/exp/constraints"

// Number is any value PathSum can add.
type Number interface {
	constraints.Integer | constraints.Float
}

// SameTree reports whether a and b have identical shape and values.
func SameTree[T comparable](a, b *Node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Value == b.Value && SameTree(a.Left, b.Left) && SameTree(a.Right, b.Right)
}

// IsSymmetric reports whether root is a mirror image of itself.
func IsSymmetric[T comparable](root *Node[T]) bool {
	if root == nil {
		return true
	}

	return mirror(root.Left, root.Right)
}

func mirror[T comparable](a, b *Node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Value == b.Value && mirror(a.Left, b.Right) && mirror(a.Right, b.Left)
}

// RightSideView returns the last value of every level.
func RightSideView[T any](root *Node[T]) []T {
	lv := levels(root)
	out := make([]T, 0, len(lv))
	for _, level := range lv {
		out = append(out, level[len(level)-1])
	}

	return out
}

// LowestCommonAncestor returns the deepest node that has both p and q as
// descendants (a node is its own descendant). Nodes are matched by identity,
// so the tree need not be ordered. Returns nil if either is missing.
//
// Complexity: O(n) time, O(h) stack.
func LowestCommonAncestor[T any](root, p, q *Node[T]) *Node[T] {
	var (
		foundP, foundQ bool
		walk           func(n *Node[T]) *Node[T]
	)
	walk = func(n *Node[T]) *Node[T] {
		if n == nil {
			return nil
		}
		left := walk(n.Left)
		right := walk(n.Right)
		hit := false
		if n == p {
			foundP, hit = true, true
		}
		if n == q {
			foundQ, hit = true, true
		}
		switch {
		case hit, left != nil && right != nil:
			return n
		case left != nil:
			return left
		default:
			return right
		}
	}

	lca := walk(root)
	if !foundP || !foundQ {
		return nil
	}

	return lca
}

// PathSum counts downward paths (parent to child, any start and end) whose
// values add up to target. Runs in O(n) using running prefix sums.
func PathSum[T Number](root *Node[T], target T) int {
	seen := map[T]int{0: 1}
	var walk func(n *Node[T], sum T) int
	walk = func(n *Node[T], sum T) int {
		if n == nil {
			return 0
		}
		sum += n.Value
		count := seen[sum-target]
		seen[sum]++
		count += walk(n.Left, sum) + walk(n.Right, sum)
		seen[sum]--

		return count
	}

	return walk(root, 0)
}
