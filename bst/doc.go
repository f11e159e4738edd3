// SPDX-License-Identifier: MIT

// Package bst implements an unbalanced binary search tree over ordered values.
//
// Tree[T] keeps the strict BST ordering: every value in a node's left subtree
// is smaller and every value in its right subtree is larger. Duplicates are
// ignored on insert. Delete splices out nodes with zero or one child and
// replaces a node with two children by the minimum of its right subtree.
// The tree is never rebalanced, so the height, and with it the cost of every
// operation, is O(n) in the worst case (sorted insertion order) and
// O(log n) on random input.
//
// Traversals return slices: InOrder, PreOrder, PostOrder and LevelOrder
// (one slice per depth level, computed with a collections.Queue).
//
// Functions over raw *Node[T] roots cover the classic tree exercises:
// SameTree, IsSymmetric, RightSideView, LowestCommonAncestor and PathSum.
// Serialize and Deserialize encode int trees as comma-separated preorder
// values with "null" for missing children.
//
// Recursive helpers use the call stack; depth equals tree height.
package bst
