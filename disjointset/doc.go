// SPDX-License-Identifier: MIT

// Package disjointset implements a union-find (disjoint-set forest) over the
// integer elements 0..n-1.
//
// Find uses path compression and Union links by rank, so any sequence of m
// operations runs in O(m·α(n)) where α is the inverse Ackermann function.
// The structure also keeps a live count of components: it starts at n and
// drops by one on every Union that merges two distinct sets.
//
// Indices outside [0, n) are contract violations and fail with
// ErrIndexOutOfRange.
package disjointset
