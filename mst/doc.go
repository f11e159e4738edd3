// SPDX-License-Identifier: MIT

// Package mst computes minimum spanning trees over undirected weighted edges
// between named vertices.
//
// Kruskal sorts every edge by weight (stable, so equal weights keep input
// order) and accepts an edge iff its endpoints lie in different
// disjointset components. On a disconnected input it returns a minimum
// spanning forest: fewer than V-1 edges, one tree per component.
//
// Prim grows a single tree outward from a root using a collections.MinHeap of
// candidate edges. It spans only the root's component.
//
// Result.Spanning(n) reports whether a full tree over n vertices was built.
//
// Complexity: O(E log E) for Kruskal, O(E log V) for Prim; O(V+E) memory.
package mst
