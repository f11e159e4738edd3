// SPDX-License-Identifier: MIT

package mst

import "errors"

// ErrUnknownVertex is returned when an edge endpoint or the Prim root is not
// in the vertex list.
var ErrUnknownVertex = errors.New("mst: unknown vertex")

// ErrDuplicateVertex is returned when the vertex list repeats an ID.
var ErrDuplicateVertex = errors.New("mst: duplicate vertex")

// ErrEmptyVertexID is returned when the vertex list contains "".
var ErrEmptyVertexID = errors.New("mst: vertex ID is empty")

// Edge is an undirected weighted edge.
type Edge struct {
	U, V   string
	Weight int
}

// Result is a spanning tree or forest.
type Result struct {
	Edges       []Edge
	TotalWeight int
}

// Spanning reports whether the result connects all n vertices.
func (r *Result) Spanning(n int) bool {
	if n == 0 {
		return true
	}

	return len(r.Edges) == n-1
}
