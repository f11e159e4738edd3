// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"slices"
)

// Graph is an adjacency-list graph keyed by string vertex IDs.
type Graph struct {
	directed bool
	order    []string                    // vertex insertion order
	adj      map[string][]string         // ordered adjacency lists
	weight   map[string]map[string]int64 // weight[u][v] for every stored u→v
}

// New creates an empty graph. Use WithDirected for a directed one.
func New(opts ...Option) *Graph {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph{
		directed: o.Directed,
		adj:      make(map[string][]string),
		weight:   make(map[string]map[string]int64),
	}
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// AddVertex inserts id. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.adj[id]; ok {
		return nil
	}
	g.order = append(g.order, id)
	g.adj[id] = nil
	g.weight[id] = make(map[string]int64)

	return nil
}

// AddEdge connects u and v with DefaultWeight, creating missing vertices.
func (g *Graph) AddEdge(u, v string) error {
	return g.AddWeightedEdge(u, v, DefaultWeight)
}

// AddWeightedEdge connects u and v with weight w, creating missing vertices.
// Re-adding an existing edge overwrites its weight.
func (g *Graph) AddWeightedEdge(u, v string, w int64) error {
	// 1) Validate and auto-create endpoints.
	if u == "" || v == "" {
		return fmt.Errorf("%w: edge %q-%q", ErrEmptyVertexID, u, v)
	}
	_ = g.AddVertex(u)
	_ = g.AddVertex(v)

	// 2) Store u→v, and v→u for undirected graphs.
	g.link(u, v, w)
	if !g.directed {
		g.link(v, u, w)
	}

	return nil
}

func (g *Graph) link(u, v string, w int64) {
	if _, ok := g.weight[u][v]; !ok {
		g.adj[u] = append(g.adj[u], v)
	}
	g.weight[u][v] = w
}

func (g *Graph) unlink(u, v string) bool {
	if _, ok := g.weight[u][v]; !ok {
		return false
	}
	delete(g.weight[u], v)
	g.adj[u] = slices.DeleteFunc(g.adj[u], func(x string) bool { return x == v })

	return true
}

// RemoveEdge deletes the edge u→v (both directions if undirected) and
// reports whether it existed.
func (g *Graph) RemoveEdge(u, v string) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}
	ok := g.unlink(u, v)
	if !g.directed {
		g.unlink(v, u)
	}

	return ok
}

// RemoveVertex deletes id together with every incident edge in either
// direction, and reports whether it existed.
func (g *Graph) RemoveVertex(id string) bool {
	if !g.HasVertex(id) {
		return false
	}
	for _, u := range g.order {
		if u != id {
			g.unlink(u, id)
		}
	}
	delete(g.adj, id)
	delete(g.weight, id)
	g.order = slices.DeleteFunc(g.order, func(x string) bool { return x == id })

	return true
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// HasEdge reports whether u→v exists.
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.weight[u][v]
	return ok
}

// Weight returns the weight of u→v.
func (g *Graph) Weight(u, v string) (int64, bool) {
	w, ok := g.weight[u][v]
	return w, ok
}

// Vertices returns all vertex IDs in insertion order.
func (g *Graph) Vertices() []string { return slices.Clone(g.order) }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of edges; an undirected edge counts once.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, id := range g.order {
		for _, v := range g.adj[id] {
			if g.directed || id <= v {
				n++
			}
		}
	}

	return n
}

// Neighbors returns the IDs adjacent to id in edge insertion order.
func (g *Graph) Neighbors(id string) ([]string, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return slices.Clone(nbrs), nil
}

// Edge is one stored u→v pair.
type Edge struct {
	From, To string
	Weight   int64
}

// Edges lists every edge, grouped by source in vertex order. Undirected
// edges appear once with From <= To.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, u := range g.order {
		for _, v := range g.adj[u] {
			if !g.directed && u > v {
				continue
			}
			out = append(out, Edge{From: u, To: v, Weight: g.weight[u][v]})
		}
	}

	return out
}
