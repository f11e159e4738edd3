// SPDX-License-Identifier: MIT

package mst

import (
	"fmt"

	"github.com/katalvlaran/dsa/collections"
	"github.com/katalvlaran/dsa/graph"
)

// Prim grows a minimum spanning tree from root across root's component.
//
// Steps:
//  1. Validate vertices, edges and root.
//  2. Load the edges into an undirected graph.Graph; parallel edges keep
//     the lightest weight.
//  3. Push root's edges into a min-heap; repeatedly pop the lightest edge
//     leading to an unvisited vertex, accept it and push that vertex's edges.
//
// Complexity: O(E log E) with a lazy heap. Memory: O(V+E).
func Prim(vertices []string, edges []Edge, root string) (*Result, error) {
	// 1) Validate.
	index, err := indexVertices(vertices)
	if err != nil {
		return nil, err
	}
	if _, ok := index[root]; !ok {
		return nil, fmt.Errorf("%w: root %q", ErrUnknownVertex, root)
	}
	for _, e := range edges {
		if err = checkEdge(index, e); err != nil {
			return nil, err
		}
	}

	// 2) Build adjacency.
	g := graph.New()
	for _, v := range vertices {
		if err = g.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		if w, ok := g.Weight(e.U, e.V); ok && w <= int64(e.Weight) {
			continue
		}
		if err = g.AddWeightedEdge(e.U, e.V, int64(e.Weight)); err != nil {
			return nil, err
		}
	}

	// 3) Grow.
	type candidate struct {
		Edge
		seq int
	}
	seq := 0
	pq := collections.NewMinHeap(func(a, b candidate) bool {
		if a.Weight != b.Weight {
			return a.Weight < b.Weight
		}
		return a.seq < b.seq
	})
	visited := map[string]bool{}
	push := func(u string) error {
		visited[u] = true
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		for _, v := range nbrs {
			if visited[v] {
				continue
			}
			w, _ := g.Weight(u, v)
			pq.Push(candidate{Edge: Edge{U: u, V: v, Weight: int(w)}, seq: seq})
			seq++
		}

		return nil
	}

	res := &Result{}
	if err = push(root); err != nil {
		return nil, err
	}
	for !pq.IsEmpty() {
		c, _ := pq.Pop()
		if visited[c.V] {
			continue
		}
		res.Edges = append(res.Edges, c.Edge)
		res.TotalWeight += c.Weight
		if err = push(c.V); err != nil {
			return nil, err
		}
	}

	return res, nil
}
