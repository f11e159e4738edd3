// SPDX-License-Identifier: MIT

package mst

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dsa/disjointset"
)

// Kruskal builds a minimum spanning forest of the given vertices and edges.
//
// Steps:
//  1. Index vertices; reject empty IDs (ErrEmptyVertexID), duplicates
//     (ErrDuplicateVertex) and edges with unknown endpoints (ErrUnknownVertex).
//  2. Sort a copy of the edges by ascending weight, stably.
//  3. Accept each edge whose endpoints are not yet connected.
//  4. Stop once V-1 edges are accepted.
//
// Complexity: O(E log E) for the sort plus O(E·α(V)) for union-find.
// Memory: O(V+E).
func Kruskal(vertices []string, edges []Edge) (*Result, error) {
	// 1) Index vertices and validate endpoints.
	index, err := indexVertices(vertices)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = checkEdge(index, e); err != nil {
			return nil, err
		}
	}

	// 2) Stable sort keeps equal weights in input order.
	sorted := append([]Edge(nil), edges...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 3) Union-find over vertex indices.
	ds, err := disjointset.New(len(vertices))
	if err != nil {
		return nil, err
	}
	res := &Result{Edges: make([]Edge, 0, max(len(vertices)-1, 0))}
	for _, e := range sorted {
		merged, _ := ds.Union(index[e.U], index[e.V])
		if !merged {
			continue
		}
		res.Edges = append(res.Edges, e)
		res.TotalWeight += e.Weight
		// 4) A full tree cannot grow further.
		if len(res.Edges) == len(vertices)-1 {
			break
		}
	}

	return res, nil
}

func indexVertices(vertices []string) (map[string]int, error) {
	index := make(map[string]int, len(vertices))
	for i, v := range vertices {
		if v == "" {
			return nil, fmt.Errorf("%w: position %d", ErrEmptyVertexID, i)
		}
		if _, dup := index[v]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVertex, v)
		}
		index[v] = i
	}

	return index, nil
}

func checkEdge(index map[string]int, e Edge) error {
	if _, ok := index[e.U]; !ok {
		return fmt.Errorf("%w: %q in edge %s-%s", ErrUnknownVertex, e.U, e.U, e.V)
	}
	if _, ok := index[e.V]; !ok {
		return fmt.Errorf("%w: %q in edge %s-%s", ErrUnknownVertex, e.V, e.U, e.V)
	}

	return nil
}
