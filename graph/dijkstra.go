// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/dsa/collections"
)

// DijkstraResult holds single-source shortest distances.
type DijkstraResult struct {
	Source string
	// Dist maps every vertex to its distance from Source, Infinity if unreachable.
	Dist map[string]int64
	// Prev maps every reached vertex except Source to its predecessor.
	Prev map[string]string
}

// PathTo rebuilds the shortest path from Source to v. ok is false when v is
// unreachable or unknown.
func (r *DijkstraResult) PathTo(v string) (path []string, ok bool) {
	d, known := r.Dist[v]
	if !known || d == Infinity {
		return nil, false
	}
	for cur := v; cur != r.Source; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	path = append(path, r.Source)
	slices.Reverse(path)

	return path, true
}

type pqItem struct {
	id   string
	dist int64
}

// Dijkstra computes shortest distances from start over edge weights.
//
// Preconditions (in order):
//  1. start exists (ErrVertexNotFound).
//  2. No edge has a negative weight (ErrNegativeWeight).
//
// Options: WithMaxDistance leaves farther vertices at Infinity;
// WithInfEdgeThreshold skips heavy edges. Sums that would overflow int64
// saturate at Infinity, so such vertices also stay unreachable.
//
// Stale heap entries are skipped on pop instead of decreasing keys in place.
//
// Complexity: O((V+E) log E) time, O(V+E) memory.
func (g *Graph) Dijkstra(start string, opts ...DijkstraOption) (*DijkstraResult, error) {
	o := DefaultDijkstraOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 1) Validate source.
	if err := g.requireVertex(start); err != nil {
		return nil, err
	}

	// 2) Fail fast on negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 3) Initialize distances.
	res := &DijkstraResult{
		Source: start,
		Dist:   make(map[string]int64, len(g.order)),
		Prev:   make(map[string]string, len(g.order)),
	}
	for _, id := range g.order {
		res.Dist[id] = Infinity
	}
	res.Dist[start] = 0

	pq := collections.NewMinHeap(func(a, b pqItem) bool {
		if a.dist != b.dist {
			return a.dist < b.dist
		}
		return a.id < b.id
	})
	pq.Push(pqItem{id: start, dist: 0})
	done := make(map[string]bool, len(g.order))

	// 4) Settle vertices in distance order.
	for !pq.IsEmpty() {
		item, _ := pq.Pop()
		if done[item.id] {
			continue
		}
		done[item.id] = true

		// 5) Relax outgoing edges.
		for _, nbr := range g.adj[item.id] {
			w := g.weight[item.id][nbr]
			if w >= o.InfEdgeThreshold {
				continue
			}
			nd := addDistance(item.dist, w)
			if nd > o.MaxDistance {
				continue
			}
			if nd < res.Dist[nbr] {
				res.Dist[nbr] = nd
				res.Prev[nbr] = item.id
				pq.Push(pqItem{id: nbr, dist: nd})
			}
		}
	}

	return res, nil
}

// addDistance returns d+w, saturating at Infinity. w is non-negative.
func addDistance(d, w int64) int64 {
	if d > Infinity-w {
		return Infinity
	}

	return d + w
}
