// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/dsa/collections"
)

// TopologicalSort orders the vertices of a directed graph so that every edge
// u→v has u before v, using Kahn's algorithm. Vertices with equal standing
// keep insertion order.
//
// ok is false when the graph has a cycle (fewer vertices than exist could
// be ordered). Undirected graphs fail with ErrUndirected.
func TopologicalSort(g *Graph) (order []string, ok bool, err error) {
	if !g.directed {
		return nil, false, ErrUndirected
	}

	// 1) Count incoming edges.
	indeg := make(map[string]int, len(g.order))
	for _, u := range g.order {
		for _, v := range g.adj[u] {
			indeg[v]++
		}
	}

	// 2) Seed with every source vertex.
	q := collections.NewQueue[string](len(g.order))
	for _, id := range g.order {
		if indeg[id] == 0 {
			q.Enqueue(id)
		}
	}

	// 3) Peel sources, releasing their successors.
	order = make([]string, 0, len(g.order))
	for !q.IsEmpty() {
		u, _ := q.Dequeue()
		order = append(order, u)
		for _, v := range g.adj[u] {
			indeg[v]--
			if indeg[v] == 0 {
				q.Enqueue(v)
			}
		}
	}

	// 4) Anything left over sits on a cycle.
	if len(order) < len(g.order) {
		return nil, false, nil
	}

	return order, true, nil
}

// CanFinish reports whether numCourses courses can all be taken given
// prerequisite pairs {course, required}, meaning required comes first.
// Course numbers outside [0, numCourses) fail with ErrVertexNotFound.
func CanFinish(numCourses int, prereqs [][2]int) (bool, error) {
	g := New(WithDirected())
	for i := 0; i < numCourses; i++ {
		_ = g.AddVertex(strconv.Itoa(i))
	}
	for _, p := range prereqs {
		course, req := p[0], p[1]
		if course < 0 || course >= numCourses || req < 0 || req >= numCourses {
			return false, fmt.Errorf("%w: course pair %v with %d courses", ErrVertexNotFound, p, numCourses)
		}
		_ = g.AddEdge(strconv.Itoa(req), strconv.Itoa(course))
	}

	_, ok, err := TopologicalSort(g)

	return ok, err
}
