// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/dsa/collections"
)

func (g *Graph) requireVertex(id string) error {
	if !g.HasVertex(id) {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return nil
}

// DFSRecursive returns vertices reachable from start in depth-first
// pre-order, following neighbors in insertion order.
//
// Options: WithMaxDepth, WithOnVisit, WithOnExit, WithFilterNeighbor. A hook
// error stops the walk; the order visited so far is returned with it.
//
// Complexity: O(V+E) time; O(V) memory plus call-stack depth up to the
// longest explored path (bounded by WithMaxDepth).
func (g *Graph) DFSRecursive(start string, opts ...WalkOption) ([]string, error) {
	o, err := buildWalkOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = g.requireVertex(start); err != nil {
		return nil, err
	}
	visited := make(map[string]bool, len(g.order))
	order := make([]string, 0, len(g.order))

	var visit func(id string, depth int) error
	visit = func(id string, depth int) error {
		visited[id] = true
		order = append(order, id)
		if err := o.visit(id, depth); err != nil {
			return err
		}
		for _, nbr := range g.adj[id] {
			if visited[nbr] || !o.follow(id, nbr, depth) {
				continue
			}
			if err := visit(nbr, depth+1); err != nil {
				return err
			}
		}

		return o.exit(id, depth)
	}

	err = visit(start, 0)

	return order, err
}

type dfsFrame struct {
	id    string
	depth int
	exit  bool
}

// DFSIterative produces the same order, and fires the same hooks in the same
// sequence, as DFSRecursive using an explicit stack. Neighbors are pushed in
// reverse so the first one is popped first; a vertex is marked when popped,
// not when pushed. With OnExit set, an exit frame is pushed beneath each
// vertex's neighbors.
//
// Complexity: O(V+E) time, O(V+E) stack memory.
func (g *Graph) DFSIterative(start string, opts ...WalkOption) ([]string, error) {
	o, err := buildWalkOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = g.requireVertex(start); err != nil {
		return nil, err
	}
	visited := make(map[string]bool, len(g.order))
	order := make([]string, 0, len(g.order))
	stack := collections.NewStack[dfsFrame](len(g.order))
	stack.Push(dfsFrame{id: start})

	for !stack.IsEmpty() {
		f, _ := stack.Pop()
		if f.exit {
			if err = o.exit(f.id, f.depth); err != nil {
				return order, err
			}
			continue
		}
		if visited[f.id] {
			continue
		}
		visited[f.id] = true
		order = append(order, f.id)
		if err = o.visit(f.id, f.depth); err != nil {
			return order, err
		}
		if o.OnExit != nil {
			stack.Push(dfsFrame{id: f.id, depth: f.depth, exit: true})
		}

		nbrs := g.adj[f.id]
		for i := len(nbrs) - 1; i >= 0; i-- {
			if !visited[nbrs[i]] && o.follow(f.id, nbrs[i], f.depth) {
				stack.Push(dfsFrame{id: nbrs[i], depth: f.depth + 1})
			}
		}
	}

	return order, nil
}

// BFS returns vertices reachable from start in breadth-first order.
//
// Options: WithMaxDepth, WithOnVisit (called on dequeue), WithFilterNeighbor.
// OnExit is ignored. A hook error stops the walk; the order visited so far is
// returned with it.
//
// Complexity: O(V+E) time, O(V) memory.
func (g *Graph) BFS(start string, opts ...WalkOption) ([]string, error) {
	o, err := buildWalkOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = g.requireVertex(start); err != nil {
		return nil, err
	}
	order, _, err := g.bfs(start, "", &o)

	return order, err
}

// bfs walks from start, recording parents. It stops early once target is
// dequeued (target "" walks everything).
func (g *Graph) bfs(start, target string, o *WalkOptions) ([]string, map[string]string, error) {
	visited := map[string]bool{start: true}
	depth := map[string]int{start: 0}
	parent := make(map[string]string)
	order := make([]string, 0, len(g.order))
	q := collections.NewQueue[string](len(g.order))
	q.Enqueue(start)

	for !q.IsEmpty() {
		id, _ := q.Dequeue()
		order = append(order, id)
		if err := o.visit(id, depth[id]); err != nil {
			return order, parent, err
		}
		if id == target {
			break
		}
		for _, nbr := range g.adj[id] {
			if visited[nbr] || !o.follow(id, nbr, depth[id]) {
				continue
			}
			visited[nbr] = true
			parent[nbr] = id
			depth[nbr] = depth[id] + 1
			q.Enqueue(nbr)
		}
	}

	return order, parent, nil
}

// ShortestPath returns a path from start to end with the fewest edges.
// ok is false when end is unreachable or either vertex is missing.
// When start == end the path is [start].
//
// Complexity: O(V+E).
func (g *Graph) ShortestPath(start, end string) (path []string, ok bool) {
	if !g.HasVertex(start) || !g.HasVertex(end) {
		return nil, false
	}
	if start == end {
		return []string{start}, true
	}

	o := DefaultWalkOptions()
	_, parent, _ := g.bfs(start, end, &o)
	if _, reached := parent[end]; !reached {
		return nil, false
	}
	for v := end; v != start; v = parent[v] {
		path = append(path, v)
	}
	path = append(path, start)
	slices.Reverse(path)

	return path, true
}

// IsConnected reports whether every vertex can reach every other when edge
// direction is ignored. The empty graph is connected.
func (g *Graph) IsConnected() bool {
	if len(g.order) == 0 {
		return true
	}
	und := g.undirectedAdj()
	seen := map[string]bool{g.order[0]: true}
	stack := collections.NewStack[string](len(g.order))
	stack.Push(g.order[0])
	for !stack.IsEmpty() {
		id, _ := stack.Pop()
		for _, nbr := range und[id] {
			if !seen[nbr] {
				seen[nbr] = true
				stack.Push(nbr)
			}
		}
	}

	return len(seen) == len(g.order)
}

func (g *Graph) undirectedAdj() map[string][]string {
	if !g.directed {
		return g.adj
	}
	und := make(map[string][]string, len(g.order))
	for _, u := range g.order {
		for _, v := range g.adj[u] {
			und[u] = append(und[u], v)
			und[v] = append(und[v], u)
		}
	}

	return und
}

// HasCycle reports whether the graph contains a cycle. Undirected graphs use
// a DFS that ignores the edge back to the parent; a self-loop counts as a
// cycle. Directed graphs delegate to HasDirectedCycle.
func (g *Graph) HasCycle() bool {
	if g.directed {
		return g.HasDirectedCycle()
	}
	visited := make(map[string]bool, len(g.order))

	var visit func(id, parent string) bool
	visit = func(id, parent string) bool {
		visited[id] = true
		for _, nbr := range g.adj[id] {
			if nbr == id {
				return true
			}
			if !visited[nbr] {
				if visit(nbr, id) {
					return true
				}
			} else if nbr != parent {
				return true
			}
		}

		return false
	}

	for _, id := range g.order {
		if !visited[id] && visit(id, "") {
			return true
		}
	}

	return false
}

// HasDirectedCycle reports whether following edge direction ever returns to
// a vertex on the current path (a Gray→Gray back edge). For undirected
// graphs every edge would qualify, so it falls back to HasCycle.
func (g *Graph) HasDirectedCycle() bool {
	if !g.directed {
		return g.HasCycle()
	}
	state := make(map[string]int, len(g.order))

	var visit func(id string) bool
	visit = func(id string) bool {
		// 1) Enter: the vertex is now on the path.
		state[id] = Gray
		for _, nbr := range g.adj[id] {
			switch state[nbr] {
			case Gray:
				// 2) Back edge closes a cycle.
				return true
			case White:
				if visit(nbr) {
					return true
				}
			}
		}
		// 3) Exit: fully explored.
		state[id] = Black

		return false
	}

	for _, id := range g.order {
		if state[id] == White && visit(id) {
			return true
		}
	}

	return false
}
