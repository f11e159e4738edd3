// SPDX-License-Identifier: MIT

// Package graph implements an adjacency-list graph with string vertex IDs and
// the classic algorithms that run on it.
//
// Representation:
//
//   - Vertices are non-empty strings. Insertion order is recorded, so
//     Vertices, Neighbors and every traversal are deterministic.
//   - Each vertex maps to an ordered list of adjacent IDs. Undirected edges
//     are stored in both lists; directed edges only in the source's list.
//   - Every edge carries an int64 weight. AddEdge uses weight 1.
//
// Algorithms:
//
//   - DFSRecursive, DFSIterative  pre-order depth-first visit order; the
//     iterative form uses a collections.Stack and yields the same order.
//   - BFS                         breadth-first visit order (collections.Queue).
//   - ShortestPath                fewest-edges path via BFS parent links.
//   - IsConnected                 every vertex reachable, ignoring direction.
//   - HasCycle, HasDirectedCycle  parent-tracking DFS for undirected graphs;
//     White/Gray/Black coloring for directed ones.
//   - Dijkstra                    single-source shortest distances over
//     non-negative weights with a lazy decrease-key min-heap.
//   - TopologicalSort, CanFinish  Kahn's algorithm.
//   - AllPairs                    Floyd-Warshall; accepts negative weights and
//     reports negative cycles.
//
// Options:
//
//   - Traversals take WalkOptions: WithMaxDepth caps depth (and so recursion
//     depth for DFSRecursive), WithOnVisit/WithOnExit hooks can stop a walk
//     by returning an error, WithFilterNeighbor prunes edges.
//   - Dijkstra takes WithMaxDistance and WithInfEdgeThreshold. Distances
//     saturate at Infinity instead of overflowing.
//   - Out-of-range values return ErrOptionViolation.
//
// Complexity is O(V+E) for traversals and Kahn, O((V+E) log V) for Dijkstra,
// O(V³) for AllPairs.
// Recursive functions use call-stack depth proportional to the longest
// explored path.
//
// A Graph is not safe for concurrent mutation.
package graph
