// Package dsa is a collection of classic data structures and algorithms,
// written as small generic packages with deterministic output.
//
// What is inside?
//
//	Containers:   collections (Stack, Queue, QueueStack, CircularQueue, MinHeap),
//	              linkedlist, disjointset, trie (map-backed and radix)
//	Trees:        bst (binary search tree, traversals, codec, tree puzzles)
//	Graphs:       graph (BFS/DFS, cycles, Dijkstra, Kahn, Floyd-Warshall),
//	              grid (islands, components, bridging), mst (Kruskal, Prim)
//	Algorithms:   sorting, search, dp, backtrack, greedy, huffman, strmatch,
//	              arrays (two pointers, windows, hashing, matrices, ranges)
//	Systems:      feed (follow graph with a k-way merged news feed)
//
// Conventions shared by every package:
//
//   - Contract violations (bad index, empty input, unknown vertex) return a
//     package-prefixed sentinel error that callers match with errors.Is.
//     Everything else returns plain values: -1, false, nil or an empty slice.
//   - Functions never mutate their inputs unless the name says so
//     (RotateSquare, SolveSudoku, RemoveDuplicatesSorted).
//   - Iteration order is deterministic: graphs keep vertex insertion order,
//     maps are walked in sorted key order, heaps break ties explicitly.
//   - No type is safe for concurrent mutation.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	graph.New() with edges A-B, A-C, B-D, C-D; BFS("A") visits A B C D.
//
// The dsa command (cmd/dsa) exposes a handful of these algorithms on the
// command line.
//
//	go install github.com/katalvlaran/dsa/cmd/dsa@latest
package dsa
