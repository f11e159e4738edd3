package graph_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/dsa/graph"
)

func gridGraph(n int) *graph.Graph {
	g := graph.New()
	id := func(r, c int) string { return strconv.Itoa(r*n + c) }
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c+1 < n {
				_ = g.AddWeightedEdge(id(r, c), id(r, c+1), int64(r+c+1))
			}
			if r+1 < n {
				_ = g.AddWeightedEdge(id(r, c), id(r+1, c), int64(r*c+1))
			}
		}
	}

	return g
}

func BenchmarkBFS(b *testing.B) {
	g := gridGraph(50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.BFS("0")
	}
}

func BenchmarkDFSIterative(b *testing.B) {
	g := gridGraph(50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.DFSIterative("0")
	}
}

func BenchmarkDijkstra(b *testing.B) {
	g := gridGraph(50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Dijkstra("0")
	}
}
