package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsa/graph"
)

func TestAllPairsDirected(t *testing.T) {
	g := graph.New(graph.WithDirected())
	require.NoError(t, g.AddWeightedEdge("a", "b", 3))
	require.NoError(t, g.AddWeightedEdge("b", "c", -2))
	require.NoError(t, g.AddWeightedEdge("a", "c", 5))

	d, err := g.AllPairs()
	require.NoError(t, err)
	assert.Equal(t, int64(0), d["a"]["a"])
	assert.Equal(t, int64(3), d["a"]["b"])
	assert.Equal(t, int64(1), d["a"]["c"])
	assert.Equal(t, graph.Infinity, d["c"]["a"])
	assert.Equal(t, graph.Infinity, d["b"]["a"])
}

func TestAllPairsAgreesWithDijkstra(t *testing.T) {
	g := graph.New()
	for _, e := range []struct {
		u, v string
		w    int64
	}{
		{"a", "b", 4}, {"a", "c", 1}, {"c", "b", 2}, {"b", "d", 5}, {"c", "d", 8},
	} {
		require.NoError(t, g.AddWeightedEdge(e.u, e.v, e.w))
	}
	require.NoError(t, g.AddVertex("lonely"))

	all, err := g.AllPairs()
	require.NoError(t, err)
	for _, src := range g.Vertices() {
		res, err := g.Dijkstra(src)
		require.NoError(t, err)
		assert.Equal(t, res.Dist, all[src], "source %s", src)
	}
}

func TestAllPairsNegativeCycle(t *testing.T) {
	g := graph.New(graph.WithDirected())
	require.NoError(t, g.AddWeightedEdge("a", "b", 1))
	require.NoError(t, g.AddWeightedEdge("b", "a", -2))

	_, err := g.AllPairs()
	assert.ErrorIs(t, err, graph.ErrNegativeCycle)

	u := graph.New()
	require.NoError(t, u.AddWeightedEdge("x", "y", -1))
	_, err = u.AllPairs()
	assert.ErrorIs(t, err, graph.ErrNegativeCycle)
}

func TestAllPairsEmpty(t *testing.T) {
	d, err := graph.New().AllPairs()
	require.NoError(t, err)
	assert.Empty(t, d)
}
