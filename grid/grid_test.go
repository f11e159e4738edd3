package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsa/grid"
)

func TestNumIslands(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want int
	}{
		{"one", []string{"11110", "11010", "11000", "00000"}, 1},
		{"three", []string{"11000", "11000", "00100", "00011"}, 3},
		{"diagonal is separate", []string{"10", "01"}, 2},
		{"all water", []string{"000", "000"}, 0},
		{"ragged", []string{"1", "11", "001"}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cells := grid.FromStrings(tc.rows...)
			assert.Equal(t, tc.want, grid.NumIslands(cells))
			assert.Equal(t, grid.FromStrings(tc.rows...), cells, "input untouched")
		})
	}
	assert.Equal(t, 0, grid.NumIslands(nil))
}

func TestNew_Errors(t *testing.T) {
	_, err := grid.New(nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.New([][]byte{{}})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.New(grid.FromStrings("10", "1"))
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

func TestComponents(t *testing.T) {
	cells := grid.FromStrings(
		"110",
		"001",
		"011",
	)
	four, err := grid.Components(cells)
	require.NoError(t, err)
	require.Len(t, four, 2)
	assert.ElementsMatch(t, []int{0, 1}, four[0])
	assert.ElementsMatch(t, []int{5, 7, 8}, four[1])

	eight, err := grid.Components(cells, grid.WithConnectivity(grid.Conn8))
	require.NoError(t, err)
	require.Len(t, eight, 1)
	assert.Len(t, eight[0], 5)

	_, err = grid.Components(grid.FromStrings("1", "10"))
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

func TestComponentsMatchNumIslands(t *testing.T) {
	rows := []string{"10101", "01010", "11011", "00000", "11111"}
	comps, err := grid.Components(grid.FromStrings(rows...))
	require.NoError(t, err)
	assert.Len(t, comps, grid.NumIslands(grid.FromStrings(rows...)))
}

func TestGrid_Copy(t *testing.T) {
	cells := grid.FromStrings("10")
	g, err := grid.New(cells)
	require.NoError(t, err)
	cells[0][1] = '1'
	assert.False(t, g.IsLand(0, 1))
	assert.True(t, g.IsLand(0, 0))
	assert.False(t, g.IsLand(-1, 0))
}

func TestGrid_Bridge(t *testing.T) {
	g, err := grid.New(grid.FromStrings(
		"1100",
		"0000",
		"0011",
	))
	require.NoError(t, err)
	require.Len(t, g.Components(), 2)

	path, cost, err := g.Bridge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, cost)
	assert.Len(t, path, 4)
	assert.True(t, g.IsLand(g.Coordinate(path[0])))
	assert.True(t, g.IsLand(g.Coordinate(path[len(path)-1])))

	_, _, err = g.Bridge(0, 2)
	assert.ErrorIs(t, err, grid.ErrComponentIndex)

	self, cost, err := g.Bridge(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, cost)
	assert.Len(t, self, 1)
}

func TestGrid_ToGraph(t *testing.T) {
	g, err := grid.New(grid.FromStrings("110", "001"))
	require.NoError(t, err)
	gr := g.ToGraph()
	assert.Equal(t, 3, gr.VertexCount())
	assert.True(t, gr.HasEdge("0,0", "0,1"))
	assert.False(t, gr.IsConnected())

	g8, _ := grid.New(grid.FromStrings("110", "001"), grid.WithConnectivity(grid.Conn8))
	assert.True(t, g8.ToGraph().IsConnected())
}

func TestGrid_BridgePathIsContiguous(t *testing.T) {
	g, err := grid.New(grid.FromStrings(
		"10001",
		"10001",
		"00000",
		"11001",
	), grid.WithConnectivity(grid.Conn4))
	require.NoError(t, err)
	comps := g.Components()
	require.Len(t, comps, 4)

	for src := range comps {
		for dst := range comps {
			path, cost, err := g.Bridge(src, dst)
			require.NoError(t, err)
			require.NotEmpty(t, path)

			water := 0
			for i, cell := range path {
				r, c := g.Coordinate(cell)
				if !g.IsLand(r, c) {
					water++
				}
				if i > 0 {
					pr, pc := g.Coordinate(path[i-1])
					assert.Equal(t, 1, abs(pr-r)+abs(pc-c), "step %d of %v", i, path)
				}
			}
			assert.Equal(t, cost, water, "%d→%d", src, dst)
			assert.Contains(t, comps[src], path[0])
			assert.Contains(t, comps[dst], path[len(path)-1])
		}
	}

	// Left column island to right column island: three water cells in row 0.
	_, cost, err := g.Bridge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, cost)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
