// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/dsa/collections"
	"github.com/katalvlaran/dsa/graph"
)

// Grid is an immutable rectangular land/water map.
type Grid struct {
	Width, Height int
	Conn          Connectivity
	cells         [][]byte
	offsets       [][2]int
}

// New validates and deep-copies cells. Returns ErrEmptyGrid or
// ErrNonRectangular for malformed input.
func New(cells [][]byte, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Validate shape.
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for r, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
	}

	// 2) Deep copy so later caller edits do not leak in.
	cp := make([][]byte, h)
	for r := range cells {
		cp[r] = append([]byte(nil), cells[r]...)
	}

	g := &Grid{Width: w, Height: h, Conn: o.Conn, cells: cp, offsets: offsets4}
	if o.Conn == Conn8 {
		g.offsets = offsets8
	}

	return g, nil
}

// InBounds reports whether (r,c) lies inside the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Height && c >= 0 && c < g.Width
}

// IsLand reports whether (r,c) is an in-bounds land cell.
func (g *Grid) IsLand(r, c int) bool {
	return g.InBounds(r, c) && g.cells[r][c] == Land
}

// Index maps (r,c) to its row-major index.
func (g *Grid) Index(r, c int) int { return r*g.Width + c }

// Coordinate converts a row-major index back to (r,c).
func (g *Grid) Coordinate(idx int) (r, c int) { return idx / g.Width, idx % g.Width }

// Components lists every island as row-major cell indices in BFS order.
// Islands are ordered by their first cell in row-major scan.
func (g *Grid) Components() [][]int {
	seen := make([]bool, g.Width*g.Height)
	var comps [][]int
	q := collections.NewQueue[int](0)

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			i0 := g.Index(r, c)
			if g.cells[r][c] != Land || seen[i0] {
				continue
			}
			seen[i0] = true
			q.Enqueue(i0)
			var comp []int
			for !q.IsEmpty() {
				u, _ := q.Dequeue()
				comp = append(comp, u)
				ur, uc := g.Coordinate(u)
				for _, d := range g.offsets {
					vr, vc := ur+d[0], uc+d[1]
					if !g.IsLand(vr, vc) {
						continue
					}
					if vi := g.Index(vr, vc); !seen[vi] {
						seen[vi] = true
						q.Enqueue(vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}

// Components is a shorthand for New followed by Grid.Components.
func Components(cells [][]byte, opts ...Option) ([][]int, error) {
	g, err := New(cells, opts...)
	if err != nil {
		return nil, err
	}

	return g.Components(), nil
}

// ToGraph builds an undirected graph.Graph whose vertices are land cells,
// named "r,c", joined under the grid's connectivity.
func (g *Grid) ToGraph() *graph.Graph {
	out := graph.New()
	id := func(r, c int) string { return g.cellID(g.Index(r, c)) }
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.cells[r][c] != Land {
				continue
			}
			_ = out.AddVertex(id(r, c))
			for _, d := range g.offsets {
				if nr, nc := r+d[0], c+d[1]; g.IsLand(nr, nc) {
					_ = out.AddEdge(id(r, c), id(nr, nc))
				}
			}
		}
	}

	return out
}
