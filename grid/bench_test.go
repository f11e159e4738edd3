package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dsa/grid"
)

func randomCells(n int) [][]byte {
	rng := rand.New(rand.NewSource(3))
	cells := make([][]byte, n)
	for r := range cells {
		cells[r] = make([]byte, n)
		for c := range cells[r] {
			cells[r][c] = grid.Water
			if rng.Intn(2) == 0 {
				cells[r][c] = grid.Land
			}
		}
	}

	return cells
}

func BenchmarkNumIslands(b *testing.B) {
	cells := randomCells(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		grid.NumIslands(cells)
	}
}

func BenchmarkComponents(b *testing.B) {
	g, _ := grid.New(randomCells(200))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Components()
	}
}
