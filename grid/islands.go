// SPDX-License-Identifier: MIT

package grid

// NumIslands counts 4-connected regions of Land in cells. Rows may differ in
// length; out-of-row positions count as water. An empty grid has 0 islands.
func NumIslands(cells [][]byte) int {
	visited := make([][]bool, len(cells))
	for r := range cells {
		visited[r] = make([]bool, len(cells[r]))
	}

	var sink func(r, c int)
	sink = func(r, c int) {
		if r < 0 || r >= len(cells) || c < 0 || c >= len(cells[r]) {
			return
		}
		if cells[r][c] != Land || visited[r][c] {
			return
		}
		visited[r][c] = true
		for _, d := range offsets4 {
			sink(r+d[0], c+d[1])
		}
	}

	count := 0
	for r := range cells {
		for c := range cells[r] {
			if cells[r][c] == Land && !visited[r][c] {
				count++
				sink(r, c)
			}
		}
	}

	return count
}

// FromStrings converts rows like "11000" to a byte grid.
func FromStrings(rows ...string) [][]byte {
	out := make([][]byte, len(rows))
	for i, row := range rows {
		out[i] = []byte(row)
	}

	return out
}
