// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"fmt"
)

// ErrNegativeCycle is returned by AllPairs when some vertex can reach itself
// with negative total weight.
var ErrNegativeCycle = errors.New("graph: negative cycle")

// AllPairs returns shortest distances between every ordered pair of vertices
// using Floyd-Warshall. Negative weights are allowed; unreachable pairs map
// to Infinity. An undirected edge with negative weight is a negative cycle.
//
// Loop order is fixed (k → i → j) over insertion order, so results are
// deterministic. O(V³) time, O(V²) space.
func (g *Graph) AllPairs() (map[string]map[string]int64, error) {
	n := len(g.order)

	// 1) Seed a dense matrix: 0 on the diagonal, edge weights, else Infinity.
	index := make(map[string]int, n)
	for i, id := range g.order {
		index[id] = i
	}
	d := make([][]int64, n)
	for i, u := range g.order {
		d[i] = make([]int64, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = Infinity
			}
		}
		for v, w := range g.weight[u] {
			j := index[v]
			if i != j || w < 0 {
				d[i][j] = min(d[i][j], w)
			}
		}
	}

	// 2) Relax through each intermediate k.
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := d[i][k]
			if ik == Infinity {
				continue
			}
			for j := 0; j < n; j++ {
				kj := d[k][j]
				if kj == Infinity {
					continue
				}
				if cand := ik + kj; cand < d[i][j] {
					d[i][j] = cand
				}
			}
		}
	}

	// 3) A negative diagonal means a negative cycle.
	out := make(map[string]map[string]int64, n)
	for i, u := range g.order {
		if d[i][i] < 0 {
			return nil, fmt.Errorf("%w: through %q", ErrNegativeCycle, u)
		}
		row := make(map[string]int64, n)
		for j, v := range g.order {
			row[v] = d[i][j]
		}
		out[u] = row
	}

	return out, nil
}
