// SPDX-License-Identifier: MIT

package dp

import (
	"errors"
	"math"
	"slices"
)

// ErrNoAlignment is returned by TimeWarp when the window is too narrow to
// align sequences of the given lengths.
var ErrNoAlignment = errors.New("dp: window too narrow to align sequences")

// WarpOption configures TimeWarp.
type WarpOption func(*WarpOptions)

// WarpOptions holds TimeWarp parameters.
type WarpOptions struct {
	// Window bounds |i-j| for matched positions (Sakoe-Chiba band). 0 means unbounded.
	Window int
	// SlopePenalty is added to every step that advances only one sequence.
	SlopePenalty float64
	// Path requests the warping path. It keeps the full table in memory.
	Path bool
}

// DefaultWarpOptions returns an unbounded, penalty-free, distance-only setup.
func DefaultWarpOptions() WarpOptions {
	return WarpOptions{}
}

// WithWindow limits matches to |i-j| <= w.
func WithWindow(w int) WarpOption {
	return func(o *WarpOptions) { o.Window = w }
}

// WithSlopePenalty charges p for every non-diagonal step.
func WithSlopePenalty(p float64) WarpOption {
	return func(o *WarpOptions) { o.SlopePenalty = p }
}

// WithPath makes TimeWarp return the alignment.
func WithPath() WarpOption {
	return func(o *WarpOptions) { o.Path = true }
}

// Warp is a dynamic time warping alignment.
type Warp struct {
	Distance float64
	// Path lists matched index pairs (i into a, j into b) from (0,0) to
	// (len(a)-1, len(b)-1). Nil unless WithPath was given.
	Path [][2]int
}

// TimeWarp returns the dynamic time warping distance between a and b: the
// cheapest monotone alignment where each matched pair costs |a[i]-b[j]|.
//
// Without WithPath only two table rows are kept.
//
// Complexity:
//
//	Time:   O(n·m), or O(n·w) with a window w.
//	Memory: O(m) without the path, O(n·m) with it.
func TimeWarp(a, b []float64, opts ...WarpOption) (*Warp, error) {
	o := DefaultWarpOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Validate.
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return nil, ErrEmptyInput
	}
	if o.Window < 0 || o.SlopePenalty < 0 {
		return nil, ErrNegativeInput
	}
	window := o.Window
	if window == 0 {
		window = max(n, m)
	}

	// 2) rows[i] is row i of the (n+1)×(m+1) table; without a path only
	//    rows i-1 and i are live.
	inf := math.Inf(1)
	height := 2
	if o.Path {
		height = n + 1
	}
	rows := make([][]float64, height)
	for i := range rows {
		rows[i] = make([]float64, m+1)
	}
	row := func(i int) []float64 {
		if o.Path {
			return rows[i]
		}
		return rows[i%2]
	}
	for j := 1; j <= m; j++ {
		rows[0][j] = inf
	}

	// 3) Fill.
	for i := 1; i <= n; i++ {
		prev, cur := row(i-1), row(i)
		cur[0] = inf
		for j := 1; j <= m; j++ {
			if i-j > window || j-i > window {
				cur[j] = inf
				continue
			}
			best := min(prev[j-1], prev[j]+o.SlopePenalty, cur[j-1]+o.SlopePenalty)
			cur[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
	}

	dist := row(n)[m]
	if math.IsInf(dist, 1) {
		return nil, ErrNoAlignment
	}
	res := &Warp{Distance: dist}
	if !o.Path {
		return res, nil
	}

	// 4) Walk back from (n,m), preferring the diagonal on ties.
	i, j := n, m
	for {
		res.Path = append(res.Path, [2]int{i - 1, j - 1})
		if i == 1 && j == 1 {
			break
		}
		diag, up, left := rows[i-1][j-1], rows[i-1][j]+o.SlopePenalty, rows[i][j-1]+o.SlopePenalty
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	slices.Reverse(res.Path)

	return res, nil
}
