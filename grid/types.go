// SPDX-License-Identifier: MIT

package grid

import "errors"

// Cell values.
const (
	Land  byte = '1'
	Water byte = '0'
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("grid: component index out of range")
	// ErrNoPath indicates the two components cannot be joined.
	ErrNoPath = errors.New("grid: no path between specified components")
)

// Connectivity selects which neighbors count as adjacent.
type Connectivity int

const (
	// Conn4 uses N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Option configures a Grid.
type Option func(*Options)

// Options holds Grid parameters.
type Options struct {
	Conn Connectivity
}

// DefaultOptions returns Conn4.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// WithConnectivity selects Conn4 or Conn8.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}
