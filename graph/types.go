// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"fmt"
	"math"
)

// Infinity is the distance Dijkstra reports for unreachable vertices.
const Infinity int64 = math.MaxInt64

// DefaultWeight is the weight AddEdge assigns.
const DefaultWeight int64 = 1

// Visitation colors for directed cycle detection.
const (
	White = iota // not yet visited
	Gray         // on the current DFS path
	Black        // fully explored
)

var (
	// ErrEmptyVertexID is returned when a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates that a referenced vertex does not exist.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrNegativeWeight is returned by Dijkstra when any edge weight is < 0.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrUndirected is returned by operations defined only on directed graphs.
	ErrUndirected = errors.New("graph: operation requires a directed graph")
)

// Option configures a Graph at construction.
type Option func(*Options)

// Options holds Graph construction parameters.
type Options struct {
	// Directed makes AddEdge add only u→v. Default is undirected.
	Directed bool
}

// DefaultOptions returns an undirected configuration.
func DefaultOptions() Options {
	return Options{Directed: false}
}

// WithDirected builds a directed graph.
func WithDirected() Option {
	return func(o *Options) { o.Directed = true }
}

// ErrOptionViolation is returned when a traversal or Dijkstra option is out
// of range.
var ErrOptionViolation = errors.New("graph: invalid option")

// WalkOption configures BFS, DFSRecursive and DFSIterative.
type WalkOption func(*WalkOptions)

// WalkOptions holds traversal parameters. Depth counts edges from start,
// which has depth 0.
type WalkOptions struct {
	// MaxDepth, if > 0, leaves vertices deeper than MaxDepth unvisited.
	MaxDepth int
	// OnVisit runs when a vertex is first visited. A non-nil error stops
	// the walk and is returned wrapped.
	OnVisit func(id string, depth int) error
	// OnExit runs after every vertex visited below id has been explored.
	// Only the DFS walks call it.
	OnExit func(id string, depth int) error
	// FilterNeighbor, if set, skips the edge curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultWalkOptions returns an unbounded walk with no hooks.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{MaxDepth: 0}
}

// WithMaxDepth caps the walk at depth d. d == 0 means unlimited; d < 0 is
// rejected with ErrOptionViolation.
func WithMaxDepth(d int) WalkOption {
	return func(o *WalkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) WalkOption {
	return func(o *WalkOptions) { o.OnVisit = fn }
}

// WithOnExit registers a post-order hook for the DFS walks.
func WithOnExit(fn func(id string, depth int) error) WalkOption {
	return func(o *WalkOptions) { o.OnExit = fn }
}

// WithFilterNeighbor restricts which edges the walk may follow.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) WalkOption {
	return func(o *WalkOptions) { o.FilterNeighbor = fn }
}

func buildWalkOptions(opts []WalkOption) (WalkOptions, error) {
	o := DefaultWalkOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// follow reports whether the walk may step curr→nbr from depth.
func (o *WalkOptions) follow(curr, nbr string, depth int) bool {
	if o.MaxDepth > 0 && depth+1 > o.MaxDepth {
		return false
	}

	return o.FilterNeighbor == nil || o.FilterNeighbor(curr, nbr)
}

func (o *WalkOptions) visit(id string, depth int) error {
	if o.OnVisit == nil {
		return nil
	}
	if err := o.OnVisit(id, depth); err != nil {
		return fmt.Errorf("graph: visit %q: %w", id, err)
	}

	return nil
}

func (o *WalkOptions) exit(id string, depth int) error {
	if o.OnExit == nil {
		return nil
	}
	if err := o.OnExit(id, depth); err != nil {
		return fmt.Errorf("graph: exit %q: %w", id, err)
	}

	return nil
}

// DijkstraOption configures Dijkstra.
type DijkstraOption func(*DijkstraOptions)

// DijkstraOptions holds Dijkstra parameters.
type DijkstraOptions struct {
	// MaxDistance leaves vertices farther than this at Infinity. Default Infinity.
	MaxDistance int64
	// InfEdgeThreshold makes edges with weight >= this impassable. Default Infinity.
	InfEdgeThreshold int64

	err error
}

// DefaultDijkstraOptions returns uncapped distances with every edge passable.
func DefaultDijkstraOptions() DijkstraOptions {
	return DijkstraOptions{MaxDistance: Infinity, InfEdgeThreshold: Infinity}
}

// WithMaxDistance stops exploring past distance d (d >= 0).
func WithMaxDistance(d int64) DijkstraOption {
	return func(o *DijkstraOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithInfEdgeThreshold treats edges of weight >= t as walls (t > 0).
func WithInfEdgeThreshold(t int64) DijkstraOption {
	return func(o *DijkstraOptions) {
		if t <= 0 {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%d)", ErrOptionViolation, t)
			return
		}
		o.InfEdgeThreshold = t
	}
}
