// SPDX-License-Identifier: MIT

package disjointset

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when an element is not in [0, Len()).
var ErrIndexOutOfRange = errors.New("disjointset: index out of range")

// ErrNegativeSize is returned by New for n < 0.
var ErrNegativeSize = errors.New("disjointset: negative size")

// DisjointSet partitions 0..n-1 into disjoint sets.
type DisjointSet struct {
	parent []int
	rank   []int
	count  int
}

// New returns n singleton sets.
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d, nil
}

// Find returns the representative of x's set, compressing the path on the way.
//
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Find(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, err
	}

	return d.find(x), nil
}

func (d *DisjointSet) find(x int) int {
	// 1) Walk to the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// 2) Point every node on the path straight at it.
	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets holding x and y. It reports false when they were
// already in the same set.
//
// Union by rank keeps trees shallow; amortized O(α(n)).
func (d *DisjointSet) Union(x, y int) (bool, error) {
	if err := d.check(x); err != nil {
		return false, err
	}
	if err := d.check(y); err != nil {
		return false, err
	}

	rx, ry := d.find(x), d.find(y)
	if rx == ry {
		return false, nil
	}
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.count--

	return true, nil
}

// Connected reports whether x and y share a set.
func (d *DisjointSet) Connected(x, y int) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// Components returns the current number of disjoint sets.
func (d *DisjointSet) Components() int { return d.count }

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

func (d *DisjointSet) check(x int) error {
	if x < 0 || x >= len(d.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, x, len(d.parent))
	}

	return nil
}
