// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/dsa/mst"
)

// ErrInput is returned for command-line values that do not parse.
var ErrInput = errors.New("cli: invalid input")

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInput, a)
		}
		out[i] = n
	}

	return out, nil
}

// parseArc reads "a>b" as a directed edge a→b.
func parseArc(s string) (from, to string, err error) {
	from, to, ok := strings.Cut(s, ">")
	if !ok || from == "" || to == "" {
		return "", "", fmt.Errorf("%w: edge %q, want FROM>TO", ErrInput, s)
	}

	return from, to, nil
}

// parseWeightedEdge reads "a-b:4".
func parseWeightedEdge(s string) (mst.Edge, error) {
	pair, w, ok := strings.Cut(s, ":")
	if !ok {
		return mst.Edge{}, fmt.Errorf("%w: edge %q, want A-B:WEIGHT", ErrInput, s)
	}
	u, v, ok := strings.Cut(pair, "-")
	if !ok || u == "" || v == "" {
		return mst.Edge{}, fmt.Errorf("%w: edge %q, want A-B:WEIGHT", ErrInput, s)
	}
	weight, err := strconv.Atoi(w)
	if err != nil {
		return mst.Edge{}, fmt.Errorf("%w: weight %q in %q", ErrInput, w, s)
	}

	return mst.Edge{U: u, V: v, Weight: weight}, nil
}
