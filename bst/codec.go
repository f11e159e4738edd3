// SPDX-License-Identifier: MIT

package bst

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const nullToken = "null"

// ErrMalformed is returned by Deserialize for input that does not describe
// exactly one tree.
var ErrMalformed = errors.New("bst: malformed serialized tree")

// Serialize encodes root as comma-separated preorder values with "null" for
// every missing child. An empty tree encodes as "null".
//
// Complexity: O(n).
func Serialize(root *Node[int]) string {
	var sb strings.Builder
	var walk func(n *Node[int])
	walk = func(n *Node[int]) {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		if n == nil {
			sb.WriteString(nullToken)
			return
		}
		sb.WriteString(strconv.Itoa(n.Value))
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)

	return sb.String()
}

// Deserialize rebuilds a tree produced by Serialize.
//
// Complexity: O(n) tokens. Memory: O(h) recursion.
func Deserialize(data string) (*Node[int], error) {
	tokens := strings.Split(data, ",")
	pos := 0

	var build func() (*Node[int], error)
	build = func() (*Node[int], error) {
		if pos >= len(tokens) {
			return nil, fmt.Errorf("%w: unexpected end after %d tokens", ErrMalformed, pos)
		}
		tok := strings.TrimSpace(tokens[pos])
		pos++
		if tok == nullToken {
			return nil, nil
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q", ErrMalformed, pos-1, tok)
		}
		n := &Node[int]{Value: v}
		if n.Left, err = build(); err != nil {
			return nil, err
		}
		if n.Right, err = build(); err != nil {
			return nil, err
		}

		return n, nil
	}

	root, err := build()
	if err != nil {
		return nil, err
	}
	if pos != len(tokens) {
		return nil, fmt.Errorf("%w: %d trailing tokens", ErrMalformed, len(tokens)-pos)
	}

	return root, nil
}

// FromTree wraps an existing ordered root, for example one returned by
// Deserialize. ok is false when root violates BST ordering.
func FromTree(root *Node[int]) (t *Tree[int], ok bool) {
	if !IsValid(root) {
		return nil, false
	}
	t = &Tree[int]{root: root}
	t.size = len(t.InOrder())

	return t, true
}
