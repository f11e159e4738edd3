// SPDX-License-Identifier: MIT

package huffman

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/dsa/collections"
)

var (
	// ErrEmptyInput is returned by Build for empty text.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrUnknownSymbol is returned by Encode for a rune the tree was not built from.
	ErrUnknownSymbol = errors.New("huffman: symbol not in tree")

	// ErrInvalidBit is returned by Decode for a character other than '0' or
	// '1', or a bit that leads nowhere.
	ErrInvalidBit = errors.New("huffman: invalid bit")

	// ErrTruncated is returned by Decode when input ends inside a code.
	ErrTruncated = errors.New("huffman: truncated input")

	// ErrInvalidUTF8 is returned by Build and Encode for text that is not
	// valid UTF-8. Invalid bytes would all collapse to U+FFFD and could not
	// be decoded back.
	ErrInvalidUTF8 = errors.New("huffman: invalid UTF-8")
)

// Node is a Huffman tree node. Leaves carry a Char; internal nodes do not.
type Node struct {
	Char        rune
	Leaf        bool
	Freq        int
	Left, Right *Node
}

// Tree is a built Huffman code.
type Tree struct {
	Root  *Node
	codes map[rune]string
}

type entry struct {
	node    *Node
	minChar rune
	seq     int
}

// Build constructs the Huffman tree for text.
//
// Complexity: O(n + k log k) for n runes and k distinct runes.
// Memory: O(k).
func Build(text string) (*Tree, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}
	if !utf8.ValidString(text) {
		return nil, invalidUTF8(text)
	}

	// 1) Count runes.
	freq := make(map[rune]int)
	for _, r := range text {
		freq[r]++
	}
	chars := make([]rune, 0, len(freq))
	for r := range freq {
		chars = append(chars, r)
	}
	slices.Sort(chars)

	// 2) Seed the heap with leaves in rune order.
	pq := collections.NewMinHeap(func(a, b entry) bool {
		if a.node.Freq != b.node.Freq {
			return a.node.Freq < b.node.Freq
		}
		if a.minChar != b.minChar {
			return a.minChar < b.minChar
		}
		return a.seq < b.seq
	})
	seq := 0
	for _, r := range chars {
		pq.Push(entry{node: &Node{Char: r, Leaf: true, Freq: freq[r]}, minChar: r, seq: seq})
		seq++
	}

	// 3) Merge the two lightest until one tree remains.
	for pq.Len() > 1 {
		a, _ := pq.Pop()
		b, _ := pq.Pop()
		merged := &Node{Freq: a.node.Freq + b.node.Freq, Left: a.node, Right: b.node}
		pq.Push(entry{node: merged, minChar: min(a.minChar, b.minChar), seq: seq})
		seq++
	}
	top, _ := pq.Pop()

	// 4) Derive codes.
	t := &Tree{Root: top.node, codes: make(map[rune]string, len(chars))}
	if t.Root.Leaf {
		t.codes[t.Root.Char] = "0"
		return t, nil
	}
	var walk func(n *Node, prefix []byte)
	walk = func(n *Node, prefix []byte) {
		if n.Leaf {
			t.codes[n.Char] = string(prefix)
			return
		}
		walk(n.Left, append(prefix, '0'))
		walk(n.Right, append(prefix, '1'))
	}
	walk(t.Root, nil)

	return t, nil
}

// Codes returns a copy of the rune-to-code table.
func (t *Tree) Codes() map[rune]string {
	out := make(map[rune]string, len(t.codes))
	for r, c := range t.codes {
		out[r] = c
	}

	return out
}

// Encode concatenates the code of every rune in text.
//
// Complexity: O(n + output bits).
func (t *Tree) Encode(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", invalidUTF8(text)
	}
	var sb strings.Builder
	for i, r := range text {
		code, ok := t.codes[r]
		if !ok {
			return "", fmt.Errorf("%w: %q at byte %d", ErrUnknownSymbol, r, i)
		}
		sb.WriteString(code)
	}

	return sb.String(), nil
}

// Decode walks the tree bit by bit, emitting a rune at every leaf.
//
// Complexity: O(len(bits)). Memory: O(output).
func (t *Tree) Decode(bits string) (string, error) {
	var sb strings.Builder
	if t.Root.Leaf {
		for i := 0; i < len(bits); i++ {
			if bits[i] != '0' {
				return "", fmt.Errorf("%w: %q at %d", ErrInvalidBit, bits[i], i)
			}
			sb.WriteRune(t.Root.Char)
		}
		return sb.String(), nil
	}

	n := t.Root
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			n = n.Left
		case '1':
			n = n.Right
		default:
			return "", fmt.Errorf("%w: %q at %d", ErrInvalidBit, bits[i], i)
		}
		if n.Leaf {
			sb.WriteRune(n.Char)
			n = t.Root
		}
	}
	if n != t.Root {
		return "", fmt.Errorf("%w: %d bits", ErrTruncated, len(bits))
	}

	return sb.String(), nil
}

// CompressionRatio compares 8 bits per rune against the encoded length.
func (t *Tree) CompressionRatio(text string) (float64, error) {
	bits, err := t.Encode(text)
	if err != nil {
		return 0, err
	}
	if len(bits) == 0 {
		return 0, nil
	}

	return float64(len([]rune(text))*8) / float64(len(bits)), nil
}

// Result bundles everything Compress produces.
type Result struct {
	Codes   map[rune]string
	Encoded string
	Ratio   float64
}

// Compress builds a tree for text and encodes it.
func Compress(text string) (*Result, error) {
	t, err := Build(text)
	if err != nil {
		return nil, err
	}
	enc, _ := t.Encode(text)
	ratio, _ := t.CompressionRatio(text)

	return &Result{Codes: t.Codes(), Encoded: enc, Ratio: ratio}, nil
}

func invalidUTF8(text string) error {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Errorf("%w: byte %#x at %d", ErrInvalidUTF8, text[i], i)
		}
		i += size
	}

	return ErrInvalidUTF8
}
