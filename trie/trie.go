// SPDX-License-Identifier: MIT

package trie

import "slices"

// Dictionary is a set of words queryable by prefix.
type Dictionary interface {
	Insert(word string)
	Search(word string) bool
	StartsWith(prefix string) bool
	WordsWithPrefix(prefix string) []string
	Delete(word string) bool
	Len() int
}

var (
	_ Dictionary = (*Trie)(nil)
	_ Dictionary = (*Radix)(nil)
)

type node struct {
	children map[rune]*node
	end      bool
}

func newNode() *node { return &node{children: make(map[rune]*node)} }

// Trie is a rune-keyed prefix tree.
type Trie struct {
	root *node
	size int
}

// New returns an empty Trie.
func New() *Trie { return &Trie{root: newNode()} }

// Insert stores word. Re-inserting an existing word is a no-op.
//
// Complexity: O(L) for a word of L runes.
func (t *Trie) Insert(word string) {
	n := t.root
	for _, r := range word {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
		}
		n = child
	}
	if !n.end {
		n.end = true
		t.size++
	}
}

// Search reports whether word was inserted.
func (t *Trie) Search(word string) bool {
	n := t.walk(word)
	return n != nil && n.end
}

// StartsWith reports whether any stored word begins with prefix.
func (t *Trie) StartsWith(prefix string) bool {
	n := t.walk(prefix)
	return n != nil && (n.end || len(n.children) > 0)
}

// WordsWithPrefix returns every stored word beginning with prefix.
//
// Complexity:
//
//	Time:   O(P + S) for prefix length P and S nodes below it.
//	Memory: O(S) plus the result.
func (t *Trie) WordsWithPrefix(prefix string) []string {
	n := t.walk(prefix)
	if n == nil {
		return nil
	}
	var out []string
	collect(n, []rune(prefix), &out)

	return out
}

func collect(n *node, path []rune, out *[]string) {
	if n.end {
		*out = append(*out, string(path))
	}
	keys := make([]rune, 0, len(n.children))
	for r := range n.children {
		keys = append(keys, r)
	}
	slices.Sort(keys)
	for _, r := range keys {
		collect(n.children[r], append(path, r), out)
	}
}

// Delete removes word and prunes nodes that no longer lead to any word.
// It reports whether word was present.
//
// Complexity: O(L).
func (t *Trie) Delete(word string) bool {
	runes := []rune(word)
	var removed bool

	var del func(n *node, i int) (prune bool)
	del = func(n *node, i int) bool {
		if i == len(runes) {
			if !n.end {
				return false
			}
			n.end = false
			removed = true
			return len(n.children) == 0
		}
		child, ok := n.children[runes[i]]
		if !ok {
			return false
		}
		if del(child, i+1) {
			delete(n.children, runes[i])
			return !n.end && len(n.children) == 0
		}
		return false
	}

	del(t.root, 0)
	if removed {
		t.size--
	}

	return removed
}

// Len returns the number of stored words.
func (t *Trie) Len() int { return t.size }

func (t *Trie) walk(s string) *node {
	n := t.root
	for _, r := range s {
		next, ok := n.children[r]
		if !ok {
			return nil
		}
		n = next
	}

	return n
}
