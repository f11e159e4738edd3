// SPDX-License-Identifier: MIT

package trie

import "github.com/armon/go-radix"

// Radix is a compressed prefix tree. Words sharing a run of characters share
// one edge, so long common prefixes cost a single node.
type Radix struct {
	tree *radix.Tree
}

// NewRadix returns an empty Radix.
func NewRadix() *Radix { return &Radix{tree: radix.New()} }

// Insert stores word.
func (r *Radix) Insert(word string) {
	r.tree.Insert(word, struct{}{})
}

// Search reports whether word was inserted.
func (r *Radix) Search(word string) bool {
	_, ok := r.tree.Get(word)
	return ok
}

// StartsWith reports whether any stored word begins with prefix.
func (r *Radix) StartsWith(prefix string) bool {
	found := false
	r.tree.WalkPrefix(prefix, func(string, interface{}) bool {
		found = true
		return true
	})

	return found
}

// WordsWithPrefix returns every stored word beginning with prefix, sorted.
//
// Complexity: O(P + k) for k matching words.
func (r *Radix) WordsWithPrefix(prefix string) []string {
	var out []string
	r.tree.WalkPrefix(prefix, func(k string, _ interface{}) bool {
		out = append(out, k)
		return false
	})

	return out
}

// Delete removes word and reports whether it was present.
func (r *Radix) Delete(word string) bool {
	_, ok := r.tree.Delete(word)
	return ok
}

// Len returns the number of stored words.
func (r *Radix) Len() int { return r.tree.Len() }

// LongestPrefix returns the longest stored word that is a prefix of s.
//
// Complexity: O(len(s)).
func (r *Radix) LongestPrefix(s string) (string, bool) {
	k, _, ok := r.tree.LongestPrefix(s)
	return k, ok
}
