// SPDX-License-Identifier: MIT

// Package trie provides prefix trees over strings.
//
// Two implementations share the Dictionary interface:
//
//   - Trie   one node per rune, children keyed by rune. Delete prunes
//     branches that no longer lead to a word.
//   - Radix  a compressed prefix tree backed by github.com/armon/go-radix,
//     storing shared runs of characters in a single edge.
//
// Both return WordsWithPrefix results in lexicographic order; for valid
// UTF-8 this equals rune order. The empty string is a valid word and the
// empty prefix matches every stored word.
package trie
