// SPDX-License-Identifier: MIT

// Package huffman builds prefix-free codes from character frequencies.
//
// Build counts every rune of the text, seeds a collections.MinHeap with one
// leaf per distinct rune and repeatedly merges the two lightest trees. Ties
// are broken by the smallest rune in each subtree and then by creation
// order, so the same text always yields the same codes. Left edges emit '0'
// and right edges '1'. A text with a single distinct rune gets the code "0".
//
// Encode and Decode translate between text and a string of '0'/'1'
// characters. Decode rejects other characters (ErrInvalidBit) and input that
// stops inside a code (ErrTruncated).
//
// Complexity: Build O(n + k log k) for n runes and k distinct runes; Encode
// and Decode O(output length).
package huffman
