// SPDX-License-Identifier: MIT

// Package strmatch finds every occurrence of a pattern in a text.
//
// KMP precomputes the LPS table ("longest proper prefix that is also a
// suffix" for each pattern prefix) and scans the text once, never moving
// backwards: O(n + m). BruteForce checks every alignment in O(n·m) and serves
// as a reference.
//
// Positions are rune indices. Overlapping matches are all reported. The
// empty pattern matches nowhere.
package strmatch
