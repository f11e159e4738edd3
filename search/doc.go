// SPDX-License-Identifier: MIT

// Package search finds values in slices.
//
// BinarySearch, SearchRange and BinarySearchFunc require input sorted in
// ascending order and run in O(log n). LinearSearch works on any slice in
// O(n). Absence is reported as index -1 (or [-1, -1] for a range), never as
// an error.
package search
