// SPDX-License-Identifier: MIT

// Package grid treats a rectangular 2-D map of '1' (land) and '0' (water)
// bytes as a graph of cells.
//
// What:
//
//   - NumIslands counts 4-connected land regions with a recursive flood
//     fill over a visited mask; the input is never modified.
//   - Grid wraps a validated copy of the map and lists its components
//     ("islands") as row-major cell indices, under Conn4 or Conn8.
//   - Bridge finds the fewest water cells to convert so that two islands
//     touch, by running graph.Dijkstra over a cell graph where entering
//     water costs 1 and entering land costs 0.
//   - ToGraph converts the land cells into a graph.Graph for the general
//     graph algorithms.
//
// Complexity:
//
//   - NumIslands, Components: O(W×H×d) time, O(W×H) memory (d = 4 or 8).
//   - Bridge:                 O(W×H×d×log(W×H)) time, O(W×H×d) memory.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: the components cannot be connected.
package grid
