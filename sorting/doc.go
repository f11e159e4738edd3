// SPDX-License-Identifier: MIT

// Package sorting provides comparison sorts that return a new slice and never
// mutate their input.
//
//   - BubbleSort  O(n²), stops after a pass with no swaps (O(n) on sorted input).
//   - MergeSort   O(n log n), stable. MergeSortFunc takes a less function so
//     records can be sorted by key with ties keeping input order.
//   - QuickSort   O(n log n) expected, O(n²) worst. Partitions around the
//     middle element into less/equal/greater buckets, so it is not in place
//     and duplicates do not degrade it.
package sorting
