// SPDX-License-Identifier: MIT

// Package greedy implements algorithms that commit to the locally best choice
// at every step and never revisit it.
//
//   - ActivitySelection   earliest finish first; maximum set of
//     non-overlapping intervals.
//   - FractionalKnapsack  best value per weight first; items may be split.
//   - ScheduleJobs        unit-time jobs with deadlines; highest profit
//     first, each into the latest free slot before its deadline.
//
// Each runs in O(n log n) for the sort plus a linear (or, for ScheduleJobs,
// O(n·h) with h = min(max deadline, n)) pass.
package greedy
