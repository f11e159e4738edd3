// SPDX-License-Identifier: MIT

// Package feed implements a small social news feed: users post items, follow
// each other, and read the most recent items from themselves and everyone
// they follow.
//
// What:
//
//   - Post appends to a per-user timeline stamped with a global sequence.
//   - Follow / Unfollow maintain a follow set per user.
//   - NewsFeed k-way merges the relevant timelines newest-first with a
//     collections.MinHeap ordered by descending sequence, stopping at the
//     configured limit (default 10).
//
// Complexity:
//
//   - Post, Follow, Unfollow: O(1).
//   - NewsFeed: O(f + k·log f) for f followees and k = limit.
//
// A Feed is not safe for concurrent use.
package feed
