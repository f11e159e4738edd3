// SPDX-License-Identifier: MIT

package feed

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/dsa/collections"
)

// DefaultLimit is the number of items NewsFeed returns unless WithLimit is given.
const DefaultLimit = 10

// ErrBadLimit is returned by New for a non-positive limit.
var ErrBadLimit = errors.New("feed: limit must be positive")

// Option configures a Feed.
type Option func(*Options)

// Options holds Feed parameters.
type Options struct {
	Limit int
}

// DefaultOptions returns DefaultLimit.
func DefaultOptions() Options {
	return Options{Limit: DefaultLimit}
}

// WithLimit sets how many items NewsFeed returns.
func WithLimit(n int) Option {
	return func(o *Options) { o.Limit = n }
}

type post struct {
	item int
	seq  int
}

// Feed stores timelines and follow relations keyed by user ID.
type Feed struct {
	limit   int
	seq     int
	posts   map[int][]post
	follows map[int]map[int]struct{}
}

// New returns an empty Feed.
func New(opts ...Option) (*Feed, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Limit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLimit, o.Limit)
	}

	return &Feed{
		limit:   o.Limit,
		posts:   make(map[int][]post),
		follows: make(map[int]map[int]struct{}),
	}, nil
}

// Post records item on user's timeline as the newest entry overall.
func (f *Feed) Post(user, item int) {
	f.posts[user] = append(f.posts[user], post{item: item, seq: f.seq})
	f.seq++
}

// Follow makes follower see followee's posts. Following oneself is a no-op;
// own posts are always included.
func (f *Feed) Follow(follower, followee int) {
	if follower == followee {
		return
	}
	set, ok := f.follows[follower]
	if !ok {
		set = make(map[int]struct{})
		f.follows[follower] = set
	}
	set[followee] = struct{}{}
}

// Unfollow reverses Follow. Unknown pairs are ignored.
func (f *Feed) Unfollow(follower, followee int) {
	delete(f.follows[follower], followee)
}

// Following returns the users follower follows, ascending.
func (f *Feed) Following(follower int) []int {
	return slices.Sorted(maps.Keys(f.follows[follower]))
}

type cursor struct {
	user int
	idx  int
	seq  int
}

// NewsFeed returns up to the configured limit of item IDs posted by user or
// anyone user follows, newest first.
//
// Steps:
//  1. Seed a heap with the newest post of each relevant timeline.
//  2. Pop the newest, emit it, and push the next-older post from the same
//     timeline.
func (f *Feed) NewsFeed(user int) []int {
	// 1) Seed.
	pq := collections.NewMinHeap(func(a, b cursor) bool { return a.seq > b.seq })
	seed := func(u int) {
		if tl := f.posts[u]; len(tl) > 0 {
			pq.Push(cursor{user: u, idx: len(tl) - 1, seq: tl[len(tl)-1].seq})
		}
	}
	seed(user)
	for u := range f.follows[user] {
		seed(u)
	}

	// 2) Merge.
	out := make([]int, 0, f.limit)
	for len(out) < f.limit && !pq.IsEmpty() {
		c, _ := pq.Pop()
		tl := f.posts[c.user]
		out = append(out, tl[c.idx].item)
		if c.idx > 0 {
			pq.Push(cursor{user: c.user, idx: c.idx - 1, seq: tl[c.idx-1].seq})
		}
	}

	return out
}
