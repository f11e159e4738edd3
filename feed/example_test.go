package feed_test

import (
	"fmt"

	"github.com/katalvlaran/dsa/feed"
)

func ExampleFeed_NewsFeed() {
	f, _ := feed.New()
	f.Post(1, 5)
	f.Post(1, 3)
	f.Post(2, 6)
	f.Follow(1, 2)
	fmt.Println(f.NewsFeed(1))
	// Output:
	// [6 3 5]
}
