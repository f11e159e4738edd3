package dp_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/dsa/dp"
)

func BenchmarkEditDistance(b *testing.B) {
	x := strings.Repeat("kitten", 50)
	y := strings.Repeat("sitting", 50)
	for i := 0; i < b.N; i++ {
		dp.EditDistance(x, y)
	}
}

func BenchmarkLengthOfLIS(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	in := make([]int, 2000)
	for i := range in {
		in[i] = rng.Int()
	}
	b.Run("quadratic", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			dp.LengthOfLIS(in)
		}
	})
	b.Run("tails", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			dp.LengthOfLISFast(in)
		}
	})
}
