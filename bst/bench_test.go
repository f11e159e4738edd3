package bst_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dsa/bst"
)

func BenchmarkTree_Insert(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	values := make([]int, 1024)
	for i := range values {
		values[i] = rng.Int()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bst.FromSlice(values)
	}
}

func BenchmarkTree_Search(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	tr := bst.New[int]()
	for i := 0; i < 1024; i++ {
		tr.Insert(rng.Intn(1 << 20))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Search(i & (1<<20 - 1))
	}
}
