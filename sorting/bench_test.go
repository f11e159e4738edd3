package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dsa/sorting"
)

func benchInput(n int) []int {
	rng := rand.New(rand.NewSource(1))
	in := make([]int, n)
	for i := range in {
		in[i] = rng.Int()
	}

	return in
}

func BenchmarkBubbleSort(b *testing.B) {
	in := benchInput(1000)
	for i := 0; i < b.N; i++ {
		sorting.BubbleSort(in)
	}
}

func BenchmarkMergeSort(b *testing.B) {
	in := benchInput(10000)
	for i := 0; i < b.N; i++ {
		sorting.MergeSort(in)
	}
}

func BenchmarkQuickSort(b *testing.B) {
	in := benchInput(10000)
	for i := 0; i < b.N; i++ {
		sorting.QuickSort(in)
	}
}
