package sorting_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dsa/sorting"
)

var sorters = map[string]func([]int) []int{
	"bubble": sorting.BubbleSort[int],
	"merge":  sorting.MergeSort[int],
	"quick":  sorting.QuickSort[int],
}

func TestSorters(t *testing.T) {
	cases := [][]int{
		nil,
		{1},
		{2, 1},
		{5, 2, 9, 1, 5, 6},
		{3, 3, 3},
		{9, 8, 7, 6, 5, 4, 3, 2, 1},
		{-4, 0, 7, -1, 0},
	}
	for name, sortFn := range sorters {
		t.Run(name, func(t *testing.T) {
			for _, in := range cases {
				orig := slices.Clone(in)
				got := sortFn(in)
				want := slices.Clone(in)
				slices.Sort(want)
				assert.Equal(t, len(want), len(got))
				if len(want) > 0 {
					assert.Equal(t, want, got)
				}
				assert.Equal(t, orig, in, "input must not be mutated")
			}
		})
	}
}

func TestSorters_RandomAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 25; round++ {
		in := make([]int, rng.Intn(200))
		for i := range in {
			in[i] = rng.Intn(50) - 25
		}
		want := sorting.MergeSort(in)
		assert.True(t, slices.IsSorted(want))
		assert.Equal(t, want, sorting.BubbleSort(in))
		assert.Equal(t, want, sorting.QuickSort(in))
	}
}

func TestSorters_Strings(t *testing.T) {
	in := []string{"pear", "apple", "fig", "apple"}
	assert.Equal(t, []string{"apple", "apple", "fig", "pear"}, sorting.QuickSort(in))
	assert.Equal(t, []string{"apple", "apple", "fig", "pear"}, sorting.BubbleSort(in))
}

func TestMergeSortFunc_Stable(t *testing.T) {
	type rec struct {
		key int
		tag string
	}
	in := []rec{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}, {0, "e"}, {2, "f"}}
	got := sorting.MergeSortFunc(in, func(x, y rec) bool { return x.key < y.key })
	tags := make([]string, len(got))
	for i, r := range got {
		tags[i] = r.tag
	}
	assert.Equal(t, []string{"e", "b", "d", "a", "c", "f"}, tags)
}
