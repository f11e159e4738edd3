package bst_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsa/bst"
)

func sample() *bst.Tree[int] {
	return bst.FromSlice([]int{5, 3, 7, 2, 4, 6, 8})
}

func TestTree_Traversals(t *testing.T) {
	tr := sample()
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8}, tr.InOrder())
	assert.Equal(t, []int{5, 3, 2, 4, 7, 6, 8}, tr.PreOrder())
	assert.Equal(t, []int{2, 4, 3, 6, 8, 7, 5}, tr.PostOrder())
	assert.Equal(t, [][]int{{5}, {3, 7}, {2, 4, 6, 8}}, tr.LevelOrder())
	assert.Equal(t, 3, tr.MaxDepth())
	assert.Equal(t, 7, tr.Len())
	assert.True(t, tr.IsValid())
}

func TestTree_Empty(t *testing.T) {
	tr := bst.New[string]()
	assert.Empty(t, tr.InOrder())
	assert.Nil(t, tr.LevelOrder())
	assert.Equal(t, 0, tr.MaxDepth())
	assert.True(t, tr.IsValid())
	_, ok := tr.Min()
	assert.False(t, ok)
	_, ok = tr.Max()
	assert.False(t, ok)
	assert.Nil(t, tr.Search("x"))
	assert.False(t, tr.Delete("x"))
}

func TestTree_InsertDuplicate(t *testing.T) {
	tr := sample()
	assert.False(t, tr.Insert(4))
	assert.Equal(t, 7, tr.Len())
	assert.True(t, tr.Insert(9))
	assert.Equal(t, 8, tr.Len())
}

func TestTree_Search(t *testing.T) {
	tr := sample()
	n := tr.Search(6)
	require.NotNil(t, n)
	assert.Equal(t, 6, n.Value)
	assert.Nil(t, tr.Search(10))
	assert.True(t, tr.Contains(2))

	lo, _ := tr.Min()
	hi, _ := tr.Max()
	assert.Equal(t, 2, lo)
	assert.Equal(t, 8, hi)
}

func TestTree_Delete(t *testing.T) {
	cases := []struct {
		name string
		del  int
		want []int
	}{
		{"leaf", 2, []int{3, 4, 5, 6, 7, 8}},
		{"two children", 3, []int{2, 4, 5, 6, 7, 8}},
		{"root", 5, []int{2, 3, 4, 6, 7, 8}},
		{"absent", 42, []int{2, 3, 4, 5, 6, 7, 8}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := sample()
			tr.Delete(tc.del)
			assert.Equal(t, tc.want, tr.InOrder())
			assert.Equal(t, len(tc.want), tr.Len())
			assert.True(t, tr.IsValid())
		})
	}

	// root with two children is replaced by the right-subtree minimum
	tr := sample()
	require.True(t, tr.Delete(5))
	assert.Equal(t, 6, tr.Root().Value)

	// single child splice
	chain := bst.FromSlice([]int{1, 2, 3})
	require.True(t, chain.Delete(2))
	assert.Equal(t, [][]int{{1}, {3}}, chain.LevelOrder())
}

func TestTree_InOrderSortedProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		tr := bst.New[int]()
		uniq := map[int]bool{}
		for i := 0; i < 100; i++ {
			v := rng.Intn(50)
			tr.Insert(v)
			uniq[v] = true
		}
		got := tr.InOrder()
		assert.True(t, sort.IntsAreSorted(got))
		assert.Len(t, got, len(uniq))
		assert.True(t, tr.IsValid())
	}
}

func TestIsValid_Invalid(t *testing.T) {
	// 6 sits in the left subtree of 5: parent check alone would miss it.
	root := &bst.Node[int]{
		Value: 5,
		Left: &bst.Node[int]{
			Value: 3,
			Right: &bst.Node[int]{Value: 6},
		},
	}
	assert.False(t, bst.IsValid(root))

	dup := &bst.Node[int]{Value: 5, Right: &bst.Node[int]{Value: 5}}
	assert.False(t, bst.IsValid(dup))
}
