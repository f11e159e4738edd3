package arrays_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsa/arrays"
)

func TestMaxArea(t *testing.T) {
	assert.Equal(t, 49, arrays.MaxArea([]int{1, 8, 6, 2, 5, 4, 8, 3, 7}))
	assert.Equal(t, 1, arrays.MaxArea([]int{1, 1}))
	assert.Equal(t, 0, arrays.MaxArea([]int{5}))
}

func TestThreeSum(t *testing.T) {
	in := []int{-1, 0, 1, 2, -1, -4}
	assert.Equal(t, [][]int{{-1, -1, 2}, {-1, 0, 1}}, arrays.ThreeSum(in))
	assert.Equal(t, []int{-1, 0, 1, 2, -1, -4}, in, "input untouched")
	assert.Equal(t, [][]int{{0, 0, 0}}, arrays.ThreeSum([]int{0, 0, 0, 0}))
	assert.Empty(t, arrays.ThreeSum([]int{1, 2}))
}

func TestRemoveDuplicatesSorted(t *testing.T) {
	nums := []int{0, 0, 1, 1, 1, 2, 2, 3, 3, 4}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, arrays.RemoveDuplicatesSorted(nums))
	assert.Equal(t, []string{"a"}, arrays.RemoveDuplicatesSorted([]string{"a", "a"}))
	assert.Empty(t, arrays.RemoveDuplicatesSorted([]int{}))
}

func TestMaxSumWindow(t *testing.T) {
	got, err := arrays.MaxSumWindow([]int{2, 1, 5, 1, 3, 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, 9, got)

	got, err = arrays.MaxSumWindow([]int{-1, -2}, 2)
	require.NoError(t, err)
	assert.Equal(t, -3, got)

	_, err = arrays.MaxSumWindow([]int{1}, 2)
	assert.ErrorIs(t, err, arrays.ErrBadWindow)
	_, err = arrays.MaxSumWindow([]int{1}, 0)
	assert.ErrorIs(t, err, arrays.ErrBadWindow)
}

func TestLongestUniqueSubstring(t *testing.T) {
	assert.Equal(t, 3, arrays.LongestUniqueSubstring("abcabcbb"))
	assert.Equal(t, 1, arrays.LongestUniqueSubstring("bbbbb"))
	assert.Equal(t, 3, arrays.LongestUniqueSubstring("pwwkew"))
	assert.Equal(t, 0, arrays.LongestUniqueSubstring(""))
	assert.Equal(t, 2, arrays.LongestUniqueSubstring("abba"))
	assert.Equal(t, 3, arrays.LongestUniqueSubstring("ééxy"))
}

func TestMinWindow(t *testing.T) {
	assert.Equal(t, "BANC", arrays.MinWindow("ADOBECODEBANC", "ABC"))
	assert.Equal(t, "a", arrays.MinWindow("a", "a"))
	assert.Equal(t, "", arrays.MinWindow("a", "aa"))
	assert.Equal(t, "", arrays.MinWindow("abc", ""))
	assert.Equal(t, "aa", arrays.MinWindow("baab", "aa"))
}

func TestTwoSum(t *testing.T) {
	i, j, ok := arrays.TwoSum([]int{2, 7, 11, 15}, 9)
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 1}, [2]int{i, j})

	i, j, ok = arrays.TwoSum([]int{3, 3}, 6)
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 1}, [2]int{i, j})

	_, _, ok = arrays.TwoSum([]int{1, 2}, 7)
	assert.False(t, ok)
}

func TestTopKFrequent(t *testing.T) {
	assert.Equal(t, []int{1, 2}, arrays.TopKFrequent([]int{1, 1, 1, 2, 2, 3}, 2))
	assert.Equal(t, []int{4, 1, 2}, arrays.TopKFrequent([]int{4, 4, 4, 2, 1, 1, 2, 3}, 3))
	assert.Equal(t, []int{1, 2}, arrays.TopKFrequent([]int{2, 1}, 5))
	assert.Empty(t, arrays.TopKFrequent([]int{1}, 0))
}

func TestGroupAnagrams(t *testing.T) {
	got := arrays.GroupAnagrams([]string{"eat", "tea", "tan", "ate", "nat", "bat"})
	assert.Equal(t, [][]string{{"eat", "tea", "ate"}, {"tan", "nat"}, {"bat"}}, got)
	assert.Empty(t, arrays.GroupAnagrams(nil))
}

func TestSubarraySum(t *testing.T) {
	assert.Equal(t, 2, arrays.SubarraySum([]int{1, 1, 1}, 2))
	assert.Equal(t, 2, arrays.SubarraySum([]int{1, 2, 3}, 3))
	assert.Equal(t, 3, arrays.SubarraySum([]int{1, -1, 0}, 0))
}

func TestMajorityElement(t *testing.T) {
	v, ok, err := arrays.MajorityElement([]int{2, 2, 1, 1, 1, 2, 2})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok, err = arrays.MajorityElement([]int{1, 2, 3})
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = arrays.MajorityElement(nil)
	assert.ErrorIs(t, err, arrays.ErrEmptyInput)
}

func TestProductExceptSelf(t *testing.T) {
	assert.Equal(t, []int{24, 12, 8, 6}, arrays.ProductExceptSelf([]int{1, 2, 3, 4}))
	assert.Equal(t, []int{0, 0, 9, 0, 0}, arrays.ProductExceptSelf([]int{-1, 1, 0, -3, 3}))
}

func TestSpiralOrder(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 6, 9, 8, 7, 4, 5},
		arrays.SpiralOrder([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}))
	assert.Equal(t, []int{1, 2, 3, 4, 8, 12, 11, 10, 9, 5, 6, 7},
		arrays.SpiralOrder([][]int{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}}))
	assert.Equal(t, []int{1, 2, 3}, arrays.SpiralOrder([][]int{{1}, {2}, {3}}))
	assert.Nil(t, arrays.SpiralOrder(nil))
}

func TestRotateSquare(t *testing.T) {
	m := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	require.NoError(t, arrays.RotateSquare(m))
	assert.Equal(t, [][]int{{7, 4, 1}, {8, 5, 2}, {9, 6, 3}}, m)

	assert.ErrorIs(t, arrays.RotateSquare([][]int{{1, 2}}), arrays.ErrNotSquare)
	assert.NoError(t, arrays.RotateSquare(nil))
}

func TestRotateRight(t *testing.T) {
	nums := []int{1, 2, 3, 4, 5, 6, 7}
	arrays.RotateRight(nums, 3)
	assert.Equal(t, []int{5, 6, 7, 1, 2, 3, 4}, nums)

	arrays.RotateRight(nums, -3)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, nums)

	arrays.RotateRight(nums, 14)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, nums)

	var empty []int
	arrays.RotateRight(empty, 2)
	assert.Empty(t, empty)
}

func TestPrefixSums(t *testing.T) {
	p := arrays.NewPrefixSums([]int{-2, 0, 3, -5, 2, -1})
	cases := []struct{ lo, hi, want int }{{0, 2, 1}, {2, 5, -1}, {0, 5, -3}, {3, 3, -5}}
	for _, tc := range cases {
		got, err := p.Sum(tc.lo, tc.hi)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
	_, err := p.Sum(4, 6)
	assert.ErrorIs(t, err, arrays.ErrRange)
	_, err = p.Sum(3, 2)
	assert.ErrorIs(t, err, arrays.ErrRange)
}

func TestSparseTable(t *testing.T) {
	nums := []int{5, 2, 4, 7, 1, 3, 6, 8, 0}
	st := arrays.NewSparseTable(nums)
	for lo := range nums {
		for hi := lo; hi < len(nums); hi++ {
			want := nums[lo]
			for _, v := range nums[lo : hi+1] {
				want = min(want, v)
			}
			got, err := st.Min(lo, hi)
			require.NoError(t, err)
			assert.Equal(t, want, got, "[%d,%d]", lo, hi)
		}
	}
	_, err := st.Min(0, 9)
	assert.ErrorIs(t, err, arrays.ErrRange)

	_, err = arrays.NewSparseTable([]string{}).Min(0, 0)
	assert.ErrorIs(t, err, arrays.ErrRange)
}
