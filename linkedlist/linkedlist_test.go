package linkedlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsa/linkedlist"
)

func TestLinkedList_AppendPrepend(t *testing.T) {
	l := linkedlist.New[int]()
	assert.True(t, l.IsEmpty())
	l.Append(1)
	l.Append(2)
	l.Append(3)
	l.Prepend(0)
	assert.Equal(t, []int{0, 1, 2, 3}, l.ToSlice())
	assert.Equal(t, 4, l.Len())
}

func TestLinkedList_InsertBounds(t *testing.T) {
	l := linkedlist.FromSlice([]string{"a", "c"})
	require.NoError(t, l.Insert(1, "b"))
	require.NoError(t, l.Insert(3, "d")) // index == size appends
	require.NoError(t, l.Insert(0, "_"))
	assert.Equal(t, []string{"_", "a", "b", "c", "d"}, l.ToSlice())

	err := l.Insert(-1, "x")
	assert.ErrorIs(t, err, linkedlist.ErrIndexOutOfRange)
	err = l.Insert(6, "x")
	assert.ErrorIs(t, err, linkedlist.ErrIndexOutOfRange)
	assert.Equal(t, 5, l.Len(), "failed insert must not change size")

	// append after a tail insert still lands at the end
	l.Append("e")
	assert.Equal(t, "e", l.ToSlice()[5])
}

func TestLinkedList_RemoveAt(t *testing.T) {
	l := linkedlist.FromSlice([]int{10, 20, 30, 40})

	v, err := l.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	v, err = l.RemoveAt(2) // tail
	require.NoError(t, err)
	assert.Equal(t, 40, v)

	l.Append(50) // tail pointer must have moved back to 30
	assert.Equal(t, []int{20, 30, 50}, l.ToSlice())

	_, err = l.RemoveAt(3)
	assert.ErrorIs(t, err, linkedlist.ErrIndexOutOfRange)
	_, err = l.RemoveAt(-1)
	assert.ErrorIs(t, err, linkedlist.ErrIndexOutOfRange)

	for !l.IsEmpty() {
		_, err = l.RemoveAt(0)
		require.NoError(t, err)
	}
	_, err = l.RemoveAt(0)
	assert.ErrorIs(t, err, linkedlist.ErrIndexOutOfRange)
	l.Append(1)
	assert.Equal(t, []int{1}, l.ToSlice())
}

func TestLinkedList_FindGet(t *testing.T) {
	l := linkedlist.FromSlice([]int{5, 6, 7, 6})
	assert.Equal(t, 1, l.Find(6))
	assert.Equal(t, -1, l.Find(9))

	v, err := l.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	_, err = l.Get(4)
	assert.ErrorIs(t, err, linkedlist.ErrIndexOutOfRange)
}

func TestLinkedList_Reverse(t *testing.T) {
	l := linkedlist.FromSlice([]int{1, 2, 3, 4, 5})
	l.Reverse()
	assert.Equal(t, []int{5, 4, 3, 2, 1}, l.ToSlice())
	l.Append(0)
	assert.Equal(t, []int{5, 4, 3, 2, 1, 0}, l.ToSlice())

	empty := linkedlist.New[int]()
	empty.Reverse()
	assert.Empty(t, empty.ToSlice())
}

func TestMergeSorted(t *testing.T) {
	a := linkedlist.FromSlice([]int{1, 2, 4})
	b := linkedlist.FromSlice([]int{1, 3, 4})
	m := linkedlist.MergeSorted(a, b)
	assert.Equal(t, []int{1, 1, 2, 3, 4, 4}, m.ToSlice())
	assert.Equal(t, 6, m.Len())
	assert.True(t, a.IsEmpty())
	assert.True(t, b.IsEmpty())

	m.Append(9)
	assert.Equal(t, 9, m.ToSlice()[6])

	empty := linkedlist.MergeSorted(linkedlist.New[int](), linkedlist.New[int]())
	assert.Equal(t, 0, empty.Len())
}

func TestMergeSorted_SameList(t *testing.T) {
	a := linkedlist.FromSlice([]int{1, 3, 5})
	m := linkedlist.MergeSorted(a, a)
	assert.Equal(t, []int{1, 1, 3, 3, 5, 5}, m.ToSlice())
	assert.Equal(t, 6, m.Len())
	assert.False(t, linkedlist.HasCycle(m.Head()))
	assert.True(t, a.IsEmpty())

	m.Append(7)
	v, err := m.Get(6)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestHasCycle(t *testing.T) {
	l := linkedlist.FromSlice([]int{1, 2, 3, 4})
	assert.False(t, linkedlist.HasCycle(l.Head()))
	assert.False(t, linkedlist.HasCycle[int](nil))

	n3 := &linkedlist.Node[int]{Value: 3}
	n2 := &linkedlist.Node[int]{Value: 2, Next: n3}
	n1 := &linkedlist.Node[int]{Value: 1, Next: n2}
	n3.Next = n2
	assert.True(t, linkedlist.HasCycle(n1))

	self := &linkedlist.Node[int]{Value: 0}
	self.Next = self
	assert.True(t, linkedlist.HasCycle(self))
}
