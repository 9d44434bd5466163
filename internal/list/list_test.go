package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList_EmptyList(t *testing.T) {
	l := New[int]()
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())

	v, ok := l.PopFront()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestList_PushBackAndPopFront_FIFOOrder(t *testing.T) {
	l := New[string]()
	l.PushBack("a")
	l.PushBack("b")
	l.PushBack("c")
	assert.Equal(t, 3, l.Len())

	for _, want := range []string{"a", "b", "c"} {
		v, ok := l.PopFront()
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}
	assert.Equal(t, 0, l.Len())
}

func TestList_PushFront(t *testing.T) {
	l := New[int]()
	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)

	var got []int
	for e := l.Front(); e != nil; e = e.Next() {
		got = append(got, e.Value)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestList_Remove(t *testing.T) {
	l := New[int]()
	e1 := l.PushBack(1)
	e2 := l.PushBack(2)
	e3 := l.PushBack(3)

	l.Remove(e2)
	assert.Equal(t, 2, l.Len())

	var got []int
	for e := l.Front(); e != nil; e = e.Next() {
		got = append(got, e.Value)
	}
	assert.Equal(t, []int{1, 3}, got)

	// removing an already-removed element is a no-op
	l.Remove(e2)
	assert.Equal(t, 2, l.Len())

	assert.Equal(t, e1, l.Front())
	assert.Equal(t, e3, l.Back())
}

func TestList_FrontBackNavigation(t *testing.T) {
	l := New[int]()
	e1 := l.PushBack(1)
	e2 := l.PushBack(2)

	assert.Nil(t, e1.Prev())
	assert.Equal(t, e2, e1.Next())
	assert.Equal(t, e1, e2.Prev())
	assert.Nil(t, e2.Next())
}
