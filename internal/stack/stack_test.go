package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyStack(t *testing.T) {
	s := New[int]()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Top())

	_, has := s.Pop()
	assert.False(t, has)
}

func TestPushPop(t *testing.T) {
	s := New(1, 2)
	s.Push(3).Push(4)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []int{1, 2, 3, 4}, s.Items())

	item, has := s.Pop()
	assert.True(t, has)
	assert.Equal(t, 4, item)
	assert.Equal(t, []int{1, 2, 3}, s.Items())
}

func TestTopIsMutable(t *testing.T) {
	s := New("a", "b")
	top := s.Top()
	assert.Equal(t, "b", *top)

	*top = "c"
	item, _ := s.Pop()
	assert.Equal(t, "c", item)
	assert.Equal(t, "a", *s.Top())
}

func TestClear(t *testing.T) {
	s := New(1, 2, 3)
	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, []int{}, s.Items())

	s.Push(7)
	assert.Equal(t, []int{7}, s.Items())
}
