package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackZeroValue(t *testing.T) {
	var s Stack[int]
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())

	s.Push(1)
	assert.False(t, s.IsEmpty())
	assert.Equal(t, 1, s.Peek())
}

func TestStackLIFO(t *testing.T) {
	s := New[string](2)
	s.Push("a")
	s.Push("b")
	s.Push("c")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "c", s.Pop())
	assert.Equal(t, "b", s.Peek())
	assert.Equal(t, "b", s.Pop())
	assert.Equal(t, "a", s.Pop())
	assert.True(t, s.IsEmpty())
}

func TestStackNilElements(t *testing.T) {
	s := New[*int](0)
	s.Push(nil)
	assert.Equal(t, 1, s.Len())
	assert.Nil(t, s.Peek())
	assert.Nil(t, s.Pop())
	assert.True(t, s.IsEmpty())
}

func TestStackEmptyPanics(t *testing.T) {
	s := New[int](0)
	assert.Panics(t, func() { s.Pop() })
	assert.Panics(t, func() { s.Peek() })
}
