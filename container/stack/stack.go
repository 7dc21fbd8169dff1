// Package stack provides a LIFO stack backed by a growable slice.
package stack

// Stack is a last in, first out collection. The zero value
// is an empty stack ready to use
type Stack[T any] struct {
	data []T
}

// New creates an empty stack with room for capacity
// elements before it needs to grow
func New[T any](capacity int) *Stack[T] {
	return &Stack[T]{data: make([]T, 0, capacity)}
}

// Push adds v on top of the stack
func (s *Stack[T]) Push(v T) {
	s.data = append(s.data, v)
}

// Pop removes and returns the element on top of the stack.
// It panics if the stack is empty
func (s *Stack[T]) Pop() T {
	if len(s.data) == 0 {
		panic("stack: pop from empty stack")
	}

	last := len(s.data) - 1
	v := s.data[last]

	var zero T
	s.data[last] = zero
	s.data = s.data[:last]
	return v
}

// Peek returns the element on top of the stack without
// removing it. It panics if the stack is empty
func (s *Stack[T]) Peek() T {
	if len(s.data) == 0 {
		panic("stack: peek on empty stack")
	}

	return s.data[len(s.data)-1]
}

// Len returns the number of elements in the stack
func (s *Stack[T]) Len() int {
	return len(s.data)
}

// IsEmpty returns true if the stack has no elements
func (s *Stack[T]) IsEmpty() bool {
	return len(s.data) == 0
}
