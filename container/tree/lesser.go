package tree

import "cmp"

// Lesser compares two keys
type Lesser[K any] interface {
	// Less returns
	//  -1 if a < b
	//   0 if a == b
	//   1 if a > b
	Less(a, b K) int
}

// LesserFunc allows a function to act as a Lesser
type LesserFunc[K any] func(a, b K) int

// Less implementation of Lesser for LesserFunc
func (f LesserFunc[K]) Less(a, b K) int {
	return f(a, b)
}

// OrderedLesser implementation of the Lesser interface for
// any type that supports the ordering operators
type OrderedLesser[K cmp.Ordered] struct{}

// Less returns
//  -1 if a < b
//   0 if a == b
//   1 if a > b
func (OrderedLesser[K]) Less(a, b K) int {
	return cmp.Compare(a, b)
}

// IntLesser implementation of the Lesser interface for
// integers
type IntLesser = OrderedLesser[int]
