package interval

import (
	"cmp"
	"fmt"

	"github.com/companion-uyan/data-structure-algorithm/container/tree"
)

// byMin orders intervals by their lower bound only. Two
// intervals in an IntSet never share a lower bound
var byMin = tree.LesserFunc[Int](func(a, b Int) int {
	return cmp.Compare(a.min, b.min)
})

// Int represents the closed interval of integers [a, b].
// An interval is immutable
type Int struct {
	min int
	max int
}

// NewInt returns the interval [min, max]. It panics if
// min is greater than max
func NewInt(min, max int) Int {
	if min > max {
		panic("min cannot be greater than max")
	}

	return Int{min: min, max: max}
}

// Min returns the a of the interval [a, b]
func (i Int) Min() int {
	return i.min
}

// Max returns the b of the interval [a, b]
func (i Int) Max() int {
	return i.max
}

// Len returns the number of integers in the interval
func (i Int) Len() int {
	return i.max - i.min + 1
}

// Contains returns true if j lies completely inside i
func (i Int) Contains(j Int) bool {
	return i.min <= j.min && j.max <= i.max
}

// Disjoints returns true if i and j have no integer in common
func (i Int) Disjoints(j Int) bool {
	return i.max < j.min || j.max < i.min
}

// Intersection returns the integers common to i and j. It
// panics if they are disjoint
func (i Int) Intersection(j Int) Int {
	if i.Disjoints(j) {
		panic("intersection between two disjoint intervals")
	}

	return Int{min: max(i.min, j.min), max: min(i.max, j.max)}
}

// CanMerge returns true if the union of i and j is an
// interval, that is, if they overlap or one starts right
// after the other ends. [a, b] and [b+1, c] merge into [a, c]
func (i Int) CanMerge(j Int) bool {
	return !i.Disjoints(j) || i.adjacent(j) || j.adjacent(i)
}

// adjacent returns true if j starts right after i ends. The
// subtraction cannot wrap because i ends before j starts
func (i Int) adjacent(j Int) bool {
	return i.max < j.min && j.min-i.max == 1
}

// Merge returns the union of i and j. It panics if the
// union is not an interval
func (i Int) Merge(j Int) Int {
	if !i.CanMerge(j) {
		panic("cannot merge intervals")
	}

	return Int{min: min(i.min, j.min), max: max(i.max, j.max)}
}

func (i Int) String() string {
	if i.min == i.max {
		return fmt.Sprintf("[%d]", i.min)
	}

	return fmt.Sprintf("[%d, %d]", i.min, i.max)
}

// IntSet is a set of integers kept as disjoint, non adjacent
// intervals. Adding 4 to {[1, 3], [5]} leaves the single
// interval [1, 5] instead of five separate numbers, which makes
// it a compact description of runs of keys
type IntSet struct {
	intervals *tree.Tree[Int]
}

// NewIntSet creates an empty set
func NewIntSet() *IntSet {
	return &IntSet{intervals: tree.NewRedBlackTree[Int](byMin)}
}

// Len returns the number of disjoint intervals
func (s *IntSet) Len() int {
	return s.intervals.Len()
}

// Contains returns true if a single interval of the set
// contains all of i
func (s *IntSet) Contains(i Int) bool {
	lower, ok := s.lower(i)
	return ok && lower.Contains(i)
}

// Insert adds the integers of i to the set, merging it with
// every interval it overlaps or touches
func (s *IntSet) Insert(i Int) {
	if lower, ok := s.lower(i); ok && i.CanMerge(lower) {
		s.remove(lower)
		i = i.Merge(lower)
	}

	for {
		higher, ok := s.higher(i)
		if !ok || !i.CanMerge(higher) {
			break
		}

		s.remove(higher)
		i = i.Merge(higher)
	}

	s.intervals.Insert(i)
}

// InsertValue adds the single integer v to the set
func (s *IntSet) InsertValue(v int) {
	s.Insert(NewInt(v, v))
}

// Intervals returns the intervals of the set in ascending order
func (s *IntSet) Intervals() []Int {
	return s.intervals.Traverse(tree.InOrder)
}

func (s *IntSet) remove(i Int) {
	if !s.intervals.Delete(i) {
		panic(fmt.Sprintf("interval %v is not in the set", i))
	}
}

func (s *IntSet) higher(i Int) (Int, bool) {
	node := s.intervals.Higher(i)
	if node == nil {
		return Int{}, false
	}

	return node.Key(), true
}

func (s *IntSet) lower(i Int) (Int, bool) {
	node := s.intervals.Lower(i)
	if node == nil {
		return Int{}, false
	}

	return node.Key(), true
}
