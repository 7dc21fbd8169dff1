// Package tree implements ordered binary search trees kept balanced
// either by the AVL height rule or by the red black coloring rule.
//
// Note: a tree is not safe for concurrent use. Either access it from
// a single goroutine or serialize access with a mutex per tree.
package tree

import (
	"cmp"
	"fmt"
	"strings"
)

// Variant is the balancing strategy of a tree
type Variant int

const (
	// AVL keeps the heights of the two subtrees of every node
	// within one of each other
	AVL Variant = iota

	// RedBlack colors every node red or black so that no red node
	// has a red child and all paths have the same number of black nodes
	RedBlack
)

func (v Variant) String() string {
	switch v {
	case AVL:
		return "avl"
	case RedBlack:
		return "redblack"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant returns the variant with the given name
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "avl":
		return AVL, nil
	case "redblack", "red-black", "rb":
		return RedBlack, nil
	default:
		return 0, fmt.Errorf("unknown tree variant %q", s)
	}
}

// Tree represents a balanced binary search tree
type Tree[K any] struct {
	root *Node[K]
	cmp  Lesser[K]
	mod  modifier[K]
	len  int
}

// NewAVLTree creates a new instance of a tree whose branches
// are balanced using the AVL algorithm
func NewAVLTree[K any](cmp Lesser[K]) *Tree[K] {
	return &Tree[K]{cmp: cmp, mod: avl[K]{}}
}

// NewRedBlackTree creates a new instance of a tree whose branches
// are balanced using the red black node algorithm
func NewRedBlackTree[K any](cmp Lesser[K]) *Tree[K] {
	return &Tree[K]{cmp: cmp, mod: redBlack[K]{}}
}

// New creates a tree of the given variant for keys that support
// the ordering operators
func New[K cmp.Ordered](v Variant) *Tree[K] {
	switch v {
	case AVL:
		return NewAVLTree[K](OrderedLesser[K]{})
	case RedBlack:
		return NewRedBlackTree[K](OrderedLesser[K]{})
	default:
		panic(fmt.Sprintf("unknown tree variant %d", int(v)))
	}
}

// Variant returns the balancing strategy of the tree
func (t *Tree[K]) Variant() Variant {
	return t.mod.Variant()
}

// Len returns the number of nodes in the tree
func (t *Tree[K]) Len() int {
	return t.len
}

// Empty returns true if the tree has no nodes
func (t *Tree[K]) Empty() bool {
	return t.root == nil
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// Height returns the number of nodes on the longest path
// from the root to a leaf. An empty tree has height 0
func (t *Tree[K]) Height() int {
	return depth(t.root)
}

// Min returns the lowest key in the tree. The second
// value is false if the tree is empty
func (t *Tree[K]) Min() (K, bool) {
	var zero K
	n := t.root.Min()
	if n == nil {
		return zero, false
	}

	return n.key, true
}

// Max returns the highest key in the tree. The second
// value is false if the tree is empty
func (t *Tree[K]) Max() (K, bool) {
	var zero K
	n := t.root.Max()
	if n == nil {
		return zero, false
	}

	return n.key, true
}

// Higher returns the node in the tree with the smallest
// key which is higher than or equal to key
func (t *Tree[K]) Higher(key K) *Node[K] {
	return t.root.higher(t.cmp, key)
}

// Lower returns the node in the tree with the highest
// key which is lower than or equal to key
func (t *Tree[K]) Lower(key K) *Node[K] {
	return t.root.lower(t.cmp, key)
}

// Contains returns true if the tree contains at
// least one node with key
func (t *Tree[K]) Contains(key K) bool {
	return t.root.find(t.cmp, key) != nil
}

// Find returns the first node on the search path
// that holds key
func (t *Tree[K]) Find(key K) *Node[K] {
	return t.root.find(t.cmp, key)
}

// Insert a key into the tree. Equal keys are kept, so inserting
// the same key twice stores it twice
func (t *Tree[K]) Insert(key K) {
	t.mod.Insert(t, key)
	t.len++
}

// Delete one node holding key. It returns false, leaving the
// tree untouched, if no node holds key
func (t *Tree[K]) Delete(key K) bool {
	if !t.mod.Delete(t, key) {
		return false
	}

	t.len--
	return true
}
