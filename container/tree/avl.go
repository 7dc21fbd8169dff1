package tree

import (
	"fmt"

	"github.com/companion-uyan/data-structure-algorithm/errors"
)

// avlCase is the shape of the subtree rooted at a node
// as seen by the AVL balancer
type avlCase int

const (
	avlBalanced avlCase = iota
	avlLeftLeft
	avlLeftRight
	avlRightRight
	avlRightLeft
)

func height[K any](n *Node[K]) int {
	if n == nil {
		return 0
	}

	return int(n.metadata)
}

func updateHeight[K any](n *Node[K]) {
	n.metadata = uint(1 + max(height(n.left), height(n.right)))
}

// balanceFactor is the height of the left subtree minus
// the height of the right subtree
func balanceFactor[K any](n *Node[K]) int {
	return height(n.left) - height(n.right)
}

func classifyAVL[K any](n *Node[K]) avlCase {
	switch bf := balanceFactor(n); {
	case bf > 1:
		if balanceFactor(n.left) >= 0 {
			return avlLeftLeft
		}
		return avlLeftRight
	case bf < -1:
		if balanceFactor(n.right) <= 0 {
			return avlRightRight
		}
		return avlRightLeft
	default:
		return avlBalanced
	}
}

// avl keeps the height of the two subtrees of every node
// within one of each other by means of single and double
// rotations
type avl[K any] struct{}

func (avl[K]) Variant() Variant {
	return AVL
}

func (avl[K]) rotateLeft(t *Tree[K], n *Node[K]) *Node[K] {
	target := rotateLeft(t, n)
	updateHeight(n)
	updateHeight(target)
	return target
}

func (avl[K]) rotateRight(t *Tree[K], n *Node[K]) *Node[K] {
	target := rotateRight(t, n)
	updateHeight(n)
	updateHeight(target)
	return target
}

// balance recomputes the height of n and restores the balance
// of its subtree. It returns the root of the subtree
func (m avl[K]) balance(t *Tree[K], n *Node[K]) *Node[K] {
	updateHeight(n)

	switch classifyAVL(n) {
	case avlBalanced:
		return n
	case avlLeftLeft:
		return m.rotateRight(t, n)
	case avlLeftRight:
		m.rotateLeft(t, n.left)
		return m.rotateRight(t, n)
	case avlRightRight:
		return m.rotateLeft(t, n)
	case avlRightLeft:
		m.rotateRight(t, n.right)
		return m.rotateLeft(t, n)
	default:
		panic("unreachable statement")
	}
}

// Insert descends to an empty position, attaching equal keys
// on the right, and balances every ancestor on the way back
func (m avl[K]) Insert(t *Tree[K], key K) {
	t.root = m.insert(t, t.root, nil, key)
}

func (m avl[K]) insert(t *Tree[K], n, parent *Node[K], key K) *Node[K] {
	if n == nil {
		return newNode(key, parent, 1)
	}

	if t.cmp.Less(key, n.key) < 0 {
		n.left = m.insert(t, n.left, n, key)
	} else {
		n.right = m.insert(t, n.right, n, key)
	}

	return m.balance(t, n)
}

// Delete removes one node holding key. A node with two children
// takes the key of its successor, which is then removed from the
// right subtree. Every ancestor of the removed node is balanced
func (m avl[K]) Delete(t *Tree[K], key K) bool {
	var removed bool
	t.root, removed = m.delete(t, t.root, key)
	return removed
}

func (m avl[K]) delete(t *Tree[K], n *Node[K], key K) (*Node[K], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch c := t.cmp.Less(key, n.key); {
	case c < 0:
		n.left, removed = m.delete(t, n.left, key)
	case c > 0:
		n.right, removed = m.delete(t, n.right, key)
	case n.left == nil || n.right == nil:
		child := n.left
		if child == nil {
			child = n.right
		}
		if child != nil {
			child.parent = n.parent
		}

		n.left, n.right, n.parent = nil, nil, nil
		return child, true
	default:
		successor := n.right.Min()
		n.key = successor.key
		n.right, removed = m.delete(t, n.right, successor.key)
	}

	if !removed {
		return n, false
	}

	return m.balance(t, n), true
}

// check verifies the stored heights and the balance factor
// of every node in the subtree
func (m avl[K]) check(n *Node[K]) error {
	_, err := m.checkHeight(n)
	return err
}

func (m avl[K]) checkHeight(n *Node[K]) (int, error) {
	if n == nil {
		return 0, nil
	}

	lh, err := m.checkHeight(n.left)
	if err != nil {
		return 0, err
	}

	rh, err := m.checkHeight(n.right)
	if err != nil {
		return 0, err
	}

	h := 1 + max(lh, rh)
	if h != height(n) {
		return 0, errors.New(errors.ErrCodeInvariantViolation,
			"node %v stores height %d but has height %d", n.key, height(n), h)
	}

	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, errors.New(errors.ErrCodeInvariantViolation,
			"node %v has balance factor %d", n.key, bf)
	}

	return h, nil
}

func (avl[K]) label(n *Node[K]) string {
	return fmt.Sprintf("h=%d", height(n))
}
