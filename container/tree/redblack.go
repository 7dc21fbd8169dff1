package tree

import "github.com/companion-uyan/data-structure-algorithm/errors"

type color uint

const (
	red   color = 0
	black color = 1
)

// isRed treats an absent node as black
func isRed[K any](n *Node[K]) bool {
	return n != nil && color(n.metadata&0x00000001) == red
}

func isBlack[K any](n *Node[K]) bool {
	return !isRed(n)
}

func setRed[K any](n *Node[K]) {
	n.metadata = n.metadata & 0xfffffffe
}

func setBlack[K any](n *Node[K]) {
	n.metadata = n.metadata | 0x00000001
}

func swapColors[K any](a, b *Node[K]) {
	ca := a.metadata & 0x00000001
	a.metadata = (a.metadata & 0xfffffffe) | (b.metadata & 0x00000001)
	b.metadata = (b.metadata & 0xfffffffe) | ca
}

// insertCase is the local shape of a subtree checked on the way
// back up from an insertion, in order of priority
type insertCase int

const (
	insertNone insertCase = iota
	insertSplit
	insertLeftLeft
	insertLeftRight
	insertRightRight
	insertRightLeft
)

func classifyInsert[K any](n *Node[K]) insertCase {
	switch {
	case isRed(n.left) && isRed(n.right):
		return insertSplit
	case isRed(n.left) && isRed(n.left.left):
		return insertLeftLeft
	case isRed(n.left) && isRed(n.left.right):
		return insertLeftRight
	case isRed(n.right) && isRed(n.right.right):
		return insertRightRight
	case isRed(n.right) && isRed(n.right.left):
		return insertRightLeft
	default:
		return insertNone
	}
}

// deleteCase is the shape around a node that is one black
// node short on its paths
type deleteCase int

const (
	deleteRedSibling deleteCase = iota
	deleteFarRed
	deleteNearRed
	deleteBlackSibling
)

// family returns the sibling of n and the sibling's children
// closer to and farther from n
func family[K any](n *Node[K]) (sibling, near, far *Node[K]) {
	if n == n.parent.left {
		sibling = n.parent.right
		if sibling == nil {
			panic("unreachable statement")
		}
		return sibling, sibling.left, sibling.right
	}

	sibling = n.parent.left
	if sibling == nil {
		panic("unreachable statement")
	}
	return sibling, sibling.right, sibling.left
}

func classifyDelete[K any](n *Node[K]) deleteCase {
	sibling, near, far := family(n)

	switch {
	case isRed(sibling):
		return deleteRedSibling
	case isRed(far):
		return deleteFarRed
	case isRed(near):
		return deleteNearRed
	default:
		return deleteBlackSibling
	}
}

// redBlack keeps the tree as the binary form of a 2-3-4 tree
// by means of rotations and recoloring
type redBlack[K any] struct{}

func (redBlack[K]) Variant() Variant {
	return RedBlack
}

// rotateLeft rotates n and swaps the colors of the rotated pair
// so that the node moving up takes the color of n
func (redBlack[K]) rotateLeft(t *Tree[K], n *Node[K]) *Node[K] {
	target := rotateLeft(t, n)
	swapColors(target, n)
	return target
}

func (redBlack[K]) rotateRight(t *Tree[K], n *Node[K]) *Node[K] {
	target := rotateRight(t, n)
	swapColors(target, n)
	return target
}

// rotateTowards rotates the parent of n so that the sibling
// of n moves up
func (rb redBlack[K]) rotateTowards(t *Tree[K], n *Node[K]) {
	if n == n.parent.left {
		rb.rotateLeft(t, n.parent)
	} else {
		rb.rotateRight(t, n.parent)
	}
}

// rotateAway rotates the sibling of n so that its child
// closer to n moves up
func (rb redBlack[K]) rotateAway(t *Tree[K], n *Node[K], sibling *Node[K]) {
	if n == n.parent.left {
		rb.rotateRight(t, sibling)
	} else {
		rb.rotateLeft(t, sibling)
	}
}

// Insert adds a red leaf, repairs every ancestor on the way
// back up and finally paints the root black
func (rb redBlack[K]) Insert(t *Tree[K], key K) {
	t.root = rb.insert(t, t.root, nil, key)
	setBlack(t.root)
}

func (rb redBlack[K]) insert(t *Tree[K], n, parent *Node[K], key K) *Node[K] {
	if n == nil {
		return newNode(key, parent, uint(red))
	}

	if t.cmp.Less(key, n.key) < 0 {
		n.left = rb.insert(t, n.left, n, key)
	} else {
		n.right = rb.insert(t, n.right, n, key)
	}

	return rb.fixInsert(t, n)
}

func (rb redBlack[K]) fixInsert(t *Tree[K], n *Node[K]) *Node[K] {
	switch classifyInsert(n) {
	case insertNone:
		return n
	case insertSplit:
		setRed(n)
		setBlack(n.left)
		setBlack(n.right)
		return n
	case insertLeftLeft:
		return rb.rotateRight(t, n)
	case insertLeftRight:
		rb.rotateLeft(t, n.left)
		return rb.rotateRight(t, n)
	case insertRightRight:
		return rb.rotateLeft(t, n)
	case insertRightLeft:
		rb.rotateRight(t, n.right)
		return rb.rotateLeft(t, n)
	default:
		panic("unreachable statement")
	}
}

// Delete removes one node holding key. When the node has children
// its key is replaced by the one of its successor (or, without a
// right subtree, its predecessor) and that node, which has at most
// one child, is the one taken out of the tree
func (rb redBlack[K]) Delete(t *Tree[K], key K) bool {
	n := t.root.find(t.cmp, key)
	if n == nil {
		return false
	}

	target := n
	switch {
	case n.right != nil:
		target = n.right.Min()
	case n.left != nil:
		target = n.left.Max()
	}

	n.key = target.key
	rb.remove(t, target)
	return true
}

// remove detaches n, which has at most one child, from the tree
func (rb redBlack[K]) remove(t *Tree[K], n *Node[K]) {
	child := n.left
	if child == nil {
		child = n.right
	}

	if child != nil {
		// the only child of a node is a red leaf, painting it
		// black restores the black height lost with n
		replaceChild(t, n.parent, n, child)
		child.parent = n.parent
		setBlack(child)
	} else {
		if isBlack(n) {
			rb.fixDelete(t, n)
		}
		replaceChild(t, n.parent, n, nil)
	}

	n.left, n.right, n.parent = nil, nil, nil
}

// fixDelete restores the black height of the paths through n,
// which are one black node short, before n is detached
func (rb redBlack[K]) fixDelete(t *Tree[K], n *Node[K]) {
	for n != t.root && isBlack(n) {
		sibling, _, far := family(n)

		switch classifyDelete(n) {
		case deleteRedSibling:
			rb.rotateTowards(t, n)
		case deleteFarRed:
			setBlack(far)
			rb.rotateTowards(t, n)
			n = t.root
		case deleteNearRed:
			rb.rotateAway(t, n, sibling)
		case deleteBlackSibling:
			setRed(sibling)
			n = n.parent
		default:
			panic("unreachable statement")
		}
	}

	// either the root or a red node absorbs the missing black
	setBlack(n)
}

// check verifies that the root is black, that no red node has a
// red child and that all paths have the same black height
func (rb redBlack[K]) check(n *Node[K]) error {
	if isRed(n) {
		return errors.New(errors.ErrCodeInvariantViolation, "root %v is red", n.key)
	}

	_, err := rb.blackHeight(n)
	return err
}

func (rb redBlack[K]) blackHeight(n *Node[K]) (int, error) {
	if n == nil {
		return 1, nil
	}

	if isRed(n) && (isRed(n.left) || isRed(n.right)) {
		return 0, errors.New(errors.ErrCodeInvariantViolation,
			"red node %v has a red child", n.key)
	}

	lh, err := rb.blackHeight(n.left)
	if err != nil {
		return 0, err
	}

	rh, err := rb.blackHeight(n.right)
	if err != nil {
		return 0, err
	}

	if lh != rh {
		return 0, errors.New(errors.ErrCodeInvariantViolation,
			"node %v has black heights %d and %d", n.key, lh, rh)
	}

	if isBlack(n) {
		lh++
	}

	return lh, nil
}

func (redBlack[K]) label(n *Node[K]) string {
	if isRed(n) {
		return "red"
	}
	return "black"
}
