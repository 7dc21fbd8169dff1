package tree

// Node of a tree. A node exclusively owns its children; the parent
// link is a back reference kept consistent on every relink
type Node[K any] struct {
	key K

	// metadata keeps the height of the node in an AVL tree and
	// the color bit in a red black tree
	metadata uint
	left     *Node[K]
	right    *Node[K]
	parent   *Node[K]
}

func newNode[K any](key K, parent *Node[K], metadata uint) *Node[K] {
	return &Node[K]{key: key, parent: parent, metadata: metadata}
}

// Key returns the key stored in the node
func (n *Node[K]) Key() K {
	return n.key
}

// Left returns the node's left child
func (n *Node[K]) Left() *Node[K] {
	return n.left
}

// Right returns the node's right child
func (n *Node[K]) Right() *Node[K] {
	return n.right
}

// Parent returns the node's parent. It returns nil
// for the root of the tree
func (n *Node[K]) Parent() *Node[K] {
	return n.parent
}

// Min returns the node in the subtree of the
// lowest order. It returns nil if the subtree
// is empty
func (n *Node[K]) Min() *Node[K] {
	if n == nil {
		return nil
	}

	curr := n
	for curr.left != nil {
		curr = curr.left
	}

	return curr
}

// Max returns the node in the subtree of the
// highest order. It returns nil if the subtree
// is empty
func (n *Node[K]) Max() *Node[K] {
	if n == nil {
		return nil
	}

	curr := n
	for curr.right != nil {
		curr = curr.right
	}

	return curr
}

// find returns the first node on the search path that holds key
func (n *Node[K]) find(cmp Lesser[K], key K) *Node[K] {
	for curr := n; curr != nil; {
		switch c := cmp.Less(key, curr.key); {
		case c < 0:
			curr = curr.left
		case c > 0:
			curr = curr.right
		default:
			return curr
		}
	}

	return nil
}

// higher returns the node in the subtree that has the
// smallest order which is higher than or equal to key
func (n *Node[K]) higher(cmp Lesser[K], key K) *Node[K] {
	var higher *Node[K]

	for curr := n; curr != nil; {
		if cmp.Less(key, curr.key) <= 0 {
			higher = curr
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	return higher
}

// lower returns the node in the subtree that has the
// highest order which is lower than or equal to key
func (n *Node[K]) lower(cmp Lesser[K], key K) *Node[K] {
	var lower *Node[K]

	for curr := n; curr != nil; {
		if cmp.Less(key, curr.key) < 0 {
			curr = curr.left
		} else {
			lower = curr
			curr = curr.right
		}
	}

	return lower
}

// depth returns the number of nodes on the longest path
// from n down to a leaf
func depth[K any](n *Node[K]) int {
	if n == nil {
		return 0
	}

	return 1 + max(depth(n.left), depth(n.right))
}
