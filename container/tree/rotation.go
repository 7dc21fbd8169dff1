package tree

// replaceChild makes v take the place of u as a child of parent,
// or as the root of the tree if parent is nil
func replaceChild[K any](t *Tree[K], parent, u, v *Node[K]) {
	switch {
	case parent == nil:
		t.root = v
	case u == parent.left:
		parent.left = v
	case u == parent.right:
		parent.right = v
	default:
		panic("unreachable statement")
	}
}

// rotateLeft promotes the right child of n into the position of n
// and returns it. The metadata of the nodes is left untouched
func rotateLeft[K any](t *Tree[K], n *Node[K]) *Node[K] {
	target := n.right
	if target == nil {
		panic("unreachable statement")
	}

	n.right = target.left
	if target.left != nil {
		target.left.parent = n
	}

	target.parent = n.parent
	replaceChild(t, n.parent, n, target)

	target.left = n
	n.parent = target
	return target
}

// rotateRight promotes the left child of n into the position of n
// and returns it. The metadata of the nodes is left untouched
func rotateRight[K any](t *Tree[K], n *Node[K]) *Node[K] {
	target := n.left
	if target == nil {
		panic("unreachable statement")
	}

	n.left = target.right
	if target.right != nil {
		target.right.parent = n
	}

	target.parent = n.parent
	replaceChild(t, n.parent, n, target)

	target.right = n
	n.parent = target
	return target
}
