package tree

import (
	"fmt"
	"strings"
)

// Order in which a traversal visits the nodes of a tree
type Order int

const (
	// PreOrder visits the root, then the left and the right subtrees
	PreOrder Order = iota

	// InOrder visits the left subtree, then the root and the right subtree
	InOrder

	// PostOrder visits the left and the right subtrees, then the root
	PostOrder

	// LevelOrder visits the nodes level by level, from left to right
	LevelOrder
)

// Orders lists all the traversal orders
var Orders = []Order{PreOrder, InOrder, PostOrder, LevelOrder}

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	case LevelOrder:
		return "levelorder"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder returns the order with the given name
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "preorder", "pre":
		return PreOrder, nil
	case "inorder", "in":
		return InOrder, nil
	case "postorder", "post":
		return PostOrder, nil
	case "levelorder", "level", "bfs":
		return LevelOrder, nil
	default:
		return 0, fmt.Errorf("unknown traversal order %q", s)
	}
}
