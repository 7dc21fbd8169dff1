package tree

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	branchRoot branch = iota
	branchLeft
	branchRight
)

// Print writes an ASCII graphic representation of the tree, rotated
// a quarter turn so that the right subtree is above its root. It
// returns the height of the tree
func (t *Tree[K]) Print(w io.Writer) int {
	return t.print(w, t.root, "", branchRoot)
}

func (t *Tree[K]) print(w io.Writer, n *Node[K], prefix string, br branch) int {
	if n == nil {
		return 0
	}

	rd := 0
	if n.right != nil {
		pad := "       "
		if br == branchLeft {
			pad = "|      "
		}
		rd = t.print(w, n.right, prefix+pad, branchRight)
	}

	switch br {
	case branchRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case branchLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case branchRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v (%s)\n", n.key, t.mod.label(n))

	ld := 0
	if n.left != nil {
		pad := "       "
		if br == branchRight {
			pad = "|      "
		}
		ld = t.print(w, n.left, prefix+pad, branchLeft)
	}

	return 1 + max(ld, rd)
}
