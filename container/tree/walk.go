package tree

import (
	"fmt"

	"github.com/companion-uyan/data-structure-algorithm/container/stack"
	"github.com/eapache/queue"
)

func preOrder[K any](n *Node[K], out []K) []K {
	if n == nil {
		return out
	}

	out = append(out, n.key)
	out = preOrder(n.left, out)
	return preOrder(n.right, out)
}

func inOrder[K any](n *Node[K], out []K) []K {
	if n == nil {
		return out
	}

	out = inOrder(n.left, out)
	out = append(out, n.key)
	return inOrder(n.right, out)
}

func postOrder[K any](n *Node[K], out []K) []K {
	if n == nil {
		return out
	}

	out = postOrder(n.left, out)
	out = postOrder(n.right, out)
	return append(out, n.key)
}

// atLevel appends the keys of the nodes found level levels
// below n, from left to right
func atLevel[K any](n *Node[K], level int, out []K) []K {
	if n == nil {
		return out
	}

	if level == 0 {
		return append(out, n.key)
	}

	out = atLevel(n.left, level-1, out)
	return atLevel(n.right, level-1, out)
}

func levelOrder[K any](n *Node[K], out []K) []K {
	for d, h := 0, depth(n); d < h; d++ {
		out = atLevel(n, d, out)
	}

	return out
}

// PreOrderWalk visits the subtree root first, then left and right,
// using an explicit stack. A nil pushed on the stack marks that the
// left spine is exhausted
func (n *Node[K]) PreOrderWalk(fn func(*Node[K])) {
	s := stack.New[*Node[K]](16)
	s.Push(n)

	for !s.IsEmpty() {
		for s.Peek() != nil {
			curr := s.Peek()
			fn(curr)
			s.Push(curr.left)
		}

		s.Pop()
		if !s.IsEmpty() {
			s.Push(s.Pop().right)
		}
	}
}

// InOrderWalk visits the subtree in key order using an
// explicit stack
func (n *Node[K]) InOrderWalk(fn func(*Node[K])) {
	s := stack.New[*Node[K]](16)
	s.Push(n)

	for !s.IsEmpty() {
		for s.Peek() != nil {
			s.Push(s.Peek().left)
		}

		s.Pop()
		if !s.IsEmpty() {
			curr := s.Pop()
			fn(curr)
			s.Push(curr.right)
		}
	}
}

// PostOrderWalk visits both subtrees before their root using an
// explicit stack. The last visited node tells whether the right
// subtree of the node on top of the stack is already done
func (n *Node[K]) PostOrderWalk(fn func(*Node[K])) {
	var last *Node[K]
	s := stack.New[*Node[K]](16)
	s.Push(n)

	for !s.IsEmpty() {
		for s.Peek() != nil {
			s.Push(s.Peek().left)
		}

		s.Pop()
		if s.IsEmpty() {
			continue
		}

		curr := s.Peek()
		if curr.right == nil || curr.right == last {
			last = s.Pop()
			fn(last)
			s.Push(nil)
		} else {
			s.Push(curr.right)
		}
	}
}

// postOrderWalkTwoStacks produces the post order by reversing a
// root-right-left walk through a second stack
func (n *Node[K]) postOrderWalkTwoStacks(fn func(*Node[K])) {
	walk := stack.New[*Node[K]](16)
	out := stack.New[*Node[K]](16)
	walk.Push(n)

	for !walk.IsEmpty() {
		curr := walk.Pop()
		if curr == nil {
			continue
		}

		out.Push(curr)
		walk.Push(curr.left)
		walk.Push(curr.right)
	}

	for !out.IsEmpty() {
		fn(out.Pop())
	}
}

// LevelOrderWalk visits the subtree breadth first using
// a FIFO queue
func (n *Node[K]) LevelOrderWalk(fn func(*Node[K])) {
	if n == nil {
		return
	}

	q := queue.New()
	q.Add(n)

	for q.Length() > 0 {
		curr := q.Remove().(*Node[K])
		fn(curr)

		if curr.left != nil {
			q.Add(curr.left)
		}
		if curr.right != nil {
			q.Add(curr.right)
		}
	}
}

func collect[K any](walk func(func(*Node[K]))) []K {
	var out []K
	walk(func(n *Node[K]) {
		out = append(out, n.key)
	})
	return out
}

// PreOrderWalk implements a pre order walk on the tree
func (t *Tree[K]) PreOrderWalk(fn func(*Node[K])) {
	t.root.PreOrderWalk(fn)
}

// InOrderWalk implements an in order walk on the tree
func (t *Tree[K]) InOrderWalk(fn func(*Node[K])) {
	t.root.InOrderWalk(fn)
}

// PostOrderWalk implements a post order walk on the tree
func (t *Tree[K]) PostOrderWalk(fn func(*Node[K])) {
	t.root.PostOrderWalk(fn)
}

// LevelOrderWalk implements a breadth first walk on the tree
func (t *Tree[K]) LevelOrderWalk(fn func(*Node[K])) {
	t.root.LevelOrderWalk(fn)
}

// Traverse returns the keys of the tree in the given order,
// collected by the recursive form of the traversal. An empty
// tree returns an empty slice
func (t *Tree[K]) Traverse(order Order) []K {
	switch order {
	case PreOrder:
		return preOrder(t.root, nil)
	case InOrder:
		return inOrder(t.root, nil)
	case PostOrder:
		return postOrder(t.root, nil)
	case LevelOrder:
		return levelOrder(t.root, nil)
	default:
		panic(fmt.Sprintf("unknown traversal order %d", int(order)))
	}
}

// TraverseIterative returns the keys of the tree in the given
// order, collected by the stack and queue based walks
func (t *Tree[K]) TraverseIterative(order Order) []K {
	switch order {
	case PreOrder:
		return collect(t.PreOrderWalk)
	case InOrder:
		return collect(t.InOrderWalk)
	case PostOrder:
		return collect(t.PostOrderWalk)
	case LevelOrder:
		return collect(t.LevelOrderWalk)
	default:
		panic(fmt.Sprintf("unknown traversal order %d", int(order)))
	}
}
