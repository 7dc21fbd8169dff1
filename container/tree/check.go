package tree

import "github.com/companion-uyan/data-structure-algorithm/errors"

// Validate recomputes the structure of the tree and compares it with
// what the balancing algorithm guarantees: consistent parent links,
// keys in non decreasing order, a node count matching Len and the
// metadata of the variant. It returns an *errors.Error with code
// errors.ErrCodeInvariantViolation describing the first mismatch
func (t *Tree[K]) Validate() error {
	if t.root != nil && t.root.parent != nil {
		return errors.New(errors.ErrCodeInvariantViolation,
			"root %v has parent %v", t.root.key, t.root.parent.key)
	}

	if err := checkUp(t.root); err != nil {
		return err
	}

	count := 0
	var prev *Node[K]
	var err error
	t.root.InOrderWalk(func(n *Node[K]) {
		count++
		if err == nil && prev != nil && t.cmp.Less(prev.key, n.key) > 0 {
			err = errors.New(errors.ErrCodeInvariantViolation,
				"key %v is visited after key %v", n.key, prev.key)
		}
		prev = n
	})
	if err != nil {
		return err
	}

	if count != t.len {
		return errors.New(errors.ErrCodeInvariantViolation,
			"tree has %d nodes but counts %d", count, t.len)
	}

	return t.mod.check(t.root)
}

// checkUp checks the parent links for consistency
func checkUp[K any](n *Node[K]) error {
	if n == nil {
		return nil
	}

	for _, child := range []*Node[K]{n.left, n.right} {
		if child == nil {
			continue
		}

		if child.parent != n {
			return errors.New(errors.ErrCodeInvariantViolation,
				"node %v does not point up to its parent %v", child.key, n.key)
		}

		if err := checkUp(child); err != nil {
			return err
		}
	}

	return nil
}
