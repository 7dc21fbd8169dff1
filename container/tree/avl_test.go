package tree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAVLTree(keys ...int) *Tree[int] {
	tree := NewAVLTree[int](IntLesser{})
	for _, key := range keys {
		tree.Insert(key)
	}
	return tree
}

func TestAVLRotations(t *testing.T) {
	for name, keys := range map[string][]int{
		"left-left":   {3, 2, 1},
		"left-right":  {3, 1, 2},
		"right-right": {1, 2, 3},
		"right-left":  {1, 3, 2},
	} {
		t.Run(name, func(t *testing.T) {
			tree := newAVLTree(keys...)

			assertEqualTree(t, [][]interface{}{
				{2},
				{1, 3},
			}, tree)
			assert.Equal(t, 2, height(tree.Root()))
			assert.Equal(t, 1, height(tree.Root().Left()))
			assert.Equal(t, 1, height(tree.Root().Right()))
			assert.Nil(t, tree.Validate())
		})
	}
}

func TestAVLClassify(t *testing.T) {
	// classification only looks at stored heights, so build the
	// shapes by hand without balancing them
	leaf := func(key int) *Node[int] { return newNode[int](key, nil, 1) }
	join := func(key int, l, r *Node[int]) *Node[int] {
		n := &Node[int]{key: key, left: l, right: r}
		updateHeight(n)
		return n
	}

	assert.Equal(t, avlBalanced, classifyAVL(join(2, leaf(1), leaf(3))))
	assert.Equal(t, avlLeftLeft, classifyAVL(join(3, join(2, leaf(1), nil), nil)))
	assert.Equal(t, avlLeftRight, classifyAVL(join(3, join(1, nil, leaf(2)), nil)))
	assert.Equal(t, avlRightRight, classifyAVL(join(1, nil, join(2, nil, leaf(3)))))
	assert.Equal(t, avlRightLeft, classifyAVL(join(1, nil, join(3, leaf(2), nil))))

	// a left child with two children of equal height, as left by
	// a deletion, is fixed with a single rotation
	assert.Equal(t, avlLeftLeft, classifyAVL(join(4, join(2, leaf(1), leaf(3)), nil)))
	assert.Equal(t, avlRightRight, classifyAVL(join(1, nil, join(3, leaf(2), leaf(4)))))
}

func TestAVLAscendingInsertThenDelete(t *testing.T) {
	tree := newAVLTree()
	for i := 0; i < 30; i++ {
		tree.Insert(i)
	}
	assert.Equal(t, 5, tree.Height())

	assert.True(t, tree.Delete(15))

	var expected []int
	for i := 0; i < 30; i++ {
		if i != 15 {
			expected = append(expected, i)
		}
	}

	assert.Equal(t, expected, tree.Traverse(InOrder))
	assert.LessOrEqual(t, tree.Height(), 5)
	assert.Equal(t, 29, tree.Len())
	assert.Nil(t, tree.Validate())
}

func TestAVLDeleteLeaf(t *testing.T) {
	tree := newAVLTree(2, 1, 3)
	assert.True(t, tree.Delete(3))

	assertEqualTree(t, [][]interface{}{
		{2},
		{1, nil},
	}, tree)
	assert.Equal(t, 2, height(tree.Root()))
}

func TestAVLDeleteSingleChild(t *testing.T) {
	tree := newAVLTree(2, 1, 3, 4)
	assert.True(t, tree.Delete(3))

	assertEqualTree(t, [][]interface{}{
		{2},
		{1, 4},
	}, tree)
	assert.Equal(t, tree.Root(), tree.Find(4).Parent())
	assert.Nil(t, tree.Validate())
}

func TestAVLDeleteUsesSuccessor(t *testing.T) {
	tree := newAVLTree(4, 2, 6, 1, 3, 5, 7)
	assert.True(t, tree.Delete(4))

	// the root keeps its place and takes the key of its successor
	assertEqualTree(t, [][]interface{}{
		{5},
		{2, 6},
		{1, 3, nil, 7},
	}, tree)
	assert.Nil(t, tree.Validate())
}

func TestAVLDeleteRebalancesSeveralLevels(t *testing.T) {
	// a minimal AVL tree of height 5 loses a leaf on its short side,
	// which needs rotations at more than one ancestor
	tree := newAVLTree(8, 5, 11, 3, 7, 10, 12, 2, 4, 6, 9, 1)
	require.Nil(t, tree.Validate())
	assert.Equal(t, 5, tree.Height())

	assert.True(t, tree.Delete(12))
	assert.Nil(t, tree.Validate())
	assert.Equal(t, 4, tree.Height())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, tree.Traverse(InOrder))
}

func TestAVLBalanceAfterEveryOperation(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	tree := newAVLTree()
	keys := r.Perm(500)

	for _, key := range keys {
		tree.Insert(key)
		require.Nil(t, tree.Validate())
	}

	for _, key := range keys[:400] {
		require.True(t, tree.Delete(key))
		require.Nil(t, tree.Validate())

		tree.root.PreOrderWalk(func(n *Node[int]) {
			bf := balanceFactor(n)
			require.True(t, bf >= -1 && bf <= 1, "node %d balance factor %d", n.key, bf)
		})
	}
}
