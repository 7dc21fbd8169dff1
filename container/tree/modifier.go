package tree

// modifier is a pair of algorithms used to insert
// and remove keys from the tree, together with the
// checks of the invariants those algorithms keep
type modifier[K any] interface {
	// Insert a key into the tree
	Insert(t *Tree[K], key K)

	// Delete one node holding key from the tree. It returns
	// false if no node holds key
	Delete(t *Tree[K], key K) bool

	// Variant identifies the balancing strategy
	Variant() Variant

	// check verifies the metadata of the subtree rooted at n
	check(n *Node[K]) error

	// label describes the metadata of n for printing
	label(n *Node[K]) string
}
