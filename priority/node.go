package priority

// node is either tree-resident (one per distinct priority, linked through
// left/right/parent) or a member of a duplicate chain (dup set, reached via
// next, parent pointing at the previous chain member).
type node[T comparable] struct {
	priority int
	value    T
	dup      bool
	parent   *node[T] // back link only, never owning
	left     *node[T]
	right    *node[T]
	next     *node[T] // next element with the same priority
}

// minimum returns the leftmost node of the subtree rooted at n.
func minimum[T comparable](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// owner walks back along a duplicate chain to its tree-resident node.
func (n *node[T]) owner() *node[T] {
	for n.dup {
		n = n.parent
	}
	return n
}

// successor returns the node following n in traversal order: the rest of the
// duplicate chain first, then the in-order successor of the owning
// tree-resident node.
func (n *node[T]) successor() *node[T] {
	if n.next != nil {
		return n.next
	}

	n = n.owner()
	if n.right != nil {
		return minimum(n.right)
	}

	p := n.parent
	for p != nil && n == p.right {
		n, p = p, p.parent
	}
	return p
}

// replaceChild points whatever referenced old (its parent's child link or
// the root) at repl.
func (q *Queue[T]) replaceChild(old, repl *node[T]) {
	p := old.parent
	switch {
	case p == nil:
		q.root = repl
	case p.left == old:
		p.left = repl
	default:
		p.right = repl
	}
	if repl != nil {
		repl.parent = p
	}
}

func (n *node[T]) entry() Entry[T] {
	return Entry[T]{Priority: n.priority, Value: n.value}
}
