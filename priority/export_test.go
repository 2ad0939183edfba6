package priority

// Node exposes the tree shape to structural tests.
type Node[T comparable] struct{ n *node[T] }

func (q *Queue[T]) Root() Node[T] { return Node[T]{q.root} }

func (n Node[T]) IsNil() bool     { return n.n == nil }
func (n Node[T]) Priority() int   { return n.n.priority }
func (n Node[T]) Value() T        { return n.n.value }
func (n Node[T]) IsDup() bool     { return n.n.dup }
func (n Node[T]) Left() Node[T]   { return Node[T]{n.n.left} }
func (n Node[T]) Right() Node[T]  { return Node[T]{n.n.right} }
func (n Node[T]) Next() Node[T]   { return Node[T]{n.n.next} }
func (n Node[T]) Parent() Node[T] { return Node[T]{n.n.parent} }
func (n Node[T]) Same(o Node[T]) bool {
	return n.n == o.n
}

// CheckInvariants walks the whole structure and returns a description of the
// first broken invariant, or "" if the queue is consistent.
func (q *Queue[T]) CheckInvariants() string {
	count := 0
	if q.root != nil && q.root.parent != nil {
		return "root has a parent"
	}
	var walk func(n *node[T], lo, hi *int) string
	walk = func(n *node[T], lo, hi *int) string {
		if n == nil {
			return ""
		}
		if n.dup {
			return "tree node marked duplicate"
		}
		if lo != nil && n.priority <= *lo {
			return "left ordering broken"
		}
		if hi != nil && n.priority >= *hi {
			return "right ordering broken"
		}
		if n.left != nil && n.left.parent != n {
			return "left child parent link broken"
		}
		if n.right != nil && n.right.parent != n {
			return "right child parent link broken"
		}
		count++
		for prev, c := n, n.next; c != nil; prev, c = c, c.next {
			count++
			switch {
			case !c.dup:
				return "chain node not marked duplicate"
			case c.parent != prev:
				return "chain parent link broken"
			case c.left != nil || c.right != nil:
				return "chain node has children"
			case c.priority != n.priority:
				return "chain priority mismatch"
			}
		}
		if s := walk(n.left, lo, &n.priority); s != "" {
			return s
		}
		return walk(n.right, &n.priority, hi)
	}
	if s := walk(q.root, nil, nil); s != "" {
		return s
	}
	if count != q.size {
		return "size does not match node count"
	}
	return ""
}
