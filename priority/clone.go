package priority

import (
	"github.com/gammazero/deque"

	"github.com/davidvella/bstq/core/monitoring"
)

// The tree is never rebalanced, so its depth can reach Len() for sorted
// input. Copy and comparison walk it with an explicit stack instead of
// recursion.

type cloneFrame[T comparable] struct {
	src    *node[T]
	parent *node[T] // copy of src's parent, nil for the root
	right  bool     // src is its parent's right child
}

// Clone returns an independent deep copy of q. The copy shares no nodes with
// q and carries the same logger, stats and labels.
func (q *Queue[T]) Clone() *Queue[T] {
	return &Queue[T]{
		root: cloneTree(q.root),
		size: q.size,
		opts: q.opts,
	}
}

// Assign replaces the contents of q with a deep copy of other. q keeps its
// own options. Assigning a queue to itself does nothing.
func (q *Queue[T]) Assign(other *Queue[T]) {
	if q == other {
		return
	}

	q.root = nil
	q.size = 0
	if other != nil {
		q.root = cloneTree(other.root)
		q.size = other.size
	}
	q.version++

	q.log(monitoring.DEBUG, "assign", "queue assigned", map[string]any{"size": q.size})
	if s := q.opts.stats; s != nil {
		s.SetSize(q.size, q.opts.labels)
	}
}

func cloneTree[T comparable](root *node[T]) *node[T] {
	if root == nil {
		return nil
	}

	var (
		out   *node[T]
		stack deque.Deque[cloneFrame[T]]
	)
	stack.PushBack(cloneFrame[T]{src: root})

	for stack.Len() > 0 {
		f := stack.PopBack()
		n := &node[T]{
			priority: f.src.priority,
			value:    f.src.value,
			parent:   f.parent,
		}
		cloneChain(n, f.src)

		switch {
		case f.parent == nil:
			out = n
		case f.right:
			f.parent.right = n
		default:
			f.parent.left = n
		}

		if f.src.right != nil {
			stack.PushBack(cloneFrame[T]{src: f.src.right, parent: n, right: true})
		}
		if f.src.left != nil {
			stack.PushBack(cloneFrame[T]{src: f.src.left, parent: n})
		}
	}
	return out
}

// cloneChain copies the duplicate chain behind src onto dst.
func cloneChain[T comparable](dst, src *node[T]) {
	tail := dst
	for s := src.next; s != nil; s = s.next {
		c := &node[T]{
			priority: s.priority,
			value:    s.value,
			dup:      true,
			parent:   tail,
		}
		tail.next = c
		tail = c
	}
}

// Equal reports whether q and other hold the same elements in the same tree
// shape: corresponding nodes agree on priority and value, and every duplicate
// chain matches element by element. Queues that received the same elements
// in a different order may differ in shape and compare unequal.
func (q *Queue[T]) Equal(other *Queue[T]) bool {
	if q == other {
		return true
	}
	if q == nil || other == nil || q.size != other.size {
		return false
	}
	return equalTree(q.root, other.root)
}

func equalTree[T comparable](a, b *node[T]) bool {
	var stack deque.Deque[[2]*node[T]]
	stack.PushBack([2]*node[T]{a, b})

	for stack.Len() > 0 {
		pair := stack.PopBack()
		x, y := pair[0], pair[1]
		if x == nil || y == nil {
			if x != y {
				return false
			}
			continue
		}
		if !equalChain(x, y) {
			return false
		}
		stack.PushBack([2]*node[T]{x.right, y.right})
		stack.PushBack([2]*node[T]{x.left, y.left})
	}
	return true
}

// equalChain compares x and y and the chains behind them.
func equalChain[T comparable](x, y *node[T]) bool {
	for x != nil && y != nil {
		if x.priority != y.priority || x.value != y.value || x.dup != y.dup {
			return false
		}
		x, y = x.next, y.next
	}
	return x == nil && y == nil
}
