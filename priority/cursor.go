package priority

import (
	"iter"
)

// cursor is a forward-only position in traversal order. It remembers the
// queue version it was started at and reports exhaustion once the queue has
// been modified, so it never hands out a node that was dequeued.
type cursor[T comparable] struct {
	q       *Queue[T]
	n       *node[T]
	version uint64
}

func (q *Queue[T]) cursorAt(n *node[T]) cursor[T] {
	return cursor[T]{q: q, n: n, version: q.version}
}

func (c *cursor[T]) valid() bool {
	return c.q != nil && c.n != nil && c.version == c.q.version
}

// advance returns the current node and moves past it.
func (c *cursor[T]) advance() (*node[T], bool) {
	if !c.valid() {
		c.n = nil
		return nil, false
	}
	n := c.n
	c.n = n.successor()
	return n, true
}

// Begin resets the queue's built-in cursor to the element with the smallest
// priority. Calling Begin again restarts the traversal.
//
//	q.Begin()
//	for v, p, ok := q.Next(); ok; v, p, ok = q.Next() {
//		fmt.Println(p, "value:", v)
//	}
func (q *Queue[T]) Begin() {
	q.cur = q.cursorAt(minimum(q.root))
}

// Next returns the element under the built-in cursor and advances it.
// Elements come out by ascending priority, and in arrival order within a
// priority. ok is false once the traversal is exhausted, when Begin was never
// called, or when the queue has been modified since Begin.
func (q *Queue[T]) Next() (value T, priority int, ok bool) {
	n, ok := q.cur.advance()
	if !ok {
		return value, priority, false
	}
	return n.value, n.priority, true
}

// All returns an iterator over (priority, value) pairs in the same order as
// Begin/Next. Every call to the iterator starts from the beginning and does
// not disturb the built-in cursor. Iteration stops if the queue is modified.
func (q *Queue[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		c := q.cursorAt(minimum(q.root))
		for n, ok := c.advance(); ok; n, ok = c.advance() {
			if !yield(n.priority, n.value) {
				return
			}
		}
	}
}

// Entries is like All but yields Entry values.
func (q *Queue[T]) Entries() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		for p, v := range q.All() {
			if !yield(Entry[T]{Priority: p, Value: v}) {
				return
			}
		}
	}
}

// Values returns every value in traversal order.
func (q *Queue[T]) Values() []T {
	out := make([]T, 0, q.size)
	for _, v := range q.All() {
		out = append(out, v)
	}
	return out
}
