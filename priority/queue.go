package priority

import (
	"errors"

	"github.com/davidvella/bstq/core/monitoring"
)

// ErrEmpty is returned by Dequeue, Peek and PeekEntry on an empty queue.
var ErrEmpty = errors.New("priority: queue is empty")

// Entry is a single element of the queue together with its priority.
type Entry[T any] struct {
	Priority int
	Value    T
}

// Queue is a min-priority queue backed by an unbalanced binary search tree
// keyed by priority. Elements sharing a priority are kept in a chain hanging
// off the tree node for that priority and leave the queue in arrival order.
//
// The zero value is an empty queue ready to use. A Queue is not safe for
// concurrent use.
type Queue[T comparable] struct {
	root *node[T]
	size int

	// version is bumped by every structural change; cursors compare it to
	// detect that the nodes they point at may be gone.
	version uint64
	cur     cursor[T]

	opts options
}

// New creates an empty queue configured by opts.
func New[T comparable](opts ...Option) *Queue[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Queue[T]{opts: o}
}

// Len returns the number of elements in the queue, duplicates included.
func (q *Queue[T]) Len() int {
	return q.size
}

// Enqueue inserts value at priority. An element whose priority is already
// present is placed behind every earlier element of that priority.
func (q *Queue[T]) Enqueue(value T, priority int) {
	n := &node[T]{priority: priority, value: value}
	q.insert(n)
	q.size++
	q.version++

	if s := q.opts.stats; s != nil {
		s.RecordEnqueue(q.opts.labels)
		s.SetSize(q.size, q.opts.labels)
	}
}

func (q *Queue[T]) insert(n *node[T]) {
	if q.root == nil {
		q.root = n
		return
	}

	cur := q.root
	for {
		switch {
		case n.priority > cur.priority:
			if cur.right == nil {
				cur.right = n
				n.parent = cur
				return
			}
			cur = cur.right
		case n.priority < cur.priority:
			if cur.left == nil {
				cur.left = n
				n.parent = cur
				return
			}
			cur = cur.left
		default:
			for cur.next != nil {
				cur = cur.next
			}
			n.dup = true
			cur.next = n
			n.parent = cur
			return
		}
	}
}

// Dequeue removes and returns the element with the smallest priority. Among
// equal priorities the earliest enqueued element is returned first.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.root == nil {
		q.emptyAccess("dequeue")
		var zero T
		return zero, ErrEmpty
	}

	first := minimum(q.root)
	q.remove(first)
	q.size--
	q.version++

	if s := q.opts.stats; s != nil {
		s.RecordDequeue(q.opts.labels)
		s.SetSize(q.size, q.opts.labels)
	}
	return first.value, nil
}

// remove unlinks the leftmost tree node n. n has no left child.
func (q *Queue[T]) remove(n *node[T]) {
	if head := n.next; head != nil {
		// The chain head takes over n's place in the tree; the rest of the
		// chain stays linked behind it.
		head.dup = false
		head.left = n.left
		head.right = n.right
		if head.left != nil {
			head.left.parent = head
		}
		if head.right != nil {
			head.right.parent = head
		}
		q.replaceChild(n, head)
	} else {
		q.replaceChild(n, n.right)
	}

	n.parent, n.left, n.right, n.next = nil, nil, nil, nil
}

// Peek returns the element Dequeue would return without removing it.
func (q *Queue[T]) Peek() (T, error) {
	e, err := q.peek("peek")
	return e.Value, err
}

// PeekEntry is like Peek but also reports the element's priority.
func (q *Queue[T]) PeekEntry() (Entry[T], error) {
	return q.peek("peek_entry")
}

func (q *Queue[T]) peek(op string) (Entry[T], error) {
	if q.root == nil {
		q.emptyAccess(op)
		return Entry[T]{}, ErrEmpty
	}
	return minimum(q.root).entry(), nil
}

// Clear removes every element.
func (q *Queue[T]) Clear() {
	dropped := q.size
	q.root = nil
	q.size = 0
	q.version++

	q.log(monitoring.DEBUG, "clear", "queue cleared", map[string]any{"dropped": dropped})
	if s := q.opts.stats; s != nil {
		s.SetSize(0, q.opts.labels)
	}
}

func (q *Queue[T]) emptyAccess(op string) {
	q.log(monitoring.WARN, "empty_access", op+" on empty queue", map[string]any{"op": op})
	if s := q.opts.stats; s != nil {
		s.RecordEmptyAccess(op, q.opts.labels)
	}
}

func (q *Queue[T]) log(level monitoring.LogLevel, eventType, message string, details map[string]any) {
	if q.opts.logger == nil {
		return
	}
	q.opts.logger.Log(level, eventType, message, details)
}
