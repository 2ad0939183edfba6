// Package priority implements a min-priority queue keyed by an integer
// priority. Elements are held in a binary search tree ordered by priority;
// elements that share a priority are chained behind the tree node for that
// priority, so they leave the queue in the order they arrived.
//
// Key features:
//   - Generic over any comparable value type
//   - O(log n + m) enqueue and dequeue, where n is the number of distinct
//     priorities and m the number of elements sharing the touched priority
//   - Explicit ErrEmpty from Dequeue and Peek instead of a silent zero value
//   - A resumable built-in cursor (Begin/Next) and range-over-func iterators
//     (All, Entries) that stop once the queue is modified
//   - Deep copy (Clone, Assign), structural equality (Equal) and a
//     line-per-element dump (String)
//   - Merge for walking several queues in one priority order
//
// Basic usage:
//
//	q := priority.New[string]()
//	q.Enqueue("Dolores", 5)
//	q.Enqueue("Ford", 2)
//	q.Enqueue("Arnold", 8)
//	q.Enqueue("William", 8)
//
//	for p, v := range q.All() {
//	    fmt.Println(p, "value:", v) // 2 Ford, 5 Dolores, 8 Arnold, 8 William
//	}
//
//	v, err := q.Dequeue() // "Ford"
//	if errors.Is(err, priority.ErrEmpty) {
//	    // nothing queued
//	}
//
// The tree is not rebalanced: its shape depends on arrival order, and
// sorted input degenerates into a list. Copying and comparison use explicit
// stacks so deep trees are safe.
//
// A Queue is not safe for concurrent use; guard the whole queue with a
// single lock when sharing it.
package priority
