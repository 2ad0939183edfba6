package priority

import (
	"iter"
)

// Merge returns an iterator over the elements of every queue in one
// ascending priority order, without modifying the queues. Equal priorities
// from different queues come out in argument order; within a queue the
// usual arrival order is kept. nil queues are treated as empty.
//
// The merge is a loser tree over one cursor per queue, so each element costs
// O(log k) comparisons for k queues. A queue that is modified during the
// merge stops contributing elements.
func Merge[T comparable](queues ...*Queue[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if len(queues) == 0 {
			return
		}

		t := newTournament(queues)
		for {
			n := t.nodes[0].item.n
			if n == nil {
				return
			}
			if !yield(n.priority, n.value) {
				return
			}
			leaf := t.nodes[0].index
			t.moveNext(leaf)
			t.replayGames(leaf)
		}
	}
}

// contender is the head of one source; n is nil once the source is drained.
type contender[T comparable] struct {
	n   *node[T]
	src int
}

// less orders by priority then source index. Drained sources lose to
// everything.
func (a contender[T]) less(b contender[T]) bool {
	switch {
	case a.n == nil:
		return false
	case b.n == nil:
		return true
	case a.n.priority != b.n.priority:
		return a.n.priority < b.n.priority
	default:
		return a.src < b.src
	}
}

// tournament is laid out as a heap: for k sources the leaves are positions
// k..2k-1 and the internal nodes 1..k-1, each holding the loser of the game
// played there. Position 0 holds the overall winner.
type tournament[T comparable] struct {
	nodes   []tnode[T]
	sources []cursor[T]
}

type tnode[T comparable] struct {
	index int // leaf position of the loser, or of the winner for node 0
	item  contender[T]
}

func newTournament[T comparable](queues []*Queue[T]) *tournament[T] {
	k := len(queues)
	t := &tournament[T]{
		nodes:   make([]tnode[T], 2*k),
		sources: make([]cursor[T], k),
	}
	for i, q := range queues {
		if q != nil {
			t.sources[i] = q.cursorAt(minimum(q.root))
		}
		t.moveNext(k + i)
	}

	winner := t.playGame(1)
	t.nodes[0].index = winner
	t.nodes[0].item = t.nodes[winner].item
	return t
}

// moveNext loads the next element of the source behind leaf.
func (t *tournament[T]) moveNext(leaf int) {
	src := leaf - len(t.sources)
	n, _ := t.sources[src].advance()
	t.nodes[leaf].index = leaf
	t.nodes[leaf].item = contender[T]{n: n, src: src}
}

// playGame finds the winner below pos, recording losers on the way up.
func (t *tournament[T]) playGame(pos int) int {
	nodes := t.nodes
	if pos >= len(nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	var loser, winner int
	if nodes[left].item.less(nodes[right].item) {
		loser, winner = right, left
	} else {
		loser, winner = left, right
	}
	nodes[pos].index = loser
	nodes[pos].item = nodes[loser].item
	return winner
}

// replayGames re-runs the games on the path from leaf pos to the root after
// the leaf's value changed.
func (t *tournament[T]) replayGames(pos int) {
	nodes := t.nodes
	winning := nodes[pos].item
	for n := pos >> 1; n != 0; n >>= 1 {
		node := &nodes[n]
		if node.item.less(winning) {
			node.index, pos = pos, node.index
			node.item, winning = winning, node.item
		}
	}
	nodes[0].index = pos
	nodes[0].item = winning
}
