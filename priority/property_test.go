package priority_test

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidvella/bstq/priority"
)

// modelItem orders the reference model by priority, then arrival.
type modelItem struct {
	priority int
	seq      int
	value    int
}

func newModel() *btree.BTreeG[modelItem] {
	return btree.NewG[modelItem](2, func(a, b modelItem) bool {
		if a.priority != b.priority {
			return a.priority < b.priority
		}
		return a.seq < b.seq
	})
}

func modelEntries(m *btree.BTreeG[modelItem]) []priority.Entry[int] {
	out := make([]priority.Entry[int], 0, m.Len())
	m.Ascend(func(it modelItem) bool {
		out = append(out, priority.Entry[int]{Priority: it.priority, Value: it.value})
		return true
	})
	return out
}

func queueEntries(q *priority.Queue[int]) []priority.Entry[int] {
	out := make([]priority.Entry[int], 0, q.Len())
	for e := range q.Entries() {
		out = append(out, e)
	}
	return out
}

func TestQueue_MatchesModel(t *testing.T) {
	seeds := []int64{1, 7, 42, 1234, 99991}
	ranges := []int{1, 4, 32, 1000}

	for _, seed := range seeds {
		for _, span := range ranges {
			rng := rand.New(rand.NewSource(seed))
			q := priority.New[int]()
			model := newModel()
			enqueued, dequeued := 0, 0

			for step := 0; step < 2000; step++ {
				switch r := rng.Intn(10); {
				case r < 6:
					p := rng.Intn(span) - span/2
					q.Enqueue(step, p)
					model.ReplaceOrInsert(modelItem{priority: p, seq: step, value: step})
					enqueued++
				case r < 9:
					got, err := q.Dequeue()
					want, ok := model.DeleteMin()
					if !ok {
						require.ErrorIs(t, err, priority.ErrEmpty)
						continue
					}
					require.NoError(t, err)
					require.Equal(t, want.value, got, "seed %d span %d step %d", seed, span, step)
					dequeued++
				default:
					got, err := q.PeekEntry()
					want, ok := model.Min()
					if !ok {
						require.ErrorIs(t, err, priority.ErrEmpty)
						continue
					}
					require.NoError(t, err)
					require.Equal(t, priority.Entry[int]{Priority: want.priority, Value: want.value}, got)
				}

				require.Equal(t, enqueued-dequeued, q.Len())
				if step%97 == 0 {
					require.Empty(t, q.CheckInvariants())
					require.Equal(t, modelEntries(model), queueEntries(q))
				}
			}

			require.Empty(t, q.CheckInvariants())
			assert.Equal(t, modelEntries(model), queueEntries(q))
		}
	}
}

func TestQueue_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	q := priority.New[int]()
	model := newModel()

	const n = 1500
	for i := 0; i < n; i++ {
		p := rng.Intn(50)
		q.Enqueue(i, p)
		model.ReplaceOrInsert(modelItem{priority: p, seq: i, value: i})
	}

	want := modelEntries(model)
	q.Begin()
	assert.Equal(t, want, drainCursor(q))

	got := make([]priority.Entry[int], 0, n)
	for q.Len() > 0 {
		e, err := q.PeekEntry()
		require.NoError(t, err)
		_, err = q.Dequeue()
		require.NoError(t, err)
		got = append(got, e)
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 0, q.Len())
}

func TestQueue_CloneIndependenceRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	a := priority.New[int]()
	for i := 0; i < 500; i++ {
		a.Enqueue(i, rng.Intn(40))
	}

	b := a.Clone()
	require.True(t, b.Equal(a))
	snapshot := queueEntries(b)

	for i := 0; i < 250; i++ {
		if rng.Intn(2) == 0 {
			a.Enqueue(-i, rng.Intn(40))
		} else {
			_, err := a.Dequeue()
			require.NoError(t, err)
		}
	}
	assert.Equal(t, snapshot, queueEntries(b))

	for i := 0; i < 100; i++ {
		_, err := b.Dequeue()
		require.NoError(t, err)
	}
	require.Empty(t, a.CheckInvariants())
	require.Empty(t, b.CheckInvariants())
}
