package queue

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounded_KeepsBest(t *testing.T) {
	q := NewBounded(3)
	for i, s := range []int{5, 1, 9, 7, 3, 8} {
		q.Offer(Candidate{X: int32(i), Score: s, Seq: int64(i)})
	}
	require.Equal(t, 3, q.Len())

	top, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 7, top.Score)

	got := q.Sorted()
	assert.Equal(t, []int{9, 8, 7}, scores(got))
	assert.Equal(t, 0, q.Len())
}

func TestBounded_TiesKeepEarlier(t *testing.T) {
	q := NewBounded(2)
	assert.True(t, q.Offer(Candidate{X: 1, Score: 4, Seq: 10}))
	assert.True(t, q.Offer(Candidate{X: 2, Score: 4, Seq: 11}))
	assert.False(t, q.Offer(Candidate{X: 3, Score: 4, Seq: 12}), "equal score discovered later must not replace")
	assert.True(t, q.Offer(Candidate{X: 4, Score: 5, Seq: 13}))

	got := q.Sorted()
	require.Len(t, got, 2)
	assert.Equal(t, int32(4), got[0].X)
	assert.Equal(t, int32(1), got[1].X)
}

func TestBounded_ZeroCapacity(t *testing.T) {
	q := NewBounded(0)
	assert.False(t, q.Offer(Candidate{Score: 1}))
	_, ok := q.Pop()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)
	assert.Empty(t, q.Sorted())
}

func TestBounded_MergeIsOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	all := make([]Candidate, 500)
	for i := range all {
		all[i] = Candidate{X: int32(i), Score: rng.Intn(20), Seq: int64(i)}
	}
	want := append([]Candidate(nil), all...)
	sort.Slice(want, func(i, j int) bool { return Better(want[i], want[j]) })
	want = want[:10]

	for _, parts := range []int{1, 2, 3, 7, 16} {
		global := NewBounded(10)
		size := (len(all) + parts - 1) / parts
		for start := 0; start < len(all); start += size {
			local := NewBounded(10)
			for _, c := range all[start:min(start+size, len(all))] {
				local.Offer(c)
			}
			global.Merge(local)
			assert.Equal(t, 0, local.Len())
		}
		assert.Equal(t, want, global.Sorted(), "parts=%d", parts)
	}
}

func TestBounded_Reset(t *testing.T) {
	q := NewBounded(4)
	q.Offer(Candidate{Score: 1})
	q.Reset()
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 4, q.Cap())
}

func scores(cs []Candidate) []int {
	out := make([]int, len(cs))
	for i, c := range cs {
		out[i] = c.Score
	}
	return out
}
