package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type question struct {
	id   int
	text string
}

func (q question) Identifier() int { return q.id }

// fixedRand always returns the same index, clamped to n.
type fixedRand int

func (f fixedRand) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func questions(ids ...int) []question {
	out := make([]question, len(ids))
	for i, id := range ids {
		out[i] = question{id: id, text: "q"}
	}
	return out
}

func TestNext_AllExcludedIsExhausted(t *testing.T) {
	_, ok := Next(questions(1, 2, 3), NewIDSet(1, 2, 3), nil)
	assert.False(t, ok)
}

func TestNext_SingleCandidateIsDeterministic(t *testing.T) {
	for i := 0; i < 20; i++ {
		q, ok := Next(questions(7), IDSet{}, nil)
		require.True(t, ok)
		assert.Equal(t, 7, q.id)
	}
}

func TestNext_EmptyCandidates(t *testing.T) {
	_, ok := Next([]question(nil), nil, nil)
	assert.False(t, ok)
}

func TestNext_NeverReturnsExcluded(t *testing.T) {
	candidates := questions(1, 2, 3, 4, 5, 6)
	excluded := NewIDSet(2, 4, 6)
	for i := 0; i < 200; i++ {
		q, ok := Next(candidates, excluded, nil)
		require.True(t, ok)
		assert.False(t, excluded.Has(q.id))
	}
}

func TestNext_ExhaustedIffAllExcluded(t *testing.T) {
	candidates := questions(1, 2, 3)
	tests := []struct {
		excluded IDSet
		want     bool
	}{
		{NewIDSet(), true},
		{NewIDSet(1), true},
		{NewIDSet(1, 2), true},
		{NewIDSet(1, 2, 3), false},
		{NewIDSet(1, 2, 3, 99), false},
		{NewIDSet(99), true},
	}
	for _, tt := range tests {
		_, ok := Next(candidates, tt.excluded, nil)
		assert.Equal(t, tt.want, ok, "excluded %v", tt.excluded.IDs())
	}
}

func TestNext_DoesNotMutateExcluded(t *testing.T) {
	excluded := NewIDSet(1)
	_, ok := Next(questions(1, 2, 3), excluded, nil)
	require.True(t, ok)
	assert.Equal(t, []int{1}, excluded.IDs())
}

func TestNext_UsesRandOverRemaining(t *testing.T) {
	candidates := questions(10, 20, 30, 40)
	q, ok := Next(candidates, NewIDSet(10, 30), fixedRand(1))
	require.True(t, ok)
	assert.Equal(t, 40, q.id)
}

func TestNext_EveryRemainingCandidateIsReachable(t *testing.T) {
	candidates := questions(1, 2, 3, 4)
	seen := map[int]bool{}
	for i := 0; i < 4; i++ {
		q, ok := Next(candidates, nil, fixedRand(i))
		require.True(t, ok)
		seen[q.id] = true
	}
	assert.Len(t, seen, 4)
}

func TestIDSet(t *testing.T) {
	s := NewIDSet(3, 1, 3)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Add(2))
	assert.False(t, s.Add(2))
	assert.Equal(t, []int{1, 2, 3}, s.IDs())

	c := s.Clone()
	c.Add(9)
	assert.False(t, s.Has(9))
}

func TestSession_RunsToCompletion(t *testing.T) {
	candidates := questions(1, 2, 3)
	s := NewSession("abc")
	assert.Equal(t, AwaitingAnswer, s.State())

	seen := map[int]bool{}
	for i := 0; i < 3; i++ {
		q, ok := Advance(s, candidates, nil)
		require.True(t, ok)
		assert.False(t, seen[q.id], "question %d asked twice", q.id)
		seen[q.id] = true
		assert.Equal(t, i+1, s.Excluded.Len())
	}

	_, ok := Advance(s, candidates, nil)
	assert.False(t, ok)
	assert.True(t, s.Complete())
	assert.Equal(t, "session_complete", s.State().String())

	// terminal: new candidates do not reopen the session
	_, ok = Advance(s, questions(4), nil)
	assert.False(t, ok)
}

func TestSession_StartsWithExclusions(t *testing.T) {
	s := NewSession("x", 1, 2)
	q, ok := Advance(s, questions(1, 2, 3), nil)
	require.True(t, ok)
	assert.Equal(t, 3, q.id)
}
