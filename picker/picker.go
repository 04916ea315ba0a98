package picker

import (
	"math/rand/v2"
	"slices"
)

// Identifiable is anything with a stable integer identifier
type Identifiable interface {
	Identifier() int
}

// Rand is the randomness source used for uniform selection
type Rand interface {
	IntN(n int) int
}

type defaultRand struct{}

func (defaultRand) IntN(n int) int { return rand.IntN(n) }

// IDSet is a set of previously returned identifiers. It only grows.
type IDSet map[int]struct{}

// NewIDSet builds a set from ids, dropping duplicates
func NewIDSet(ids ...int) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set
func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id and reports whether it was new
func (s IDSet) Add(id int) bool {
	if s.Has(id) {
		return false
	}
	s[id] = struct{}{}
	return true
}

// Len returns the number of identifiers
func (s IDSet) Len() int {
	return len(s)
}

// IDs returns the identifiers in ascending order
func (s IDSet) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Clone returns an independent copy of the set
func (s IDSet) Clone() IDSet {
	out := make(IDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Remaining returns the candidates whose identifiers are not excluded,
// preserving candidate order.
func Remaining[T Identifiable](candidates []T, excluded IDSet) []T {
	out := make([]T, 0, len(candidates))
	for _, c := range candidates {
		if !excluded.Has(c.Identifier()) {
			out = append(out, c)
		}
	}
	return out
}

// Next picks one remaining candidate uniformly at random. The boolean is false
// when every candidate is excluded, which is the exhausted outcome and not an
// error. excluded is never modified; a nil rnd uses the package source.
func Next[T Identifiable](candidates []T, excluded IDSet, rnd Rand) (T, bool) {
	var zero T

	remaining := Remaining(candidates, excluded)
	if len(remaining) == 0 {
		return zero, false
	}
	if len(remaining) == 1 {
		return remaining[0], true
	}

	if rnd == nil {
		rnd = defaultRand{}
	}
	return remaining[rnd.IntN(len(remaining))], true
}
