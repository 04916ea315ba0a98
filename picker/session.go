package picker

// State is the position of a quiz session
type State int

const (
	// AwaitingAnswer means more candidates may be picked
	AwaitingAnswer State = iota
	// SessionComplete is terminal and only reached by exhaustion
	SessionComplete
)

// String returns the state name
func (s State) String() string {
	switch s {
	case AwaitingAnswer:
		return "awaiting_answer"
	case SessionComplete:
		return "session_complete"
	default:
		return "unknown"
	}
}

// Session is caller-owned gameplay state. It is not safe for concurrent use;
// sessions shared between requests go through a store.
type Session struct {
	ID       string
	Excluded IDSet
	state    State
}

// NewSession starts a session in AwaitingAnswer with the given exclusions
func NewSession(id string, excluded ...int) *Session {
	return &Session{ID: id, Excluded: NewIDSet(excluded...)}
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// Complete reports whether the session has run out of candidates
func (s *Session) Complete() bool {
	return s.state == SessionComplete
}

// Advance picks the next candidate and records it as seen. Once exhausted the
// session stays complete and every further call reports false.
func Advance[T Identifiable](s *Session, candidates []T, rnd Rand) (T, bool) {
	var zero T
	if s.Complete() {
		return zero, false
	}
	if s.Excluded == nil {
		s.Excluded = IDSet{}
	}

	picked, ok := Next(candidates, s.Excluded, rnd)
	if !ok {
		s.state = SessionComplete
		return zero, false
	}
	s.Excluded.Add(picked.Identifier())
	return picked, true
}
