package session

import (
	"context"
	"sync"
	"time"

	"github.com/milindvishnoi/FSND/picker"
)

type memoryEntry struct {
	asked   picker.IDSet
	expires time.Time
}

// MemoryStore is a process-local Store used when redis is not configured.
// Expired sessions are swept at most once per ttl, on Load or Add.
type MemoryStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	sessions  map[string]*memoryEntry
	now       func() time.Time
	nextSweep time.Time
}

// NewMemoryStore creates an in-memory store. A non-positive ttl uses DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{ttl: ttl, sessions: make(map[string]*memoryEntry), now: time.Now}
}

// Load returns a copy of the ids asked in session id. Unknown and expired
// sessions load as an empty set.
func (s *MemoryStore) Load(_ context.Context, id string) (picker.IDSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()

	e := s.live(id)
	if e == nil {
		return picker.IDSet{}, nil
	}
	return e.asked.Clone(), nil
}

// Add records questionID in session id and extends its expiry.
func (s *MemoryStore) Add(_ context.Context, id string, questionID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()

	e := s.live(id)
	if e == nil {
		e = &memoryEntry{asked: picker.IDSet{}}
		s.sessions[id] = e
	}
	e.asked.Add(questionID)
	e.expires = s.now().Add(s.ttl)
	return nil
}

// Delete forgets session id and reports whether it was live.
func (s *MemoryStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.live(id)
	delete(s.sessions, id)
	return e != nil, nil
}

// live returns the session if it has not expired, evicting it otherwise.
// Callers hold mu.
func (s *MemoryStore) live(id string) *memoryEntry {
	e, ok := s.sessions[id]
	if !ok {
		return nil
	}
	if !s.now().Before(e.expires) {
		delete(s.sessions, id)
		return nil
	}
	return e
}

// sweep drops every expired session once the sweep deadline has passed.
// Callers hold mu.
func (s *MemoryStore) sweep() {
	now := s.now()
	if now.Before(s.nextSweep) {
		return
	}
	for id, e := range s.sessions {
		if !now.Before(e.expires) {
			delete(s.sessions, id)
		}
	}
	s.nextSweep = now.Add(s.ttl)
}
