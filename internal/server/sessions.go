// Package server implements the reference evaluator service for the COOKED
// wire contract. Clients treat it as a black box; any conforming server can
// replace it.
package server

import (
	"sync"

	"github.com/ashureev/cooked/internal/scoring"
)

// Session is the evaluator's per-learner state. The task type is fixed on
// the first turn; the unlock flag is sticky once earned.
type Session struct {
	mu sync.Mutex

	ID            string
	TaskType      string
	FinalUnlocked bool
	Turns         []scoring.TurnRecord
}

// SessionStore keeps evaluator sessions in memory, keyed by the anonymous
// session id the client sends.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Get returns the session for id, creating it on first use.
func (s *SessionStore) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{ID: id}
		s.sessions[id] = sess
	}
	return sess
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
