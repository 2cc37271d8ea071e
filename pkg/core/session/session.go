package session

import (
	"sync"
	"time"
)

// Session is one user's isolated calculator state. Handlers may hit the same
// session from concurrent requests, so every access goes through its mutex;
// sessions never share state with each other.
type Session struct {
	ID string

	mu        sync.Mutex
	state     InputState
	updatedAt time.Time
}

func newSession(id string) *Session {
	return &Session{
		ID:        id,
		state:     Defaults(),
		updatedAt: time.Now(),
	}
}

// State returns a copy of the current input state.
func (s *Session) State() InputState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetField writes one field and returns the resulting state.
func (s *Session) SetField(name string, value any) (InputState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.state.SetField(name, value); err != nil {
		return s.state, err
	}
	s.updatedAt = time.Now()
	return s.state, nil
}

// ApplyPreset applies a named preset atomically. Custom and unknown names
// leave the state untouched and report false.
func (s *Session) ApplyPreset(name string) (InputState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := s.state.ApplyPreset(name)
	if applied {
		s.updatedAt = time.Now()
	}
	return s.state, applied
}

// Snapshot recomputes the full results for the current state.
func (s *Session) Snapshot() ResultsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Recompute(s.state)
}

// UpdatedAt reports the last mutation time, for idle cleanup.
func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}
