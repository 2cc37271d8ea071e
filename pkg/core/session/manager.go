package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// idleExpiry is how long an untouched session survives before cleanup.
const idleExpiry = 24 * time.Hour

// Manager is the in-memory registry of live sessions, keyed by uuid. Nothing
// is persisted: a session lives exactly as long as the process and its idle
// window.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a session registry and starts its hourly idle-cleanup
// routine.
func NewManager() *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
	}
	go m.cleanup()
	return m
}

// Create registers a fresh session seeded with Defaults().
func (m *Manager) Create() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := newSession(uuid.New().String())
	m.sessions[s.ID] = s
	return s
}

// Get retrieves a session by id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// cleanup drops sessions idle longer than idleExpiry.
func (m *Manager) cleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	for range ticker.C {
		m.mu.Lock()
		for id, s := range m.sessions {
			if time.Since(s.UpdatedAt()) > idleExpiry {
				delete(m.sessions, id)
			}
		}
		m.mu.Unlock()
	}
}
