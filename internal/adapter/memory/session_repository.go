package memory

import (
	"context"
	"sync"
	"time"

	"fundboard/internal/core/domain"
	"fundboard/internal/core/port"
)

// SessionRepository implements port.SessionRepository in process memory.
// Datasets are immutable, so sessions are handed out by value.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewSessionRepository returns an empty repository.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]domain.Session)}
}

// Save stores s, replacing any session with the same id.
func (r *SessionRepository) Save(_ context.Context, s domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return nil
}

// Get returns a session by id.
func (r *SessionRepository) Get(_ context.Context, id string) (domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return domain.Session{}, port.ErrSessionNotFound
	}
	return s, nil
}

// Touch moves LastSeen forward; it never moves it back.
func (r *SessionRepository) Touch(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return port.ErrSessionNotFound
	}
	if at.After(s.LastSeen) {
		s.LastSeen = at
		r.sessions[id] = s
	}
	return nil
}

// Delete removes a session by id.
func (r *SessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return port.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// DeleteIdle evicts unpinned sessions not seen since cutoff.
func (r *SessionRepository) DeleteIdle(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, s := range r.sessions {
		if s.Pinned || !s.LastSeen.Before(cutoff) {
			continue
		}
		delete(r.sessions, id)
		n++
	}
	return n, nil
}

// Count returns the number of stored sessions.
func (r *SessionRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions), nil
}
