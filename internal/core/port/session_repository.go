package port

import (
	"context"
	"errors"
	"time"

	"fundboard/internal/core/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores dashboard sessions. It is an outbound port in
// hexagonal architecture. Implementations must be concurrency-safe.
type SessionRepository interface {
	// Save inserts or replaces a session.
	Save(ctx context.Context, s domain.Session) error
	// Get returns the session with id or ErrSessionNotFound.
	Get(ctx context.Context, id string) (domain.Session, error)
	// Touch records activity on a session.
	Touch(ctx context.Context, id string, at time.Time) error
	// Delete removes a session. Unknown ids yield ErrSessionNotFound.
	Delete(ctx context.Context, id string) error
	// DeleteIdle removes unpinned sessions last seen before cutoff and
	// returns how many were removed.
	DeleteIdle(ctx context.Context, cutoff time.Time) (int, error)
	// Count returns the number of stored sessions.
	Count(ctx context.Context) (int, error)
}

// ErrSessionPinned is returned when deleting the default session.
var ErrSessionPinned = errors.New("session is pinned")
