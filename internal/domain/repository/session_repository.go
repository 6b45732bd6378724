package repository

import (
	"context"
	"time"

	"oilshare/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when a session does not exist or has expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores logistics sessions.
// Returned sessions are copies; changes go through UpdateSession.
type SessionRepository interface {
	// CreateSession stores a new session.
	CreateSession(ctx context.Context, session *entity.Session) error

	// FindSessionByID returns a copy of the session.
	FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// UpdateSession applies fn to the stored session while holding its lock
	// and returns a copy of the result.
	UpdateSession(ctx context.Context, id uuid.UUID, fn func(*entity.Session) error) (*entity.Session, error)

	// DeleteSession removes a session.
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes sessions idle since before the cutoff and returns how many were removed.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int, error)
}
