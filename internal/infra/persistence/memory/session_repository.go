// Package memory implements the repositories on process memory.
// Every store is lost on restart.
package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"oilshare/config"
	"oilshare/internal/domain/entity"
	"oilshare/internal/domain/repository"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const sessionJanitorInterval = time.Minute

// SessionStore keeps logistics sessions and expires them after a period of inactivity.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.Session
	ttl      time.Duration
	now      func() time.Time
}

// SessionParams defines the dependencies of the session repository
type SessionParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewSessionRepository creates the session store and runs its janitor for the app lifetime.
func NewSessionRepository(params SessionParams) repository.SessionRepository {
	store := NewSessionStore(params.Config.Logistics.SessionTTL, time.Now)

	janitorCtx, cancelJanitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go store.runJanitor(janitorCtx, params.Logger, sessionJanitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelJanitor()

			return nil
		},
	})

	return store
}

// NewSessionStore creates an empty store. A non-positive ttl disables expiry.
func NewSessionStore(ttl time.Duration, now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}

	return &SessionStore{
		sessions: make(map[uuid.UUID]*entity.Session),
		ttl:      ttl,
		now:      now,
	}
}

func (s *SessionStore) CreateSession(_ context.Context, session *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session.Clone()

	return nil
}

func (s *SessionStore) FindSessionByID(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.live(id)
	if err != nil {
		return nil, err
	}

	return session.Clone(), nil
}

func (s *SessionStore) UpdateSession(_ context.Context, id uuid.UUID, fn func(*entity.Session) error) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.live(id)
	if err != nil {
		return nil, err
	}

	// fn works on a copy so a failed update leaves the stored session untouched
	working := session.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	working.UpdatedAt = s.now()
	s.sessions[id] = working

	return working.Clone(), nil
}

func (s *SessionStore) DeleteSession(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.live(id); err != nil {
		return err
	}
	delete(s.sessions, id)

	return nil
}

func (s *SessionStore) DeleteExpired(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}

	return removed, nil
}

// live returns the stored session, evicting it when expired. Callers hold mu.
func (s *SessionStore) live(id uuid.UUID) (*entity.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	if s.expired(session) {
		delete(s.sessions, id)

		return nil, repository.ErrSessionNotFound
	}

	return session, nil
}

func (s *SessionStore) expired(session *entity.Session) bool {
	return s.ttl > 0 && s.now().Sub(session.UpdatedAt) > s.ttl
}

func (s *SessionStore) runJanitor(ctx context.Context, logger *slog.Logger, interval time.Duration) {
	if s.ttl <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, _ := s.DeleteExpired(ctx, s.now().Add(-s.ttl))
			if removed > 0 && logger != nil {
				logger.LogAttrs(ctx, slog.LevelDebug, "Expired logistics sessions evicted",
					slog.Int("removed", removed),
				)
			}
		}
	}
}
