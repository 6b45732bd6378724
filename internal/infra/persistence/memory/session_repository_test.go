package memory

import (
	"context"
	"testing"
	"time"

	"oilshare/internal/domain/entity"
	"oilshare/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestSession(clock *fakeClock) *entity.Session {
	return &entity.Session{
		ID:        uuid.New(),
		Selection: entity.NewSelection("G1"),
		CreatedAt: clock.Now(),
		UpdatedAt: clock.Now(),
	}
}

func TestSessionStore_CreateAndFindReturnsCopies(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	store := NewSessionStore(time.Hour, clock.Now)
	ctx := context.Background()

	session := newTestSession(clock)
	require.NoError(t, store.CreateSession(ctx, session))

	// Mutating the caller's value must not leak into the store
	session.Selection.Toggle("G2")

	found, err := store.FindSessionByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"G1"}, found.Selection.IDs())

	found.Selection.Toggle("G3")
	again, err := store.FindSessionByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"G1"}, again.Selection.IDs())
}

func TestSessionStore_UpdateSession(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	store := NewSessionStore(time.Hour, clock.Now)
	ctx := context.Background()

	session := newTestSession(clock)
	require.NoError(t, store.CreateSession(ctx, session))

	clock.Advance(time.Minute)
	updated, err := store.UpdateSession(ctx, session.ID, func(s *entity.Session) error {
		s.Selection.Toggle("G2")

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"G1", "G2"}, updated.Selection.IDs())
	assert.Equal(t, clock.Now(), updated.UpdatedAt)

	failure := errors.New("boom")
	_, err = store.UpdateSession(ctx, session.ID, func(s *entity.Session) error {
		s.Selection.Reset()

		return failure
	})
	assert.ErrorIs(t, err, failure)

	found, err := store.FindSessionByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"G1", "G2"}, found.Selection.IDs())
}

func TestSessionStore_SessionsAreIsolated(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	store := NewSessionStore(time.Hour, clock.Now)
	ctx := context.Background()

	first := newTestSession(clock)
	second := newTestSession(clock)
	require.NoError(t, store.CreateSession(ctx, first))
	require.NoError(t, store.CreateSession(ctx, second))

	_, err := store.UpdateSession(ctx, first.ID, func(s *entity.Session) error {
		s.Selection.Toggle("G4")

		return nil
	})
	require.NoError(t, err)

	found, err := store.FindSessionByID(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, found.Selection.Contains("G4"))
}

func TestSessionStore_Expiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	store := NewSessionStore(30*time.Minute, clock.Now)
	ctx := context.Background()

	session := newTestSession(clock)
	require.NoError(t, store.CreateSession(ctx, session))

	clock.Advance(20 * time.Minute)
	_, err := store.FindSessionByID(ctx, session.ID)
	require.NoError(t, err)

	clock.Advance(11 * time.Minute)
	_, err = store.FindSessionByID(ctx, session.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	_, err = store.UpdateSession(ctx, session.ID, func(*entity.Session) error { return nil })
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionStore_DeleteSession(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	store := NewSessionStore(0, clock.Now)
	ctx := context.Background()

	session := newTestSession(clock)
	require.NoError(t, store.CreateSession(ctx, session))

	require.NoError(t, store.DeleteSession(ctx, session.ID))
	assert.ErrorIs(t, store.DeleteSession(ctx, session.ID), repository.ErrSessionNotFound)
}

func TestSessionStore_DeleteExpired(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	store := NewSessionStore(time.Hour, clock.Now)
	ctx := context.Background()

	old := newTestSession(clock)
	require.NoError(t, store.CreateSession(ctx, old))

	clock.Advance(2 * time.Hour)
	fresh := newTestSession(clock)
	require.NoError(t, store.CreateSession(ctx, fresh))

	removed, err := store.DeleteExpired(ctx, clock.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = store.FindSessionByID(ctx, fresh.ID)
	assert.NoError(t, err)
}
