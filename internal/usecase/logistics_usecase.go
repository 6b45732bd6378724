package usecase

import (
	"context"

	"oilshare/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionView is a session together with the estimate of its current selection
type SessionView struct {
	ID           uuid.UUID                `json:"id"`
	SelfID       string                   `json:"self_id"`
	GeneratorIDs []string                 `json:"generator_ids"`
	Outcome      entity.CollectionOutcome `json:"outcome"`
	CreatedAt    string                   `json:"created_at"`
	UpdatedAt    string                   `json:"updated_at"`
}

// LogisticsUsecase defines the collaborative collection use cases
type LogisticsUsecase interface {
	// ListGenerators returns the generator registry
	ListGenerators(ctx context.Context) ([]*entity.Generator, error)

	// Estimate computes the outcome for self plus the given generators without a session
	Estimate(ctx context.Context, generatorIDs []string) (*entity.CollectionOutcome, error)

	// CreateSession starts a selection containing only self
	CreateSession(ctx context.Context) (*SessionView, error)

	// GetSession returns the session selection and its outcome
	GetSession(ctx context.Context, sessionID uuid.UUID) (*SessionView, error)

	// DeleteSession discards a session
	DeleteSession(ctx context.Context, sessionID uuid.UUID) error

	// ToggleGenerator flips membership of a registry generator in the session
	ToggleGenerator(ctx context.Context, sessionID uuid.UUID, generatorID string) (*SessionView, error)

	// ResetSession restores the session selection to self only
	ResetSession(ctx context.Context, sessionID uuid.UUID) (*SessionView, error)

	// PreviewRoute returns the route preview for the session selection
	PreviewRoute(ctx context.Context, sessionID uuid.UUID) (*entity.RoutePreview, error)

	// RequestCollection publishes a shared pickup request when the selection is viable
	RequestCollection(ctx context.Context, sessionID uuid.UUID) (*entity.CollectionRequest, error)
}
