package entity

import (
	"time"

	"github.com/google/uuid"
)

// CollectionRequest is a shared pickup requested for a viable selection.
type CollectionRequest struct {
	ID           uuid.UUID         `json:"id"`
	SessionID    uuid.UUID         `json:"session_id"`
	SelfID       string            `json:"self_id"`
	GeneratorIDs []string          `json:"generator_ids"`
	Outcome      CollectionOutcome `json:"outcome"`
	RequestedAt  time.Time         `json:"requested_at"`
}
