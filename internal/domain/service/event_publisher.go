package service

import (
	"context"
	"time"
)

// CollectionRequestEvent is published when a session requests a shared pickup
// and is consumed by the dispatcher worker.
type CollectionRequestEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	CollectionID   string    `json:"collection_id"`
	SessionID      string    `json:"session_id"`
	SelfID         string    `json:"self_id"`
	GeneratorIDs   []string  `json:"generator_ids"`
	TotalKg        float64   `json:"total_kg"`
	SavingsUSD     float64   `json:"savings_usd"`
	CO2ReductionKg float64   `json:"co2_reduction_kg"`
	RequestedAt    time.Time `json:"requested_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCollectionRequest publishes a collection request for async dispatch
	PublishCollectionRequest(ctx context.Context, event *CollectionRequestEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
