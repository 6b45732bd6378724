// Package repository defines the interfaces for the storage layer.
package repository

import (
	"context"

	"oilshare/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrGeneratorNotFound is returned when an id is not part of the registry.
var ErrGeneratorNotFound = errors.New("generator not found")

// GeneratorRepository provides read-only access to the generator registry.
type GeneratorRepository interface {
	// List returns every generator in registry order.
	List(ctx context.Context) ([]*entity.Generator, error)

	// FindByID returns a single generator.
	FindByID(ctx context.Context, id string) (*entity.Generator, error)
}
