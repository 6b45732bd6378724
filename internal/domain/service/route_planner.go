package service

import (
	"oilshare/internal/domain/entity"
)

// RoutePlanner builds the presentational route for a set of generators.
type RoutePlanner interface {
	// Preview returns the route through the given generators ending at the depot.
	Preview(generators []*entity.Generator) *entity.RoutePreview
}
