// Package route builds the presentational route preview on the 0-100 map plane.
package route

import (
	"slices"
	"time"

	"oilshare/config"
	"oilshare/internal/domain/entity"
	"oilshare/internal/domain/service"
	"oilshare/internal/util"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const defaultMinutesPerStop = 15

// Depot is the shared collection center every route ends at.
type Depot struct {
	ID   string
	Name string
	Lat  float64
	Lng  float64
}

type planner struct {
	depot          Depot
	minutesPerStop int
}

// NewPlanner creates the route planner from the logistics configuration.
func NewPlanner(cfg *config.Config) service.RoutePlanner {
	d := cfg.Logistics.Depot

	return New(Depot{ID: d.ID, Name: d.Name, Lat: d.Lat, Lng: d.Lng}, cfg.Logistics.MinutesPerStop)
}

// New creates a planner for the given depot.
func New(depot Depot, minutesPerStop int) service.RoutePlanner {
	if minutesPerStop <= 0 {
		minutesPerStop = defaultMinutesPerStop
	}
	if depot.ID == "" {
		depot.ID = "DEPOT"
	}

	return &planner{depot: depot, minutesPerStop: minutesPerStop}
}

// Preview lists each generator once followed by the depot. The path is the
// same points ordered by longitude, which is not an optimized route.
func (p *planner) Preview(generators []*entity.Generator) *entity.RoutePreview {
	seen := make(map[string]struct{}, len(generators))
	points := make([]entity.RoutePoint, 0, len(generators)+1)

	for _, g := range generators {
		if g == nil {
			continue
		}
		if _, dup := seen[g.ID]; dup {
			continue
		}
		seen[g.ID] = struct{}{}

		demand := g.CurrentLoadKg
		points = append(points, entity.RoutePoint{
			ID:       g.ID,
			Name:     g.Name,
			Lat:      g.Lat,
			Lng:      g.Lng,
			Type:     entity.RoutePointGenerator,
			DemandKg: &demand,
		})
	}
	stops := len(points)

	points = append(points, entity.RoutePoint{
		ID:   p.depot.ID,
		Name: p.depot.Name,
		Lat:  p.depot.Lat,
		Lng:  p.depot.Lng,
		Type: entity.RoutePointDepot,
	})

	path := slices.Clone(points)
	slices.SortStableFunc(path, func(a, b entity.RoutePoint) int {
		switch {
		case a.Lng < b.Lng:
			return -1
		case a.Lng > b.Lng:
			return 1
		default:
			return 0
		}
	})

	line := make(orb.LineString, 0, len(path))
	for _, pt := range path {
		line = append(line, orb.Point{pt.Lng, pt.Lat})
	}
	bound := line.Bound()

	minutes := len(points) * p.minutesPerStop

	return &entity.RoutePreview{
		Points:           points,
		Path:             path,
		Stops:            stops,
		PathLength:       planar.Length(line),
		EstimatedMinutes: minutes,
		ETA:              util.FormatETA(time.Duration(minutes) * time.Minute),
		Bounds:           [4]float64{bound.Min.X(), bound.Min.Y(), bound.Max.X(), bound.Max.Y()},
	}
}
