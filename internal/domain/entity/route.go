package entity

// RoutePointType distinguishes generators from the depot on a route.
type RoutePointType string

const (
	RoutePointGenerator RoutePointType = "generator"
	RoutePointDepot     RoutePointType = "depot"
)

// RoutePoint is a stop drawn on the route preview.
type RoutePoint struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Lat      float64        `json:"lat"`
	Lng      float64        `json:"lng"`
	Type     RoutePointType `json:"type"`
	DemandKg *float64       `json:"demand_kg,omitempty"` // Only set for generators.
}

// RoutePreview is the presentational route for a selection.
// Path ordering is a placeholder sort, not an optimized route.
type RoutePreview struct {
	Points           []RoutePoint `json:"points"`
	Path             []RoutePoint `json:"path"`
	Stops            int          `json:"stops"`
	PathLength       float64      `json:"path_length"`
	EstimatedMinutes int          `json:"estimated_minutes"`
	ETA              string       `json:"eta"`
	Bounds           [4]float64   `json:"bounds"` // min lng, min lat, max lng, max lat
}
