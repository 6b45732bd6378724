// Package entity contains the core business objects of the project.
package entity

// WasteType classifies the waste a generator produces.
type WasteType string

const (
	// WasteTypeUCO is used cooking oil.
	WasteTypeUCO WasteType = "UCO"
	// WasteTypeFOG is fats, oils and grease recovered from grease traps.
	WasteTypeFOG WasteType = "FOG"
)

// IsValid reports whether the waste type is one of the known kinds.
func (w WasteType) IsValid() bool {
	return w == WasteTypeUCO || w == WasteTypeFOG
}

// Generator is a business producing UCO or FOG that can join a shared pickup.
// Generators come from the static registry and are never mutated.
type Generator struct {
	ID            string    `json:"id"`              // Stable registry identifier, e.g. "G1".
	Name          string    `json:"name"`            // Display name.
	Address       string    `json:"address"`         // Human-readable street address.
	DistanceKm    float64   `json:"distance_km"`     // Distance from the shared depot.
	CurrentLoadKg float64   `json:"current_load_kg"` // Pending waste mass awaiting collection.
	WasteType     WasteType `json:"waste_type"`      // UCO or FOG.
	Lat           float64   `json:"lat"`             // Position in the 0-100 planar map space.
	Lng           float64   `json:"lng"`             // Position in the 0-100 planar map space.
}
