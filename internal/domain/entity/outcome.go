package entity

// CollectionOutcome is the cost and impact estimate for a selection.
// It is derived on demand and never stored.
type CollectionOutcome struct {
	TotalKg          float64 `json:"total_kg"`          // Sum of current loads of the resolved generators.
	Count            int     `json:"count"`             // Number of resolved generators.
	StandardCost     float64 `json:"standard_cost"`     // Cost if every participant collected alone.
	EfficiencyFactor float64 `json:"efficiency_factor"` // Tier multiplier applied to the standard cost.
	OptimizedCost    float64 `json:"optimized_cost"`    // Cost of the shared route.
	SavingsUSD       float64 `json:"savings_usd"`       // StandardCost - OptimizedCost.
	CO2ReductionKg   float64 `json:"co2_reduction_kg"`  // Emissions avoided by merging stops.
	IsSelfLow        bool    `json:"is_self_low"`       // Self load is below the anchor threshold.
	HasAnchor        bool    `json:"has_anchor"`        // Some selected generator meets the threshold.
	IsViable         bool    `json:"is_viable"`         // Whether the shared route should be offered.
}
