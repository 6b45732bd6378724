// Package estimator computes the cost and impact of a shared UCO/FOG pickup.
//
// Estimate is a pure function of its inputs: it never mutates the registry or
// the selection and returns the same outcome for the same arguments.
package estimator

import (
	"oilshare/internal/domain/entity"
)

// Reference product constants.
const (
	DefaultBaseCostPerUser        = 25.0
	DefaultPairEfficiencyFactor   = 0.85
	DefaultGroupEfficiencyFactor  = 0.70
	DefaultCO2PerAdditionalStopKg = 2.5
	DefaultAnchorThresholdKg      = 20.0
)

// Params are the tunable constants of the estimator. Fields are used as
// given, so a zero CO2 factor or anchor threshold is honored. Start from
// DefaultParams to override a subset.
type Params struct {
	BaseCostPerUser        float64
	PairEfficiencyFactor   float64
	GroupEfficiencyFactor  float64
	CO2PerAdditionalStopKg float64
	AnchorThresholdKg      float64
}

// DefaultParams returns the reference constants.
func DefaultParams() Params {
	return Params{
		BaseCostPerUser:        DefaultBaseCostPerUser,
		PairEfficiencyFactor:   DefaultPairEfficiencyFactor,
		GroupEfficiencyFactor:  DefaultGroupEfficiencyFactor,
		CO2PerAdditionalStopKg: DefaultCO2PerAdditionalStopKg,
		AnchorThresholdKg:      DefaultAnchorThresholdKg,
	}
}

// EfficiencyFactor returns the cost multiplier for a route with count participants.
func (p Params) EfficiencyFactor(count int) float64 {
	switch {
	case count <= 1:
		return 1.0
	case count == 2:
		return p.PairEfficiencyFactor
	default:
		return p.GroupEfficiencyFactor
	}
}

// Resolve returns the registry entries whose ids are in the selection, in
// registry order. Selected ids missing from the registry are dropped.
func Resolve(registry []*entity.Generator, selection *entity.Selection) []*entity.Generator {
	if selection == nil {
		return nil
	}

	resolved := make([]*entity.Generator, 0, selection.Len())
	for _, g := range registry {
		if g != nil && selection.Contains(g.ID) {
			resolved = append(resolved, g)
		}
	}

	return resolved
}

// Estimate computes the outcome of collecting the selected generators together.
func Estimate(params Params, registry []*entity.Generator, selection *entity.Selection) entity.CollectionOutcome {
	resolved := Resolve(registry, selection)

	var (
		totalKg   float64
		selfLoad  float64
		hasAnchor bool
	)
	for _, g := range resolved {
		totalKg += g.CurrentLoadKg
		if g.CurrentLoadKg >= params.AnchorThresholdKg {
			hasAnchor = true
		}
	}

	if selection != nil {
		for _, g := range registry {
			if g != nil && g.ID == selection.SelfID() {
				selfLoad = g.CurrentLoadKg

				break
			}
		}
	}

	count := len(resolved)
	standardCost := float64(count) * params.BaseCostPerUser
	factor := params.EfficiencyFactor(count)
	optimizedCost := standardCost * factor

	co2 := float64(count-1) * params.CO2PerAdditionalStopKg
	if co2 < 0 {
		co2 = 0
	}

	isSelfLow := selfLoad < params.AnchorThresholdKg

	return entity.CollectionOutcome{
		TotalKg:          totalKg,
		Count:            count,
		StandardCost:     standardCost,
		EfficiencyFactor: factor,
		OptimizedCost:    optimizedCost,
		SavingsUSD:       standardCost - optimizedCost,
		CO2ReductionKg:   co2,
		IsSelfLow:        isSelfLow,
		HasAnchor:        hasAnchor,
		IsViable:         !isSelfLow || hasAnchor,
	}
}
