/*
Package game
File: strategy.go
Description:
    The strategy table. Every strategy-specific constant of the simulation
    (price elasticity, opex-quality benchmark, penalty and boost multipliers,
    growth-model family) lives in one row of strategyTable.
*/

package game

import "fmt"

// StrategyKind is the business model chosen once at the start of a session.
type StrategyKind string

const (
	LongHaulHub          StrategyKind = "Long Haul Hub"
	RegionalHub          StrategyKind = "Regional Hub"
	ShortHaulSpoke       StrategyKind = "Short Haul Spoke"
	LongHaulSpoke        StrategyKind = "Long Haul Spoke"
	LowCostAirport       StrategyKind = "Low-Cost Airport"
	CargoAirport         StrategyKind = "Cargo Airport"
	PassengerAndCargoHub StrategyKind = "Passenger and Cargo Hub"
)

// Family selects the growth model and the regulated revenue base.
type Family string

const (
	FamilyPassenger Family = "passenger" // Aero revenue is regulated
	FamilyCargo     Family = "cargo"     // Cargo revenue is regulated, traffic follows cargo
	FamilyHybrid    Family = "hybrid"    // Aero and cargo revenue are regulated
)

// StrategyParams is one row of the strategy table.
type StrategyParams struct {
	Family                 Family  `json:"family" yaml:"family"`
	PriceElasticity        float64 `json:"price_elasticity" yaml:"price_elasticity"`
	OpexQualityBenchmark   float64 `json:"opex_quality_benchmark" yaml:"opex_quality_benchmark"`
	CostPenaltyMultiplier  float64 `json:"cost_penalty_multiplier" yaml:"cost_penalty_multiplier"`
	QualityBoostMultiplier float64 `json:"quality_boost_multiplier" yaml:"quality_boost_multiplier"`
}

var strategyTable = map[StrategyKind]StrategyParams{
	LongHaulHub:          {FamilyPassenger, 0.2, 0.10, 1.5, 6},
	RegionalHub:          {FamilyPassenger, 0.4, 0.0813, 2, 5},
	ShortHaulSpoke:       {FamilyPassenger, 0.7, 0.07, 3, 4},
	LongHaulSpoke:        {FamilyPassenger, 0.5, 0.085, 2.5, 5},
	LowCostAirport:       {FamilyPassenger, 0.9, 0.05, 4, 2},
	CargoAirport:         {FamilyCargo, 0.1, 0.15, 1.0, 8},
	PassengerAndCargoHub: {FamilyHybrid, 0.3, 0.12, 1.8, 7},
}

// Strategies lists every strategy in presentation order.
var Strategies = []StrategyKind{
	LongHaulHub,
	RegionalHub,
	ShortHaulSpoke,
	LongHaulSpoke,
	LowCostAirport,
	CargoAirport,
	PassengerAndCargoHub,
}

// ParseStrategy resolves a strategy by its display name.
func ParseStrategy(name string) (StrategyKind, error) {
	k := StrategyKind(name)
	if _, ok := strategyTable[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return k, nil
}

// Params returns the table row of the strategy.
// Unknown strategies fall back to the Regional Hub row.
func (k StrategyKind) Params() StrategyParams {
	if p, ok := strategyTable[k]; ok {
		return p
	}
	return strategyTable[RegionalHub]
}

// Family is shorthand for Params().Family.
func (k StrategyKind) Family() Family {
	return k.Params().Family
}

// CarriesCargo reports whether cargo is a reported business line.
func (k StrategyKind) CarriesCargo() bool {
	f := k.Family()
	return f == FamilyCargo || f == FamilyHybrid
}

// CarriesPassengers reports whether passenger traffic is modeled on its own.
func (k StrategyKind) CarriesPassengers() bool {
	return k.Family() != FamilyCargo
}

// RegulatedRevenue picks the price-regulated revenue lines for the family.
func (f Family) RegulatedRevenue(m YearMetrics) float64 {
	switch f {
	case FamilyCargo:
		return m.RevenueCargo
	case FamilyHybrid:
		return m.RevenueAero + m.RevenueCargo
	default:
		return m.RevenueAero
	}
}
