/*
Package game
File: catalog.go
Description:
    Fixed catalogs of the simulation: the capital projects an operator may
    initiate and the marketing campaigns it may fund. Both are business rules
    of this simulation, not configuration.
*/

package game

// ProjectSpec describes a capital project on offer.
type ProjectSpec struct {
	Name           string      `json:"name" yaml:"name"`
	Kind           ProjectKind `json:"kind" yaml:"kind"`
	Cost           float64     `json:"cost" yaml:"cost"`
	CapacityEffect float64     `json:"capacity_effect" yaml:"capacity_effect"`
	LeadTime       int         `json:"lead_time" yaml:"lead_time"`
	LoanAllowed    bool        `json:"loan_allowed" yaml:"loan_allowed"`
}

const (
	ProjectNewTerminal     = "New Terminal"
	ProjectExpandRunway    = "Expand Runway"
	ProjectCargoHangar     = "Cargo Hangar"
	ProjectRetailExpansion = "Non-Aero Retail Expansion"

	retailSqmPerExpansion = 1000
)

// Projects is the capex catalog in presentation order.
var Projects = []ProjectSpec{
	{Name: ProjectNewTerminal, Kind: ProjectPaxCapacity, Cost: 150_000_000, CapacityEffect: 2_000_000, LeadTime: 3, LoanAllowed: true},
	{Name: ProjectExpandRunway, Kind: ProjectPaxCapacity, Cost: 250_000_000, CapacityEffect: 3_000_000, LeadTime: 3, LoanAllowed: true},
	{Name: ProjectCargoHangar, Kind: ProjectCargoVolume, Cost: 45_000_000, CapacityEffect: 200_000, LeadTime: 1},
	{Name: ProjectRetailExpansion, Kind: ProjectRetailSpace, Cost: 50_000_000, CapacityEffect: retailSqmPerExpansion, LeadTime: 1, LoanAllowed: true},
}

// CampaignCategory says where a campaign's impact lands.
type CampaignCategory string

const (
	CampaignAero    CampaignCategory = "aero"     // One-year traffic impulse
	CampaignNonAero CampaignCategory = "non_aero" // Permanent lift of spend per passenger
)

// Campaign is a marketing option with its per-strategy effectiveness.
type Campaign struct {
	Code        string                   `json:"code" yaml:"code"`
	Label       string                   `json:"label" yaml:"label"`
	Cost        float64                  `json:"cost" yaml:"cost"`
	BaseImpact  float64                  `json:"base_impact" yaml:"base_impact"`
	Category    CampaignCategory         `json:"category" yaml:"category"`
	Multipliers map[StrategyKind]float64 `json:"multipliers" yaml:"multipliers"`
}

// Multiplier is the campaign's effectiveness for a strategy, 1.0 if unlisted.
func (c Campaign) Multiplier(k StrategyKind) float64 {
	if m, ok := c.Multipliers[k]; ok {
		return m
	}
	return 1.0
}

// multipliers builds a table in Strategies order.
func multipliers(lhh, rh, shs, lhs, lc, cargo, pch float64) map[StrategyKind]float64 {
	return map[StrategyKind]float64{
		LongHaulHub:          lhh,
		RegionalHub:          rh,
		ShortHaulSpoke:       shs,
		LongHaulSpoke:        lhs,
		LowCostAirport:       lc,
		CargoAirport:         cargo,
		PassengerAndCargoHub: pch,
	}
}

// Campaigns is the marketing catalog in presentation order.
var Campaigns = []Campaign{
	{Code: "a", Label: "General Awareness", Cost: 1_800_000, BaseImpact: 0.015, Category: CampaignAero,
		Multipliers: multipliers(0.8, 1.0, 1.2, 1.0, 1.5, 0.5, 1.0)},
	{Code: "b", Label: "Long Haul Promotion", Cost: 2_000_000, BaseImpact: 0.02, Category: CampaignAero,
		Multipliers: multipliers(1.5, 0.8, 0.5, 1.2, 0.5, 0.3, 1.3)},
	{Code: "c", Label: "Charges Discount", Cost: 5_000_000, BaseImpact: 0.04, Category: CampaignAero,
		Multipliers: multipliers(0.7, 1.0, 1.5, 0.9, 2.0, 0.1, 0.8)},
	{Code: "d", Label: "Attract New Airlines", Cost: 2_500_000, BaseImpact: 0.03, Category: CampaignAero,
		Multipliers: multipliers(1.2, 1.1, 0.7, 1.3, 0.9, 0.8, 1.0)},
	{Code: "e", Label: "General Aviation Promo", Cost: 1_250_000, BaseImpact: 0.01, Category: CampaignAero,
		Multipliers: multipliers(0.5, 0.8, 1.2, 0.9, 1.0, 1.5, 1.2)},
	{Code: "f", Label: "Retail Promotion", Cost: 1_000_000, BaseImpact: 0.1, Category: CampaignNonAero,
		Multipliers: multipliers(1.5, 1.2, 0.8, 1.0, 0.5, 0.1, 1.5)},
	{Code: "g", Label: "Gourmet Food & Beverage Launch", Cost: 2_000_000, BaseImpact: 0.2, Category: CampaignNonAero,
		Multipliers: multipliers(2.0, 1.5, 0.5, 1.2, 0.3, 0.1, 1.8)},
}
