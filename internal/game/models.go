/*
Package game
File: models.go
Description:
    Defines the data structures of the airport simulation.
    This file is the "schema" of the engine: the Airport aggregate, its pending
    capital projects and loans, the per-year metrics, and the flat Snapshot
    handed back to callers after every transition.

    No logic is performed here; this file is strictly for type definitions.
*/

package game

// InitialConditions are the opening stocks of a new airport.
// They map directly to the 'initial' block of a scenario file.
type InitialConditions struct {
	Traffic     float64 `yaml:"traffic" json:"traffic"`           // Passengers per year
	Equity      float64 `yaml:"equity" json:"equity"`             // Book equity
	Assets      float64 `yaml:"assets" json:"assets"`             // Book assets
	OpexRatio   float64 `yaml:"opex_ratio" json:"opex_ratio"`     // Opex as a share of asset replacement value
	AssetValue  float64 `yaml:"asset_value" json:"asset_value"`   // Asset replacement value
	CargoTonnes float64 `yaml:"cargo_tonnes" json:"cargo_tonnes"` // Cargo tonnes per year
}

// ProjectKind selects which terminal effect a capital project has when it matures.
type ProjectKind string

const (
	ProjectPaxCapacity ProjectKind = "pax_capacity" // Terminal capacity, asset value and depreciation
	ProjectCargoVolume ProjectKind = "cargo_volume" // Third-party financed, adds cargo tonnes
	ProjectRetailSpace ProjectKind = "retail_space" // Non-aero floor space, asset value and depreciation
)

// CapexProject is a capital project waiting for its lead time to run out.
type CapexProject struct {
	Name              string      `json:"name"`
	Kind              ProjectKind `json:"kind"`
	Cost              float64     `json:"cost"`
	CapacityEffect    float64     `json:"capacity_effect"` // Pax, tonnes or m² depending on Kind
	LeadTimeRemaining int         `json:"lead_time_remaining"`
}

// Loan is an amortizing bank loan with equal principal installments.
type Loan struct {
	OriginalAmount    float64 `json:"original_amount"`
	OutstandingAmount float64 `json:"outstanding_amount"`
	YearsRemaining    int     `json:"years_remaining"`
	InterestRate      float64 `json:"interest_rate"`
}

// Asset is a commissioned project still being depreciated.
type Asset struct {
	Name           string  `json:"name"`
	Cost           float64 `json:"cost"`
	YearsRemaining int     `json:"years_remaining"`
}

// YearMetrics holds the transient results of the latest transition.
// Every field is rewritten by AdvanceYear; nothing here is a decision.
type YearMetrics struct {
	GDPGrowthFactor float64 `json:"gdp_growth_factor"`

	// Traffic decomposition
	QualityFactor     float64 `json:"quality_factor"`
	OpexQualityImpact float64 `json:"opex_quality_impact"`
	ChargeImpact      float64 `json:"charge_impact"`
	CostImpact        float64 `json:"cost_impact"`
	MarketingImpact   float64 `json:"marketing_impact"`
	TrafficGrowthRate float64 `json:"traffic_growth_rate"`
	CargoGrowthRate   float64 `json:"cargo_growth_rate"`

	// Income statement
	RevenueAero       float64 `json:"revenue_aero"`
	RevenueNonAero    float64 `json:"revenue_non_aero"`
	RevenueCargo      float64 `json:"revenue_cargo"`
	ConcessionRevenue float64 `json:"concession_revenue"`
	AncillaryRevenue  float64 `json:"ancillary_revenue"`
	TotalOpex         float64 `json:"total_opex"`
	EBITDA            float64 `json:"ebitda"`
	EBITDAR           float64 `json:"ebitdar"`
	Depreciation      float64 `json:"depreciation"`
	InterestPaid      float64 `json:"interest_paid"`
	PrincipalRepaid   float64 `json:"principal_repaid"`

	// Regulatory true-up
	RegulatedRevenue  float64 `json:"regulated_revenue"`
	RegulatedShare    float64 `json:"regulated_share"`
	RegulatedProfit   float64 `json:"regulated_profit"`
	UnregulatedProfit float64 `json:"unregulated_profit"`
	ProfitBeforeComp  float64 `json:"profit_before_comp"`
	Compensation      float64 `json:"compensation"`
	ProfitAfterComp   float64 `json:"profit_after_comp"`

	// Cash flow statement
	OpeningCash float64 `json:"opening_cash"`
	CFO         float64 `json:"cfo"`
	CFI         float64 `json:"cfi"`
	CFF         float64 `json:"cff"`
}

// TotalRevenue is aero + non-aero + cargo revenue.
func (m YearMetrics) TotalRevenue() float64 {
	return m.RevenueAero + m.RevenueNonAero + m.RevenueCargo
}

// Airport is the single mutable aggregate of a simulation session.
// It is created once by NewAirport, mutated by the decision operations during
// a year, and rolled forward by AdvanceYear.
type Airport struct {
	Strategy StrategyKind `json:"strategy"`
	Year     int          `json:"year"` // Completed transitions

	// Operational stocks
	Traffic                 float64 `json:"traffic"`
	CargoTonnes             float64 `json:"cargo_tonnes"`
	CapacityPax             float64 `json:"capacity_pax"`
	CurrentMovements        float64 `json:"current_movements"` // Peak-hour runway movements
	RunwayCapacityMovements float64 `json:"runway_capacity_movements"`
	PaxPerMovement          float64 `json:"pax_per_movement"`
	PeakHourFactor          float64 `json:"peak_hour_factor"`

	// Financial stocks
	Equity                float64 `json:"equity"`
	Assets                float64 `json:"assets"`
	Debt                  float64 `json:"debt"`
	CashBalance           float64 `json:"cash_balance"`
	RetainedEarnings      float64 `json:"retained_earnings"`
	AssetReplacementValue float64 `json:"asset_replacement_value"`
	NonAeroSqm            float64 `json:"non_aero_sqm"`

	// Rates and prices
	AeronauticalCharge  float64 `json:"aeronautical_charge"`
	CargoChargePerTonne float64 `json:"cargo_charge_per_tonne"`
	NonAeroSpendPerPax  float64 `json:"non_aero_spend_per_pax"`
	OpexRatio           float64 `json:"opex_ratio"`
	Opex                float64 `json:"opex"`

	// Per-year accumulators, reset at the end of every transition
	MarketingBudgetRemaining float64 `json:"marketing_budget_remaining"`
	MarketingImpact          float64 `json:"marketing_impact"`
	CapexCashOutflow         float64 `json:"capex_cash_outflow"`
	NewLoansThisYear         float64 `json:"new_loans_this_year"`

	// Collections
	CapexProjects []CapexProject `json:"capex_projects"`
	Loans         []Loan         `json:"loans"`
	Commissioned  []Asset        `json:"commissioned"`

	Metrics YearMetrics `json:"metrics"`
}

// EventKind classifies an Event.
type EventKind string

const (
	EventProjectCommissioned EventKind = "project_commissioned"
	EventCompensationPaid    EventKind = "compensation_paid"
	EventLoanRepaid          EventKind = "loan_repaid"
)

// Event is a notable happening of a transition, reported back to the caller.
type Event struct {
	Kind    EventKind `json:"kind"`
	Message string    `json:"message"`
}

// Snapshot is the flat per-year record produced by a transition.
// It carries every metric a yearly report needs.
type Snapshot struct {
	Year     int          `json:"year"`
	Strategy StrategyKind `json:"strategy"`

	// Operations
	Traffic                 float64 `json:"traffic"`
	TrafficGrowthRate       float64 `json:"traffic_growth_rate"`
	CargoTonnes             float64 `json:"cargo_tonnes"`
	CargoGrowthRate         float64 `json:"cargo_growth_rate"`
	CapacityPax             float64 `json:"capacity_pax"`
	TerminalUtilization     float64 `json:"terminal_utilization"`
	CurrentMovements        float64 `json:"current_movements"`
	RunwayCapacityMovements float64 `json:"runway_capacity_movements"`
	RunwayUtilization       float64 `json:"runway_utilization"`

	// Impact decomposition
	QualityFactor     float64 `json:"quality_factor"`
	OpexQualityImpact float64 `json:"opex_quality_impact"`
	ChargeImpact      float64 `json:"charge_impact"`
	CostImpact        float64 `json:"cost_impact"`
	MarketingImpact   float64 `json:"marketing_impact"`

	// Prices and cost base
	AeronauticalCharge float64 `json:"aeronautical_charge"`
	NonAeroSpendPerPax float64 `json:"non_aero_spend_per_pax"`
	Opex               float64 `json:"opex"`
	OpexToAssetRatio   float64 `json:"opex_to_asset_ratio"`

	// Income statement
	RevenueAero       float64 `json:"revenue_aero"`
	RevenueNonAero    float64 `json:"revenue_non_aero"`
	RevenueCargo      float64 `json:"revenue_cargo"`
	TotalRevenue      float64 `json:"total_revenue"`
	ConcessionRevenue float64 `json:"concession_revenue"`
	AncillaryRevenue  float64 `json:"ancillary_revenue"`
	EBITDA            float64 `json:"ebitda"`
	EBITDAR           float64 `json:"ebitdar"`
	Depreciation      float64 `json:"depreciation"`
	InterestPaid      float64 `json:"interest_paid"`

	// Regulation and profit
	RegulatedRevenue  float64 `json:"regulated_revenue"`
	RegulatedShare    float64 `json:"regulated_share"`
	RegulatedProfit   float64 `json:"regulated_profit"`
	UnregulatedProfit float64 `json:"unregulated_profit"`
	ProfitBeforeComp  float64 `json:"profit_before_comp"`
	Compensation      float64 `json:"compensation"`
	ProfitAfterComp   float64 `json:"profit_after_comp"`
	ROE               float64 `json:"roe"` // Percent, 0 when equity is not positive

	// Balance sheet
	Equity                float64  `json:"equity"`
	Debt                  float64  `json:"debt"`
	Gearing               *float64 `json:"gearing"` // nil when equity is zero
	RetainedEarnings      float64  `json:"retained_earnings"`
	AssetReplacementValue float64  `json:"asset_replacement_value"`
	NonAeroSqm            float64  `json:"non_aero_sqm"`

	// Cash flow
	OpeningCash     float64 `json:"opening_cash"`
	CFO             float64 `json:"cfo"`
	CFI             float64 `json:"cfi"`
	CFF             float64 `json:"cff"`
	PrincipalRepaid float64 `json:"principal_repaid"`
	CashBalance     float64 `json:"cash_balance"`

	// Books
	PendingProjects  []CapexProject `json:"pending_projects"`
	OutstandingLoans int            `json:"outstanding_loans"`
	MarketingBudget  float64        `json:"marketing_budget"`

	Events []Event `json:"events,omitempty"`
}
