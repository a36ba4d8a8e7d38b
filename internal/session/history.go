/*
Package session
File: history.go
Description:
    The flat per-year history record. One record is appended for every
    completed transition and carries the year's accepted decisions next to
    the resulting key metrics, the way the decision and metrics tables
    present them.

    Monetary fields are decimals rounded to cents so the JSON and the text
    reports never show binary floating-point noise.
*/

package session

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/everforgeworks/airport-tycoon/internal/game"
)

// HistoryRecord is one completed year.
type HistoryRecord struct {
	Year int `json:"year"`

	// Decisions
	Project             string          `json:"project,omitempty"`
	LeadTime            int             `json:"lead_time,omitempty"`
	AvailableYear       int             `json:"available_year,omitempty"`
	LoanAmount          decimal.Decimal `json:"loan_amount"`
	Campaigns           []string        `json:"campaigns"`
	OpexChangePct       float64         `json:"opex_change_pct"`
	AeroChargeChangePct float64         `json:"aero_charge_change_pct"`
	GDPGrowthPct        float64         `json:"gdp_growth_pct"`

	// Operations
	Traffic                float64 `json:"traffic"`
	CapacityPax            float64 `json:"capacity_pax"`
	TerminalUtilizationPct float64 `json:"terminal_utilization_pct"`
	RunwayUtilizationPct   float64 `json:"runway_utilization_pct"`
	CargoTonnes            float64 `json:"cargo_tonnes"`
	CargoGrowthPct         float64 `json:"cargo_growth_pct"`
	QualityImpactPct       float64 `json:"quality_impact_pct"`
	ChargeImpactPct        float64 `json:"charge_impact_pct"`
	CostImpactPct          float64 `json:"cost_impact_pct"`

	// Finance
	ProfitAfterComp decimal.Decimal `json:"profit_after_comp"`
	Compensation    decimal.Decimal `json:"compensation"`
	EndCash         decimal.Decimal `json:"end_cash"`
	CFO             decimal.Decimal `json:"cfo"`
	CFI             decimal.Decimal `json:"cfi"`
	CFF             decimal.Decimal `json:"cff"`
	Equity          decimal.Decimal `json:"equity"`
	Debt            decimal.Decimal `json:"debt"`
	Gearing         *float64        `json:"gearing"`
	ROE             float64         `json:"roe"`
}

// yearDecisions collects the decisions accepted during the current year.
type yearDecisions struct {
	projects  []string
	leadTime  int
	loan      float64
	campaigns []string
}

// money rounds a float amount to cents.
func money(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v).Round(2)
}

// newHistoryRecord builds the record of the year that snap closes.
func newHistoryRecord(snap game.Snapshot, d yearDecisions, gdp, opexPct, chargePct float64) HistoryRecord {
	r := HistoryRecord{
		Year:                snap.Year,
		LoanAmount:          money(d.loan),
		Campaigns:           append([]string{}, d.campaigns...),
		OpexChangePct:       opexPct,
		AeroChargeChangePct: chargePct,
		GDPGrowthPct:        gdp,

		Traffic:                snap.Traffic,
		CapacityPax:            snap.CapacityPax,
		TerminalUtilizationPct: snap.TerminalUtilization * 100,
		RunwayUtilizationPct:   snap.RunwayUtilization * 100,
		CargoTonnes:            snap.CargoTonnes,
		CargoGrowthPct:         snap.CargoGrowthRate * 100,
		QualityImpactPct:       (snap.QualityFactor - 1) * 100,
		ChargeImpactPct:        snap.ChargeImpact * 100,
		CostImpactPct:          -snap.CostImpact * 100,

		ProfitAfterComp: money(snap.ProfitAfterComp),
		Compensation:    money(snap.Compensation),
		EndCash:         money(snap.CashBalance),
		CFO:             money(snap.CFO),
		CFI:             money(snap.CFI),
		CFF:             money(snap.CFF),
		Equity:          money(snap.Equity),
		Debt:            money(snap.Debt),
		Gearing:         snap.Gearing,
		ROE:             snap.ROE,
	}
	if len(d.projects) > 0 {
		r.Project = strings.Join(d.projects, ", ")
		r.LeadTime = d.leadTime
		r.AvailableYear = snap.Year + d.leadTime
	}
	return r
}
