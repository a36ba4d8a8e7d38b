/*
Package game
File: state.go
Description:
    Creation of the Airport aggregate and its read model.
    NewAirport applies the fixed opening constants of the simulation on top of
    the scenario's initial conditions. The getters below never mutate state,
    so reading twice without an intervening decision returns the same values.
*/

package game

import (
	"fmt"
	"math"
)

// Fixed constants of the simulation.
const (
	HorizonYears = 10 // Transitions accepted per session

	InitialCapacityPax        = 15_000_000
	InitialRunwayMovements    = 38 // Peak-hour movements
	InitialPaxPerMovement     = 150
	InitialPeakHourFactor     = 0.15
	InitialAeronauticalCharge = 15
	InitialCargoChargeTonne   = 100
	InitialNonAeroSpendPerPax = 10
	BaselineNonAeroSqm        = 5000
	InitialCashBalance        = 50_000_000

	MarketingBudgetCeiling = 5_000_000

	MaxGearing        = 0.6
	LoanTermYears     = 10
	LoanInterestRate  = 0.045
	DepreciationYears = 25

	AllowedRegulatedReturn = 0.10 // Cap on regulated return on allocated equity

	TrafficCapacityCeiling = 1.5 // Traffic may not exceed this multiple of terminal capacity
	CongestionThreshold    = 0.8
	QualityFloor           = 0.5
	QualityCeiling         = 1.5

	cargoGDPElasticity       = 0.5
	cargoHangarGrowthBonus   = 0.05
	cargoPaxPerTonne         = 0.001
	hybridCargoQualityWeight = 0.5
	ancillaryShare           = 0.2 // Of non-aero revenue; the rest is concessions
)

// ReferenceConditions are the opening stocks of the reference scenario.
var ReferenceConditions = InitialConditions{
	Traffic:     10_000_000,
	Equity:      500_000_000,
	Assets:      500_000_000,
	OpexRatio:   0.1,
	AssetValue:  1_000_000_000,
	CargoTonnes: 500_000,
}

// NewAirport creates the aggregate for a session with the given strategy.
func NewAirport(strategy StrategyKind, init InitialConditions) (*Airport, error) {
	if _, ok := strategyTable[strategy]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	a := &Airport{
		Strategy:                 strategy,
		Traffic:                  init.Traffic,
		CargoTonnes:              init.CargoTonnes,
		CapacityPax:              InitialCapacityPax,
		RunwayCapacityMovements:  InitialRunwayMovements,
		PaxPerMovement:           InitialPaxPerMovement,
		PeakHourFactor:           InitialPeakHourFactor,
		Equity:                   init.Equity,
		Assets:                   init.Assets,
		CashBalance:              InitialCashBalance,
		AssetReplacementValue:    init.AssetValue,
		NonAeroSqm:               BaselineNonAeroSqm,
		AeronauticalCharge:       InitialAeronauticalCharge,
		CargoChargePerTonne:      InitialCargoChargeTonne,
		NonAeroSpendPerPax:       InitialNonAeroSpendPerPax,
		OpexRatio:                init.OpexRatio,
		Opex:                     init.AssetValue * init.OpexRatio,
		MarketingBudgetRemaining: MarketingBudgetCeiling,
		CapexProjects:            []CapexProject{},
		Loans:                    []Loan{},
		Commissioned:             []Asset{},
	}
	a.CurrentMovements = peakHourMovements(a.Traffic, a.PaxPerMovement, a.PeakHourFactor)
	a.Metrics.QualityFactor = 1
	a.Metrics.GDPGrowthFactor = 1
	a.Metrics.OpeningCash = a.CashBalance
	return a, nil
}

// Complete reports whether the horizon has been reached.
func (a *Airport) Complete() bool {
	return a.Year >= HorizonYears
}

// DecisionYear is the 1-based year whose decisions are being collected.
func (a *Airport) DecisionYear() int {
	return a.Year + 1
}

// Gearing is debt over equity, +Inf when equity is zero.
func (a *Airport) Gearing() float64 {
	if a.Equity == 0 {
		return math.Inf(1)
	}
	return a.Debt / a.Equity
}

// ROE is profit after compensation over equity in percent, 0 when equity is not positive.
func (a *Airport) ROE() float64 {
	if a.Equity <= 0 {
		return 0
	}
	return a.Metrics.ProfitAfterComp / a.Equity * 100
}

// TerminalUtilization is traffic over terminal capacity.
func (a *Airport) TerminalUtilization() float64 {
	return ratio(a.Traffic, a.CapacityPax)
}

// RunwayUtilization is peak-hour movements over runway capacity.
func (a *Airport) RunwayUtilization() float64 {
	return ratio(a.CurrentMovements, a.RunwayCapacityMovements)
}

// OpexToAssetRatio is opex over asset replacement value, 0 when the asset value is zero.
func (a *Airport) OpexToAssetRatio() float64 {
	return ratio(a.Opex, a.AssetReplacementValue)
}

// OutstandingDebt sums the outstanding balances of all loans.
func (a *Airport) OutstandingDebt() float64 {
	total := 0.0
	for _, l := range a.Loans {
		total += l.OutstandingAmount
	}
	return total
}

// Snapshot projects the current state into a flat record.
func (a *Airport) Snapshot() Snapshot {
	m := a.Metrics
	s := Snapshot{
		Year:     a.Year,
		Strategy: a.Strategy,

		Traffic:                 a.Traffic,
		TrafficGrowthRate:       m.TrafficGrowthRate,
		CargoTonnes:             a.CargoTonnes,
		CargoGrowthRate:         m.CargoGrowthRate,
		CapacityPax:             a.CapacityPax,
		TerminalUtilization:     a.TerminalUtilization(),
		CurrentMovements:        a.CurrentMovements,
		RunwayCapacityMovements: a.RunwayCapacityMovements,
		RunwayUtilization:       a.RunwayUtilization(),

		QualityFactor:     m.QualityFactor,
		OpexQualityImpact: m.OpexQualityImpact,
		ChargeImpact:      m.ChargeImpact,
		CostImpact:        m.CostImpact,
		MarketingImpact:   m.MarketingImpact,

		AeronauticalCharge: a.AeronauticalCharge,
		NonAeroSpendPerPax: a.NonAeroSpendPerPax,
		Opex:               a.Opex,
		OpexToAssetRatio:   a.OpexToAssetRatio(),

		RevenueAero:       m.RevenueAero,
		RevenueNonAero:    m.RevenueNonAero,
		RevenueCargo:      m.RevenueCargo,
		TotalRevenue:      m.TotalRevenue(),
		ConcessionRevenue: m.ConcessionRevenue,
		AncillaryRevenue:  m.AncillaryRevenue,
		EBITDA:            m.EBITDA,
		EBITDAR:           m.EBITDAR,
		Depreciation:      m.Depreciation,
		InterestPaid:      m.InterestPaid,

		RegulatedRevenue:  m.RegulatedRevenue,
		RegulatedShare:    m.RegulatedShare,
		RegulatedProfit:   m.RegulatedProfit,
		UnregulatedProfit: m.UnregulatedProfit,
		ProfitBeforeComp:  m.ProfitBeforeComp,
		Compensation:      m.Compensation,
		ProfitAfterComp:   m.ProfitAfterComp,
		ROE:               a.ROE(),

		Equity:                a.Equity,
		Debt:                  a.Debt,
		RetainedEarnings:      a.RetainedEarnings,
		AssetReplacementValue: a.AssetReplacementValue,
		NonAeroSqm:            a.NonAeroSqm,

		OpeningCash:     m.OpeningCash,
		CFO:             m.CFO,
		CFI:             m.CFI,
		CFF:             m.CFF,
		PrincipalRepaid: m.PrincipalRepaid,
		CashBalance:     a.CashBalance,

		PendingProjects:  append([]CapexProject{}, a.CapexProjects...),
		OutstandingLoans: len(a.Loans),
		MarketingBudget:  a.MarketingBudgetRemaining,
	}
	if g := a.Gearing(); !math.IsInf(g, 0) {
		s.Gearing = &g
	}
	return s
}
