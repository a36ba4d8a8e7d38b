/*
Package game
File: economy.go
Description:
    The year transition. AdvanceYear rolls the airport forward one year:
    1. Matures capital projects whose lead time has run out.
    2. Grows traffic and cargo with the strategy's growth model.
    3. Compounds the aeronautical charge and opex.
    4. Computes revenues, EBITDA and EBITDAR.
    5. Services debt.
    6. Splits profit between the regulated and unregulated business and
       claws back excess regulated return as compensation.
    7. Rolls profit into equity.
    8. Builds the cash flow statement.
    9. Resets the per-year accumulators.
*/

package game

import (
	"fmt"
	"math"
)

// AdvanceYear applies one year of macro input and operator settings to the airport
// and returns the flat record of the year. Decisions for the year must already be applied.
// The only failure is a transition past the horizon.
func (a *Airport) AdvanceYear(gdpGrowthPct, opexChangePct, aeroChargeChangePct float64) (Snapshot, error) {
	if a.Complete() {
		return Snapshot{}, ErrSimulationComplete
	}

	params := a.Strategy.Params()
	m := YearMetrics{
		GDPGrowthFactor: 1 + gdpGrowthPct/100,
		QualityFactor:   1,
		MarketingImpact: a.MarketingImpact,
		OpeningCash:     a.CashBalance,
	}

	// 1. Project maturation
	events := a.matureProjects()
	m.Depreciation = a.depreciate()

	// 2. Growth model
	switch params.Family {
	case FamilyCargo:
		a.growCargoOnly(params, &m)
	case FamilyHybrid:
		a.growPassengers(params, aeroChargeChangePct, &m)
		a.growHybridCargo(&m)
	default:
		a.growPassengers(params, aeroChargeChangePct, &m)
	}
	a.Traffic = math.Min(a.Traffic, a.CapacityPax*TrafficCapacityCeiling)

	// 3. Pricing
	a.AeronauticalCharge *= 1 + aeroChargeChangePct/100
	a.Opex *= 1 + opexChangePct/100

	// 4. Revenues (cargo is a business line only for cargo-carrying strategies)
	m.RevenueAero = a.Traffic * a.AeronauticalCharge
	if a.Strategy.CarriesCargo() {
		m.RevenueCargo = a.CargoTonnes * a.CargoChargePerTonne
	}
	m.RevenueNonAero = a.Traffic * a.NonAeroSpendPerPax * (a.NonAeroSqm / BaselineNonAeroSqm)
	m.ConcessionRevenue = m.RevenueNonAero * (1 - ancillaryShare)
	m.AncillaryRevenue = m.RevenueNonAero * ancillaryShare
	m.TotalOpex = a.Opex
	m.EBITDA = m.TotalRevenue() - m.TotalOpex
	m.EBITDAR = m.EBITDA + m.AncillaryRevenue

	// 5. Debt service
	var repaid []Event
	m.InterestPaid, m.PrincipalRepaid, repaid = a.serviceDebt()
	events = append(events, repaid...)

	// 6. Regulatory allocation
	if e, ok := a.regulate(params.Family, &m); ok {
		events = append(events, e)
	}

	// 7. Profit and equity roll-forward
	m.ProfitBeforeComp = m.RegulatedProfit + m.UnregulatedProfit
	m.ProfitAfterComp = m.ProfitBeforeComp - m.Compensation
	a.RetainedEarnings += m.ProfitAfterComp
	a.Equity += m.ProfitAfterComp

	// 8. Cash flow
	m.CFO = m.EBITDA - m.Compensation
	m.CFI = -a.CapexCashOutflow
	m.CFF = a.NewLoansThisYear - m.PrincipalRepaid
	a.CashBalance += m.CFO + m.CFI + m.CFF

	// 9. Period reset
	a.CapexCashOutflow = 0
	a.NewLoansThisYear = 0
	a.MarketingBudgetRemaining = MarketingBudgetCeiling
	a.MarketingImpact = 0

	a.Metrics = m
	a.Year++

	snap := a.Snapshot()
	snap.Events = events
	return snap, nil
}

// matureProjects counts down lead times and applies the terminal effect of
// every project that reaches zero, exactly once.
func (a *Airport) matureProjects() []Event {
	var events []Event
	pending := make([]CapexProject, 0, len(a.CapexProjects))
	for _, p := range a.CapexProjects {
		p.LeadTimeRemaining--
		if p.LeadTimeRemaining > 0 {
			pending = append(pending, p)
			continue
		}

		switch p.Kind {
		case ProjectCargoVolume:
			a.CargoTonnes += p.CapacityEffect
		case ProjectRetailSpace:
			a.NonAeroSqm += p.CapacityEffect
			a.commission(p)
		default:
			a.CapacityPax += p.CapacityEffect
			a.commission(p)
		}
		events = append(events, Event{
			Kind:    EventProjectCommissioned,
			Message: fmt.Sprintf("%s is now operational", p.Name),
		})
	}
	a.CapexProjects = pending
	return events
}

// commission adds a matured project to the asset base and the depreciation schedule.
func (a *Airport) commission(p CapexProject) {
	a.AssetReplacementValue += p.Cost
	a.Commissioned = append(a.Commissioned, Asset{
		Name:           p.Name,
		Cost:           p.Cost,
		YearsRemaining: DepreciationYears,
	})
}

// depreciate charges one year of straight-line depreciation on commissioned assets.
func (a *Airport) depreciate() float64 {
	total := 0.0
	live := a.Commissioned[:0]
	for _, asset := range a.Commissioned {
		total += asset.Cost / DepreciationYears
		asset.YearsRemaining--
		if asset.YearsRemaining > 0 {
			live = append(live, asset)
		}
	}
	a.Commissioned = live
	return total
}

// opexQualityGap compares the opex to asset value ratio with the strategy benchmark.
// The second result is false when there is no asset value to compare against.
func (a *Airport) opexQualityGap(benchmark float64) (float64, bool) {
	if a.AssetReplacementValue == 0 {
		return 0, false
	}
	return a.Opex/a.AssetReplacementValue - benchmark, true
}

// growPassengers runs the passenger quality and growth model.
// Opex-quality terms act multiplicatively on the quality factor.
func (a *Airport) growPassengers(p StrategyParams, aeroChargeChangePct float64, m *YearMetrics) {
	quality := 1.0

	// Congestion: terminal, then runway at peak hour
	quality *= congestionPenalty(a.TerminalUtilization())
	a.CurrentMovements = peakHourMovements(a.Traffic, a.PaxPerMovement, a.PeakHourFactor)
	quality *= congestionPenalty(a.RunwayUtilization())
	quality = clampQuality(quality)

	// Opex against the benchmark
	if gap, ok := a.opexQualityGap(p.OpexQualityBenchmark); ok {
		switch {
		case gap < 0:
			quality *= math.Max(QualityFloor, 1+gap*p.QualityBoostMultiplier)
			m.OpexQualityImpact = quality - 1
		case gap > 0:
			boost := gap * p.QualityBoostMultiplier
			quality *= 1 + boost
			m.OpexQualityImpact = boost
			m.CostImpact = gap * p.CostPenaltyMultiplier
		}
	}
	m.QualityFactor = clampQuality(quality)

	m.ChargeImpact = -(aeroChargeChangePct / 100) * p.PriceElasticity
	m.TrafficGrowthRate = (m.GDPGrowthFactor - 1) + (m.QualityFactor - 1) + m.MarketingImpact + m.ChargeImpact - m.CostImpact
	a.Traffic *= 1 + m.TrafficGrowthRate
}

// pendingHangarBonus is the cargo growth bonus for Cargo Hangars still under construction.
func (a *Airport) pendingHangarBonus() float64 {
	bonus := 0.0
	for _, p := range a.CapexProjects {
		if p.Name == ProjectCargoHangar {
			bonus += cargoHangarGrowthBonus
		}
	}
	return bonus
}

// growHybridCargo blends GDP-driven growth, the passenger quality factor and marketing.
func (a *Airport) growHybridCargo(m *YearMetrics) {
	base := (m.GDPGrowthFactor-1)*cargoGDPElasticity + a.pendingHangarBonus()
	quality := (m.QualityFactor - 1) * hybridCargoQualityWeight
	m.CargoGrowthRate = base + quality + m.MarketingImpact
	a.CargoTonnes *= 1 + m.CargoGrowthRate
}

// growCargoOnly runs the cargo model. Opex-quality terms act additively on the
// growth rate, unlike the passenger model. Passengers follow cargo tonnage.
func (a *Airport) growCargoOnly(p StrategyParams, m *YearMetrics) {
	rate := (m.GDPGrowthFactor-1)*cargoGDPElasticity + a.pendingHangarBonus()

	if gap, ok := a.opexQualityGap(p.OpexQualityBenchmark); ok {
		switch {
		case gap < 0:
			rate *= math.Max(QualityFloor, 1+gap*p.QualityBoostMultiplier)
		case gap > 0:
			rate += gap * p.QualityBoostMultiplier
			rate -= gap * p.CostPenaltyMultiplier
		}
	}

	m.CargoGrowthRate = rate + m.MarketingImpact
	a.CargoTonnes *= 1 + m.CargoGrowthRate
	a.Traffic = a.CargoTonnes * cargoPaxPerTonne
}

// serviceDebt pays interest on opening balances and one straight-line installment
// per loan, drops loans at the end of their term, and recomputes debt.
func (a *Airport) serviceDebt() (interest, principal float64, events []Event) {
	kept := make([]Loan, 0, len(a.Loans))
	for _, l := range a.Loans {
		interest += l.OutstandingAmount * l.InterestRate
		payment := l.OriginalAmount / LoanTermYears
		l.OutstandingAmount -= payment
		principal += payment
		l.YearsRemaining--
		if l.YearsRemaining > 0 {
			kept = append(kept, l)
			continue
		}
		events = append(events, Event{
			Kind:    EventLoanRepaid,
			Message: fmt.Sprintf("loan of %.2f fully repaid", l.OriginalAmount),
		})
	}
	a.Loans = kept
	a.Debt = a.OutstandingDebt()
	return interest, principal, events
}

// regulate allocates costs and equity to the regulated business pro rata to
// its revenue share and sets compensation on regulated return above the cap.
// Compensation reduces profit after compensation and CFO, never regulated profit.
func (a *Airport) regulate(f Family, m *YearMetrics) (Event, bool) {
	total := m.TotalRevenue()
	m.RegulatedRevenue = f.RegulatedRevenue(*m)
	m.RegulatedShare = ratio(m.RegulatedRevenue, total)

	allocatedOpex := a.Opex * m.RegulatedShare
	allocatedDepreciation := m.Depreciation * m.RegulatedShare
	allocatedInterest := m.InterestPaid * m.RegulatedShare
	allocatedEquity := a.Equity * m.RegulatedShare

	m.RegulatedProfit = m.RegulatedRevenue - allocatedOpex - allocatedDepreciation - allocatedInterest
	m.UnregulatedProfit = (total - m.RegulatedRevenue) -
		(a.Opex - allocatedOpex) -
		(m.Depreciation - allocatedDepreciation) -
		(m.InterestPaid - allocatedInterest)

	m.Compensation = 0
	if allocatedEquity <= 0 {
		return Event{}, false
	}
	allowed := allocatedEquity * AllowedRegulatedReturn
	if m.RegulatedProfit/allocatedEquity <= AllowedRegulatedReturn {
		return Event{}, false
	}
	m.Compensation = m.RegulatedProfit - allowed
	return Event{
		Kind:    EventCompensationPaid,
		Message: fmt.Sprintf("economic regulation compensation paid: %.2f", m.Compensation),
	}, true
}
