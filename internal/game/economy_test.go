package game

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-6

func almostEqual(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func newTestAirport(t *testing.T, k StrategyKind) *Airport {
	t.Helper()
	a, err := NewAirport(k, ReferenceConditions)
	if err != nil {
		t.Fatalf("NewAirport(%q) returned error: %v", k, err)
	}
	return a
}

func TestAdvanceYearRegionalHubWithoutDecisions(t *testing.T) {
	a := newTestAirport(t, RegionalHub)

	snap, err := a.AdvanceYear(2.0, 0, 0)
	if err != nil {
		t.Fatalf("AdvanceYear returned error: %v", err)
	}

	// Utilization is below 80% on both terminal and runway, so only opex moves quality.
	p := RegionalHub.Params()
	gap := 0.1 - p.OpexQualityBenchmark
	boost := gap * p.QualityBoostMultiplier
	costImpact := gap * p.CostPenaltyMultiplier
	wantGrowth := 0.02 + boost - costImpact
	wantTraffic := 10_000_000 * (1 + wantGrowth)

	if !almostEqual(snap.QualityFactor, 1+boost) {
		t.Errorf("quality factor = %v, want %v", snap.QualityFactor, 1+boost)
	}
	if !almostEqual(snap.CostImpact, costImpact) {
		t.Errorf("cost impact = %v, want %v", snap.CostImpact, costImpact)
	}
	if snap.ChargeImpact != 0 || snap.MarketingImpact != 0 {
		t.Errorf("expected no charge or marketing impact, got %v and %v", snap.ChargeImpact, snap.MarketingImpact)
	}
	if !almostEqual(snap.TrafficGrowthRate, wantGrowth) {
		t.Errorf("traffic growth = %v, want %v", snap.TrafficGrowthRate, wantGrowth)
	}
	if !almostEqual(snap.Traffic, wantTraffic) {
		t.Errorf("traffic = %v, want %v", snap.Traffic, wantTraffic)
	}

	wantAero := wantTraffic * InitialAeronauticalCharge
	wantNonAero := wantTraffic * InitialNonAeroSpendPerPax
	if !almostEqual(snap.RevenueAero, wantAero) {
		t.Errorf("aero revenue = %v, want %v", snap.RevenueAero, wantAero)
	}
	if snap.RevenueCargo != 0 {
		t.Errorf("passenger strategy earned cargo revenue %v", snap.RevenueCargo)
	}
	if !almostEqual(snap.EBITDA, snap.RevenueAero+snap.RevenueNonAero-snap.Opex) {
		t.Errorf("EBITDA = %v, want %v", snap.EBITDA, snap.RevenueAero+snap.RevenueNonAero-snap.Opex)
	}
	if !almostEqual(snap.EBITDA, wantAero+wantNonAero-100_000_000) {
		t.Errorf("EBITDA = %v, want %v", snap.EBITDA, wantAero+wantNonAero-100_000_000)
	}
	if snap.Year != 1 || a.Year != 1 {
		t.Errorf("year = %d (state %d), want 1", snap.Year, a.Year)
	}
}

func TestAdvanceYearCompensationClawsBackExcessReturn(t *testing.T) {
	a := newTestAirport(t, RegionalHub)
	snap, err := a.AdvanceYear(2.0, 0, 0)
	if err != nil {
		t.Fatalf("AdvanceYear returned error: %v", err)
	}

	openingEquity := ReferenceConditions.Equity
	allocatedEquity := openingEquity * snap.RegulatedShare
	wantComp := snap.RegulatedProfit - allocatedEquity*AllowedRegulatedReturn
	if snap.RegulatedProfit/allocatedEquity <= AllowedRegulatedReturn {
		t.Fatalf("reference year should exceed the allowed return, got %v", snap.RegulatedProfit/allocatedEquity)
	}
	if !almostEqual(snap.Compensation, wantComp) {
		t.Errorf("compensation = %v, want %v", snap.Compensation, wantComp)
	}
	if !almostEqual(snap.ProfitAfterComp, snap.ProfitBeforeComp-snap.Compensation) {
		t.Errorf("profit after comp = %v, want %v", snap.ProfitAfterComp, snap.ProfitBeforeComp-snap.Compensation)
	}
	if !almostEqual(snap.CFO, snap.EBITDA-snap.Compensation) {
		t.Errorf("CFO = %v, want %v", snap.CFO, snap.EBITDA-snap.Compensation)
	}
	if !almostEqual(snap.Equity, openingEquity+snap.ProfitAfterComp) {
		t.Errorf("equity = %v, want %v", snap.Equity, openingEquity+snap.ProfitAfterComp)
	}
	if !almostEqual(snap.RetainedEarnings, snap.ProfitAfterComp) {
		t.Errorf("retained earnings = %v, want %v", snap.RetainedEarnings, snap.ProfitAfterComp)
	}
	found := false
	for _, e := range snap.Events {
		if e.Kind == EventCompensationPaid {
			found = true
		}
	}
	if !found {
		t.Error("expected a compensation event")
	}
}

func TestAdvanceYearRegulatedShareByFamily(t *testing.T) {
	tests := []struct {
		strategy StrategyKind
		regulated func(Snapshot) float64
	}{
		{RegionalHub, func(s Snapshot) float64 { return s.RevenueAero }},
		{CargoAirport, func(s Snapshot) float64 { return s.RevenueCargo }},
		{PassengerAndCargoHub, func(s Snapshot) float64 { return s.RevenueAero + s.RevenueCargo }},
	}
	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			a := newTestAirport(t, tt.strategy)
			snap, err := a.AdvanceYear(2.5, 0, 0)
			if err != nil {
				t.Fatalf("AdvanceYear returned error: %v", err)
			}
			if !almostEqual(snap.RegulatedRevenue, tt.regulated(snap)) {
				t.Errorf("regulated revenue = %v, want %v", snap.RegulatedRevenue, tt.regulated(snap))
			}
			if !almostEqual(snap.RegulatedShare, snap.RegulatedRevenue/snap.TotalRevenue) {
				t.Errorf("regulated share = %v, want %v", snap.RegulatedShare, snap.RegulatedRevenue/snap.TotalRevenue)
			}
			wantTotal := snap.TotalRevenue - snap.Opex - snap.Depreciation - snap.InterestPaid
			if !almostEqual(snap.ProfitBeforeComp, wantTotal) {
				t.Errorf("profit before comp = %v, want %v", snap.ProfitBeforeComp, wantTotal)
			}
		})
	}
}

func TestAdvanceYearCargoAirportTrafficFollowsCargo(t *testing.T) {
	a := newTestAirport(t, CargoAirport)
	snap, err := a.AdvanceYear(2.0, 0, 0)
	if err != nil {
		t.Fatalf("AdvanceYear returned error: %v", err)
	}

	// Opex ratio 0.1 is below the 0.15 benchmark: growth is scaled down, not below half.
	p := CargoAirport.Params()
	scale := math.Max(QualityFloor, 1-(p.OpexQualityBenchmark-0.1)*p.QualityBoostMultiplier)
	wantRate := 0.02 * cargoGDPElasticity * scale
	if !almostEqual(snap.CargoGrowthRate, wantRate) {
		t.Errorf("cargo growth = %v, want %v", snap.CargoGrowthRate, wantRate)
	}
	wantCargo := 500_000 * (1 + wantRate)
	if !almostEqual(snap.CargoTonnes, wantCargo) {
		t.Errorf("cargo tonnes = %v, want %v", snap.CargoTonnes, wantCargo)
	}
	if !almostEqual(snap.Traffic, wantCargo*cargoPaxPerTonne) {
		t.Errorf("traffic = %v, want %v", snap.Traffic, wantCargo*cargoPaxPerTonne)
	}
	if snap.QualityFactor != 1 {
		t.Errorf("cargo airport quality factor = %v, want 1", snap.QualityFactor)
	}
}

func TestAdvanceYearCargoAirportAboveBenchmarkIsAdditive(t *testing.T) {
	a := newTestAirport(t, CargoAirport)
	a.Opex = a.AssetReplacementValue * 0.2

	snap, err := a.AdvanceYear(2.0, 0, 0)
	if err != nil {
		t.Fatalf("AdvanceYear returned error: %v", err)
	}
	p := CargoAirport.Params()
	gap := 0.2 - p.OpexQualityBenchmark
	want := 0.02*cargoGDPElasticity + gap*p.QualityBoostMultiplier - gap*p.CostPenaltyMultiplier
	if !almostEqual(snap.CargoGrowthRate, want) {
		t.Errorf("cargo growth = %v, want %v", snap.CargoGrowthRate, want)
	}
}

func TestAdvanceYearHybridCargoBlendsQuality(t *testing.T) {
	a := newTestAirport(t, PassengerAndCargoHub)
	if err := a.ApplyMarketingCampaign("a"); err != nil {
		t.Fatalf("ApplyMarketingCampaign returned error: %v", err)
	}
	impact := 0.015 * 1.0

	snap, err := a.AdvanceYear(3.0, 0, 0)
	if err != nil {
		t.Fatalf("AdvanceYear returned error: %v", err)
	}
	want := 0.03*cargoGDPElasticity + (snap.QualityFactor-1)*hybridCargoQualityWeight + impact
	if !almostEqual(snap.CargoGrowthRate, want) {
		t.Errorf("cargo growth = %v, want %v", snap.CargoGrowthRate, want)
	}
	if !almostEqual(snap.MarketingImpact, impact) {
		t.Errorf("marketing impact = %v, want %v", snap.MarketingImpact, impact)
	}
	if snap.RevenueCargo == 0 {
		t.Error("hybrid strategy should earn cargo revenue")
	}
}

func TestAdvanceYearChargeIncreaseReducesTraffic(t *testing.T) {
	base := newTestAirport(t, LowCostAirport)
	raised := newTestAirport(t, LowCostAirport)

	s0, _ := base.AdvanceYear(2.0, 0, 0)
	s1, _ := raised.AdvanceYear(2.0, 0, 10)

	wantImpact := -0.10 * LowCostAirport.Params().PriceElasticity
	if !almostEqual(s1.ChargeImpact, wantImpact) {
		t.Errorf("charge impact = %v, want %v", s1.ChargeImpact, wantImpact)
	}
	if s1.Traffic >= s0.Traffic {
		t.Errorf("traffic with a 10%% charge rise (%v) should be below baseline (%v)", s1.Traffic, s0.Traffic)
	}
	if !almostEqual(s1.AeronauticalCharge, InitialAeronauticalCharge*1.1) {
		t.Errorf("aeronautical charge = %v, want %v", s1.AeronauticalCharge, InitialAeronauticalCharge*1.1)
	}
}

func TestAdvanceYearOpexChangeCompounds(t *testing.T) {
	a := newTestAirport(t, RegionalHub)
	if _, err := a.AdvanceYear(2.0, -5, 0); err != nil {
		t.Fatalf("AdvanceYear returned error: %v", err)
	}
	if _, err := a.AdvanceYear(2.0, -5, 0); err != nil {
		t.Fatalf("AdvanceYear returned error: %v", err)
	}
	want := 100_000_000 * 0.95 * 0.95
	if !almostEqual(a.Opex, want) {
		t.Errorf("opex = %v, want %v", a.Opex, want)
	}
}

func TestAdvanceYearTrafficCappedAtCapacity(t *testing.T) {
	for _, k := range Strategies {
		t.Run(string(k), func(t *testing.T) {
			a := newTestAirport(t, k)
			a.Traffic = 21_000_000
			a.CargoTonnes = 40_000_000
			a.MarketingImpact = 0.9
			for i := 0; i < 3; i++ {
				if _, err := a.AdvanceYear(8, 25, -40); err != nil {
					t.Fatalf("AdvanceYear returned error: %v", err)
				}
				if a.Traffic > a.CapacityPax*TrafficCapacityCeiling+tolerance {
					t.Fatalf("year %d: traffic %v exceeds %v", a.Year, a.Traffic, a.CapacityPax*TrafficCapacityCeiling)
				}
			}
		})
	}
}

func TestAdvanceYearQualityFactorClamped(t *testing.T) {
	tests := []struct {
		name    string
		traffic float64
		opex    float64
	}{
		{"congested and underfunded", 22_000_000, 1_000_000},
		{"idle and overfunded", 1_000_000, 900_000_000},
	}
	for _, tt := range tests {
		for _, k := range Strategies {
			t.Run(tt.name+"/"+string(k), func(t *testing.T) {
				a := newTestAirport(t, k)
				a.Traffic = tt.traffic
				a.Opex = tt.opex
				snap, err := a.AdvanceYear(2, 0, 0)
				if err != nil {
					t.Fatalf("AdvanceYear returned error: %v", err)
				}
				if snap.QualityFactor < QualityFloor || snap.QualityFactor > QualityCeiling {
					t.Errorf("quality factor %v outside [%v, %v]", snap.QualityFactor, QualityFloor, QualityCeiling)
				}
			})
		}
	}
}

func TestAdvanceYearCongestionPenalizesQuality(t *testing.T) {
	a := newTestAirport(t, LongHaulHub)
	a.Traffic = 13_500_000 // 90% terminal utilization
	a.Opex = a.AssetReplacementValue * LongHaulHub.Params().OpexQualityBenchmark

	snap, err := a.AdvanceYear(0, 0, 0)
	if err != nil {
		t.Fatalf("AdvanceYear returned error: %v", err)
	}
	terminal := 1 - (0.9-CongestionThreshold)*2
	movements := 13_500_000.0 / InitialPaxPerMovement / 365 * InitialPeakHourFactor
	runway := congestionPenalty(movements / InitialRunwayMovements)
	want := terminal * runway
	if !almostEqual(snap.QualityFactor, want) {
		t.Errorf("quality factor = %v, want %v", snap.QualityFactor, want)
	}
	if !almostEqual(snap.CurrentMovements, movements) {
		t.Errorf("movements = %v, want %v", snap.CurrentMovements, movements)
	}
}

func TestAdvanceYearDebtMatchesLoanBalances(t *testing.T) {
	a := newTestAirport(t, ShortHaulSpoke)
	if err := a.IssueLoan(100_000_000); err != nil {
		t.Fatalf("IssueLoan returned error: %v", err)
	}
	for year := 1; year <= HorizonYears; year++ {
		if year == 3 {
			if err := a.IssueLoan(50_000_000); err != nil {
				t.Fatalf("IssueLoan in year 3 returned error: %v", err)
			}
		}
		if _, err := a.AdvanceYear(2, 0, 0); err != nil {
			t.Fatalf("AdvanceYear returned error: %v", err)
		}
		if !almostEqual(a.Debt, a.OutstandingDebt()) {
			t.Fatalf("year %d: debt %v != sum of loans %v", year, a.Debt, a.OutstandingDebt())
		}
	}
	// The first loan ran its full term; the second still has two years left.
	if len(a.Loans) != 1 {
		t.Fatalf("loans outstanding = %d, want 1", len(a.Loans))
	}
	if a.Loans[0].YearsRemaining != 2 {
		t.Errorf("years remaining = %d, want 2", a.Loans[0].YearsRemaining)
	}
	if !almostEqual(a.Debt, 10_000_000) {
		t.Errorf("debt = %v, want 10000000", a.Debt)
	}
}

func TestAdvanceYearDebtService(t *testing.T) {
	a := newTestAirport(t, RegionalHub)
	if err := a.IssueLoan(100_000_000); err != nil {
		t.Fatalf("IssueLoan returned error: %v", err)
	}

	first, _ := a.AdvanceYear(2, 0, 0)
	if !almostEqual(first.InterestPaid, 100_000_000*LoanInterestRate) {
		t.Errorf("interest = %v, want %v", first.InterestPaid, 100_000_000*LoanInterestRate)
	}
	if !almostEqual(first.CFF, 100_000_000-10_000_000) {
		t.Errorf("CFF = %v, want %v", first.CFF, 90_000_000.0)
	}

	second, _ := a.AdvanceYear(2, 0, 0)
	if !almostEqual(second.InterestPaid, 90_000_000*LoanInterestRate) {
		t.Errorf("interest = %v, want %v", second.InterestPaid, 90_000_000*LoanInterestRate)
	}
	if !almostEqual(second.CFF, -10_000_000) {
		t.Errorf("CFF = %v, want -10000000", second.CFF)
	}
	if !almostEqual(second.Debt, 80_000_000) {
		t.Errorf("debt = %v, want 80000000", second.Debt)
	}
}

func TestAdvanceYearCashFlowStatement(t *testing.T) {
	a := newTestAirport(t, RegionalHub)
	if err := a.InitiateCatalogProject(ProjectNewTerminal, 100_000_000); err != nil {
		t.Fatalf("InitiateCatalogProject returned error: %v", err)
	}
	opening := a.CashBalance

	snap, err := a.AdvanceYear(2, 0, 0)
	if err != nil {
		t.Fatalf("AdvanceYear returned error: %v", err)
	}
	if !almostEqual(snap.CFI, -150_000_000) {
		t.Errorf("CFI = %v, want -150000000", snap.CFI)
	}
	if !almostEqual(snap.CFF, 100_000_000-10_000_000) {
		t.Errorf("CFF = %v, want 90000000", snap.CFF)
	}
	if !almostEqual(snap.CashBalance, opening+snap.CFO+snap.CFI+snap.CFF) {
		t.Errorf("cash = %v, want %v", snap.CashBalance, opening+snap.CFO+snap.CFI+snap.CFF)
	}
	if !almostEqual(snap.OpeningCash, opening) {
		t.Errorf("opening cash = %v, want %v", snap.OpeningCash, opening)
	}
	if a.CapexCashOutflow != 0 || a.NewLoansThisYear != 0 {
		t.Errorf("accumulators not reset: outflow %v, new loans %v", a.CapexCashOutflow, a.NewLoansThisYear)
	}
}

func TestNewTerminalMaturesAfterLeadTime(t *testing.T) {
	a := newTestAirport(t, RegionalHub)
	if err := a.InitiateCatalogProject(ProjectNewTerminal, 100_000_000); err != nil {
		t.Fatalf("InitiateCatalogProject returned error: %v", err)
	}
	capacity := a.CapacityPax
	assetValue := a.AssetReplacementValue

	for year := 1; year <= 2; year++ {
		snap, err := a.AdvanceYear(2, 0, 0)
		if err != nil {
			t.Fatalf("AdvanceYear returned error: %v", err)
		}
		if a.CapacityPax != capacity {
			t.Fatalf("year %d: capacity changed to %v before the lead time ran out", year, a.CapacityPax)
		}
		if len(snap.PendingProjects) != 1 || snap.PendingProjects[0].LeadTimeRemaining != 3-year {
			t.Fatalf("year %d: pending projects = %+v", year, snap.PendingProjects)
		}
		if snap.Depreciation != 0 {
			t.Fatalf("year %d: depreciation %v before commissioning", year, snap.Depreciation)
		}
	}

	snap, err := a.AdvanceYear(2, 0, 0)
	if err != nil {
		t.Fatalf("AdvanceYear returned error: %v", err)
	}
	if a.CapacityPax != capacity+2_000_000 {
		t.Errorf("capacity = %v, want %v", a.CapacityPax, capacity+2_000_000)
	}
	if a.AssetReplacementValue != assetValue+150_000_000 {
		t.Errorf("asset value = %v, want %v", a.AssetReplacementValue, assetValue+150_000_000)
	}
	if len(a.CapexProjects) != 0 {
		t.Errorf("project still pending: %+v", a.CapexProjects)
	}
	if !almostEqual(snap.Depreciation, 150_000_000.0/DepreciationYears) {
		t.Errorf("depreciation = %v, want %v", snap.Depreciation, 150_000_000.0/DepreciationYears)
	}

	// Effects are applied exactly once.
	if _, err := a.AdvanceYear(2, 0, 0); err != nil {
		t.Fatalf("AdvanceYear returned error: %v", err)
	}
	if a.CapacityPax != capacity+2_000_000 {
		t.Errorf("capacity changed again to %v", a.CapacityPax)
	}
}

func TestCargoHangarAndRetailEffects(t *testing.T) {
	a := newTestAirport(t, PassengerAndCargoHub)
	if err := a.InitiateCatalogProject(ProjectCargoHangar, 0); err != nil {
		t.Fatalf("Cargo Hangar returned error: %v", err)
	}
	if err := a.InitiateCatalogProject(ProjectRetailExpansion, 0); err != nil {
		t.Fatalf("Retail Expansion returned error: %v", err)
	}
	cargo := a.CargoTonnes
	assetValue := a.AssetReplacementValue

	snap, err := a.AdvanceYear(0, 0, 0)
	if err != nil {
		t.Fatalf("AdvanceYear returned error: %v", err)
	}
	if a.NonAeroSqm != BaselineNonAeroSqm+1000 {
		t.Errorf("non-aero sqm = %v, want %v", a.NonAeroSqm, BaselineNonAeroSqm+1000)
	}
	if a.AssetReplacementValue != assetValue+50_000_000 {
		t.Errorf("asset value = %v, want %v (hangar is third-party)", a.AssetReplacementValue, assetValue+50_000_000)
	}
	wantCargo := (cargo + 200_000) * (1 + snap.CargoGrowthRate)
	if !almostEqual(a.CargoTonnes, wantCargo) {
		t.Errorf("cargo tonnes = %v, want %v", a.CargoTonnes, wantCargo)
	}
	wantNonAero := snap.Traffic * snap.NonAeroSpendPerPax * (6000.0 / 5000.0)
	if !almostEqual(snap.RevenueNonAero, wantNonAero) {
		t.Errorf("non-aero revenue = %v, want %v", snap.RevenueNonAero, wantNonAero)
	}
	commissioned := 0
	for _, e := range snap.Events {
		if e.Kind == EventProjectCommissioned {
			commissioned++
		}
	}
	if commissioned != 2 {
		t.Errorf("commissioned events = %d, want 2", commissioned)
	}
}

func TestAdvanceYearResetsMarketing(t *testing.T) {
	a := newTestAirport(t, LowCostAirport)
	if err := a.ApplyMarketingCampaign("c"); err != nil {
		t.Fatalf("ApplyMarketingCampaign returned error: %v", err)
	}
	if a.MarketingBudgetRemaining != 0 {
		t.Fatalf("budget = %v, want 0", a.MarketingBudgetRemaining)
	}

	snap, _ := a.AdvanceYear(2, 0, 0)
	if !almostEqual(snap.MarketingImpact, 0.04*2.0) {
		t.Errorf("marketing impact = %v, want %v", snap.MarketingImpact, 0.08)
	}
	if a.MarketingBudgetRemaining != MarketingBudgetCeiling {
		t.Errorf("budget = %v, want %v", a.MarketingBudgetRemaining, MarketingBudgetCeiling)
	}
	if a.MarketingImpact != 0 {
		t.Errorf("marketing impact carried over: %v", a.MarketingImpact)
	}

	next, _ := a.AdvanceYear(2, 0, 0)
	if next.MarketingImpact != 0 {
		t.Errorf("second year marketing impact = %v, want 0", next.MarketingImpact)
	}
}

func TestAdvanceYearRejectedAfterHorizon(t *testing.T) {
	a := newTestAirport(t, LongHaulSpoke)
	for i := 0; i < HorizonYears; i++ {
		if _, err := a.AdvanceYear(2, 0, 0); err != nil {
			t.Fatalf("year %d: AdvanceYear returned error: %v", i+1, err)
		}
	}
	if !a.Complete() {
		t.Fatal("airport should be complete after the horizon")
	}
	before := a.Snapshot()
	if _, err := a.AdvanceYear(2, 0, 0); !errors.Is(err, ErrSimulationComplete) {
		t.Errorf("AdvanceYear after horizon: got %v, want ErrSimulationComplete", err)
	}
	if err := a.IssueLoan(1); !errors.Is(err, ErrSimulationComplete) {
		t.Errorf("IssueLoan after horizon: got %v, want ErrSimulationComplete", err)
	}
	if a.Snapshot().Year != before.Year {
		t.Error("rejected transition changed the year")
	}
}

func TestAdvanceYearZeroRevenueGuards(t *testing.T) {
	a, err := NewAirport(RegionalHub, InitialConditions{Equity: 0, AssetValue: 0})
	if err != nil {
		t.Fatalf("NewAirport returned error: %v", err)
	}
	snap, err := a.AdvanceYear(2, 0, 0)
	if err != nil {
		t.Fatalf("AdvanceYear returned error: %v", err)
	}
	if snap.RegulatedShare != 0 {
		t.Errorf("regulated share = %v, want 0", snap.RegulatedShare)
	}
	if snap.Compensation != 0 {
		t.Errorf("compensation = %v, want 0", snap.Compensation)
	}
	if snap.OpexToAssetRatio != 0 {
		t.Errorf("opex ratio = %v, want 0", snap.OpexToAssetRatio)
	}
	if math.IsNaN(snap.Traffic) || math.IsNaN(snap.ProfitAfterComp) {
		t.Errorf("NaN in snapshot: traffic %v profit %v", snap.Traffic, snap.ProfitAfterComp)
	}
}
