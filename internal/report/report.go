/*
Package report
File: report.go
Description:
    Plain-text rendering for the CLI:
    - YearReport prints the metrics block of one completed year. The revenue
      lines depend on the strategy family: cargo airports show no aero line,
      passenger airports show no cargo line.
    - DecisionTable and MetricsTable print the history, one row per year.
    - Catalog prints the strategies, projects and campaigns on offer.

    Numbers use English grouping (1,234,567.89).
*/

package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/everforgeworks/airport-tycoon/internal/game"
	"github.com/everforgeworks/airport-tycoon/internal/session"
)

var printer = message.NewPrinter(language.English)

func amount(v float64) string { return printer.Sprintf("$%.2f", v) }
func count(v float64) string  { return printer.Sprintf("%.0f", v) }
func pct(v float64) string    { return printer.Sprintf("%.2f%%", v) }
func dec(d decimal.Decimal) string {
	return amount(d.InexactFloat64())
}

// lineWriter collects the first write error so report bodies stay readable.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) line(label, value string) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, "%s\t%s\n", label, value)
}

func (lw *lineWriter) header(title string) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, "\n%s\t\n", title)
}

// YearReport writes the metrics of the year snap closes.
func YearReport(w io.Writer, snap game.Snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	lw := &lineWriter{w: tw}

	lw.line("Year:", fmt.Sprint(snap.Year))
	lw.line("Strategy:", string(snap.Strategy))

	// 1. Operations
	lw.header("Operations")
	if snap.Strategy.CarriesCargo() {
		lw.line("Annual Cargo:", count(snap.CargoTonnes)+" tonnes")
		lw.line("Cargo Growth:", pct(snap.CargoGrowthRate*100))
	}
	if snap.Strategy.CarriesPassengers() {
		lw.line("Annual Traffic:", count(snap.Traffic)+" passengers")
		lw.line("Traffic Growth:", pct(snap.TrafficGrowthRate*100))
		lw.line("Terminal Capacity:", count(snap.CapacityPax)+" passengers")
		lw.line("Terminal Utilization:", pct(snap.TerminalUtilization*100))
		lw.line("Runway Capacity:", count(snap.RunwayCapacityMovements)+" movements per hour")
		lw.line("Peak-Hour Movements:", printer.Sprintf("%.2f", snap.CurrentMovements))
		lw.line("Runway Utilization:", pct(snap.RunwayUtilization*100))
	}
	lw.line("Quality Impact on Traffic:", pct((snap.QualityFactor-1)*100))
	lw.line("Charges Impact on Traffic:", pct(snap.ChargeImpact*100))
	lw.line("Cost Impact on Traffic:", pct(-snap.CostImpact*100))
	lw.line("Marketing Impact on Traffic:", pct(snap.MarketingImpact*100))

	// 2. Income statement
	lw.header("Income")
	switch snap.Strategy.Family() {
	case game.FamilyCargo:
		lw.line("Revenues (Cargo):", amount(snap.RevenueCargo))
	case game.FamilyHybrid:
		lw.line("Revenues (Aero):", amount(snap.RevenueAero))
		lw.line("Revenues (Cargo):", amount(snap.RevenueCargo))
	default:
		lw.line("Revenues (Aero):", amount(snap.RevenueAero))
	}
	lw.line("Revenues (Non-Aero):", amount(snap.RevenueNonAero))
	lw.line("Total Revenues:", amount(snap.TotalRevenue))
	lw.line("OPEX:", amount(snap.Opex))
	lw.line("OPEX % of Asset Value:", pct(snap.OpexToAssetRatio*100))
	lw.line("EBITDA:", amount(snap.EBITDA))
	lw.line("Depreciation:", amount(snap.Depreciation))
	lw.line("Interest:", amount(snap.InterestPaid))
	lw.line("Profit (Regulated):", amount(snap.RegulatedProfit))
	lw.line("Profit (Unregulated):", amount(snap.UnregulatedProfit))
	lw.line("Profit (Pre-Compensation):", amount(snap.ProfitBeforeComp))
	lw.line("Regulation Compensation:", amount(snap.Compensation))
	lw.line("Profit (Post-Compensation):", amount(snap.ProfitAfterComp))
	lw.line("Return on Equity:", pct(snap.ROE))
	if snap.Gearing != nil {
		lw.line("Gearing (Debt/Equity):", printer.Sprintf("%.2f", *snap.Gearing))
	} else {
		lw.line("Gearing (Debt/Equity):", "n/a")
	}

	// 3. Cash flow
	lw.header("Cash Flow")
	lw.line("Cash Balance (Start of Year):", amount(snap.OpeningCash))
	lw.line("Cash Flow from Operations:", amount(snap.CFO))
	lw.line("Cash Flow from Investing:", amount(snap.CFI))
	lw.line("Cash Flow from Financing:", amount(snap.CFF))
	lw.line("Net Change in Cash:", amount(snap.CFO+snap.CFI+snap.CFF))
	lw.line("Cash Balance (End of Year):", amount(snap.CashBalance))

	if lw.err != nil {
		return lw.err
	}
	return tw.Flush()
}

// DecisionTable writes the decisions of every year.
func DecisionTable(w io.Writer, history []session.HistoryRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tCAPEX Project\tLead Time\tAvailable In\tLoan Amount\tCampaigns\tOPEX Change\tCharges Change\tGDP\t")
	for _, r := range history {
		project, lead, available := "None", "", ""
		if r.Project != "" {
			project = r.Project
			lead = fmt.Sprint(r.LeadTime)
			available = fmt.Sprint(r.AvailableYear)
		}
		campaigns := "None"
		if len(r.Campaigns) > 0 {
			campaigns = strings.Join(r.Campaigns, ", ")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Year, project, lead, available, dec(r.LoanAmount), campaigns,
			pct(r.OpexChangePct), pct(r.AeroChargeChangePct), pct(r.GDPGrowthPct))
	}
	return tw.Flush()
}

// MetricsTable writes the key metrics of every year.
func MetricsTable(w io.Writer, history []session.HistoryRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tTraffic\tCapacity\tTerminal\tRunway\tProfit\tEnd Cash\tCFO\tCFI\tCFF\tQuality\tCharges\tCost\t")
	for _, r := range history {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Year, count(r.Traffic), count(r.CapacityPax),
			pct(r.TerminalUtilizationPct), pct(r.RunwayUtilizationPct),
			dec(r.ProfitAfterComp), dec(r.EndCash), dec(r.CFO), dec(r.CFI), dec(r.CFF),
			pct(r.QualityImpactPct), pct(r.ChargeImpactPct), pct(r.CostImpactPct))
	}
	return tw.Flush()
}

// Catalog writes the strategies, projects and campaigns on offer.
func Catalog(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "STRATEGY\tFAMILY\tELASTICITY\tOPEX BENCHMARK\t")
	for _, k := range game.Strategies {
		p := k.Params()
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t\n", k, p.Family, p.PriceElasticity, pct(p.OpexQualityBenchmark*100))
	}

	fmt.Fprintln(tw, "\nPROJECT\tCOST\tEFFECT\tLEAD TIME\tLOAN\t")
	for _, p := range game.Projects {
		loan := "no"
		if p.LoanAllowed {
			loan = "up to cost"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s %s\t%d\t%s\t\n", p.Name, amount(p.Cost), count(p.CapacityEffect), p.Kind, p.LeadTime, loan)
	}

	fmt.Fprintln(tw, "\nCAMPAIGN\tLABEL\tCOST\tIMPACT\tCATEGORY\t")
	for _, c := range game.Campaigns {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n", c.Code, c.Label, amount(c.Cost), pct(c.BaseImpact*100), c.Category)
	}
	return tw.Flush()
}
