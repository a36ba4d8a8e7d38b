package report

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/everforgeworks/airport-tycoon/internal/game"
	"github.com/everforgeworks/airport-tycoon/internal/scenario"
	"github.com/everforgeworks/airport-tycoon/internal/session"
)

func playedGame(t *testing.T, strategy game.StrategyKind, turns ...scenario.Turn) (*session.Game, session.TurnResult) {
	t.Helper()
	g, err := session.New(strategy, scenario.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("session.New returned error: %v", err)
	}
	var last session.TurnResult
	for _, turn := range turns {
		last, err = g.PlayYear(turn)
		if err != nil {
			t.Fatalf("PlayYear returned error: %v", err)
		}
	}
	return g, last
}

func TestYearReportRevenueLinesFollowFamily(t *testing.T) {
	tests := []struct {
		strategy game.StrategyKind
		present  []string
		absent   []string
	}{
		{game.RegionalHub, []string{"Revenues (Aero):", "Annual Traffic:"}, []string{"Revenues (Cargo):", "Annual Cargo:"}},
		{game.CargoAirport, []string{"Revenues (Cargo):", "Annual Cargo:"}, []string{"Revenues (Aero):", "Annual Traffic:"}},
		{game.PassengerAndCargoHub, []string{"Revenues (Aero):", "Revenues (Cargo):", "Annual Traffic:", "Annual Cargo:"}, nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			_, res := playedGame(t, tt.strategy, scenario.Turn{})
			var buf bytes.Buffer
			if err := YearReport(&buf, res.Snapshot); err != nil {
				t.Fatalf("YearReport returned error: %v", err)
			}
			out := buf.String()
			for _, s := range tt.present {
				if !strings.Contains(out, s) {
					t.Errorf("report is missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(out, s) {
					t.Errorf("report should not contain %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestYearReportGroupsThousands(t *testing.T) {
	_, res := playedGame(t, game.RegionalHub, scenario.Turn{})
	var buf bytes.Buffer
	if err := YearReport(&buf, res.Snapshot); err != nil {
		t.Fatalf("YearReport returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "$50,000,000.00") {
		t.Errorf("opening cash not grouped:\n%s", buf.String())
	}
}

func TestYearReportWithoutGearing(t *testing.T) {
	snap := game.Snapshot{Year: 1, Strategy: game.RegionalHub}
	var buf bytes.Buffer
	if err := YearReport(&buf, snap); err != nil {
		t.Fatalf("YearReport returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "n/a") {
		t.Errorf("missing gearing placeholder:\n%s", buf.String())
	}
}

func TestHistoryTables(t *testing.T) {
	g, _ := playedGame(t, game.RegionalHub,
		scenario.Turn{Project: game.ProjectNewTerminal, LoanAmount: 100_000_000, Campaigns: []string{"a", "f"}},
		scenario.Turn{OpexChangePct: 2},
	)
	history := g.History()

	var decisions bytes.Buffer
	if err := DecisionTable(&decisions, history); err != nil {
		t.Fatalf("DecisionTable returned error: %v", err)
	}
	out := decisions.String()
	for _, s := range []string{"New Terminal", "a, f", "$100,000,000.00", "None", "2.00%"} {
		if !strings.Contains(out, s) {
			t.Errorf("decision table is missing %q:\n%s", s, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 3 {
		t.Errorf("decision table has %d lines, want 3", lines)
	}

	var metrics bytes.Buffer
	if err := MetricsTable(&metrics, history); err != nil {
		t.Fatalf("MetricsTable returned error: %v", err)
	}
	if !strings.Contains(metrics.String(), "15,000,000") {
		t.Errorf("metrics table is missing the capacity:\n%s", metrics.String())
	}
}

func TestCatalog(t *testing.T) {
	var buf bytes.Buffer
	if err := Catalog(&buf); err != nil {
		t.Fatalf("Catalog returned error: %v", err)
	}
	out := buf.String()
	for _, s := range []string{"Passenger and Cargo Hub", "Cargo Hangar", "$1,800,000.00", "Gourmet Food & Beverage Launch"} {
		if !strings.Contains(out, s) {
			t.Errorf("catalog is missing %q", s)
		}
	}
}
