/*
Package main
File: play.go
Description: The play command. Plays one game to the horizon without an operator:
each year applies the scenario's scripted decisions (or none), then the reports
of every year and the decision and metrics tables are printed.
*/

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/everforgeworks/airport-tycoon/internal/config"
	"github.com/everforgeworks/airport-tycoon/internal/game"
	"github.com/everforgeworks/airport-tycoon/internal/report"
	"github.com/everforgeworks/airport-tycoon/internal/scenario"
	"github.com/everforgeworks/airport-tycoon/internal/session"
)

func playCmd() *cobra.Command {
	var (
		strategy     string
		scenarioFile string
		summaryOnly  bool
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a scripted game to the horizon and print the reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := loadScenario(scenarioFile)
			if err != nil {
				return err
			}
			return runPlay(cmd.OutOrStdout(), sc, game.StrategyKind(strategy), summaryOnly, verbose)
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "", "strategy name, e.g. \"Regional Hub\" (default: the scenario's)")
	cmd.Flags().StringVar(&scenarioFile, "scenario", "", "scenario YAML file (default: reference scenario)")
	cmd.Flags().BoolVar(&summaryOnly, "summary", false, "print only the decision and metrics tables")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log decisions and events to stderr")
	return cmd
}

func runPlay(out io.Writer, sc *scenario.Scenario, strategy game.StrategyKind, summaryOnly, verbose bool) error {
	logger := discardLogger()
	if verbose {
		logger = config.Config{LogLevel: "debug", LogFormat: "text"}.Logger(os.Stderr)
	}

	g, err := session.New(strategy, sc, logger)
	if err != nil {
		return err
	}

	for year := 1; !g.Complete(); year++ {
		res, err := g.PlayYear(sc.Turn(year))
		if err != nil {
			return err
		}
		for _, r := range res.Rejections {
			fmt.Fprintf(out, "Year %d: %s rejected: %s\n", year, r.Decision, r.Reason)
		}
		if summaryOnly {
			continue
		}
		fmt.Fprintf(out, "\n=== Year %d (GDP growth %.1f%%) ===\n", year, res.Record.GDPGrowthPct)
		if err := report.YearReport(out, res.Snapshot); err != nil {
			return err
		}
	}

	history := g.History()
	fmt.Fprintln(out, "\n=== Decisions ===")
	if err := report.DecisionTable(out, history); err != nil {
		return err
	}
	fmt.Fprintln(out, "\n=== Key Metrics ===")
	return report.MetricsTable(out, history)
}
