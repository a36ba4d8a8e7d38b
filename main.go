/*
Package main
File: main.go
Description: Command-line entry point. The root command wires three subcommands:
    - serve:   the HTTP/WebSocket server hosting many concurrent games.
    - play:    one game played to the horizon from a scenario script, printed as reports.
    - catalog: the strategies, projects and campaigns on offer.
*/

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/everforgeworks/airport-tycoon/internal/scenario"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "airport-tycoon",
		Short:         "Airport economics simulation: capacity, finance and regulation over ten years",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(playCmd())
	rootCmd.AddCommand(catalogCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadScenario reads the scenario file, or returns the reference scenario for an empty path.
func loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.Default(), nil
	}
	return scenario.Load(path)
}

// discardLogger swallows every record; the play command prints reports instead.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
