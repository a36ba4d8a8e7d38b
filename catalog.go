/*
Package main
File: catalog.go
Description: The catalog command. Prints the strategy table, the capex projects
and the marketing campaigns, as a text table or as YAML. It can also emit the
reference scenario as a starting point for a custom scenario file.
*/

package main

import (
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/everforgeworks/airport-tycoon/internal/game"
	"github.com/everforgeworks/airport-tycoon/internal/report"
	"github.com/everforgeworks/airport-tycoon/internal/scenario"
)

// catalogDoc is the YAML form of the catalog.
type catalogDoc struct {
	Strategies map[game.StrategyKind]game.StrategyParams `yaml:"strategies"`
	Projects   []game.ProjectSpec                        `yaml:"projects"`
	Campaigns  []game.Campaign                           `yaml:"campaigns"`
}

func catalogCmd() *cobra.Command {
	var asYAML, template bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print strategies, capex projects and marketing campaigns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalog(cmd.OutOrStdout(), asYAML, template)
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the catalog as YAML")
	cmd.Flags().BoolVar(&template, "scenario-template", false, "print the reference scenario as YAML")
	return cmd
}

func runCatalog(out io.Writer, asYAML, template bool) error {
	switch {
	case template:
		data, err := scenario.Default().Marshal()
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err

	case asYAML:
		doc := catalogDoc{
			Strategies: make(map[game.StrategyKind]game.StrategyParams, len(game.Strategies)),
			Projects:   game.Projects,
			Campaigns:  game.Campaigns,
		}
		for _, k := range game.Strategies {
			doc.Strategies[k] = k.Params()
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()

	default:
		return report.Catalog(out)
	}
}
