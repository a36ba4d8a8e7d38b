/*
Package scenario
File: scenario.go
Description:
    Static game data for a session: the opening conditions of the airport,
    the macro GDP schedule, and an optional script of per-year decisions
    used by the CLI to replay a game without an operator.

    Scenarios are YAML files. Default() reproduces the reference scenario
    and Load() fills any value a file leaves out from it.
*/

package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/everforgeworks/airport-tycoon/internal/game"
)

// DefaultGDPGrowth is used for years the schedule does not cover.
const DefaultGDPGrowth = 2.0

// referenceGDP is the macro schedule for years 1 to 20, in percent.
var referenceGDP = []float64{
	2.0, 2.5, 1.8, 3.0, 2.2, 2.8, 1.5, 2.0, 2.5, 2.3,
	2.1, 1.9, 2.6, 2.4, 2.7, 2.0, 2.2, 2.5, 2.1, 2.3,
}

// Scenario is the static data a game is created from.
type Scenario struct {
	Name             string                 `yaml:"name" json:"name"`
	Strategy         game.StrategyKind      `yaml:"strategy,omitempty" json:"strategy,omitempty"`
	Initial          game.InitialConditions `yaml:"initial" json:"initial"`
	GDP              map[int]float64        `yaml:"gdp_growth" json:"gdp_growth"` // Year (1-based) -> percent
	DefaultGDPGrowth float64                `yaml:"default_gdp_growth" json:"default_gdp_growth"`
	Turns            []Turn                 `yaml:"turns,omitempty" json:"turns,omitempty"`
}

// Turn is one year's decision record. Empty fields mean "no decision".
type Turn struct {
	Project             string   `yaml:"project,omitempty" json:"project,omitempty"`
	LoanAmount          float64  `yaml:"loan_amount,omitempty" json:"loan_amount,omitempty"`
	Campaigns           []string `yaml:"campaigns,omitempty" json:"campaigns,omitempty"`
	OpexChangePct       float64  `yaml:"opex_change_pct,omitempty" json:"opex_change_pct"`
	AeroChargeChangePct float64  `yaml:"aero_charge_change_pct,omitempty" json:"aero_charge_change_pct"`
}

// Default returns the reference scenario.
func Default() *Scenario {
	gdp := make(map[int]float64, len(referenceGDP))
	for i, v := range referenceGDP {
		gdp[i+1] = v
	}
	return &Scenario{
		Name:             "reference",
		Strategy:         game.RegionalHub,
		Initial:          game.ReferenceConditions,
		GDP:              gdp,
		DefaultGDPGrowth: DefaultGDPGrowth,
	}
}

// Load reads a scenario file from disk.
func Load(path string) (*Scenario, error) {
	// 1. Read the YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	// 2. Parse and fill defaults
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML scenario on top of the reference scenario,
// so a file only needs the values it changes.
func Parse(data []byte) (*Scenario, error) {
	s := Default()
	s.GDP = nil
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if s.GDP == nil {
		s.GDP = Default().GDP
	}
	if s.DefaultGDPGrowth == 0 {
		s.DefaultGDPGrowth = DefaultGDPGrowth
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate rejects scenarios the simulation cannot start from.
func (s *Scenario) Validate() error {
	in := s.Initial
	if in.Traffic < 0 || in.CargoTonnes < 0 || in.AssetValue < 0 || in.OpexRatio < 0 {
		return fmt.Errorf("initial conditions must not be negative: %+v", in)
	}
	if s.Strategy != "" {
		if _, err := game.ParseStrategy(string(s.Strategy)); err != nil {
			return err
		}
	}
	for year := range s.GDP {
		if year < 1 {
			return fmt.Errorf("gdp_growth year %d: years start at 1", year)
		}
	}
	for i, t := range s.Turns {
		if t.Project != "" && game.GetProject(t.Project) == nil {
			return fmt.Errorf("turn %d: %w: %q", i+1, game.ErrUnknownProject, t.Project)
		}
		for _, code := range t.Campaigns {
			if game.GetCampaign(code) == nil {
				return fmt.Errorf("turn %d: %w: %q", i+1, game.ErrUnknownCampaign, code)
			}
		}
	}
	return nil
}

// GDPGrowth returns the GDP growth percentage for a 1-based year.
func (s *Scenario) GDPGrowth(year int) float64 {
	if v, ok := s.GDP[year]; ok {
		return v
	}
	return s.DefaultGDPGrowth
}

// Turn returns the scripted decisions for a 1-based year, or an empty turn.
func (s *Scenario) Turn(year int) Turn {
	if year < 1 || year > len(s.Turns) {
		return Turn{}
	}
	return s.Turns[year-1]
}

// Marshal encodes the scenario as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
