/*
Package session
File: game.go
Description:
    A Game is one operator's run of the simulation: the airport aggregate,
    the scenario it was created from, the decisions accepted so far this
    year and the history of completed years.

    The airport itself is not safe for concurrent use. Every method here
    takes the game's lock, so API handlers and the WebSocket hub can share
    a Game freely.
*/

package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/everforgeworks/airport-tycoon/internal/game"
	"github.com/everforgeworks/airport-tycoon/internal/scenario"
)

var (
	ErrNotFound   = errors.New("game not found")
	ErrNoStrategy = errors.New("no strategy given")
)

// Game is a single simulation session.
type Game struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	airport    *game.Airport
	scenario   *scenario.Scenario
	pending    yearDecisions
	history    []HistoryRecord
	lastActive time.Time
	logger     *slog.Logger
}

// State is the read view of a game between transitions.
type State struct {
	ID               string            `json:"id"`
	Strategy         game.StrategyKind `json:"strategy"`
	DecisionYear     int               `json:"decision_year"`
	Complete         bool              `json:"complete"`
	NextGDPGrowthPct float64           `json:"next_gdp_growth_pct"`
	DecidedProjects  []string          `json:"decided_projects"`
	DecidedCampaigns []string          `json:"decided_campaigns"`
	Snapshot         game.Snapshot     `json:"snapshot"`
}

// YearResult is the outcome of one transition.
type YearResult struct {
	Snapshot game.Snapshot `json:"snapshot"`
	Record   HistoryRecord `json:"record"`
}

// Rejection is a decision of a played turn that the rules refused.
type Rejection struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
	Err      error  `json:"-"`
}

// TurnResult is the outcome of a played turn.
type TurnResult struct {
	YearResult
	Rejections []Rejection `json:"rejections,omitempty"`
}

// New creates a game for strategy from the scenario's initial conditions.
// An empty strategy falls back to the scenario's strategy.
func New(strategy game.StrategyKind, sc *scenario.Scenario, logger *slog.Logger) (*Game, error) {
	if sc == nil {
		sc = scenario.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if strategy == "" {
		strategy = sc.Strategy
	}
	if strategy == "" {
		return nil, ErrNoStrategy
	}

	airport, err := game.NewAirport(strategy, sc.Initial)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	id := uuid.New().String()
	return &Game{
		ID:         id,
		CreatedAt:  now,
		airport:    airport,
		scenario:   sc,
		history:    []HistoryRecord{},
		lastActive: now,
		logger:     logger.With("game", id, "strategy", string(strategy)),
	}, nil
}

// touch marks the game as used. Caller must hold the lock.
func (g *Game) touch() {
	g.lastActive = time.Now()
}

// LastActive is the time of the last call that read or changed the game.
func (g *Game) LastActive() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastActive
}

// InitiateProject starts a catalog project, financing loanAmount of its cost with a loan.
func (g *Game) InitiateProject(name string, loanAmount float64) (game.Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.touch()

	if err := g.initiateProject(name, loanAmount); err != nil {
		return game.Snapshot{}, err
	}
	return g.airport.Snapshot(), nil
}

func (g *Game) initiateProject(name string, loanAmount float64) error {
	spec := game.GetProject(name)
	if spec == nil {
		return fmt.Errorf("%w: %q", game.ErrUnknownProject, name)
	}
	if err := g.airport.InitiateCatalogProject(spec.Name, loanAmount); err != nil {
		g.logger.Debug("project rejected", "project", spec.Name, "loan", loanAmount, "err", err)
		return err
	}
	g.pending.projects = append(g.pending.projects, spec.Name)
	g.pending.leadTime = spec.LeadTime
	g.pending.loan += loanAmount
	g.logger.Info("project initiated",
		"year", g.airport.DecisionYear(),
		"project", spec.Name,
		"loan", loanAmount,
		"available_year", g.airport.DecisionYear()+spec.LeadTime,
	)
	return nil
}

// IssueLoan borrows amount outside of a project.
func (g *Game) IssueLoan(amount float64) (game.Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.touch()

	if err := g.issueLoan(amount); err != nil {
		return game.Snapshot{}, err
	}
	return g.airport.Snapshot(), nil
}

func (g *Game) issueLoan(amount float64) error {
	if err := g.airport.IssueLoan(amount); err != nil {
		g.logger.Debug("loan rejected", "amount", amount, "err", err)
		return err
	}
	g.pending.loan += amount
	g.logger.Info("loan issued", "year", g.airport.DecisionYear(), "amount", amount, "debt", g.airport.Debt)
	return nil
}

// ApplyMarketing funds a campaign from this year's budget.
func (g *Game) ApplyMarketing(code string) (game.Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.touch()

	if err := g.applyMarketing(code); err != nil {
		return game.Snapshot{}, err
	}
	return g.airport.Snapshot(), nil
}

func (g *Game) applyMarketing(code string) error {
	if err := g.airport.ApplyMarketingCampaign(code); err != nil {
		g.logger.Debug("campaign rejected", "code", code, "err", err)
		return err
	}
	c := game.GetCampaign(code)
	g.pending.campaigns = append(g.pending.campaigns, c.Code)
	g.logger.Info("campaign funded",
		"year", g.airport.DecisionYear(),
		"code", c.Code,
		"budget_left", g.airport.MarketingBudgetRemaining,
	)
	return nil
}

// Advance closes the current year with the scheduled GDP growth and the given
// opex and aeronautical charge changes.
func (g *Game) Advance(opexChangePct, aeroChargeChangePct float64) (YearResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.touch()

	return g.advance(opexChangePct, aeroChargeChangePct)
}

func (g *Game) advance(opexChangePct, aeroChargeChangePct float64) (YearResult, error) {
	gdp := g.scenario.GDPGrowth(g.airport.DecisionYear())
	snap, err := g.airport.AdvanceYear(gdp, opexChangePct, aeroChargeChangePct)
	if err != nil {
		return YearResult{}, err
	}

	record := newHistoryRecord(snap, g.pending, gdp, opexChangePct, aeroChargeChangePct)
	g.history = append(g.history, record)
	g.pending = yearDecisions{}

	for _, e := range snap.Events {
		g.logger.Info("event", "year", snap.Year, "kind", e.Kind, "description", e.Message)
	}
	g.logger.Info("year advanced",
		"year", snap.Year,
		"gdp", gdp,
		"traffic", snap.Traffic,
		"ebitda", snap.EBITDA,
		"profit", snap.ProfitAfterComp,
		"cash", snap.CashBalance,
	)
	if g.airport.Complete() {
		g.logger.Info("game complete", "years", snap.Year, "equity", snap.Equity)
	}
	return YearResult{Snapshot: snap, Record: record}, nil
}

// PlayYear applies a full decision record in the fixed order: the capital
// project with its loan (or a standalone loan when no project is named),
// each campaign in turn, then the transition.
// Rejected decisions are reported and do not stop the year.
func (g *Game) PlayYear(t scenario.Turn) (TurnResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.touch()

	if g.airport.Complete() {
		return TurnResult{}, game.ErrSimulationComplete
	}

	var rejections []Rejection
	if t.Project != "" {
		if err := g.initiateProject(t.Project, t.LoanAmount); err != nil {
			rejections = append(rejections, Rejection{Decision: "project " + t.Project, Reason: err.Error(), Err: err})
		}
	} else if t.LoanAmount > 0 {
		if err := g.issueLoan(t.LoanAmount); err != nil {
			rejections = append(rejections, Rejection{Decision: "loan", Reason: err.Error(), Err: err})
		}
	}
	for _, code := range t.Campaigns {
		if err := g.applyMarketing(code); err != nil {
			rejections = append(rejections, Rejection{Decision: "campaign " + code, Reason: err.Error(), Err: err})
		}
	}

	res, err := g.advance(t.OpexChangePct, t.AeroChargeChangePct)
	if err != nil {
		return TurnResult{}, err
	}
	return TurnResult{YearResult: res, Rejections: rejections}, nil
}

// State returns the current read view.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.touch()

	return State{
		ID:               g.ID,
		Strategy:         g.airport.Strategy,
		DecisionYear:     g.airport.DecisionYear(),
		Complete:         g.airport.Complete(),
		NextGDPGrowthPct: g.scenario.GDPGrowth(g.airport.DecisionYear()),
		DecidedProjects:  append([]string{}, g.pending.projects...),
		DecidedCampaigns: append([]string{}, g.pending.campaigns...),
		Snapshot:         g.airport.Snapshot(),
	}
}

// History returns a copy of the completed years.
func (g *Game) History() []HistoryRecord {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.touch()

	return append([]HistoryRecord{}, g.history...)
}

// Complete reports whether the horizon has been reached.
func (g *Game) Complete() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.airport.Complete()
}
