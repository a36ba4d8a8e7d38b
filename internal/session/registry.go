/*
Package session
File: registry.go
Description:
    In-memory registry of live games, keyed by game ID.
    The registry also holds the scenario new games are created from; a
    reload swaps it for games created afterward and leaves running games
    on the scenario they started with.
*/

package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/everforgeworks/airport-tycoon/internal/game"
	"github.com/everforgeworks/airport-tycoon/internal/scenario"
)

// Registry holds every live game.
type Registry struct {
	mu       sync.RWMutex
	games    map[string]*Game
	scenario *scenario.Scenario
	logger   *slog.Logger
}

// NewRegistry creates an empty registry. A nil scenario means the reference scenario.
func NewRegistry(sc *scenario.Scenario, logger *slog.Logger) *Registry {
	if sc == nil {
		sc = scenario.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		games:    make(map[string]*Game),
		scenario: sc,
		logger:   logger,
	}
}

// Create starts a new game. An empty name uses the scenario's strategy.
func (r *Registry) Create(strategyName string) (*Game, error) {
	var strategy game.StrategyKind
	if strategyName != "" {
		k, err := game.ParseStrategy(strategyName)
		if err != nil {
			return nil, err
		}
		strategy = k
	}

	g, err := New(strategy, r.Scenario(), r.logger)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.games[g.ID] = g
	n := len(r.games)
	r.mu.Unlock()

	r.logger.Info("game created", "game", g.ID, "strategy", string(g.airport.Strategy), "games", n)
	return g, nil
}

// Get looks up a game by ID.
func (r *Registry) Get(id string) (*Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return g, nil
}

// Delete drops a game. Unknown IDs are ignored.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.games, id)
}

// Len is the number of live games.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}

// Sweep drops games idle for longer than ttl as of now and returns how many went.
func (r *Registry) Sweep(now time.Time, ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, g := range r.games {
		if now.Sub(g.LastActive()) > ttl {
			delete(r.games, id)
			removed++
		}
	}
	if removed > 0 {
		r.logger.Info("idle games swept", "removed", removed, "remaining", len(r.games))
	}
	return removed
}

// Scenario returns the scenario new games start from.
func (r *Registry) Scenario() *scenario.Scenario {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.scenario
}

// SetScenario replaces the scenario for games created from now on.
func (r *Registry) SetScenario(sc *scenario.Scenario) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scenario = sc
	r.logger.Info("scenario loaded", "name", sc.Name)
}
