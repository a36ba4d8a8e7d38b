/*
Package api
File: handlers.go
Description:
    The HTTP JSON API over the session registry.
    Handlers decode the request, look the game up, call one session
    operation and encode the result. Rule rejections from the simulation
    are mapped to status codes in one place (statusFor).

    Key Responsibilities:
    - Input Validation (Is the JSON valid? Does the game exist?)
    - Dispatch to the session layer, which serializes access per game
    - Publishing created games and completed years to the WebSocket hub
*/

package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/everforgeworks/airport-tycoon/internal/game"
	"github.com/everforgeworks/airport-tycoon/internal/scenario"
	"github.com/everforgeworks/airport-tycoon/internal/session"
)

// Request DTOs (Data Transfer Objects)

type CreateGameRequest struct {
	Strategy string `json:"strategy"`
}

type CapexRequest struct {
	Project    string  `json:"project"`
	LoanAmount float64 `json:"loan_amount"`
}

type LoanRequest struct {
	Amount float64 `json:"amount"`
}

type MarketingRequest struct {
	Code string `json:"code"`
}

type AdvanceRequest struct {
	OpexChangePct       float64 `json:"opex_change_pct"`
	AeroChargeChangePct float64 `json:"aero_charge_change_pct"`
}

// GameCreated is the response to a new game and the hub payload announcing it.
type GameCreated struct {
	ID    string        `json:"id"`
	State session.State `json:"state"`
}

// Options tune the server.
type Options struct {
	AllowedOrigin string
}

// Server routes API requests to the registry.
type Server struct {
	registry *session.Registry
	hub      *Hub
	upgrader *websocket.Upgrader
	logger   *slog.Logger
}

// New constructs the HTTP router wired to the registry and hub.
func New(registry *session.Registry, hub *Hub, logger *slog.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		registry: registry,
		hub:      hub,
		upgrader: newUpgrader(opts.AllowedOrigin),
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(corsMiddleware(opts.AllowedOrigin))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		// Information Endpoints
		r.Get("/catalog/strategies", s.handleStrategies)
		r.Get("/catalog/projects", s.handleProjects)
		r.Get("/catalog/campaigns", s.handleCampaigns)

		r.Post("/games", s.handleCreateGame)
		r.Route("/games/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetGame)
			r.Get("/history", s.handleHistory)

			// Action Endpoints
			r.Post("/capex", s.handleCapex)
			r.Post("/loans", s.handleLoan)
			r.Post("/marketing", s.handleMarketing)
			r.Post("/advance", s.handleAdvance)
			r.Post("/turn", s.handleTurn)
		})
	})

	// Real-Time WebSocket Endpoint
	if hub != nil {
		r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
			hub.ServeWs(s.upgrader, w, r)
		})
	}
	return r
}

// StrategyInfo is one row of the strategy catalog.
type StrategyInfo struct {
	Name string `json:"name"`
	game.StrategyParams
}

func (s *Server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	out := make([]StrategyInfo, 0, len(game.Strategies))
	for _, k := range game.Strategies {
		out = append(out, StrategyInfo{Name: string(k), StrategyParams: k.Params()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, game.Projects)
}

func (s *Server) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, game.Campaigns)
}

// handleCreateGame starts a game. An empty body uses the scenario's strategy.
func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return
	}

	g, err := s.registry.Create(req.Strategy)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := GameCreated{ID: g.ID, State: g.State()}
	s.publish(MessageGameCreated, g.ID, resp)
	writeJSON(w, http.StatusCreated, resp)
}

// game resolves the {id} URL parameter, writing a 404 when it is unknown.
func (s *Server) game(w http.ResponseWriter, r *http.Request) (*session.Game, bool) {
	g, err := s.registry.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	return g, true
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, ok := s.game(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, g.State())
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	g, ok := s.game(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, g.History())
}

func (s *Server) handleCapex(w http.ResponseWriter, r *http.Request) {
	var req CapexRequest
	if !decode(w, r, &req) {
		return
	}
	g, ok := s.game(w, r)
	if !ok {
		return
	}
	snap, err := g.InitiateProject(req.Project, req.LoanAmount)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleLoan(w http.ResponseWriter, r *http.Request) {
	var req LoanRequest
	if !decode(w, r, &req) {
		return
	}
	g, ok := s.game(w, r)
	if !ok {
		return
	}
	snap, err := g.IssueLoan(req.Amount)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleMarketing(w http.ResponseWriter, r *http.Request) {
	var req MarketingRequest
	if !decode(w, r, &req) {
		return
	}
	g, ok := s.game(w, r)
	if !ok {
		return
	}
	snap, err := g.ApplyMarketing(req.Code)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	var req AdvanceRequest
	if !decode(w, r, &req) {
		return
	}
	g, ok := s.game(w, r)
	if !ok {
		return
	}
	res, err := g.Advance(req.OpexChangePct, req.AeroChargeChangePct)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.publish(MessageYearAdvanced, g.ID, res.Record)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	var req scenario.Turn
	if !decode(w, r, &req) {
		return
	}
	g, ok := s.game(w, r)
	if !ok {
		return
	}
	res, err := g.PlayYear(req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.publish(MessageYearAdvanced, g.ID, res.Record)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) publish(msgType, sender string, payload any) {
	if s.hub != nil {
		s.hub.Publish(msgType, sender, payload)
	}
}

// statusFor maps a session or simulation error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrInsufficientFunds), errors.Is(err, game.ErrInsufficientBudget):
		return http.StatusPaymentRequired
	case errors.Is(err, game.ErrGearingExceeded), errors.Is(err, game.ErrSimulationComplete):
		return http.StatusConflict
	case errors.Is(err, game.ErrUnknownProject), errors.Is(err, game.ErrUnknownCampaign),
		errors.Is(err, game.ErrUnknownStrategy), errors.Is(err, game.ErrInvalidAmount),
		errors.Is(err, session.ErrNoStrategy):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSONError(w, status, err.Error())
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSONError(w, http.StatusBadRequest, "bad request")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

// corsMiddleware lets a browser front end on another origin call the API.
func corsMiddleware(allowedOrigin string) func(http.Handler) http.Handler {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
