/*
Package main
File: serve.go
Description: The serve command. Starts the API server, the real-time WebSocket
hub, and the background heartbeat that sweeps idle games.
*/

package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/everforgeworks/airport-tycoon/internal/api"
	"github.com/everforgeworks/airport-tycoon/internal/config"
	"github.com/everforgeworks/airport-tycoon/internal/session"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var addr, scenarioFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and WebSocket server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				log.Fatalf("Config Fail: %v", err)
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if scenarioFile != "" {
				cfg.ScenarioFile = scenarioFile
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides ADDR)")
	cmd.Flags().StringVarP(&scenarioFile, "scenario", "s", "", "scenario YAML file (overrides SCENARIO_FILE)")
	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	logger := cfg.Logger(os.Stderr)
	slog.SetDefault(logger)

	// 1. Load the scenario new games start from
	sc, err := loadScenario(cfg.ScenarioFile)
	if err != nil {
		return err
	}
	registry := session.NewRegistry(sc, logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Start the real-time WebSocket hub
	hub := api.NewHub(logger)
	go hub.Run(ctx)

	// 3. THE HEARTBEAT
	// Drops games nobody has touched for GAME_TTL.
	go func() {
		ticker := time.NewTicker(cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := registry.Sweep(now, cfg.GameTTL); n > 0 {
					hub.Publish(api.MessageGamesSwept, "system", map[string]int{
						"removed":   n,
						"remaining": registry.Len(),
					})
				}
			}
		}
	}()

	// 4. Hot-reload: SIGHUP re-reads the scenario for games created afterward
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGHUP)
		defer signal.Stop(sigChan)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigChan:
				logger.Info("SIGHUP: reloading scenario", "file", cfg.ScenarioFile)
				next, err := loadScenario(cfg.ScenarioFile)
				if err != nil {
					logger.Error("scenario reload failed, keeping the current one", "err", err)
					continue
				}
				registry.SetScenario(next)
				hub.Publish(api.MessageScenario, "system", map[string]string{"name": next.Name})
			}
		}
	}()

	// 5. Start the server
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.New(registry, hub, logger, api.Options{AllowedOrigin: cfg.AllowedOrigin}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("airport tycoon server live", "addr", cfg.Addr, "scenario", sc.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	// 6. Graceful shutdown
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
