/*
Package config
File: config.go
Description:
    Process settings for the server and the CLI.
    Values come from environment variables. A .env file in the working
    directory is loaded first when present; variables already set in the
    environment win over the file.
*/

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds process configuration.
type Config struct {
	Addr          string        `env:"ADDR"           envDefault:":8081"`
	ScenarioFile  string        `env:"SCENARIO_FILE"`
	LogLevel      string        `env:"LOG_LEVEL"      envDefault:"info"`
	LogFormat     string        `env:"LOG_FORMAT"     envDefault:"text"`
	GameTTL       time.Duration `env:"GAME_TTL"       envDefault:"2h"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"60s"`
	AllowedOrigin string        `env:"ALLOWED_ORIGIN" envDefault:"*"`
}

// Load reads the optional dotenv files and then the environment.
// With no files given, ".env" is tried.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env parsing cannot.
func (c Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if c.GameTTL <= 0 || c.SweepInterval <= 0 {
		return fmt.Errorf("GAME_TTL and SWEEP_INTERVAL must be positive")
	}
	return nil
}

// Logger builds the process logger writing to w.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
