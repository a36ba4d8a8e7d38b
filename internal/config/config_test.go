package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Addr != ":8081" {
		t.Errorf("Addr = %q, want :8081", cfg.Addr)
	}
	if cfg.GameTTL != 2*time.Hour || cfg.SweepInterval != time.Minute {
		t.Errorf("GameTTL = %v SweepInterval = %v", cfg.GameTTL, cfg.SweepInterval)
	}
	if cfg.AllowedOrigin != "*" || cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("SCENARIO_FILE", "boom.yaml")
	t.Setenv("GAME_TTL", "30m")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Addr != ":9000" || cfg.ScenarioFile != "boom.yaml" || cfg.GameTTL != 30*time.Minute {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadDotenvDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := "ADDR=:7000\nLOG_LEVEL=debug\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	t.Setenv("ADDR", ":9000")
	// Registers cleanup for the value the file is about to set.
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q, want the environment value :9000", cfg.Addr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug from the file", cfg.LogLevel)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"LOG_LEVEL", "chatty"},
		{"LOG_FORMAT", "xml"},
		{"GAME_TTL", "soon"},
		{"SWEEP_INTERVAL", "-1s"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
				t.Errorf("expected an error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestLoggerHonorsLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := Config{LogLevel: "warn", LogFormat: "json"}.Logger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "year", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"year":3`) {
		t.Errorf("unexpected JSON output: %s", out)
	}
	if !logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("error level should be enabled")
	}
}
