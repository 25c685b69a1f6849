package config

import (
	"log/slog"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.DBPath != "prona.db" {
		t.Errorf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected default info level, got %v", cfg.LogLevel)
	}
	if len(cfg.CORSOrigins) != 0 {
		t.Errorf("expected no CORS origins by default, got %v", cfg.CORSOrigins)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PRONA_ADDR", ":9000")
	t.Setenv("PRONA_LOG_LEVEL", "debug")
	t.Setenv("PRONA_CORS_ORIGINS", "https://prona.al, https://www.prona.al")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("expected :9000, got %q", cfg.Addr)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://www.prona.al" {
		t.Errorf("unexpected CORS origins: %v", cfg.CORSOrigins)
	}
}

func TestBadLogLevelRejected(t *testing.T) {
	t.Setenv("PRONA_LOG_LEVEL", "loud")
	if _, err := Load(); err == nil {
		t.Error("expected error for unknown log level")
	}
}
