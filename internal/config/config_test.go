package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("SEED_MENU", "")

	cfg := Load()

	if cfg.DatabaseDriver != "postgres" {
		t.Errorf("DatabaseDriver = %q, want postgres", cfg.DatabaseDriver)
	}
	if cfg.ServerPort != "3333" {
		t.Errorf("ServerPort = %q, want 3333", cfg.ServerPort)
	}
	if cfg.CacheDuration() != 30*time.Minute {
		t.Errorf("CacheDuration = %v, want 30m", cfg.CacheDuration())
	}
	if !cfg.SeedMenu {
		t.Error("SeedMenu should default to true")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("CACHE_TTL", "60")
	t.Setenv("SEED_MENU", "false")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("API_TIMEOUT", "not-a-number")

	cfg := Load()

	if cfg.DatabaseDriver != "sqlite" {
		t.Errorf("DatabaseDriver = %q, want sqlite", cfg.DatabaseDriver)
	}
	if cfg.CacheTTL != 60 {
		t.Errorf("CacheTTL = %d, want 60", cfg.CacheTTL)
	}
	if cfg.SeedMenu {
		t.Error("SeedMenu should be false")
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.APITimeout != 30 {
		t.Errorf("APITimeout = %d, want fallback 30", cfg.APITimeout)
	}
}
