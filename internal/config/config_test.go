package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STOCKROOM_DATABASE_URL", "postgres://stockroom@localhost/stockroom")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.AccessTokenTTL != 15*time.Minute {
		t.Errorf("expected default access TTL 15m, got %v", cfg.AccessTokenTTL)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("expected default redis addr, got %q", cfg.RedisAddr)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STOCKROOM_DATABASE_URL", "postgres://stockroom@db/stockroom")
	t.Setenv("STOCKROOM_ADDR", ":9090")
	t.Setenv("STOCKROOM_JWT_SECRET", "pick-something-better")
	t.Setenv("STOCKROOM_JWT_ACCESS_TTL", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Errorf("expected addr :9090, got %q", cfg.Addr)
	}
	if cfg.JWTSecret != "pick-something-better" {
		t.Errorf("expected overridden secret, got %q", cfg.JWTSecret)
	}
	if cfg.AccessTokenTTL != 30*time.Minute {
		t.Errorf("expected 30m access TTL, got %v", cfg.AccessTokenTTL)
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("STOCKROOM_DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when database URL is missing")
	}
}
