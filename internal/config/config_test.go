package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDevDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Address() != ":8081" {
		t.Fatalf("expected :8081, got %s", cfg.Address())
	}
	if cfg.JWTSecret == "" {
		t.Fatalf("expected dev JWT secret")
	}
	if cfg.AccessTokenTTL != 24*time.Hour || cfg.LoginRateLimit != 5 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadProductionRequiresBackingServices(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://localhost/avatar")
	t.Setenv("REDIS_URL", "")
	t.Setenv("JWT_SECRET", "s3cret")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "REDIS_URL") {
		t.Fatalf("expected REDIS_URL error, got %v", err)
	}
}

func TestLoadDurations(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")
	t.Setenv("IDEMPOTENCY_TTL", "90m")
	t.Setenv("ACCESS_TOKEN_TTL", "15m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ShutdownPeriod != 3*time.Second || cfg.IdempotencyTTL != 90*time.Minute || cfg.AccessTokenTTL != 15*time.Minute {
		t.Fatalf("unexpected durations %+v", cfg)
	}

	t.Setenv("ACCESS_TOKEN_TTL", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected invalid ACCESS_TOKEN_TTL error")
	}
}

func TestLoadClientFileBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	t.Setenv("AVATAR_API_URL", "http://localhost:8081/")
	t.Setenv("AVATAR_CREDENTIAL_BACKEND", "")
	t.Setenv("AVATAR_STATE_FILE", path)
	t.Setenv("AVATAR_HTTP_TIMEOUT", "")

	cfg, err := LoadClient()
	if err != nil {
		t.Fatalf("LoadClient() error: %v", err)
	}
	if cfg.APIURL != "http://localhost:8081" || cfg.StateFile != path || cfg.CredentialBackend != BackendFile {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %s", cfg.HTTPTimeout)
	}
}

func TestLoadClientRedisBackend(t *testing.T) {
	t.Setenv("AVATAR_CREDENTIAL_BACKEND", "redis")
	t.Setenv("AVATAR_REDIS_URL", "")
	if _, err := LoadClient(); err == nil {
		t.Fatalf("expected missing redis url error")
	}

	t.Setenv("AVATAR_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("AVATAR_DEVICE_ID", "kiosk-3")
	cfg, err := LoadClient()
	if err != nil {
		t.Fatalf("LoadClient() error: %v", err)
	}
	if cfg.DeviceID != "kiosk-3" {
		t.Fatalf("expected kiosk-3, got %q", cfg.DeviceID)
	}
}

func TestLoadClientRejectsUnknownBackend(t *testing.T) {
	t.Setenv("AVATAR_CREDENTIAL_BACKEND", "keychain")
	if _, err := LoadClient(); err == nil {
		t.Fatalf("expected unknown backend error")
	}
}
