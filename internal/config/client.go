package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultAPIURL      = "https://avatarcommerce-f5gyb7c4aahvc6d4.canadacentral-01.azurewebsites.net"
	defaultHTTPTimeout = 10 * time.Second
	stateFileName      = "credentials.json"
)

// Credential store backends.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// ClientConfig configures avatarctl.
type ClientConfig struct {
	APIURL            string
	HTTPTimeout       time.Duration
	CredentialBackend string
	StateFile         string
	RedisURL          string
	DeviceID          string
	LogLevel          string
}

// LoadClient reads the client configuration from the environment.
func LoadClient() (ClientConfig, error) {
	cfg := ClientConfig{
		APIURL:            strings.TrimRight(getEnv("AVATAR_API_URL", defaultAPIURL), "/"),
		HTTPTimeout:       defaultHTTPTimeout,
		CredentialBackend: strings.ToLower(getEnv("AVATAR_CREDENTIAL_BACKEND", BackendFile)),
		StateFile:         os.Getenv("AVATAR_STATE_FILE"),
		RedisURL:          os.Getenv("AVATAR_REDIS_URL"),
		DeviceID:          os.Getenv("AVATAR_DEVICE_ID"),
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", "warn")),
	}

	if v := os.Getenv("AVATAR_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return ClientConfig{}, fmt.Errorf("invalid AVATAR_HTTP_TIMEOUT: %w", err)
		}
		if d <= 0 {
			return ClientConfig{}, fmt.Errorf("AVATAR_HTTP_TIMEOUT must be positive")
		}
		cfg.HTTPTimeout = d
	}

	switch cfg.CredentialBackend {
	case BackendFile:
		if cfg.StateFile == "" {
			dir, err := os.UserConfigDir()
			if err != nil {
				return ClientConfig{}, fmt.Errorf("resolve config dir: %w", err)
			}
			cfg.StateFile = filepath.Join(dir, "avatarcommerce", stateFileName)
		}
	case BackendRedis:
		if cfg.RedisURL == "" {
			return ClientConfig{}, fmt.Errorf("AVATAR_REDIS_URL must be set for the redis credential backend")
		}
		if cfg.DeviceID == "" {
			host, err := os.Hostname()
			if err != nil {
				return ClientConfig{}, fmt.Errorf("AVATAR_DEVICE_ID must be set: %w", err)
			}
			cfg.DeviceID = host
		}
	case BackendMemory:
	default:
		return ClientConfig{}, fmt.Errorf("unknown AVATAR_CREDENTIAL_BACKEND %q", cfg.CredentialBackend)
	}

	return cfg, nil
}
