// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the server needs at startup. DatabaseURL and
// JWTSecret are mandatory; their absence is a boot-time error, never a
// per-request one.
type Config struct {
	DatabaseURL      string
	JWTSecret        string
	Port             string
	NATSPort         int
	TokenTTL         time.Duration
	OpenRegistration bool
}

// Load reads configuration from environment variables. Callers load .env
// (godotenv) before calling this.
func Load() (*Config, error) {
	cfg := &Config{
		Port:     "3000",
		NATSPort: 4233,
		TokenTTL: time.Hour,
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if raw := os.Getenv("NATS_PORT"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid NATS_PORT %q: %w", raw, err)
		}
		cfg.NATSPort = p
	}

	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", raw, err)
		}
		cfg.TokenTTL = d
	}

	// Registration is admin-only unless explicitly opened up.
	cfg.OpenRegistration = os.Getenv("OPEN_REGISTRATION") == "true"

	return cfg, nil
}
