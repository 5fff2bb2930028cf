package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Config carries the process configuration, sourced from the environment.
type Config struct {
	Port      string
	AWSRegion string
	S3Bucket  string
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads configuration from the environment, applying defaults for
// everything except the JWT secret, which has no safe default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		AWSRegion: getEnv("AWS_REGION", "us-east-1"),
		S3Bucket:  os.Getenv("S3_BUCKET_NAME"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  24 * time.Hour,
	}

	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", raw, err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("TOKEN_TTL must be positive, got %q", raw)
		}
		cfg.TokenTTL = ttl
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
