package config

import (
	"os"
	"time"
)

type Config struct {
	Env           string
	Port          string
	SessionSecret string
	SessionTTL    time.Duration
	Origin        string // CORS
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	ttl := 24 * time.Hour
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			ttl = d
		}
	}
	return Config{
		Env:           env("APP_ENV", "dev"),
		Port:          env("WEB_PORT", "8080"),
		SessionSecret: env("SESSION_SECRET", "dev-insecure-session-secret"),
		SessionTTL:    ttl,
		Origin:        env("CORS_ORIGIN", "http://localhost:8080"),
	}
}
