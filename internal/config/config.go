package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is built once in main and handed to components by injection; nothing
// reads the environment after startup.
type Config struct {
	Port           string
	DBPath         string
	SecretKey      string
	TokenTTL       time.Duration
	AllowedOrigins string
}

func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		DBPath:         getEnv("DB_PATH", filepath.Join("data", "leavedesk.db")),
		SecretKey:      getEnv("SECRET_KEY", "change_me_in_production"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
	}

	rawTTL := getEnv("TOKEN_TTL", "12h")
	ttl, err := time.ParseDuration(rawTTL)
	if err != nil {
		return Config{}, fmt.Errorf("parse TOKEN_TTL %q: %w", rawTTL, err)
	}
	cfg.TokenTTL = ttl

	return cfg, nil
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
