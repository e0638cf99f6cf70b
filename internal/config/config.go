package config

import (
	"log/slog"
	"os"
)

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
}

// Load reads configuration from environment variables with development
// fallbacks. The JWT secret is fixed for the lifetime of the process.
func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "3001"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/devsdairy?parseTime=true"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-in-production"),
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
