package config

import (
	"fmt"
	"os"

	"invoice-dashboard-backend/internal/repository"
)

type Config struct {
	Port                 string
	DatabaseURL          string
	AllowedOrigin        string
	CustomerDeletePolicy repository.DeletePolicy
}

// Load reads configuration from the environment. A missing
// DATABASE_URL is a fatal startup condition.
func Load() (*Config, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg := &Config{
		Port:          envOr("PORT", "8080"),
		DatabaseURL:   dsn,
		AllowedOrigin: envOr("ALLOWED_ORIGIN", "http://localhost:3000"),
	}

	switch policy := repository.DeletePolicy(envOr("CUSTOMER_DELETE_POLICY", string(repository.DeleteRestrict))); policy {
	case repository.DeleteRestrict, repository.DeleteCascade:
		cfg.CustomerDeletePolicy = policy
	default:
		return nil, fmt.Errorf("invalid CUSTOMER_DELETE_POLICY %q (want restrict or cascade)", policy)
	}

	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
