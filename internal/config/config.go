// Package config loads environment variables (optionally from a .env file)
// into a validated struct. Variables carry the CREDITAPI_ prefix, e.g.
// CREDITAPI_DATABASE_URL.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "CREDITAPI_"

type Config struct {
	Env              string `koanf:"env"`
	Port             string `koanf:"port" validate:"required"`
	DatabaseURL      string `koanf:"database_url" validate:"required"`
	DatabaseMaxConns int32  `koanf:"database_max_conns"`
	SeedData         bool   `koanf:"seed_data"`
}

// Load reads, unmarshals and validates the configuration. Missing required
// values fail fast here rather than at first use.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{
		Env:  "development",
		Port: "8080",
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
