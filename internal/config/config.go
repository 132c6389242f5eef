package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"fundboard/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Dataset configures data generation. Environment variables prefixed
	// with DATASET_ will populate this struct.
	Dataset configs.Dataset `envPrefix:"DATASET_"`

	// Session configures session eviction. Environment variables prefixed
	// with SESSION_ will populate this struct.
	Session configs.Session `envPrefix:"SESSION_"`
}

// Load reads configuration from environment variables into a Config. A
// .env file in the working directory, when present, is loaded first and
// never overrides variables already set. Parse failures and an inverted
// dataset window return an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Dataset.Window().Validate(); err != nil {
		return cfg, fmt.Errorf("dataset window: %w", err)
	}
	return cfg, nil
}
