// Package config loads server configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration. Values come from the environment;
// command-line flags use them as defaults and can override each one.
type Config struct {
	Addr      string `env:"BROCANTE_ADDR" envDefault:":4000"`
	DBPath    string `env:"BROCANTE_DB" envDefault:"brocante.sqlite3"`
	JWTSecret string `env:"BROCANTE_JWT_SECRET"`
	LogPath   string `env:"BROCANTE_LOG"`
	Seed      bool   `env:"BROCANTE_SEED" envDefault:"true"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
