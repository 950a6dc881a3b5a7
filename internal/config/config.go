// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/aegean/internal/game"
)

// Config is everything the binary reads from the environment.
type Config struct {
	Seed          int64         `env:"AEGEAN_SEED" envDefault:"0"`
	MaxDays       int           `env:"AEGEAN_MAX_DAYS" envDefault:"31"`
	StartingMoney int           `env:"AEGEAN_STARTING_MONEY" envDefault:"1000"`
	Bail          int           `env:"AEGEAN_BAIL" envDefault:"50"`
	RollDelay     time.Duration `env:"AEGEAN_ROLL_DELAY" envDefault:"1.5s"`
	Players       []string      `env:"AEGEAN_PLAYERS" envDefault:"Kamaki,Tourist" envSeparator:","`

	LogLevel string `env:"AEGEAN_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"AEGEAN_LOG_FILE" envDefault:"aegean.log"`

	OTelEnabled      bool   `env:"AEGEAN_OTEL_ENABLED" envDefault:"false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_AEGEAN_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_AEGEAN_DATASET" envDefault:"aegean"`
}

// Load parses and validates the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no game can be played with.
func (c Config) Validate() error {
	var errs []error
	if c.MaxDays < 1 {
		errs = append(errs, fmt.Errorf("AEGEAN_MAX_DAYS must be positive, got %d", c.MaxDays))
	}
	if c.StartingMoney < 0 {
		errs = append(errs, fmt.Errorf("AEGEAN_STARTING_MONEY must not be negative, got %d", c.StartingMoney))
	}
	if c.Bail < 0 {
		errs = append(errs, fmt.Errorf("AEGEAN_BAIL must not be negative, got %d", c.Bail))
	}
	if c.RollDelay < 0 {
		errs = append(errs, fmt.Errorf("AEGEAN_ROLL_DELAY must not be negative, got %s", c.RollDelay))
	}
	if n := len(c.Players); n < game.MinPlayers || n > game.MaxPlayers {
		errs = append(errs, fmt.Errorf("AEGEAN_PLAYERS must name %d-%d players, got %d", game.MinPlayers, game.MaxPlayers, n))
	}
	return errors.Join(errs...)
}

// Game converts the settings into engine rules, starting from the defaults.
func (c Config) Game() game.Config {
	g := game.DefaultConfig()
	g.Seed = c.Seed
	g.MaxDays = c.MaxDays
	g.StartingMoney = c.StartingMoney
	g.Bail = c.Bail
	g.RollDelay = c.RollDelay
	g.DefaultPlayers = append([]string(nil), c.Players...)
	return g
}
