// Package main is the entry point for Aegean Tycoon.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/samdwyer/aegean/internal/clock"
	"github.com/samdwyer/aegean/internal/config"
	"github.com/samdwyer/aegean/internal/game"
	"github.com/samdwyer/aegean/internal/logger"
	"github.com/samdwyer/aegean/internal/random"
	"github.com/samdwyer/aegean/internal/telemetry"
	"github.com/samdwyer/aegean/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "aegean: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file for local development. Not fatal: env vars might be
	// set directly.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log := logger.Init(cfg.LogLevel, logFile)
	if envErr != nil {
		log.Debug().Err(envErr).Msg(".env file not loaded")
	}

	ctx := context.Background()

	if cfg.OTelEnabled {
		telemetry.Honeycomb(cfg.HoneycombAPIKey, cfg.HoneycombDataset)
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// The game still works without observability.
			log.Warn().Err(err).Msg("telemetry setup failed")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("telemetry shutdown")
				}
			}()
		}
	}

	session, engine, err := newSession(cfg, log)
	if err != nil {
		return err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Close()

	app := ui.NewApp(screen, session, ui.NewKeymap(engine.Ferries()), log)
	return app.Run(ctx)
}

// newSession builds the engine from the embedded rules and opens a lobby.
// A zero seed picks a fresh one, which is logged so the game can be replayed.
func newSession(cfg config.Config, log zerolog.Logger) (*game.Session, *game.Engine, error) {
	rules, err := game.LoadRules()
	if err != nil {
		return nil, nil, fmt.Errorf("load rules: %w", err)
	}

	gameCfg := cfg.Game()
	if gameCfg.Seed == 0 {
		seed, err := random.NewSeed()
		if err != nil {
			return nil, nil, fmt.Errorf("seed: %w", err)
		}
		gameCfg.Seed = seed
	}
	log.Info().Int64("seed", gameCfg.Seed).Int("max_days", gameCfg.MaxDays).Msg("starting game")

	engine, err := game.NewEngine(gameCfg, rules, random.New(gameCfg.Seed), clock.Real{})
	if err != nil {
		return nil, nil, fmt.Errorf("new engine: %w", err)
	}
	return game.NewSession(engine, clock.Real{}, log), engine, nil
}
