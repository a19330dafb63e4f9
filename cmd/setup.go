package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/spotui/internal/kvstore"
	"github.com/desertthunder/spotui/internal/shared"
)

// Setup creates the config file from the embedded template when missing, then opens the configured
// storage, which runs the SQLite migrations.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	if r.configPath != "" {
		err := shared.CreateConfigFile(r.configPath)
		switch {
		case err == nil:
			r.logger.Info("config file created", "path", r.configPath)
			config, err := shared.LoadConfig(r.configPath)
			if err != nil {
				return fmt.Errorf("failed to load created config: %w", err)
			}
			if cmd.Bool("ephemeral") {
				config.Storage.Driver = shared.DriverMemory
			}
			r.config = config
		case errors.Is(err, os.ErrExist):
			r.logger.Info("using existing config", "path", r.configPath)
		default:
			r.logger.Warn("failed to create config file, using defaults", "error", err)
		}
	}

	driver := strings.ToLower(r.config.Storage.Driver)
	location := r.config.Redis.URL
	if driver == shared.DriverSQLite || driver == "" {
		path, err := r.config.DatabasePath()
		if err != nil {
			return fmt.Errorf("failed to resolve database path: %w", err)
		}
		location = path
	}
	if driver == shared.DriverMemory {
		location = "memory"
	}

	r.logger.Info("initializing storage", "driver", driver, "location", location)

	store, err := kvstore.Open(ctx, r.config)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	if err := store.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}

	r.writePlain("✓ Storage ready (%s): %s\n", driver, location)
	if r.configPath != "" {
		r.writePlain("✓ Config: %s\n", r.configPath)
	}
	return nil
}
