package main

import (
	"context"
	"database/sql"
	"errors"
	"os"

	"github.com/ewhitmore/glossa/internal/repositories"
	"github.com/ewhitmore/glossa/internal/services"
	"github.com/ewhitmore/glossa/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var db *sql.DB
	var token string
	if opened, err := shared.NewDatabase(config.Database.Path); err == nil {
		db = opened
		defer db.Close()
		shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

		// A missing sessions table just means setup hasn't run yet.
		if session, err := repositories.NewSessionRepository(db).Current(); err == nil {
			token = session.Token
		}
	} else {
		logger.Warn("database unavailable", "path", config.Database.Path, "error", err)
	}

	api := services.NewClient(config.API.BaseURL, config.API.Language, token, nil)

	runner := NewRunner(RunnerOpts{
		Config: config,
		API:    api,
		DB:     db,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "glossa",
		Usage:    "Browse a dictionary from your terminal",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		}
		logger.Fatalf("application error: %v", err)
	}
}
