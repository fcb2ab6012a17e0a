package main

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/games-api/internal/config"
	"github.com/deppfellow/games-api/internal/database"
	"github.com/deppfellow/games-api/internal/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the games collection if it does not exist",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewLogger(cfg.Observability)

	db, err := database.New(cfg, &log, nil)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to close database connection")
		}
	}()

	return database.Migrate(ctx, &log, db)
}
