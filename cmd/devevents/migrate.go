package main

import (
	"github.com/spf13/cobra"

	"devevents/config"
	"devevents/internal/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations (Postgres) or create indexes (MongoDB)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := config.NewLogger(cfg)

		backend, err := repository.BackendFor(cfg.DBUrl)
		if err != nil {
			return err
		}
		if err := repository.Migrate(cmd.Context(), cfg.DBUrl); err != nil {
			return err
		}
		logger.Info("schema up to date", "backend", backend)
		return nil
	},
}
