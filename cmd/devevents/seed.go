package main

import (
	"github.com/spf13/cobra"

	"devevents/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample events that are not stored yet",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		res, err := seed.Run(cmd.Context(), a.events, a.logger)
		if err != nil {
			return err
		}
		a.logger.Info("seed finished", "created", res.Created, "skipped", res.Skipped)
		return nil
	},
}
