package main

import (
	"github.com/spf13/cobra"

	"github.com/civicteams/server/internal/app"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.LoadConfig()
		if err != nil {
			return err
		}

		application, err := app.New(cfg)
		if err != nil {
			return err
		}
		defer application.Stop()

		if err := application.Migrate(); err != nil {
			return err
		}
		cmd.Println("migrations applied")
		return nil
	},
}
