package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/feims/feims/internal/bootstrap"
	"github.com/feims/feims/internal/db"
	"github.com/feims/feims/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default directory data",
	Long:  "Inserts the default departments. Safe to run repeatedly; existing rows are left alone.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
		if err != nil {
			return err
		}

		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		return seed.CreateDefaultData(context.Background(), database, lgr)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
