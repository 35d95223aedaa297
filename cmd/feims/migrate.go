package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/feims/feims/internal/app/migrations"
	"github.com/feims/feims/internal/bootstrap"
	"github.com/feims/feims/internal/db"
)

var migrationsDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
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

		migrator := migrations.NewMigrator(database.Pool)
		if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
			return err
		}

		lgr.Info().Str("dir", migrationsDir).Msg("migrations up to date")
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrationsDir, "dir", "migrations", "directory holding .sql migration files")
	rootCmd.AddCommand(migrateCmd)
}
