package main

import (
	"github.com/spf13/cobra"

	"github.com/feims/feims/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long:  "Connects to the database, applies pending migrations and serves the REST API until interrupted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := server.NewServer()
		if err != nil {
			return err
		}
		return srv.Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
