package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/feims/feims/internal/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "feims",
	Short: "Faculty information management service",
	Long: `feims serves the faculty directory: departments, faculty members,
courses and teaching assignments, qualifications, publications and
extracted documents, behind a token-authenticated REST API.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
