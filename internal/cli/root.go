// Package cli implements the habla-espanol management commands.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/seekayel/habla-espanol-ext/internal/config"
	"github.com/seekayel/habla-espanol-ext/internal/database"
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "habla-espanol",
	Short: "Companion service for the Habla Español browser extension",
	Long: "Spaced-repetition engine for learning Spanish phrases: serves the\n" +
		"extension's localhost API, imports phrase decks and reports study stats.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is fine; the environment still applies.
		_ = godotenv.Load()
	},
	SilenceUsage: true,
}

// Execute runs the CLI. It is the only entry point main calls.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// connectDB loads the configuration and opens the database for commands
// that need storage.
func connectDB() (config.Config, error) {
	cfg := config.Load()
	if err := database.Connect(cfg); err != nil {
		return cfg, fmt.Errorf("failed to open database: %w", err)
	}
	return cfg, nil
}
