// Package main provides the cv command: serve the CV site, view it in the
// terminal, export it to PDF, or check a profile document.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose     bool
	profilePath string

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cv",
	Short: "Minimalist CV site and tooling",
	Long: `cv serves a single-person CV as a web page with a print variant and a
GraphQL read API, shows the same record in the terminal, and exports it
to PDF through headless Chrome.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// The terminal viewer owns the screen; logs would corrupt it.
		if cmd.Name() == "view" {
			logger = zap.NewNop()
			return nil
		}

		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "Profile document (JSON or YAML; or set CV_PROFILE)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
