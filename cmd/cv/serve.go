package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ducban/minimalist-cv/internal/config"
	"github.com/ducban/minimalist-cv/internal/server"
	"github.com/ducban/minimalist-cv/internal/server/ratelimit"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the CV site",
	Long:  `Start the HTTP server: the page at /, the print variant at /print, and the GraphQL read API at /graphql.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	record, err := loadRecord()
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Addr:       cfg.Addr(),
		Production: cfg.Production(),
		Profile:    record,
		Logger:     logger,
		RateLimit:  ratelimit.LoadConfig(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logger.Info("serving cv",
		zap.String("addr", cfg.Addr()),
		zap.String("env", string(cfg.Env)),
		zap.String("record", record.Name))

	return srv.Start()
}
