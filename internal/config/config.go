// Package config provides configuration loading for the server and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment selects error verbosity and the introspection policy of the
// read API.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds server process configuration. All of it comes from
// environment variables; a .env file is loaded by the CLI entry point before
// this runs. Per-command settings (profile document, base URL) live on the
// command flags with their own environment fallbacks.
type Config struct {
	// Port is the HTTP listen port.
	Port int
	// Env is the build environment.
	Env Environment
}

// FromEnv reads configuration from the environment. It reads PORT
// (default: 3000) and CV_ENV (development or production, default:
// development).
func FromEnv() (*Config, error) {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "3000" // default
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}

	env := Environment(os.Getenv("CV_ENV"))
	if env == "" {
		env = EnvDevelopment
	}

	cfg := &Config{
		Port: port,
		Env:  env,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got: %d", c.Port)
	}
	switch c.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("CV_ENV must be %q or %q, got: %q", EnvDevelopment, EnvProduction, c.Env)
	}
	return nil
}

// Production reports whether this is a production build.
func (c *Config) Production() bool {
	return c.Env == EnvProduction
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
