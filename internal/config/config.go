// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment variable names.
const (
	EnvRelay    = "NWC_RELAY"
	EnvLogLevel = "NWC_LOG_LEVEL"
	EnvWorkers  = "NWC_WORKERS"
	EnvReveal   = "NWC_REVEAL"
)

// Config holds settings shared by every command.
type Config struct {
	Relay    string // Default relay for connection URIs
	LogLevel string // logrus level name
	Workers  int    // Vanity search workers
	Reveal   bool   // Show secret values without masking
}

// Load reads envFile (if it exists) into the process environment and builds a Config.
// Variables already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(err, "load %s", envFile)
		}
	}

	cfg := &Config{
		Relay:    strings.TrimSpace(os.Getenv(EnvRelay)),
		LogLevel: "info",
		Workers:  runtime.NumCPU(),
	}

	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}

	if v := strings.TrimSpace(os.Getenv(EnvWorkers)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, errors.Errorf("%s must be a positive integer, got %q", EnvWorkers, v)
		}
		cfg.Workers = n
	}

	if v := strings.TrimSpace(os.Getenv(EnvReveal)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Errorf("%s must be a boolean, got %q", EnvReveal, v)
		}
		cfg.Reveal = b
	}

	return cfg, nil
}
