// SPDX-License-Identifier: MIT

// Package config loads run settings for the isingdos command from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/isingdos/lattice"
)

// DefaultSide is the lattice side used when nothing overrides it.
const DefaultSide = 4

// Environment keys.
const (
	EnvSide      = "ISING_SIDE"
	EnvProgress  = "ISING_PROGRESS"
	EnvSummary   = "ISING_SUMMARY"
	EnvLogLevel  = "ISING_LOG_LEVEL"
	EnvLogFormat = "ISING_LOG_FORMAT"
)

var (
	// ErrInvalidSide indicates a side outside [1, lattice.MaxSide].
	ErrInvalidSide = errors.New("config: invalid lattice side")
	// ErrInvalidLogLevel indicates an unknown log level name.
	ErrInvalidLogLevel = errors.New("config: invalid log level")
	// ErrInvalidLogFormat indicates a log format other than text or json.
	ErrInvalidLogFormat = errors.New("config: invalid log format")
	// ErrInvalidBool indicates a boolean variable that strconv cannot parse.
	ErrInvalidBool = errors.New("config: invalid boolean")
)

// Config holds settings for one run.
type Config struct {
	Side      int
	Progress  bool
	Summary   bool
	LogLevel  string
	LogFormat string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Side:      DefaultSide,
		Progress:  true,
		Summary:   false,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads envFile (".env" when empty) if it exists, then overlays
// environment variables on Default and validates the result. Variables
// already set in the process environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load %s: %w", envFile, err)
	}

	cfg := Default()
	if v := strings.TrimSpace(os.Getenv(EnvSide)); v != "" {
		side, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidSide, EnvSide, v)
		}
		cfg.Side = side
	}
	var err error
	if cfg.Progress, err = boolEnv(EnvProgress, cfg.Progress); err != nil {
		return nil, err
	}
	if cfg.Summary, err = boolEnv(EnvSummary, cfg.Summary); err != nil {
		return nil, err
	}
	cfg.LogLevel = stringEnv(EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = stringEnv(EnvLogFormat, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Side < 1 || c.Side > lattice.MaxSide {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidSide, c.Side, lattice.MaxSide)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}

	return nil
}

func boolEnv(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def, fmt.Errorf("%w: %s=%q", ErrInvalidBool, key, v)
	}

	return b, nil
}

func stringEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return def
}
