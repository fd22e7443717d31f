// Package config loads solver defaults from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvBudget        = "WALLBREAK_BUDGET"
	EnvWorkers       = "WALLBREAK_WORKERS"
	EnvMaxExpansions = "WALLBREAK_MAX_EXPANSIONS"
	EnvFrontier      = "WALLBREAK_FRONTIER"
	EnvLogLevel      = "WALLBREAK_LOG_LEVEL"
	EnvLogFormat     = "WALLBREAK_LOG_FORMAT"
)

// Config holds the defaults the CLI starts from before flags are applied.
type Config struct {
	Budget        int    // Wall crossings allowed per path
	Workers       int    // Goroutines for wall probing, 0 means one per CPU
	MaxExpansions int    // Settled-state bound per search, 0 means unbounded
	Frontier      string // "queue" or "heap"
	LogLevel      string // debug, info, warn or error
	LogFormat     string // text or json
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Budget:    1,
		Frontier:  "queue",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads the given .env files (".env" when none are named) and then the
// process environment. A missing .env file is not an error; a malformed value is.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
		slog.Debug(".env file not found, using process environment.", "error", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, falling back to Default for unset keys.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var err error
	if cfg.Budget, err = intWithDefault(lookup, EnvBudget, cfg.Budget); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = intWithDefault(lookup, EnvWorkers, cfg.Workers); err != nil {
		return Config{}, err
	}
	if cfg.MaxExpansions, err = intWithDefault(lookup, EnvMaxExpansions, cfg.MaxExpansions); err != nil {
		return Config{}, err
	}
	cfg.Frontier = stringWithDefault(lookup, EnvFrontier, cfg.Frontier)
	cfg.LogLevel = stringWithDefault(lookup, EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = stringWithDefault(lookup, EnvLogFormat, cfg.LogFormat)
	return cfg, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, defaultValue string) string {
	if value, exists := lookup(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func intWithDefault(lookup func(string) (string, bool), key string, defaultValue int) (int, error) {
	valueStr, exists := lookup(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("environment variable %s must not be negative, got %d", key, value)
	}
	return value, nil
}
