// Package config loads gridpathd settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrInvalidValue indicates an environment variable that cannot be parsed or
// violates a bound.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvAddr             = "GRIDPATH_ADDR"
	EnvBaseURL          = "GRIDPATH_BASE_URL"
	EnvDefaultDimension = "GRIDPATH_DEFAULT_DIMENSION"
	EnvMaxDimension     = "GRIDPATH_MAX_DIMENSION"
	EnvGinMode          = "GIN_MODE"
	EnvLogLevel         = "GRIDPATH_LOG_LEVEL"
)

// Config holds the service configuration.
type Config struct {
	Addr             string     // Listen address of the HTTP server
	BaseURL          string     // Prefix of every API route
	DefaultDimension int        // Grid dimension when a create request omits it
	MaxDimension     int        // Largest grid dimension a session may allocate
	GinMode          string     // Mode for the Gin framework (release, debug, test)
	LogLevel         slog.Level // Minimum level of the service logger
}

// Default returns the configuration used when no variable is set.
// DefaultDimension 30 matches a 900px board of 30px cells.
func Default() Config {
	return Config{
		Addr:             ":8080",
		BaseURL:          "/api",
		DefaultDimension: 30,
		MaxDimension:     200,
		GinMode:          "release",
		LogLevel:         slog.LevelInfo,
	}
}

// Load reads the given .env files (".env" when none are given) into the
// process environment, without overriding variables already set, and then
// builds the Config. Missing files are tolerated.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment over Default.
// Empty variables count as unset.
// Returns ErrInvalidValue for malformed integers or levels, non-positive
// dimensions, or a default dimension above the maximum.
func FromEnv() (Config, error) {
	cfg := Default()
	cfg.Addr = getEnvWithDefault(EnvAddr, cfg.Addr)
	cfg.BaseURL = getEnvWithDefault(EnvBaseURL, cfg.BaseURL)
	cfg.GinMode = getEnvWithDefault(EnvGinMode, cfg.GinMode)

	var err error
	if cfg.DefaultDimension, err = getEnvAsInt(EnvDefaultDimension, cfg.DefaultDimension); err != nil {
		return Config{}, err
	}
	if cfg.MaxDimension, err = getEnvAsInt(EnvMaxDimension, cfg.MaxDimension); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(EnvLogLevel); ok {
		if err = cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvLogLevel, v)
		}
	}

	if cfg.DefaultDimension <= 0 || cfg.MaxDimension <= 0 {
		return Config{}, fmt.Errorf("%w: dimensions must be positive", ErrInvalidValue)
	}
	if cfg.DefaultDimension > cfg.MaxDimension {
		return Config{}, fmt.Errorf("%w: %s=%d exceeds %s=%d", ErrInvalidValue,
			EnvDefaultDimension, cfg.DefaultDimension, EnvMaxDimension, cfg.MaxDimension)
	}

	return cfg, nil
}

func lookup(key string) (string, bool) {
	value, exists := os.LookupEnv(key)
	return value, exists && value != ""
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, ok := lookup(key); ok {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer, or defaultValue if not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, ok := lookup(key)
	if !ok {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %q", ErrInvalidValue, key, valueStr)
	}
	return value, nil
}
