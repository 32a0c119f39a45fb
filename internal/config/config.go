// Package config defines the tutor's settings and how they are layered from
// defaults, an optional YAML file and the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/mathadventures/internal/adaptive"
	"github.com/abhisek/mathadventures/internal/difficulty"
)

// Log formats accepted by LogFormat.
const (
	LogFormatCSV    = "csv"
	LogFormatSQLite = "sqlite"
	LogFormatBoth   = "both"
)

// Config contains process configuration.
type Config struct {
	// Questions is the maximum number of questions in a session.
	Questions int `koanf:"questions"`

	// FastThreshold, SlowThreshold and WindowSize tune the adaptive engine.
	FastThreshold time.Duration `koanf:"fast_threshold"`
	SlowThreshold time.Duration `koanf:"slow_threshold"`
	WindowSize    int           `koanf:"window_size"`

	// StartLevel is easy, medium or hard. Empty means ask the learner.
	StartLevel string `koanf:"start_level"`

	// LogPath is the CSV attempt log.
	LogPath string `koanf:"log_path"`

	// LogFormat selects the attempt log sink: csv, sqlite or both.
	LogFormat string `koanf:"log_format"`

	// DBPath is the SQLite attempt log. Empty means the XDG data dir.
	DBPath string `koanf:"db_path"`

	// Seed fixes the puzzle sequence. Zero seeds from the clock.
	Seed uint64 `koanf:"seed"`

	// LogLevel controls verbosity of the debug log: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DebugLog is a file for structured logs. Empty disables logging.
	DebugLog string `koanf:"debug_log"`
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		Questions:     15,
		FastThreshold: adaptive.DefaultFastThreshold,
		SlowThreshold: adaptive.DefaultSlowThreshold,
		WindowSize:    adaptive.DefaultWindowSize,
		LogPath:       "session_log.csv",
		LogFormat:     LogFormatCSV,
		LogLevel:      "info",
	}
}

// Adaptive returns the engine settings.
func (c *Config) Adaptive() adaptive.Config {
	return adaptive.Config{
		FastThreshold: c.FastThreshold,
		SlowThreshold: c.SlowThreshold,
		WindowSize:    c.WindowSize,
	}
}

// StartTier parses StartLevel. The second result is false when no level is
// configured.
func (c *Config) StartTier() (difficulty.Tier, bool, error) {
	if strings.TrimSpace(c.StartLevel) == "" {
		return difficulty.Easy, false, nil
	}
	t, err := difficulty.Parse(c.StartLevel)
	if err != nil {
		return difficulty.Easy, false, err
	}
	return t, true, nil
}

// Validate checks every field and wraps failures in ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Questions < 1 {
		return fmt.Errorf("%w: questions must be at least 1, got %d", ErrInvalidConfig, c.Questions)
	}
	if err := c.Adaptive().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, _, err := c.StartTier(); err != nil {
		return fmt.Errorf("%w: start_level: %w", ErrInvalidConfig, err)
	}
	switch c.LogFormat {
	case LogFormatCSV, LogFormatSQLite, LogFormatBoth:
	default:
		return fmt.Errorf("%w: log_format must be csv, sqlite or both, got %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.LogFormat != LogFormatSQLite && c.LogPath == "" {
		return fmt.Errorf("%w: log_path must not be empty", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level must be debug, info, warn or error, got %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Map returns the settings keyed by their config names. Durations are
// rendered as strings so the result round-trips through Load.
func (c *Config) Map() map[string]interface{} {
	return map[string]interface{}{
		"questions":      c.Questions,
		"fast_threshold": c.FastThreshold.String(),
		"slow_threshold": c.SlowThreshold.String(),
		"window_size":    c.WindowSize,
		"start_level":    c.StartLevel,
		"log_path":       c.LogPath,
		"log_format":     c.LogFormat,
		"db_path":        c.DBPath,
		"seed":           c.Seed,
		"log_level":      c.LogLevel,
		"debug_log":      c.DebugLog,
	}
}
