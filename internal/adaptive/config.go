package adaptive

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultFastThreshold is the average answer time at or under which a
	// learner is considered fast.
	DefaultFastThreshold = 6 * time.Second

	// DefaultSlowThreshold is the average answer time at or over which a
	// learner is considered slow.
	DefaultSlowThreshold = 12 * time.Second

	// DefaultWindowSize is the number of recent attempts at the current tier
	// that drive each decision.
	DefaultWindowSize = 5
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid adaptive config")

// Config controls the engine's thresholds. It is fixed for the lifetime of
// an Engine.
type Config struct {
	FastThreshold time.Duration
	SlowThreshold time.Duration
	WindowSize    int
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		FastThreshold: DefaultFastThreshold,
		SlowThreshold: DefaultSlowThreshold,
		WindowSize:    DefaultWindowSize,
	}
}

// Validate rejects non-positive thresholds and window sizes. A fast threshold
// above the slow threshold is allowed; the level-up rule then wins.
func (c Config) Validate() error {
	if c.FastThreshold <= 0 {
		return fmt.Errorf("%w: fast threshold must be positive, got %v", ErrInvalidConfig, c.FastThreshold)
	}
	if c.SlowThreshold <= 0 {
		return fmt.Errorf("%w: slow threshold must be positive, got %v", ErrInvalidConfig, c.SlowThreshold)
	}
	if c.WindowSize < 1 {
		return fmt.Errorf("%w: window size must be at least 1, got %d", ErrInvalidConfig, c.WindowSize)
	}
	return nil
}
