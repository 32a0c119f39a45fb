// Package adaptive decides question difficulty from recent performance
// using fixed threshold rules.
package adaptive

import (
	"time"

	"github.com/abhisek/mathadventures/internal/difficulty"
	"github.com/abhisek/mathadventures/internal/tracker"
)

const (
	// LevelUpAccuracy is the minimum windowed accuracy for moving up.
	LevelUpAccuracy = 0.8

	// LevelDownAccuracy is the windowed accuracy at or under which the
	// learner moves down.
	LevelDownAccuracy = 0.4

	// StartBandLow and StartBandHigh bound the per-tier accuracy considered a
	// good challenge when recommending where to start next time.
	StartBandLow  = 0.6
	StartBandHigh = 0.85

	// DefaultStartLevel is recommended when no tier falls in the band.
	DefaultStartLevel = difficulty.Medium
)

// Stats is the view of a performance log the engine needs.
// *tracker.Tracker satisfies it.
type Stats interface {
	LastNAccuracy(tier difficulty.Tier, n int) (float64, bool)
	LastNAvgTime(tier difficulty.Tier, n int) (time.Duration, bool)
	SummaryByDifficulty() map[difficulty.Tier]tracker.TierSummary
}

var _ Stats = (*tracker.Tracker)(nil)

// Reason explains a difficulty decision.
type Reason string

const (
	ReasonNoData       Reason = "no-data"
	ReasonLevelUp      Reason = "level-up"
	ReasonLevelDown    Reason = "level-down"
	ReasonLearningZone Reason = "learning-zone"
)

// Decision is the outcome of one adaptive step.
type Decision struct {
	From   difficulty.Tier
	To     difficulty.Tier
	Reason Reason

	// Accuracy and AverageTime are the windowed values the decision was
	// based on. Both are zero when Reason is ReasonNoData.
	Accuracy    float64
	AverageTime time.Duration
}

// Changed reports whether the decision moves to a different tier.
func (d Decision) Changed() bool {
	return d.From != d.To
}

// Engine applies the threshold rules.
type Engine struct {
	cfg Config
}

// New creates an Engine. Callers should Validate cfg first; New does not.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Decide evaluates the rules for the current tier. The level-up rule is
// checked before the level-down rule.
func (e *Engine) Decide(stats Stats, current difficulty.Tier) Decision {
	d := Decision{From: current, To: current}

	acc, okAcc := stats.LastNAccuracy(current, e.cfg.WindowSize)
	avg, okAvg := stats.LastNAvgTime(current, e.cfg.WindowSize)
	if !okAcc || !okAvg {
		d.Reason = ReasonNoData
		return d
	}
	d.Accuracy = acc
	d.AverageTime = avg

	switch {
	case acc >= LevelUpAccuracy && avg <= e.cfg.FastThreshold:
		d.To = current.Up()
		d.Reason = ReasonLevelUp
	case acc <= LevelDownAccuracy || avg >= e.cfg.SlowThreshold:
		d.To = current.Down()
		d.Reason = ReasonLevelDown
	default:
		d.Reason = ReasonLearningZone
	}
	return d
}

// SuggestNextDifficulty returns the tier for the next question.
func (e *Engine) SuggestNextDifficulty(stats Stats, current difficulty.Tier) difficulty.Tier {
	return e.Decide(stats, current).To
}

// RecommendStartLevel picks a starting tier for a future session: the
// highest tier whose overall accuracy lies in [StartBandLow, StartBandHigh],
// or DefaultStartLevel when none does.
func (e *Engine) RecommendStartLevel(stats Stats) difficulty.Tier {
	summary := stats.SummaryByDifficulty()
	best := DefaultStartLevel
	for _, tier := range difficulty.All() {
		s, ok := summary[tier]
		if !ok {
			continue
		}
		if s.Accuracy >= StartBandLow && s.Accuracy <= StartBandHigh {
			best = tier
		}
	}
	return best
}
