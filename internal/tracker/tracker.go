// Package tracker keeps the ordered log of a session's attempts and derives
// aggregate and windowed statistics from it.
package tracker

import (
	"time"

	"github.com/abhisek/mathadventures/internal/difficulty"
)

// Attempt is one answered question. Attempts are immutable once recorded.
type Attempt struct {
	Tier    difficulty.Tier
	Correct bool
	Elapsed time.Duration
}

// TierSummary aggregates all attempts at a single tier.
type TierSummary struct {
	Accuracy    float64
	AverageTime time.Duration
	Count       int
}

// Tracker is an append-only, chronologically ordered attempt log.
// It is owned by a single session and is not safe for concurrent use.
type Tracker struct {
	attempts []Attempt
}

// New returns an empty Tracker.
func New() *Tracker {
	return &Tracker{}
}

// Record appends an attempt. Negative durations are stored as zero.
func (t *Tracker) Record(tier difficulty.Tier, correct bool, elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	t.attempts = append(t.attempts, Attempt{
		Tier:    tier,
		Correct: correct,
		Elapsed: elapsed,
	})
}

// Len returns the number of recorded attempts.
func (t *Tracker) Len() int {
	return len(t.attempts)
}

// Attempts returns a copy of the recorded attempts in chronological order.
func (t *Tracker) Attempts() []Attempt {
	out := make([]Attempt, len(t.attempts))
	copy(out, t.attempts)
	return out
}

// OverallAccuracy returns the fraction of all attempts answered correctly,
// or 0 when nothing has been recorded.
func (t *Tracker) OverallAccuracy() float64 {
	return accuracy(t.attempts)
}

// AverageTime returns the mean elapsed time across all attempts, or 0 when
// nothing has been recorded.
func (t *Tracker) AverageTime() time.Duration {
	return averageTime(t.attempts)
}

// LastNAccuracy returns the accuracy over the most recent n attempts at tier.
// The second result is false when no attempt at tier exists yet.
func (t *Tracker) LastNAccuracy(tier difficulty.Tier, n int) (float64, bool) {
	window := t.lastN(tier, n)
	if len(window) == 0 {
		return 0, false
	}
	return accuracy(window), true
}

// LastNAvgTime returns the mean elapsed time over the most recent n attempts
// at tier. The second result is false when no attempt at tier exists yet.
func (t *Tracker) LastNAvgTime(tier difficulty.Tier, n int) (time.Duration, bool) {
	window := t.lastN(tier, n)
	if len(window) == 0 {
		return 0, false
	}
	return averageTime(window), true
}

// SummaryByDifficulty aggregates attempts per tier. Tiers without attempts
// are omitted.
func (t *Tracker) SummaryByDifficulty() map[difficulty.Tier]TierSummary {
	summary := make(map[difficulty.Tier]TierSummary)
	for _, tier := range difficulty.All() {
		atTier := t.byTier(tier)
		if len(atTier) == 0 {
			continue
		}
		summary[tier] = TierSummary{
			Accuracy:    accuracy(atTier),
			AverageTime: averageTime(atTier),
			Count:       len(atTier),
		}
	}
	return summary
}

// byTier returns the attempts at tier in recorded order.
func (t *Tracker) byTier(tier difficulty.Tier) []Attempt {
	var out []Attempt
	for _, a := range t.attempts {
		if a.Tier == tier {
			out = append(out, a)
		}
	}
	return out
}

// lastN returns the chronological suffix of at most n attempts at tier.
func (t *Tracker) lastN(tier difficulty.Tier, n int) []Attempt {
	if n < 1 {
		n = 1
	}
	atTier := t.byTier(tier)
	if len(atTier) > n {
		atTier = atTier[len(atTier)-n:]
	}
	return atTier
}

func accuracy(attempts []Attempt) float64 {
	if len(attempts) == 0 {
		return 0
	}
	correct := 0
	for _, a := range attempts {
		if a.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(attempts))
}

func averageTime(attempts []Attempt) time.Duration {
	if len(attempts) == 0 {
		return 0
	}
	var total time.Duration
	for _, a := range attempts {
		total += a.Elapsed
	}
	return total / time.Duration(len(attempts))
}
