package session

import (
	"time"

	"github.com/abhisek/mathadventures/internal/difficulty"
	"github.com/abhisek/mathadventures/internal/tracker"
)

// TierResult is one row of the per-difficulty breakdown.
type TierResult struct {
	Tier        difficulty.Tier
	Count       int
	Accuracy    float64
	AverageTime time.Duration
}

// Summary holds the data displayed at the end of a session.
type Summary struct {
	Name           string
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	AverageTime    time.Duration

	// Breakdown lists tiers with at least one attempt, easiest first.
	Breakdown []TierResult

	// Trend compares the two halves of the session; nil with fewer than two
	// attempts.
	Trend *tracker.Trend

	StartTier   difficulty.Tier
	FinalTier   difficulty.Tier
	Recommended difficulty.Tier
	Quit        bool
}

// BuildSummary creates a Summary from the session state.
func BuildSummary(state *State, now time.Time) *Summary {
	tr := state.Tracker

	correct := 0
	for _, a := range tr.Attempts() {
		if a.Correct {
			correct++
		}
	}

	byTier := tr.SummaryByDifficulty()
	var breakdown []TierResult
	for _, tier := range difficulty.All() {
		s, ok := byTier[tier]
		if !ok {
			continue
		}
		breakdown = append(breakdown, TierResult{
			Tier:        tier,
			Count:       s.Count,
			Accuracy:    s.Accuracy,
			AverageTime: s.AverageTime,
		})
	}

	var trend *tracker.Trend
	if t, ok := tr.HalfTrends(); ok {
		trend = &t
	}

	return &Summary{
		Name:           state.Name,
		Duration:       now.Sub(state.StartTime),
		TotalQuestions: tr.Len(),
		TotalCorrect:   correct,
		Accuracy:       tr.OverallAccuracy(),
		AverageTime:    tr.AverageTime(),
		Breakdown:      breakdown,
		Trend:          trend,
		StartTier:      state.StartTier,
		FinalTier:      state.CurrentTier,
		Recommended:    state.Engine.RecommendStartLevel(tr),
		Quit:           state.Quit,
	}
}
