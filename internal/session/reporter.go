package session

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathadventures/internal/attemptlog"
	"github.com/abhisek/mathadventures/internal/logging"
)

// Reporter writes session events to the attempt log and the debug log.
// A nil Sink or Log is treated as a no-op.
type Reporter struct {
	Sink attemptlog.Sink
	Log  *logging.Logger
}

func (r Reporter) logger(state *State) *logging.Logger {
	if r.Log == nil {
		return logging.Nop()
	}
	return r.Log.With("session_id", state.SessionID)
}

// Started logs the beginning of a session.
func (r Reporter) Started(state *State) {
	cfg := state.Engine.Config()
	r.logger(state).Info("session started",
		"name", state.Name,
		"start_tier", state.StartTier.String(),
		"max_questions", state.MaxQuestions,
		"fast_threshold", cfg.FastThreshold,
		"slow_threshold", cfg.SlowThreshold,
		"window_size", cfg.WindowSize,
	)
}

// Answered appends the outcome to the attempt log and logs the tier
// decision. A sink failure is logged and returned; the session should carry
// on regardless.
func (r Reporter) Answered(ctx context.Context, state *State, out *Outcome, now time.Time) error {
	log := r.logger(state)
	d := out.Decision
	fields := []interface{}{
		"question", state.Served,
		"tier", out.Puzzle.Tier.String(),
		"correct", out.Correct,
		"elapsed", out.Elapsed,
		"next_tier", d.To.String(),
		"reason", string(d.Reason),
	}
	if d.Changed() {
		log.Info("difficulty changed", fields...)
	} else {
		log.Debug("difficulty kept", fields...)
	}

	if r.Sink == nil {
		return nil
	}
	if err := r.Sink.Append(ctx, LogRecord(state, out, now)); err != nil {
		log.Error("attempt log append failed", "question", state.Served, "error", err)
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

// Finished logs the end of a session.
func (r Reporter) Finished(state *State, sum *Summary) {
	r.logger(state).Info("session finished",
		"questions", sum.TotalQuestions,
		"correct", sum.TotalCorrect,
		"accuracy", sum.Accuracy,
		"quit", sum.Quit,
		"recommended", sum.Recommended.String(),
	)
}
