package session

import (
	"errors"
	"strings"
	"time"

	"github.com/abhisek/mathadventures/internal/adaptive"
	"github.com/abhisek/mathadventures/internal/attemptlog"
	"github.com/abhisek/mathadventures/internal/puzzle"
)

// Outcome is the result of answering one question.
type Outcome struct {
	Puzzle  puzzle.Puzzle
	Input   string
	Correct bool

	// Invalid is true when the input was not a number. Invalid answers count
	// as incorrect.
	Invalid bool

	Elapsed  time.Duration
	Decision adaptive.Decision
}

// NextPuzzle generates a question at the current tier and starts its clock.
// It returns nil once the session is done.
func NextPuzzle(state *State, now time.Time) *puzzle.Puzzle {
	if Done(state) {
		state.Phase = PhaseEnded
		return nil
	}
	p := state.Puzzles.Generate(state.CurrentTier)
	state.CurrentPuzzle = &p
	state.QuestionStartTime = now
	state.Served++
	state.Phase = PhaseActive
	return state.CurrentPuzzle
}

// HandleAnswer checks input against the current puzzle, records the attempt,
// and moves the session to the tier the engine picks. It returns nil when
// no question is pending.
func HandleAnswer(state *State, input string, elapsed time.Duration) *Outcome {
	p := state.CurrentPuzzle
	if p == nil {
		return nil
	}

	correct, err := puzzle.CheckAnswer(input, *p)
	invalid := errors.Is(err, puzzle.ErrInvalidAnswer)
	if elapsed < 0 {
		elapsed = 0
	}

	state.Tracker.Record(p.Tier, correct, elapsed)
	decision := state.Engine.Decide(state.Tracker, p.Tier)
	state.CurrentTier = decision.To

	out := &Outcome{
		Puzzle:   *p,
		Input:    strings.TrimSpace(input),
		Correct:  correct,
		Invalid:  invalid,
		Elapsed:  elapsed,
		Decision: decision,
	}
	state.LastOutcome = out
	state.CurrentPuzzle = nil
	state.Phase = PhaseFeedback
	return out
}

// IsQuitInput reports whether input asks to end the session early.
func IsQuitInput(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "q")
}

// End marks the session finished. quit is true when the learner stopped
// before the question limit.
func End(state *State, quit bool) {
	state.Quit = state.Quit || quit
	state.CurrentPuzzle = nil
	state.Phase = PhaseEnded
}

// Done reports whether the session should serve no more questions.
func Done(state *State) bool {
	return state.Quit || state.Phase == PhaseEnded || state.Served >= state.MaxQuestions
}

// LogRecord builds the attempt log row for an outcome.
func LogRecord(state *State, out *Outcome, now time.Time) attemptlog.Record {
	return attemptlog.Record{
		SessionID:  state.SessionID,
		Name:       state.Name,
		Difficulty: out.Puzzle.Tier.String(),
		Op:         string(out.Puzzle.Op),
		A:          out.Puzzle.A,
		B:          out.Puzzle.B,
		Correct:    out.Correct,
		Elapsed:    out.Elapsed,
		Timestamp:  now,
	}
}
