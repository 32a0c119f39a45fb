package session

import (
	"strconv"
	"testing"
	"time"

	"github.com/abhisek/mathadventures/internal/adaptive"
	"github.com/abhisek/mathadventures/internal/difficulty"
	"github.com/abhisek/mathadventures/internal/puzzle"
)

// fixedSource always returns 2 + 3 at the requested tier.
type fixedSource struct{}

func (fixedSource) Generate(tier difficulty.Tier) puzzle.Puzzle {
	return puzzle.Puzzle{Text: "2 + 3 = ?", Answer: 5, A: 2, B: 3, Op: puzzle.OpAdd, Tier: tier}
}

var t0 = time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

func testState(tier difficulty.Tier, maxQ int) *State {
	return NewState(Options{
		Name:         "Ada",
		SessionID:    "test-session-id",
		StartTier:    tier,
		MaxQuestions: maxQ,
		Engine:       adaptive.New(adaptive.DefaultConfig()),
		Puzzles:      fixedSource{},
		Now:          t0,
	})
}

func answer(t *testing.T, s *State, input string, elapsed time.Duration) *Outcome {
	t.Helper()
	if NextPuzzle(s, t0) == nil {
		t.Fatal("NextPuzzle returned nil")
	}
	out := HandleAnswer(s, input, elapsed)
	if out == nil {
		t.Fatal("HandleAnswer returned nil")
	}
	return out
}

func TestNewState_Defaults(t *testing.T) {
	s := NewState(Options{Puzzles: fixedSource{}})
	if s.Name != DefaultName {
		t.Errorf("Name = %q, want %q", s.Name, DefaultName)
	}
	if s.MaxQuestions != DefaultMaxQuestions {
		t.Errorf("MaxQuestions = %d, want %d", s.MaxQuestions, DefaultMaxQuestions)
	}
	if s.Engine == nil {
		t.Error("expected default engine")
	}
	if s.Phase != PhaseActive {
		t.Errorf("Phase = %v, want PhaseActive", s.Phase)
	}
}

func TestHandleAnswer_Correct(t *testing.T) {
	s := testState(difficulty.Easy, 5)
	out := answer(t, s, " 5 ", 2*time.Second)

	if !out.Correct || out.Invalid {
		t.Errorf("Correct=%v Invalid=%v, want true/false", out.Correct, out.Invalid)
	}
	if out.Input != "5" {
		t.Errorf("Input = %q, want trimmed", out.Input)
	}
	if s.Tracker.Len() != 1 {
		t.Errorf("Tracker.Len() = %d, want 1", s.Tracker.Len())
	}
	// One fast correct attempt is 100% accuracy under the fast threshold.
	if s.CurrentTier != difficulty.Medium {
		t.Errorf("CurrentTier = %v, want Medium", s.CurrentTier)
	}
	if out.Decision.Reason != adaptive.ReasonLevelUp {
		t.Errorf("Reason = %v, want level-up", out.Decision.Reason)
	}
	if s.Phase != PhaseFeedback {
		t.Errorf("Phase = %v, want PhaseFeedback", s.Phase)
	}
	if s.CurrentPuzzle != nil {
		t.Error("CurrentPuzzle should be cleared after answering")
	}
}

func TestHandleAnswer_InvalidCountsAsIncorrect(t *testing.T) {
	s := testState(difficulty.Medium, 5)
	out := answer(t, s, "five", 3*time.Second)

	if out.Correct {
		t.Error("expected invalid input to be incorrect")
	}
	if !out.Invalid {
		t.Error("expected Invalid flag")
	}
	if s.CurrentTier != difficulty.Easy {
		t.Errorf("CurrentTier = %v, want Easy", s.CurrentTier)
	}
}

func TestHandleAnswer_NoPendingPuzzle(t *testing.T) {
	s := testState(difficulty.Easy, 5)
	if out := HandleAnswer(s, "5", time.Second); out != nil {
		t.Errorf("expected nil outcome, got %+v", out)
	}
	if s.Tracker.Len() != 0 {
		t.Error("nothing should be recorded without a pending puzzle")
	}
}

func TestHandleAnswer_NegativeElapsedClamped(t *testing.T) {
	s := testState(difficulty.Easy, 5)
	out := answer(t, s, "5", -time.Second)
	if out.Elapsed != 0 {
		t.Errorf("Elapsed = %v, want 0", out.Elapsed)
	}
}

func TestHardStaysHardOnFastCorrect(t *testing.T) {
	s := testState(difficulty.Hard, 5)
	answer(t, s, "5", time.Second)
	if s.CurrentTier != difficulty.Hard {
		t.Errorf("CurrentTier = %v, want Hard", s.CurrentTier)
	}
}

func TestQuestionLimit(t *testing.T) {
	s := testState(difficulty.Easy, 3)
	for i := 0; i < 3; i++ {
		answer(t, s, "5", time.Second)
	}
	if !Done(s) {
		t.Fatal("expected Done after max questions")
	}
	if p := NextPuzzle(s, t0); p != nil {
		t.Errorf("NextPuzzle after limit = %+v, want nil", p)
	}
	if s.Phase != PhaseEnded {
		t.Errorf("Phase = %v, want PhaseEnded", s.Phase)
	}
	if s.Quit {
		t.Error("reaching the limit is not quitting")
	}
}

func TestIsQuitInput(t *testing.T) {
	cases := map[string]bool{"q": true, "Q": true, " q ": true, "quit": false, "": false, "5": false}
	for in, want := range cases {
		if got := IsQuitInput(in); got != want {
			t.Errorf("IsQuitInput(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestEnd_Quit(t *testing.T) {
	s := testState(difficulty.Easy, 5)
	NextPuzzle(s, t0)
	End(s, true)
	if !s.Quit || !Done(s) {
		t.Error("expected quit session to be done")
	}
	if s.CurrentPuzzle != nil {
		t.Error("End should clear the pending puzzle")
	}
}

func TestLogRecord(t *testing.T) {
	s := testState(difficulty.Medium, 5)
	out := answer(t, s, "4", 2500*time.Millisecond)
	rec := LogRecord(s, out, t0)

	if rec.Name != "Ada" || rec.SessionID != "test-session-id" {
		t.Errorf("identity = %q/%q", rec.Name, rec.SessionID)
	}
	if rec.Difficulty != "Medium" || rec.Op != "+" || rec.A != 2 || rec.B != 3 {
		t.Errorf("record = %+v", rec)
	}
	if rec.Correct {
		t.Error("expected incorrect record")
	}
	row := rec.Row()
	if row[5] != "0" || row[6] != strconv.FormatFloat(2.5, 'f', 3, 64) {
		t.Errorf("Row() = %v", row)
	}
}

func TestBuildSummary(t *testing.T) {
	s := testState(difficulty.Easy, 10)
	answer(t, s, "5", time.Second)   // Easy, correct -> Medium
	answer(t, s, "1", 3*time.Second) // Medium, wrong -> Easy
	answer(t, s, "5", 2*time.Second) // Easy, correct -> Medium
	answer(t, s, "5", 2*time.Second) // Medium, correct -> stays

	sum := BuildSummary(s, t0.Add(time.Minute))

	if sum.TotalQuestions != 4 || sum.TotalCorrect != 3 {
		t.Errorf("totals = %d/%d, want 4/3", sum.TotalQuestions, sum.TotalCorrect)
	}
	if sum.Accuracy != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", sum.Accuracy)
	}
	if sum.AverageTime != 2*time.Second {
		t.Errorf("AverageTime = %v, want 2s", sum.AverageTime)
	}
	if sum.Duration != time.Minute {
		t.Errorf("Duration = %v, want 1m", sum.Duration)
	}
	if len(sum.Breakdown) == 0 || sum.Breakdown[0].Tier != difficulty.Easy {
		t.Fatalf("Breakdown = %+v, want Easy first", sum.Breakdown)
	}
	for i := 1; i < len(sum.Breakdown); i++ {
		if sum.Breakdown[i-1].Tier >= sum.Breakdown[i].Tier {
			t.Errorf("Breakdown not ordered: %+v", sum.Breakdown)
		}
	}
	if sum.Trend == nil {
		t.Fatal("expected trend with 4 attempts")
	}
	if sum.Trend.First.Count != 2 || sum.Trend.Second.Count != 2 {
		t.Errorf("trend halves = %d/%d", sum.Trend.First.Count, sum.Trend.Second.Count)
	}
	if sum.StartTier != difficulty.Easy {
		t.Errorf("StartTier = %v", sum.StartTier)
	}
}

func TestBuildSummary_Empty(t *testing.T) {
	s := testState(difficulty.Easy, 10)
	sum := BuildSummary(s, t0)
	if sum.TotalQuestions != 0 || len(sum.Breakdown) != 0 || sum.Trend != nil {
		t.Errorf("empty summary = %+v", sum)
	}
	if sum.Recommended != adaptive.DefaultStartLevel {
		t.Errorf("Recommended = %v, want %v", sum.Recommended, adaptive.DefaultStartLevel)
	}
}
