package quiz

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathadventures/internal/adaptive"
	"github.com/abhisek/mathadventures/internal/attemptlog"
	"github.com/abhisek/mathadventures/internal/difficulty"
	"github.com/abhisek/mathadventures/internal/puzzle"
	"github.com/abhisek/mathadventures/internal/router"
	"github.com/abhisek/mathadventures/internal/screen"
	"github.com/abhisek/mathadventures/internal/session"
)

type fixedSource struct{}

func (fixedSource) Generate(tier difficulty.Tier) puzzle.Puzzle {
	return puzzle.Puzzle{Text: "9 - 12 = ?", Answer: -3, A: 9, B: 12, Op: puzzle.OpSub, Tier: tier}
}

type memSink struct {
	records []attemptlog.Record
	err     error
}

func (m *memSink) Append(_ context.Context, rec attemptlog.Record) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *memSink) Close() error { return nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuizScreen(t *testing.T, tier difficulty.Tier, maxQ int, sink *memSink) *QuizScreen {
	t.Helper()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		now = now.Add(2 * time.Second)
		return now
	}
	state := session.NewState(session.Options{
		Name:         "Ada",
		SessionID:    "quiz-session",
		StartTier:    tier,
		MaxQuestions: maxQ,
		Engine:       adaptive.New(adaptive.DefaultConfig()),
		Puzzles:      fixedSource{},
		Now:          clock(),
	})
	s := New(state, session.Reporter{Sink: sink}, clock)
	if cmd := s.Init(); cmd == nil {
		t.Fatal("expected Init command")
	}
	return s
}

func typeAnswer(s *QuizScreen, answer string) {
	for _, r := range answer {
		s.Update(keyPress(r))
	}
}

func TestQuizScreen_Title(t *testing.T) {
	s := testQuizScreen(t, difficulty.Easy, 3, &memSink{})
	if s.Title() != "Practice" {
		t.Errorf("Title = %q, want %q", s.Title(), "Practice")
	}
}

func TestQuizScreen_QuestionView(t *testing.T) {
	s := testQuizScreen(t, difficulty.Medium, 3, &memSink{})
	view := s.View(80, 24)
	for _, want := range []string{"Question 1 of 3", "Medium", "Solve: 9 - 12 = ?"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestQuizScreen_AnswerSubmit(t *testing.T) {
	sink := &memSink{}
	s := testQuizScreen(t, difficulty.Easy, 3, sink)

	typeAnswer(s, "-3")
	s.Update(specialKey(tea.KeyEnter))

	if s.state.Phase != session.PhaseFeedback {
		t.Fatalf("Phase = %v, want PhaseFeedback", s.state.Phase)
	}
	out := s.state.LastOutcome
	if out == nil || !out.Correct {
		t.Fatalf("expected correct outcome, got %+v", out)
	}
	if out.Elapsed != 2*time.Second {
		t.Errorf("Elapsed = %v, want 2s", out.Elapsed)
	}
	if len(sink.records) != 1 {
		t.Fatalf("records = %d, want 1", len(sink.records))
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Correct!") {
		t.Error("expected Correct! in feedback")
	}
	if !strings.Contains(view, "Level up!") {
		t.Error("expected level up notice after a fast correct Easy answer")
	}
	if got := s.HeaderInfo().Score; got != "1/1" {
		t.Errorf("Score = %q, want 1/1", got)
	}
}

func TestQuizScreen_EmptyEnterIgnored(t *testing.T) {
	s := testQuizScreen(t, difficulty.Easy, 3, &memSink{})
	s.Update(specialKey(tea.KeyEnter))
	if s.state.Phase != session.PhaseActive {
		t.Errorf("Phase = %v, want PhaseActive", s.state.Phase)
	}
}

func TestQuizScreen_WrongAnswerFeedback(t *testing.T) {
	s := testQuizScreen(t, difficulty.Medium, 3, &memSink{})
	typeAnswer(s, "3")
	s.Update(specialKey(tea.KeyEnter))

	view := s.View(80, 24)
	if !strings.Contains(view, "Not quite") || !strings.Contains(view, "-3") {
		t.Errorf("feedback view = %q", view)
	}
	if s.state.CurrentTier != difficulty.Easy {
		t.Errorf("CurrentTier = %v, want Easy", s.state.CurrentTier)
	}
}

func TestQuizScreen_FeedbackDismiss(t *testing.T) {
	s := testQuizScreen(t, difficulty.Easy, 3, &memSink{})
	typeAnswer(s, "-3")
	s.Update(specialKey(tea.KeyEnter))

	s.Update(keyPress(' '))
	if s.state.Phase != session.PhaseActive {
		t.Errorf("Phase = %v, want PhaseActive", s.state.Phase)
	}
	if s.state.Served != 2 {
		t.Errorf("Served = %d, want 2", s.state.Served)
	}
	if s.input.Value() != "" {
		t.Error("answer input should be cleared for the next question")
	}
}

func TestQuizScreen_SessionEndsAtLimit(t *testing.T) {
	s := testQuizScreen(t, difficulty.Easy, 1, &memSink{})
	typeAnswer(s, "-3")
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected end command")
	}
	end, ok := cmd().(sessionEndMsg)
	if !ok {
		t.Fatalf("expected sessionEndMsg, got %T", cmd())
	}
	if end.Quit {
		t.Error("reaching the limit is not a quit")
	}

	_, cmd = s.Update(end)
	if cmd == nil {
		t.Fatal("expected replace command")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if replace.Screen.Title() != "Session Summary" {
		t.Errorf("next screen = %q", replace.Screen.Title())
	}
}

func TestQuizScreen_QuitConfirm(t *testing.T) {
	s := testQuizScreen(t, difficulty.Easy, 3, &memSink{})

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	if !s.showingQuit {
		t.Fatal("expected quit confirmation dialog")
	}
	if !strings.Contains(scr.View(80, 24), "End session early?") {
		t.Error("expected quit dialog view")
	}

	scr.Update(keyPress('n'))
	if s.showingQuit {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestQuizScreen_QuitConfirm_Yes(t *testing.T) {
	s := testQuizScreen(t, difficulty.Easy, 3, &memSink{})
	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	end, ok := cmd().(sessionEndMsg)
	if !ok || !end.Quit {
		t.Fatalf("expected quitting sessionEndMsg, got %#v", cmd())
	}
	s.Update(end)
	if !s.state.Quit {
		t.Error("state should record the quit")
	}
}

func TestQuizScreen_LettersIgnored(t *testing.T) {
	s := testQuizScreen(t, difficulty.Easy, 3, &memSink{})
	typeAnswer(s, "a1b")
	if got := s.input.Value(); got != "1" {
		t.Errorf("input = %q, want 1", got)
	}
}

func TestQuizScreen_SinkFailureShown(t *testing.T) {
	s := testQuizScreen(t, difficulty.Easy, 3, &memSink{err: errors.New("disk full")})
	typeAnswer(s, "-3")
	s.Update(specialKey(tea.KeyEnter))

	if s.state.Phase != session.PhaseFeedback {
		t.Fatal("session should continue after a sink failure")
	}
	if !strings.Contains(s.View(120, 30), "disk full") {
		t.Error("expected sink warning in feedback view")
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s := testQuizScreen(t, difficulty.Easy, 3, &memSink{})
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints = %d, want 2", len(s.KeyHints()))
	}
}

func TestQuizScreen_Interrupt(t *testing.T) {
	s := testQuizScreen(t, difficulty.Easy, 3, &memSink{})
	typeAnswer(s, "-3")
	s.Update(specialKey(tea.KeyEnter))

	cmd := s.Interrupt()
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
	if !s.state.Quit || s.state.Phase != session.PhaseEnded {
		t.Errorf("state quit=%v phase=%v, want quit and ended", s.state.Quit, s.state.Phase)
	}
}
