// Package quiz is the screen that serves questions and reacts to answers.
package quiz

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathadventures/internal/router"
	"github.com/abhisek/mathadventures/internal/screen"
	"github.com/abhisek/mathadventures/internal/screens/summary"
	"github.com/abhisek/mathadventures/internal/session"
	"github.com/abhisek/mathadventures/internal/ui/components"
	"github.com/abhisek/mathadventures/internal/ui/layout"
)

// QuizScreen implements screen.Screen for an active session.
type QuizScreen struct {
	state       *session.State
	reporter    session.Reporter
	now         func() time.Time
	input       components.TextInput
	showingQuit bool
	sinkWarning string
	ended       bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.HeaderProvider = (*QuizScreen)(nil)
var _ screen.Interrupter = (*QuizScreen)(nil)

// New creates a QuizScreen for state. now defaults to time.Now.
func New(state *session.State, reporter session.Reporter, now func() time.Time) *QuizScreen {
	if now == nil {
		now = time.Now
	}
	return &QuizScreen{
		state:    state,
		reporter: reporter,
		now:      now,
		input:    newAnswerInput(),
	}
}

func newAnswerInput() components.TextInput {
	return components.NewTextInput("Type your answer...", true, 8)
}

func (s *QuizScreen) Init() tea.Cmd {
	s.reporter.Started(s.state)
	if session.NextPuzzle(s.state, s.now()) == nil {
		return func() tea.Msg { return sessionEndMsg{} }
	}
	return tea.Batch(s.input.Init(), tickCmd())
}

func (s *QuizScreen) Title() string {
	return "Practice"
}

func (s *QuizScreen) HeaderInfo() layout.HeaderInfo {
	correct := 0
	for _, a := range s.state.Tracker.Attempts() {
		if a.Correct {
			correct++
		}
	}
	return layout.HeaderInfo{
		Learner: s.state.Name,
		Score:   fmt.Sprintf("%d/%d", correct, s.state.Tracker.Len()),
	}
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showingQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state.Phase == session.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) View(width, height int) string {
	if s.showingQuit {
		return renderQuitConfirm(width)
	}
	if s.state.Phase == session.PhaseFeedback {
		return s.renderFeedback(width)
	}
	return s.renderQuestionView(width)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if s.ended {
			return s, nil
		}
		return s, tickCmd()

	case sessionEndMsg:
		return s.handleSessionEnd(msg.Quit)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.state.Phase == session.PhaseActive && !s.showingQuit {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.ended {
		return s, nil
	}
	key := msg.String()

	if s.showingQuit {
		switch key {
		case "y", "Y":
			s.showingQuit = false
			return s, func() tea.Msg { return sessionEndMsg{Quit: true} }
		case "n", "N", "esc":
			s.showingQuit = false
		}
		return s, nil
	}

	if s.state.Phase == session.PhaseFeedback {
		return s.nextQuestion()
	}

	switch key {
	case "esc":
		s.showingQuit = true
		return s, nil
	case "enter":
		return s.submitAnswer()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer grades the typed answer and shows feedback.
func (s *QuizScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	answer := s.input.Value()
	if answer == "" || s.state.CurrentPuzzle == nil {
		return s, nil
	}

	now := s.now()
	out := session.HandleAnswer(s.state, answer, now.Sub(s.state.QuestionStartTime))
	if err := s.reporter.Answered(context.Background(), s.state, out, now); err != nil && s.sinkWarning == "" {
		s.sinkWarning = err.Error()
	}
	return s, nil
}

func (s *QuizScreen) nextQuestion() (screen.Screen, tea.Cmd) {
	if session.NextPuzzle(s.state, s.now()) == nil {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	s.input = newAnswerInput()
	return s, s.input.Init()
}

func (s *QuizScreen) handleSessionEnd(quit bool) (screen.Screen, tea.Cmd) {
	if s.ended {
		return s, nil
	}
	s.ended = true
	session.End(s.state, quit)

	sum := session.BuildSummary(s.state, s.now())
	s.reporter.Finished(s.state, sum)

	next := summary.New(sum)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// Interrupt ends the session as a quit, so the finish is reported, and
// exits the program.
func (s *QuizScreen) Interrupt() tea.Cmd {
	s.handleSessionEnd(true)
	return tea.Quit
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
