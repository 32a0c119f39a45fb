package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathadventures/internal/adaptive"
	"github.com/abhisek/mathadventures/internal/difficulty"
	"github.com/abhisek/mathadventures/internal/ui/components"
	"github.com/abhisek/mathadventures/internal/ui/layout"
	"github.com/abhisek/mathadventures/internal/ui/theme"
)

func tierStyle(t difficulty.Tier) lipgloss.Style {
	switch t {
	case difficulty.Easy:
		return lipgloss.NewStyle().Foreground(theme.TierEasy).Bold(true)
	case difficulty.Medium:
		return lipgloss.NewStyle().Foreground(theme.TierMedium).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(theme.TierHard).Bold(true)
	}
}

// renderQuestionView renders the active question display.
func (s *QuizScreen) renderQuestionView(width int) string {
	state := s.state
	p := state.CurrentPuzzle
	if p == nil {
		return layout.Centered(width, theme.Hint, "\n\nGetting your next question...")
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", state.Served, state.MaxQuestions))

	secs := int(s.now().Sub(state.QuestionStartTime).Seconds())
	infoRight := "Difficulty: " + tierStyle(p.Tier).Render(p.Tier.String()) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("   %ds", secs))

	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.NewProgressBar("", state.Served-1, state.MaxQuestions, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n\n")

	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true), "Solve: "+p.Text))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "Answer: "+s.input.View()))

	return b.String()
}

// renderFeedback renders the result of the last answer.
func (s *QuizScreen) renderFeedback(width int) string {
	out := s.state.LastOutcome
	if out == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")

	if out.Invalid {
		b.WriteString(layout.Centered(width, theme.Incorrect, "Invalid input. Counting as incorrect."))
		b.WriteString("\n")
	}
	if out.Correct {
		b.WriteString(layout.Centered(width, theme.Correct, "Correct!"))
	} else {
		b.WriteString(layout.Centered(width, theme.Incorrect, "Not quite"))
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.TextDim),
			fmt.Sprintf("%s  →  %d", out.Puzzle.Text, out.Puzzle.Answer)))
	}
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(width, theme.Body,
		fmt.Sprintf("Time taken: %.1f seconds", out.Elapsed.Seconds())))
	b.WriteString("\n\n")

	if notice := levelNotice(out.Decision); notice != "" {
		b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), notice))
		b.WriteString("\n\n")
	}

	if s.sinkWarning != "" {
		b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Error),
			"Attempt log unavailable: "+s.sinkWarning))
		b.WriteString("\n\n")
	}

	b.WriteString(layout.Centered(width, theme.Hint, "Press any key to continue..."))
	return b.String()
}

// levelNotice describes a tier change, or returns "" when the tier stays.
func levelNotice(d adaptive.Decision) string {
	if !d.Changed() {
		return ""
	}
	if d.To > d.From {
		return fmt.Sprintf("Level up! Next questions are %s.", d.To)
	}
	return fmt.Sprintf("Let's slow down a little. Next questions are %s.", d.To)
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true), "End session early?"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.TextDim), "You'll still see your summary."))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Success), "[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Primary), "[N] No, keep going"))
	return b.String()
}
