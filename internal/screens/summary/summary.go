package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathadventures/internal/screen"
	"github.com/abhisek/mathadventures/internal/session"
	"github.com/abhisek/mathadventures/internal/tracker"
	"github.com/abhisek/mathadventures/internal/ui/layout"
	"github.com/abhisek/mathadventures/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

// Summary returns the summary being shown.
func (s *SummaryScreen) Summary() *session.Summary {
	return s.summary
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Finish"},
		{Key: "Esc", Description: "Finish"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	heading := "Session complete!"
	if sum.Quit {
		heading = "Session ended early"
	}
	b.WriteString(layout.Centered(width, theme.Title, heading))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(layout.Centered(width, theme.Subtitle, fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d      Correct: %d      Accuracy: %.1f%%      Avg time: %.1fs",
		sum.TotalQuestions, sum.TotalCorrect, sum.Accuracy*100, sum.AverageTime.Seconds())
	b.WriteString(layout.Centered(width, theme.Body, statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(min(width-8, 60), 0)))
	section := func(title string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(title)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
	}

	if len(sum.Breakdown) > 0 {
		section("Breakdown by difficulty")
		rows := []string{fmt.Sprintf("%-10s %-8s %-10s %s", "Level", "Count", "Accuracy", "Avg Time")}
		for _, r := range sum.Breakdown {
			rows = append(rows, fmt.Sprintf("%-10s %-8d %7.1f%%   %6.1fs",
				r.Tier, r.Count, r.Accuracy*100, r.AverageTime.Seconds()))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Render(strings.Join(rows, "\n"))))
		b.WriteString("\n\n")
	}

	if sum.Trend != nil {
		section("Progress trend")
		lines := []string{
			halfLine("First half ", sum.Trend.First),
			halfLine("Second half", sum.Trend.Second),
		}
		style := theme.Body
		if sum.Trend.Improved() {
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(strings.Join(lines, "\n"))))
		b.WriteString("\n\n")
	}

	rec := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(sum.Recommended.String())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Render("Recommended starting level for next time: ")+rec))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(width, theme.Hint, "Thanks for playing, keep practicing!"))

	return b.String()
}

func halfLine(label string, h tracker.HalfStats) string {
	return fmt.Sprintf("%s - %d questions, accuracy %.1f%%, avg time %.1fs",
		label, h.Count, h.Accuracy*100, h.AverageTime.Seconds())
}
