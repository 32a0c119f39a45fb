// Package setup asks for the learner's name and starting difficulty.
package setup

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathadventures/internal/difficulty"
	"github.com/abhisek/mathadventures/internal/router"
	"github.com/abhisek/mathadventures/internal/screen"
	"github.com/abhisek/mathadventures/internal/session"
	"github.com/abhisek/mathadventures/internal/ui/components"
	"github.com/abhisek/mathadventures/internal/ui/layout"
	"github.com/abhisek/mathadventures/internal/ui/theme"
)

type step int

const (
	stepName step = iota
	stepTier
)

// StartFunc builds the screen that runs the session.
type StartFunc func(name string, tier difficulty.Tier) screen.Screen

// tierChosenMsg is emitted by the tier menu.
type tierChosenMsg struct {
	Tier difficulty.Tier
}

var tierHints = map[difficulty.Tier]string{
	difficulty.Easy:   "single digits, + and −",
	difficulty.Medium: "two digits and times tables",
	difficulty.Hard:   "bigger numbers and division",
}

// SetupScreen collects the name, then the tier.
type SetupScreen struct {
	step  step
	name  string
	input components.TextInput
	menu  components.Menu
	start StartFunc

	// tier skips the menu when set.
	tier *difficulty.Tier
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen. A non-empty name skips the name step.
func New(name string, start StartFunc) *SetupScreen {
	s := &SetupScreen{
		name:  strings.TrimSpace(name),
		input: components.NewTextInput("Your name", false, 32),
		menu:  tierMenu(),
		start: start,
	}
	if s.name != "" {
		s.step = stepTier
	}
	return s
}

func tierMenu() components.Menu {
	var items []components.MenuItem
	for _, t := range difficulty.All() {
		tier := t
		items = append(items, components.MenuItem{
			Label: tier.String(),
			Hint:  tierHints[tier],
			Action: func() tea.Cmd {
				return func() tea.Msg { return tierChosenMsg{Tier: tier} }
			},
		})
	}
	m := components.NewMenu(items)
	m.Selected = int(difficulty.Medium - difficulty.Easy)
	return m
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SetupScreen) Title() string {
	return "New Session"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.step == stepName {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-3", Description: "Pick"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tierChosenMsg:
		next := s.start(s.Name(), msg.Tier)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case tea.KeyMsg:
		if s.step == stepName {
			if msg.String() == "enter" {
				s.name = strings.TrimSpace(s.input.Value())
				if s.tier != nil {
					tier := *s.tier
					return s, func() tea.Msg { return tierChosenMsg{Tier: tier} }
				}
				s.step = stepTier
				return s, nil
			}
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}

		if msg.String() == "esc" {
			s.step = stepName
			return s, s.input.Init()
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	if s.step == stepName {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// WithTier fixes the starting tier so only the name is asked for.
func (s *SetupScreen) WithTier(t difficulty.Tier) *SetupScreen {
	s.tier = &t
	return s
}

// Name returns the entered name, or the default when left blank.
func (s *SetupScreen) Name() string {
	if s.name == "" {
		return session.DefaultName
	}
	return s.name
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if s.step == stepName {
		b.WriteString(layout.Centered(width, theme.Title, "Welcome to Math Adventures!"))
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(width, theme.Body, "What's your name?"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
		return b.String()
	}

	b.WriteString(layout.Centered(width, theme.Title, "Hi "+s.Name()+"! Let's practice some math."))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(width, theme.Subtitle, "Choose starting difficulty"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))
	return b.String()
}
