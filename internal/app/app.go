// Package app is the root bubbletea model for the full-screen session.
package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathadventures/internal/adaptive"
	"github.com/abhisek/mathadventures/internal/difficulty"
	"github.com/abhisek/mathadventures/internal/puzzle"
	"github.com/abhisek/mathadventures/internal/router"
	"github.com/abhisek/mathadventures/internal/screen"
	"github.com/abhisek/mathadventures/internal/screens/quiz"
	"github.com/abhisek/mathadventures/internal/screens/setup"
	"github.com/abhisek/mathadventures/internal/screens/summary"
	"github.com/abhisek/mathadventures/internal/screens/welcome"
	"github.com/abhisek/mathadventures/internal/session"
	"github.com/abhisek/mathadventures/internal/ui/layout"
)

// Options configures a TUI session.
type Options struct {
	// Name and StartTier skip the matching setup prompts when set.
	Name         string
	StartTier    difficulty.Tier
	HasStartTier bool

	MaxQuestions int
	SessionID    string
	Engine       *adaptive.Engine
	Puzzles      puzzle.Source
	Reporter     session.Reporter

	// Now defaults to time.Now.
	Now func() time.Time
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel picks the first screen: straight into the quiz when name and
// tier are both known, otherwise the welcome splash followed by setup.
func newAppModel(opts Options) AppModel {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	start := func(name string, tier difficulty.Tier) screen.Screen {
		state := session.NewState(session.Options{
			Name:         name,
			SessionID:    opts.SessionID,
			StartTier:    tier,
			MaxQuestions: opts.MaxQuestions,
			Engine:       opts.Engine,
			Puzzles:      opts.Puzzles,
			Now:          opts.Now(),
		})
		return quiz.New(state, opts.Reporter, opts.Now)
	}

	var first screen.Screen
	if opts.Name != "" && opts.HasStartTier {
		first = start(opts.Name, opts.StartTier)
	} else {
		first = welcome.New(func() screen.Screen {
			s := setup.New(opts.Name, start)
			if opts.HasStartTier {
				s.WithTier(opts.StartTier)
			}
			return s
		})
	}

	return AppModel{router: router.New(first)}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if ip, ok := m.router.Active().(screen.Interrupter); ok {
				return m, ip.Interrupt()
			}
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	var title string
	var info layout.HeaderInfo
	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if active != nil {
		title = active.Title()
		if hp, ok := active.(screen.HeaderProvider); ok {
			info = hp.HeaderInfo()
		}
		if kp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = kp.KeyHints()
		}
	}

	header := layout.RenderHeader(title, info, m.width)
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Summary returns the finished session's summary, or nil when the program
// exited before reaching the summary screen.
func (m AppModel) Summary() *session.Summary {
	if s, ok := m.router.Active().(*summary.SummaryScreen); ok {
		return s.Summary()
	}
	return nil
}

// Run starts the Bubble Tea program and returns the session summary.
func Run(opts Options) (*session.Summary, error) {
	p := tea.NewProgram(newAppModel(opts))
	final, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return nil, err
	}
	if m, ok := final.(AppModel); ok {
		return m.Summary(), nil
	}
	return nil, nil
}
