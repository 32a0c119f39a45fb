package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathadventures/internal/ui/layout"
)

// Screen is one page of the TUI. The router owns the stack of screens and
// the app model draws the header and footer around the active one.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface for screens that supply their
// own footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// HeaderProvider is an optional interface for screens that show learner
// details on the right of the header.
type HeaderProvider interface {
	HeaderInfo() layout.HeaderInfo
}

// Interrupter is an optional interface for screens that need to wrap up
// before the program exits on Ctrl+C. The returned command should quit.
type Interrupter interface {
	Interrupt() tea.Cmd
}
