package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/happymeter/internal/ui/layout"
)

// Screen is one view of the quiz. Screens render snapshots handed to them
// and report user intent through the event messages in this package.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen and a command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
