package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dkasab/unveil/internal/ui/layout"
)

// Screen is one screen in the router stack.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints.
// Screens without it get the default quit/back hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
