package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/solfa/internal/ui/layout"
)

// Screen is one page of the trainer UI (setup, practice, summary).
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatsProvider is implemented by screens that own a running score for the
// header.
type StatsProvider interface {
	HeaderStats() layout.HeaderStats
}
