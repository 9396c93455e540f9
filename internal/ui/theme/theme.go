package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Dark editor tones so redacted and revealed code read
// like a code pane, not a dashboard.
var (
	Primary   = lipgloss.Color("#7AA2F7") // Blue
	Secondary = lipgloss.Color("#9ECE6A") // Green
	Accent    = lipgloss.Color("#E0AF68") // Amber
	Success   = lipgloss.Color("#73DACA") // Aqua
	Error     = lipgloss.Color("#F7768E") // Red
	Text      = lipgloss.Color("#C0CAF5") // Light Blue-Gray
	TextDim   = lipgloss.Color("#565F89") // Muted Slate
	BgDark    = lipgloss.Color("#1A1B26") // Near Black
	BgCard    = lipgloss.Color("#24283B") // Dark Panel
	Border    = lipgloss.Color("#3B4261") // Gray-Blue
)

// Hint styles secondary guidance text, like quiz hints and key help.
var Hint = lipgloss.NewStyle().
	Foreground(TextDim).
	Italic(true)
