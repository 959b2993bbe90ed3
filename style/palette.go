package style

import "github.com/charmbracelet/lipgloss"

// Standard ANSI colors, rendered with the terminal's own theme.
var (
	ANSIRed    = lipgloss.Color("1")
	ANSIGreen  = lipgloss.Color("2")
	ANSIYellow = lipgloss.Color("3")
	ANSIBlue   = lipgloss.Color("4")
	ANSIPurple = lipgloss.Color("5")
	ANSICyan   = lipgloss.Color("6")
	HiRed      = lipgloss.Color("9")
	HiPurple   = lipgloss.Color("13")
)

// Hex accents for boxes and the spinner.
var (
	Text    = lipgloss.Color("#cdd6f4")
	Overlay = lipgloss.Color("#6c7086")
	Mauve   = lipgloss.Color("#cba6f7")
	Pink    = lipgloss.Color("205")

	AccentColor = Mauve
	FaintColor  = Overlay
)
