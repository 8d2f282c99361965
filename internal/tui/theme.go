package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by decks, modals and the status line.
var (
	ColorNavy   = lipgloss.Color("#1E2A44")
	ColorBlue   = lipgloss.Color("39")
	ColorGray   = lipgloss.Color("240")
	ColorWhite  = lipgloss.Color("#FFFFFF")
	ColorGreen  = lipgloss.Color("#44FF44")
	ColorOrange = lipgloss.Color("#FFAA00")
	ColorRed    = lipgloss.Color("#FF4444")
	ColorPurple = lipgloss.Color("#9B5DE5")
	ColorCyan   = lipgloss.Color("#00B4D8")
)

var (
	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray)

	activeSectionStyle = MergeStyles(sectionStyle, lipgloss.NewStyle().
				BorderForeground(ColorBlue))

	deckTitleStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Width(10)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	addressStyle = lipgloss.NewStyle().Foreground(ColorCyan)
	chainStyle   = lipgloss.NewStyle().Foreground(ColorPurple).Bold(true)
	linkStyle    = lipgloss.NewStyle().Foreground(ColorCyan).Underline(true)
)
