package carousel

import "github.com/charmbracelet/lipgloss"

var (
	defaultCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)

	defaultLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	defaultSubLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))
)
