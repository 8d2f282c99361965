package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// modalFrame describes a centered bordered modal.
type modalFrame struct {
	title  string
	body   string
	status []string
	width  int // outer width; 0 sizes to content
}

// render places the frame in the middle of a width x height screen.
func (f modalFrame) render(width, height int) string {
	header := lipgloss.NewStyle().
		Foreground(ColorBlue).
		Bold(true).
		Render(f.title)

	parts := []string{header, "", f.body}
	if len(f.status) > 0 {
		parts = append(parts, "", renderModalStatusBar(f.status...))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Padding(0, 1)
	if f.width > 4 {
		box = box.Width(min(f.width, max(width-4, 10)) - 2)
	}

	modal := box.Render(content)
	if width <= 0 || height <= 0 {
		return modal
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}

// renderModalStatusBar renders the key hints at the bottom of a modal.
func renderModalStatusBar(items ...string) string {
	statusStyle := lipgloss.NewStyle().
		Foreground(ColorGray)

	return statusStyle.Render(strings.Join(items, " | "))
}
