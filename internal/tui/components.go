package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tinytelemetry/lotus-wallet/internal/model"
)

// renderBranding renders "Lotus Wallet" with a green to light blue gradient
func renderBranding() string {
	colors := []string{
		"#49E209", // Green (L)
		"#35DD2F", // (o)
		"#21D955", // (t)
		"#0DD47B", // (u)
		"#00D0A1", // (s)
		"#00CAC7", // (!)
	}

	var result strings.Builder
	for i, char := range "Lotus" {
		style := lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(lipgloss.Color(colors[i])).Bold(true)
		result.WriteString(style.Render(string(char)))
	}
	result.WriteString(lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(lipgloss.Color(colors[len(colors)-1])).
		Render(" Wallet"))

	return result.String()
}

// connectionDot renders the colored wallet status indicator.
func connectionDot(status model.ConnectionStatus, failing bool) string {
	color := ColorRed
	switch {
	case failing:
		color = ColorOrange
	case status == model.StatusConnected:
		color = ColorGreen
	case status == model.StatusConnecting, status == model.StatusReconnecting:
		color = ColorOrange
	}
	return lipgloss.NewStyle().Background(ColorNavy).Foreground(color).Render("●")
}

// renderStatusLine renders the status/help line at the bottom of the screen
func (m *WalletModel) renderStatusLine() string {
	baseStyle := lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorWhite)

	w := m.width
	now := time.Now()

	veryNarrow := w < 60
	narrow := w < 80
	medium := w < 120

	// Left: focused section, or the toast when one is showing.
	var leftText string
	if m.toast.Active(now) {
		leftText = m.toast.render()
	} else if m.activeDeckIdx < len(m.decks) {
		name := m.decks[m.activeDeckIdx].Title()
		if veryNarrow {
			leftText = name[:min(5, len(name))]
		} else {
			leftText = fmt.Sprintf("[%s]", name)
		}
	}

	// Center: key hints sized to the terminal.
	var statusText string
	switch {
	case m.HasModal():
		statusText = "ESC: Close"
	case veryNarrow:
		statusText = "Tab • n • m • ? • q"
	case narrow:
		statusText = "?: Help • Tab: Nav • n: Network • q: Quit"
	case medium:
		statusText = "Tab: Navigate • Enter: Select • n: Network • m: Memo • Space: Pause • q: Quit"
	default:
		statusText = "?: Help • Hover tokens to pause • Tab: Navigate • Enter: Select • n: Network • m: Memo • y: Copy address • q: Quit"
	}

	// Right: refresh errors, wallet status and branding.
	var rightParts []string
	failing := m.lastError != "" && now.Sub(m.lastErrorAt) < toastTTL
	if failing {
		rightParts = append(rightParts, lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(lipgloss.Color("#FF6666")).
			Faint(true).
			Render("refresh error"))
	}
	if !veryNarrow {
		status := string(m.snap.Account.Status)
		if status == "" {
			status = string(model.StatusDisconnected)
		}
		info := connectionDot(m.snap.Account.Status, failing) + " " + status
		if m.snap.Chain.Name != "" && !narrow {
			info += " · " + m.snap.Chain.Name
		}
		rightParts = append(rightParts, info)
	}
	if w >= 30 {
		rightParts = append(rightParts, renderBranding())
	}
	rightText := strings.Join(rightParts, "  ")

	leftWidth := lipgloss.Width(leftText) + 2
	rightWidth := lipgloss.Width(rightText) + 2

	if leftWidth+rightWidth >= w {
		if w < 20 {
			return baseStyle.Width(w).Render(ansi.Truncate(leftText, max(w, 0), ""))
		}
		leftWidth = min(leftWidth, w/2)
		rightWidth = min(rightWidth, w/3)
	}

	centerWidth := max(w-leftWidth-rightWidth, 0)

	leftStyle := baseStyle.Align(lipgloss.Left).Width(leftWidth)
	centerStyle := baseStyle.Align(lipgloss.Center).Width(centerWidth)
	rightStyle := baseStyle.Align(lipgloss.Right).Width(rightWidth)

	// ANSI-aware truncation keeps styled text intact.
	leftText = ansi.Truncate(leftText, max(leftWidth-1, 0), "…")
	statusText = ansi.Truncate(statusText, max(centerWidth-1, 0), "…")
	if lipgloss.Width(rightText) > rightWidth {
		rightText = ansi.Truncate(rightText, max(rightWidth-1, 0), "")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		leftStyle.Render(leftText),
		centerStyle.Render(statusText),
		rightStyle.Render(rightText),
	)
}
