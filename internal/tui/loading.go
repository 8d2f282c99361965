package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// renderLoadingPlaceholder renders an animated loading indicator.
// The frame is selected based on the current time so it animates on re-render.
func renderLoadingPlaceholder(width, height int) string {
	frame := spinnerFrames[time.Now().UnixMilli()/spinnerInterval.Milliseconds()%int64(len(spinnerFrames))]

	loadingStyle := lipgloss.NewStyle().
		Foreground(ColorGray).
		Italic(true)

	text := loadingStyle.Render(frame + " Loading wallet...")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}

// SpinnerTickMsg triggers a re-render for loading spinners.
type SpinnerTickMsg struct{}

// handleSpinnerTick re-schedules spinner ticks while the snapshot is loading.
func (m *WalletModel) handleSpinnerTick() tea.Cmd {
	return m.startSpinnerIfNeeded()
}

// loading returns true while the first snapshot is in flight.
func (m *WalletModel) loading() bool {
	return m.active && m.fetchInFlight && !m.loaded
}

// startSpinnerIfNeeded schedules a spinner tick if the wallet is loading.
func (m *WalletModel) startSpinnerIfNeeded() tea.Cmd {
	if m.loading() {
		return tea.Tick(spinnerInterval, func(_ time.Time) tea.Msg {
			return SpinnerTickMsg{}
		})
	}
	return nil
}
