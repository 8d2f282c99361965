package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// deckChrome is the border plus title line around deck content.
const deckChrome = 3

// deckHeights distributes the usable height: every deck gets its preferred
// height and the first deck absorbs any slack or shortfall.
func (m *WalletModel) deckHeights(usable int) []int {
	heights := make([]int, len(m.decks))
	if len(m.decks) == 0 {
		return heights
	}
	ctx := m.viewContext()
	total := 0
	for i, d := range m.decks {
		heights[i] = d.ContentLines(ctx) + deckChrome
		total += heights[i]
	}
	heights[0] = max(heights[0]+usable-total, deckChrome+1)
	return heights
}

// View renders the wallet page
func (m *WalletModel) View(width, height int) string {
	if width > 0 && height > 0 {
		m.width, m.height = width, height
	}
	if m.width <= 0 || m.height <= 0 {
		return "Initializing wallet..."
	}

	// If a modal is on the stack, it renders over the page.
	if modal := m.TopModal(); modal != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			modal.View(m.width, m.height-1),
			m.renderStatusLine(),
		)
	}

	return m.renderWallet()
}

// renderWallet renders the deck stack and the status line.
func (m *WalletModel) renderWallet() string {
	statusLineHeight := 1
	usable := m.height - statusLineHeight

	ctx := m.viewContext()
	heights := m.deckHeights(usable)

	sections := make([]string, 0, len(m.decks)+1)
	for i, d := range m.decks {
		view := d.Render(ctx, m.width, heights[i], i == m.activeDeckIdx)
		if m.zones != nil {
			view = m.zones.Mark(deckZoneID(d), view)
		}
		sections = append(sections, view)
	}

	mainContent := lipgloss.NewStyle().
		MaxHeight(usable).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	mainContent = lipgloss.PlaceVertical(usable, lipgloss.Top, mainContent)

	return lipgloss.JoinVertical(lipgloss.Left, mainContent, m.renderStatusLine())
}
