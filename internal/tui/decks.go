package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/lotus-wallet/internal/wallet"
)

// Deck is a pluggable section of the wallet page.
type Deck interface {
	ID() string
	Title() string
	Apply(snap wallet.Snapshot) // receive fresh wallet data
	Render(ctx ViewContext, width, height int, active bool) string
	ContentLines(ctx ViewContext) int // preferred content height, without borders
	OnSelect(ctx ViewContext) tea.Cmd // returns nil or an ActionMsg
}

// AnimatedDeck extends Deck with a mount/unmount lifecycle for decks that
// drive their own frame loop.
type AnimatedDeck interface {
	Deck
	Start() tea.Cmd
	Stop()
	Update(msg tea.Msg) tea.Cmd
}

// renderDeckFrame wraps content in the deck border with its title.
func renderDeckFrame(title, content string, width, height int, active bool) string {
	style := MergeStyles(sectionStyle, StyleIf(active, activeSectionStyle))
	if width > 2 {
		style = style.Width(width - 2)
	}
	if height > 2 {
		style = style.Height(height - 2)
	}
	return style.Render(deckTitleStyle.Render(title) + "\n" + content)
}
