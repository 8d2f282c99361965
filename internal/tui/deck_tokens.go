package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/lotus-wallet/internal/carousel"
	"github.com/tinytelemetry/lotus-wallet/internal/wallet"
)

// TokensDeck hosts the scrolling token carousel.
type TokensDeck struct {
	carousel *carousel.Model
}

// NewTokensDeck wraps an existing carousel.
func NewTokensDeck(c *carousel.Model) *TokensDeck {
	return &TokensDeck{carousel: c}
}

func (d *TokensDeck) ID() string    { return "tokens" }
func (d *TokensDeck) Title() string { return "Tokens" }

func (d *TokensDeck) Apply(_ wallet.Snapshot) {}

// ContentLines fits one row of cards: border, label, sub-label, border.
func (d *TokensDeck) ContentLines(_ ViewContext) int { return 4 }

// OnSelect toggles the pause, mirroring hover for keyboard users.
func (d *TokensDeck) OnSelect(_ ViewContext) tea.Cmd {
	return d.TogglePause()
}

func (d *TokensDeck) Start() tea.Cmd { return d.carousel.Start() }

func (d *TokensDeck) Stop() { d.carousel.Stop() }

func (d *TokensDeck) Update(msg tea.Msg) tea.Cmd { return d.carousel.Update(msg) }

// TogglePause pauses a running carousel or resumes a paused one. While the
// pointer is over the carousel the hover pause wins and the toggle does
// nothing.
func (d *TokensDeck) TogglePause() tea.Cmd {
	if d.carousel.Hovered() {
		return nil
	}
	if d.carousel.State() == carousel.StatePaused {
		return d.carousel.PointerLeave()
	}
	return d.carousel.PointerEnter()
}

// Carousel exposes the underlying carousel.
func (d *TokensDeck) Carousel() *carousel.Model { return d.carousel }

func (d *TokensDeck) Render(_ ViewContext, width, height int, active bool) string {
	d.carousel.SetWidth(max(width-4, 0))

	title := d.Title()
	if d.carousel.State() == carousel.StatePaused {
		title += helpStyle.Render(" ⏸ paused")
	}

	content := d.carousel.View()
	if content == "" && len(d.carousel.Items()) == 0 {
		content = helpStyle.Render("No tokens configured")
	}
	return renderDeckFrame(title, content, width, height, active)
}
