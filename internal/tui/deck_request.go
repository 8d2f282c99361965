package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tinytelemetry/lotus-wallet/internal/wallet"
)

// RequestDeck is the static link to the token faucet.
type RequestDeck struct {
	copyLink func(url string) tea.Cmd
}

// NewRequestDeck creates the deck; selecting it runs copyLink with the faucet URL.
func NewRequestDeck(copyLink func(url string) tea.Cmd) *RequestDeck {
	return &RequestDeck{copyLink: copyLink}
}

func (d *RequestDeck) ID() string    { return "request" }
func (d *RequestDeck) Title() string { return "Request Tokens" }

func (d *RequestDeck) Apply(_ wallet.Snapshot) {}

func (d *RequestDeck) ContentLines(_ ViewContext) int { return 2 }

func (d *RequestDeck) OnSelect(ctx ViewContext) tea.Cmd {
	if d.copyLink == nil || ctx.FaucetURL == "" {
		return nil
	}
	return d.copyLink(ctx.FaucetURL)
}

func (d *RequestDeck) Render(ctx ViewContext, width, height int, active bool) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		helpStyle.Render("Need test tokens for this network?"),
		renderHyperlink(ctx.FaucetURL, "Request tokens →")+helpStyle.Render("  "+ctx.FaucetURL),
	)
	return renderDeckFrame(d.Title(), content, width, height, active)
}

// renderHyperlink renders text as an OSC 8 terminal hyperlink to url.
func renderHyperlink(url, text string) string {
	if url == "" {
		return linkStyle.Render(text)
	}
	return ansi.SetHyperlink(url) + linkStyle.Render(text) + ansi.ResetHyperlink()
}
