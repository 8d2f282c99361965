package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModal displays the key bindings and a short guide.
type HelpModal struct {
	ctx      ModalContext
	viewport viewport.Model
}

func NewHelpModal(ctx ModalContext) *HelpModal {
	return &HelpModal{
		ctx:      ctx,
		viewport: viewport.New(80, 20),
	}
}

func (h *HelpModal) ID() string { return "help" }

func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, h.ctx.Keys.Up):
			h.viewport.ScrollUp(1)
			return false, nil
		case key.Matches(msg, h.ctx.Keys.Down):
			h.viewport.ScrollDown(1)
			return false, nil
		case msg.String() == "pgup":
			h.viewport.HalfPageUp()
			return false, nil
		case msg.String() == "pgdown":
			h.viewport.HalfPageDown()
			return false, nil
		case key.Matches(msg, h.ctx.Keys.Help, h.ctx.Keys.Escape, h.ctx.Keys.Quit):
			return true, nil
		}
		var cmd tea.Cmd
		h.viewport, cmd = h.viewport.Update(msg)
		return false, cmd

	case tea.MouseMsg:
		switch h.ctx.wheelDelta(msg) {
		case -1:
			h.viewport.ScrollUp(1)
		case 1:
			h.viewport.ScrollDown(1)
		}
		return false, nil
	}
	return false, nil
}

func (h *HelpModal) View(width, height int) string {
	modalWidth := width - 8   // 4 chars margin on each side
	modalHeight := height - 4 // 2 lines margin top and bottom

	contentWidth := max(modalWidth-4, 10)
	contentHeight := max(modalHeight-6, 3) // header, spacing, status

	h.viewport.Width = contentWidth
	h.viewport.Height = contentHeight
	h.viewport.SetContent(lipgloss.NewStyle().Width(contentWidth).Render(renderHelpContent(h.ctx.Keys)))

	return modalFrame{
		title:  "Help",
		body:   h.viewport.View(),
		status: []string{"↑/↓/Wheel: Scroll", "PgUp/PgDn: Page", "?/h: Toggle Help", "ESC: Close"},
		width:  modalWidth,
	}.render(width, height)
}

// renderHelpContent lists every binding followed by a short guide.
func renderHelpContent(keys KeyMap) string {
	var b strings.Builder
	b.WriteString("Lotus Wallet\n\nKEYS:\n")
	for _, binding := range keys.HelpBindings() {
		h := binding.Help()
		fmt.Fprintf(&b, "  %-14s - %s\n", h.Key, h.Desc)
	}
	b.WriteString(`
MOUSE:
  Hover tokens   - Pause the token carousel; moving away resumes it
  Click sections - Focus a section
  Wheel          - Move selection in lists

SECTIONS:
  Balance        - Connected address, network and native balance
  Tokens         - Supported tokens for the active network
  Request Tokens - Link to the test token faucet

MEMOS:
  Memos travel with a transfer and are size-checked before submission.
`)
	return b.String()
}
