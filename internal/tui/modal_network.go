package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/lotus-wallet/internal/model"
)

// switchTimeout bounds one chain switch request.
const switchTimeout = 15 * time.Second

// chainSwitchedMsg reports the outcome of an asynchronous chain switch.
type chainSwitchedMsg struct {
	Chain model.Chain
	Err   error
}

// NetworkModal is the network switcher popover.
type NetworkModal struct {
	ctx      ModalContext
	switcher model.ChainSwitcher
	chains   []model.Chain
	current  uint64
	cursor   int
}

// NewNetworkModal lists the switcher's chains with the cursor on current.
func NewNetworkModal(ctx ModalContext, switcher model.ChainSwitcher, current uint64) *NetworkModal {
	m := &NetworkModal{
		ctx:      ctx,
		switcher: switcher,
		current:  current,
	}
	if switcher != nil {
		m.chains = switcher.Chains()
	}
	for i, c := range m.chains {
		if c.ID == current {
			m.cursor = i
			break
		}
	}
	return m
}

func (m *NetworkModal) ID() string { return "network" }

// Refresh follows external chain changes while the popover is open.
func (m *NetworkModal) Refresh(ctx ViewContext) {
	if len(ctx.Snapshot.Chains) > 0 {
		m.chains = ctx.Snapshot.Chains
	}
	m.current = ctx.Snapshot.Account.ChainID
	if m.cursor >= len(m.chains) {
		m.cursor = max(len(m.chains)-1, 0)
	}
}

// Selected returns the chain under the cursor.
func (m *NetworkModal) Selected() (model.Chain, bool) {
	if m.cursor < 0 || m.cursor >= len(m.chains) {
		return model.Chain{}, false
	}
	return m.chains[m.cursor], true
}

func (m *NetworkModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.ctx.Keys.Escape, m.ctx.Keys.Network, m.ctx.Keys.Quit):
			return true, nil
		case key.Matches(msg, m.ctx.Keys.Up):
			m.move(-1)
		case key.Matches(msg, m.ctx.Keys.Down):
			m.move(1)
		case key.Matches(msg, m.ctx.Keys.Enter):
			chain, ok := m.Selected()
			if !ok || chain.ID == m.current {
				return true, nil
			}
			return true, switchChainCmd(m.switcher, chain)
		}
	case tea.MouseMsg:
		if d := m.ctx.wheelDelta(msg); d != 0 {
			m.move(d)
		}
	}
	return false, nil
}

func (m *NetworkModal) move(delta int) {
	if len(m.chains) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.chains)) % len(m.chains)
}

func (m *NetworkModal) View(width, height int) string {
	var rows []string
	if len(m.chains) == 0 {
		rows = append(rows, helpStyle.Render("No networks available"))
	}
	for i, c := range m.chains {
		marker := "  "
		if c.ID == m.current {
			marker = lipgloss.NewStyle().Foreground(ColorGreen).Render("● ")
		}
		name := c.Name
		if c.Testnet {
			name += " (testnet)"
		}
		line := fmt.Sprintf("%s%-22s %s", marker, name, c.NativeSymbol)
		if i == m.cursor {
			line = lipgloss.NewStyle().
				Background(ColorBlue).
				Foreground(ColorWhite).
				Render(line)
		}
		rows = append(rows, line)
	}

	return modalFrame{
		title:  "Switch network",
		body:   strings.Join(rows, "\n"),
		status: []string{"↑/↓: Select", "Enter: Switch", "ESC: Close"},
		width:  40,
	}.render(width, height)
}

// switchChainCmd asks the wallet layer to switch chains off the UI loop.
func switchChainCmd(switcher model.ChainSwitcher, chain model.Chain) tea.Cmd {
	if switcher == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), switchTimeout)
		defer cancel()
		err := switcher.SwitchChain(ctx, chain.ID)
		return chainSwitchedMsg{Chain: chain, Err: err}
	}
}
