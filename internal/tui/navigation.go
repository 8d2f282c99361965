package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyPress routes key presses to the top modal or the page bindings.
func (m *WalletModel) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Force quit works everywhere.
	if key.Matches(msg, m.keys.ForceQuit) {
		return tea.Quit
	}

	// Modal on stack gets the key first.
	if modal := m.TopModal(); modal != nil {
		return m.updateModal(modal, msg)
	}

	return m.handleGlobalKeys(msg)
}

func (m *WalletModel) handleGlobalKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.PushModal(NewHelpModal(m.modalContext()))

	case key.Matches(msg, m.keys.NextDeck):
		m.nextSection()

	case key.Matches(msg, m.keys.PrevDeck):
		m.prevSection()

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)

	case key.Matches(msg, m.keys.Enter):
		return m.showDetails()

	case key.Matches(msg, m.keys.Network):
		m.PushModal(NewNetworkModal(m.modalContext(), m.provider, m.snap.Account.ChainID))

	case key.Matches(msg, m.keys.Payload):
		if !m.snap.Account.Connected() {
			m.setToast(errorToast("Connect a wallet to compose a memo"))
			return nil
		}
		m.PushModal(m.newPayloadModal())

	case key.Matches(msg, m.keys.CopyAddress):
		if !m.snap.Account.Connected() {
			m.setToast(errorToast("No connected address to copy"))
			return nil
		}
		return m.copyCmd(m.snap.Account.Address)

	case key.Matches(msg, m.keys.CopyLink):
		return m.copyCmd(m.opts.FaucetURL)

	case key.Matches(msg, m.keys.Connect):
		return m.toggleConnectionCmd()

	case key.Matches(msg, m.keys.Refresh):
		return m.refresh()

	case key.Matches(msg, m.keys.Pause):
		return m.tokens.TogglePause()
	}
	return nil
}

func (m *WalletModel) nextSection() {
	if len(m.decks) == 0 {
		return
	}
	m.activeDeckIdx = (m.activeDeckIdx + 1) % len(m.decks)
}

func (m *WalletModel) prevSection() {
	if len(m.decks) == 0 {
		return
	}
	m.activeDeckIdx = (m.activeDeckIdx - 1 + len(m.decks)) % len(m.decks)
}

// moveSelection moves deck focus without wrapping.
func (m *WalletModel) moveSelection(delta int) {
	if len(m.decks) == 0 {
		return
	}
	m.activeDeckIdx = min(max(m.activeDeckIdx+delta, 0), len(m.decks)-1)
}

// showDetails runs the focused deck's select action.
func (m *WalletModel) showDetails() tea.Cmd {
	if m.activeDeckIdx >= len(m.decks) {
		return nil
	}
	return m.decks[m.activeDeckIdx].OnSelect(m.viewContext())
}
