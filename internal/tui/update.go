package tui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/lotus-wallet/internal/carousel"
	"github.com/tinytelemetry/lotus-wallet/internal/model"
	"github.com/tinytelemetry/lotus-wallet/internal/wallet"
)

// fetchTimeout bounds one snapshot read.
const fetchTimeout = 10 * time.Second

// WalletPageID is the route of the wallet page.
const WalletPageID = "wallet"

func (m *WalletModel) ID() string { return WalletPageID }

// Update handles messages. The wallet page never navigates on its own.
func (m *WalletModel) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	return m.update(msg), nil
}

func (m *WalletModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouseEvent(msg)

	case carousel.FrameMsg:
		return m.updateAnimated(msg)

	case SpinnerTickMsg:
		return m.handleSpinnerTick()

	case ActionMsg:
		return m.handleAction(msg)

	case TickMsg:
		if msg.Gen != m.refreshGen || !m.active {
			return nil
		}
		// Continue periodic ticks
		return tea.Batch(m.refresh(), m.scheduleRefresh())

	case snapshotLoadedMsg:
		if !m.active {
			m.fetchInFlight = false
			return nil
		}
		return m.applySnapshot(msg)

	case chainSwitchedMsg:
		if msg.Err != nil {
			log.Printf("tui: switch to chain %d failed: %v", msg.Chain.ID, msg.Err)
			m.setToast(errorToast(fmt.Sprintf("Could not switch to %s: %v", msg.Chain.Name, msg.Err)))
			return nil
		}
		m.setToast(Toast{Text: "Switched to " + msg.Chain.Name, Kind: ToastSuccess})
		return m.refresh()

	case clipboardMsg:
		if msg.err != nil {
			log.Printf("tui: clipboard copy failed: %v", msg.err)
			m.setToast(errorToast("Copy failed: " + msg.err.Error()))
			return nil
		}
		m.setToast(Toast{Text: "Copied " + msg.what, Kind: ToastSuccess})
		return nil

	case connectToggledMsg:
		if msg.err != nil {
			m.setToast(errorToast("Connection failed: " + msg.err.Error()))
			return nil
		}
		if msg.connected {
			m.setToast(Toast{Text: "Wallet connected", Kind: ToastSuccess})
		} else {
			m.setToast(Toast{Text: "Wallet disconnected"})
		}
		return m.refresh()
	}

	// Anything else goes to the top modal (e.g. textinput cursor blinks).
	if modal := m.TopModal(); modal != nil {
		return m.updateModal(modal, msg)
	}
	return nil
}

func (m *WalletModel) handleAction(msg ActionMsg) tea.Cmd {
	switch msg.Action {
	case ActionPushModal:
		if modal, ok := msg.Payload.(Modal); ok {
			m.PushModal(modal)
		}
	case ActionToast:
		if t, ok := msg.Payload.(Toast); ok {
			m.setToast(t)
		}
	case ActionRefresh:
		return m.refresh()
	}
	return nil
}

// updateModal forwards msg to modal and pops it when it asks to close.
func (m *WalletModel) updateModal(modal Modal, msg tea.Msg) tea.Cmd {
	pop, cmd := modal.Update(msg)
	if pop {
		m.PopModal()
	}
	return cmd
}

// handleMouseEvent processes mouse interactions
func (m *WalletModel) handleMouseEvent(msg tea.MouseMsg) tea.Cmd {
	// Modal on stack gets the mouse event first.
	if modal := m.TopModal(); modal != nil {
		return m.updateModal(modal, msg)
	}

	// Hover tracking runs on every event, including motion.
	hoverCmd := m.updateAnimated(msg)

	if msg.Action != tea.MouseActionPress {
		return hoverCmd
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		if idx, ok := m.deckAt(msg); ok {
			m.activeDeckIdx = idx
		}
	case tea.MouseButtonWheelUp:
		// Scroll wheel up = move selection up, or down if reversed
		if m.opts.ReverseScrollWheel {
			m.moveSelection(1)
		} else {
			m.moveSelection(-1)
		}
	case tea.MouseButtonWheelDown:
		if m.opts.ReverseScrollWheel {
			m.moveSelection(-1)
		} else {
			m.moveSelection(1)
		}
	}
	return hoverCmd
}

// deckAt resolves the deck under the pointer from the rendered zones.
func (m *WalletModel) deckAt(msg tea.MouseMsg) (int, bool) {
	if m.zones == nil {
		return 0, false
	}
	for i, d := range m.decks {
		if info := m.zones.Get(deckZoneID(d)); info != nil && info.InBounds(msg) {
			return i, true
		}
	}
	return 0, false
}

func deckZoneID(d Deck) string { return "deck-" + d.ID() }

// fetchSnapshotCmd reads a wallet snapshot off the UI loop.
func fetchSnapshotCmd(p model.WalletProvider) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		snap, err := wallet.FetchSnapshot(ctx, p)
		if err != nil {
			log.Printf("tui: snapshot refresh failed: %v", err)
		}
		return snapshotLoadedMsg{snap: snap, err: err}
	}
}

// toggleConnectionCmd connects or disconnects providers that support it.
func (m *WalletModel) toggleConnectionCmd() tea.Cmd {
	conn, ok := m.provider.(wallet.Connector)
	if !ok {
		m.setToast(errorToast("This wallet cannot be connected from here"))
		return nil
	}
	connected := m.snap.Account.Connected()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		if connected {
			return connectToggledMsg{connected: false, err: conn.Disconnect(ctx)}
		}
		err := conn.Connect(ctx)
		if errors.Is(err, wallet.ErrNotConnected) {
			err = errors.New("no address configured")
		}
		return connectToggledMsg{connected: err == nil, err: err}
	}
}
