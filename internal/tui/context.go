package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/lotus-wallet/internal/wallet"
)

// ViewContext provides read-only context to decks for rendering,
// replacing direct access to *WalletModel.
type ViewContext struct {
	ContentWidth  int
	ContentHeight int
	Snapshot      wallet.Snapshot
	Loaded        bool   // a snapshot has been received at least once
	LastError     string // last refresh error, empty when healthy
	FaucetURL     string
}

// Action identifies what a deck or modal wants the wallet page to do.
type Action int

const (
	ActionPushModal Action = iota
	ActionToast
	ActionRefresh
)

// ActionMsg is returned by decks and modals to communicate with the wallet
// page without mutating it directly.
type ActionMsg struct {
	Action  Action
	Payload any
}

// actionMsg wraps ActionMsg as a tea.Cmd.
func actionMsg(a ActionMsg) tea.Cmd {
	return func() tea.Msg { return a }
}
