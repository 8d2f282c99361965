package tui

import tea "github.com/charmbracelet/bubbletea"

// Modal is a self-contained modal that owns its own Update/View lifecycle.
// Modals are managed via a stack on WalletModel; the topmost modal
// receives all input and renders over the page.
type Modal interface {
	// ID returns a unique identifier used to deduplicate pushes.
	ID() string
	// Update processes a message. Return pop=true to close the modal.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	// View renders the modal content for the given terminal dimensions.
	View(width, height int) string
}

// Refreshable is optionally implemented by modals that need fresh wallet
// data while they are visible (i.e. on top of the stack).
type Refreshable interface {
	Refresh(ctx ViewContext)
}

// ModalContext carries the model settings modals need without a back
// reference to WalletModel.
type ModalContext struct {
	ReverseScrollWheel bool
	Keys               KeyMap
}

// wheelDelta maps a wheel event to a cursor delta, honoring the reverse
// scroll setting. Non-wheel events return 0.
func (c ModalContext) wheelDelta(msg tea.MouseMsg) int {
	if msg.Action != tea.MouseActionPress {
		return 0
	}
	delta := 0
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		delta = -1
	case tea.MouseButtonWheelDown:
		delta = 1
	}
	if c.ReverseScrollWheel {
		delta = -delta
	}
	return delta
}
