package tui

import tea "github.com/charmbracelet/bubbletea"

// Page represents a top-level screen in the TUI (wallet, not found, etc.).
type Page interface {
	ID() string
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, *PageNav)
	View(width, height int) string
}

// Leaver is implemented by pages that hold running work (animations,
// refresh loops) which must stop when the page is navigated away from.
type Leaver interface {
	Leave()
}

// PageNav is returned from Update to request a page switch.
type PageNav struct {
	PageID string
	Params interface{}
}
