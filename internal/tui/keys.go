package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all wallet key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Escape    key.Binding

	// Navigation
	NextDeck key.Binding
	PrevDeck key.Binding
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	Enter    key.Binding

	// Actions
	Network     key.Binding
	Payload     key.Binding
	CopyAddress key.Binding
	CopyLink    key.Binding
	Connect     key.Binding
	Refresh     key.Binding
	Pause       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?/h", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("escape", "esc"),
			key.WithHelp("esc", "close"),
		),

		NextDeck: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		PrevDeck: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev section"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "go home"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),

		Network: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "switch network"),
		),
		Payload: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "compose memo"),
		),
		CopyAddress: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy address"),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "copy faucet link"),
		),
		Connect: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "connect/disconnect"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause tokens"),
		),
	}
}

// HelpBindings lists bindings in the order shown by the help modal.
func (k KeyMap) HelpBindings() []key.Binding {
	return []key.Binding{
		k.NextDeck, k.PrevDeck, k.Enter,
		k.Network, k.Payload, k.CopyAddress, k.CopyLink,
		k.Connect, k.Refresh, k.Pause,
		k.Help, k.Escape, k.Quit, k.ForceQuit,
	}
}
