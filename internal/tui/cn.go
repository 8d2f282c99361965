package tui

import "github.com/charmbracelet/lipgloss"

// MergeStyles combines styles left to right. When two styles set the same
// property the later one wins; properties a later style leaves unset fall
// through from earlier ones. Padding and margins are merged per side, with
// a later non-zero value taking precedence.
func MergeStyles(styles ...lipgloss.Style) lipgloss.Style {
	if len(styles) == 0 {
		return lipgloss.NewStyle()
	}

	merged := styles[len(styles)-1]
	for i := len(styles) - 2; i >= 0; i-- {
		merged = merged.Inherit(styles[i])
	}

	var pad, mar [4]int
	for _, s := range styles {
		overlay(&pad, s.GetPaddingTop(), s.GetPaddingRight(), s.GetPaddingBottom(), s.GetPaddingLeft())
		overlay(&mar, s.GetMarginTop(), s.GetMarginRight(), s.GetMarginBottom(), s.GetMarginLeft())
	}
	return merged.
		Padding(pad[0], pad[1], pad[2], pad[3]).
		Margin(mar[0], mar[1], mar[2], mar[3])
}

// StyleIf returns s when cond holds and an empty style otherwise, so it can
// be passed to MergeStyles for conditional styling.
func StyleIf(cond bool, s lipgloss.Style) lipgloss.Style {
	if cond {
		return s
	}
	return lipgloss.NewStyle()
}

func overlay(dst *[4]int, sides ...int) {
	for i, v := range sides {
		if v != 0 {
			dst[i] = v
		}
	}
}
