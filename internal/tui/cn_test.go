package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestMergeStyles_LaterWins(t *testing.T) {
	t.Parallel()

	a := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	b := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	got := MergeStyles(a, b)
	if got.GetForeground() != lipgloss.Color("2") {
		t.Fatalf("foreground = %v, want 2", got.GetForeground())
	}
	if !got.GetBold() {
		t.Fatal("bold from the earlier style should fall through")
	}
}

func TestMergeStyles_PaddingAndMargins(t *testing.T) {
	t.Parallel()

	a := lipgloss.NewStyle().Padding(1, 2).Margin(1)
	b := lipgloss.NewStyle().PaddingLeft(5)

	got := MergeStyles(a, b)
	if got.GetPaddingTop() != 1 || got.GetPaddingRight() != 2 || got.GetPaddingLeft() != 5 {
		t.Fatalf("padding = %d %d %d %d", got.GetPaddingTop(), got.GetPaddingRight(), got.GetPaddingBottom(), got.GetPaddingLeft())
	}
	if got.GetMarginBottom() != 1 {
		t.Fatalf("margin bottom = %d, want 1", got.GetMarginBottom())
	}
}

func TestMergeStyles_Conditional(t *testing.T) {
	t.Parallel()

	base := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	active := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	if got := MergeStyles(base, StyleIf(false, active)); got.GetForeground() != lipgloss.Color("1") {
		t.Fatalf("inactive foreground = %v, want 1", got.GetForeground())
	}
	if got := MergeStyles(base, StyleIf(true, active)); got.GetForeground() != lipgloss.Color("9") {
		t.Fatalf("active foreground = %v, want 9", got.GetForeground())
	}
}

func TestMergeStyles_Empty(t *testing.T) {
	t.Parallel()

	if got := MergeStyles().Render("x"); got != "x" {
		t.Fatalf("empty merge rendered %q", got)
	}
}
