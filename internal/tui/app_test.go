package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestApp_UnknownRouteShowsNotFound(t *testing.T) {
	t.Parallel()

	app := NewApp(NewWalletModel(WalletOptions{}))
	app.Route("settings")

	if got := app.ActivePage(); got != "not-found" {
		t.Fatalf("active page = %q, want not-found", got)
	}
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := app.View()
	if !strings.Contains(view, "404") || !strings.Contains(view, "settings") {
		t.Fatal("404 page should name the missing route")
	}
}

func TestApp_NotFoundReturnsHome(t *testing.T) {
	t.Parallel()

	w := NewWalletModel(WalletOptions{})
	app := NewApp(w)
	app.Route("nope")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := app.ActivePage(); got != WalletPageID {
		t.Fatalf("active page = %q, want %q", got, WalletPageID)
	}
	if cmd == nil {
		t.Fatal("returning home should init the wallet page")
	}
	if w.Tokens().Carousel().State().String() != "running" {
		t.Fatalf("carousel should start on entering the wallet page, got %v", w.Tokens().Carousel().State())
	}
}

func TestApp_EmptyRouteIsHome(t *testing.T) {
	t.Parallel()

	app := NewApp(NewWalletModel(WalletOptions{}))
	app.Route("")
	if got := app.ActivePage(); got != WalletPageID {
		t.Fatalf("active page = %q", got)
	}
}

func TestNotFoundPage_Quit(t *testing.T) {
	t.Parallel()

	p := NewNotFoundPage(WalletPageID)
	cmd, nav := p.Update(keyRune('q'))
	if nav != nil {
		t.Fatal("quit should not navigate")
	}
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should return tea.Quit")
	}
}
