package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NotFoundPage is shown for routes that do not match any page.
type NotFoundPage struct {
	homeID string
	path   string
	keys   KeyMap
}

// NewNotFoundPage creates the 404 page; its link leads back to homeID.
func NewNotFoundPage(homeID string) *NotFoundPage {
	return &NotFoundPage{homeID: homeID, keys: DefaultKeyMap()}
}

// SetPath records the route that failed to resolve.
func (p *NotFoundPage) SetPath(path string) { p.path = path }

func (p *NotFoundPage) ID() string { return "not-found" }

func (p *NotFoundPage) Init() tea.Cmd { return nil }

func (p *NotFoundPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}
	switch {
	case key.Matches(km, p.keys.Quit, p.keys.ForceQuit):
		return tea.Quit, nil
	case key.Matches(km, p.keys.Enter, p.keys.Escape, p.keys.Home):
		if p.homeID == "" {
			return nil, nil
		}
		return nil, &PageNav{PageID: p.homeID}
	}
	return nil, nil
}

func (p *NotFoundPage) View(width, height int) string {
	code := lipgloss.NewStyle().
		Foreground(ColorBlue).
		Bold(true).
		Render("404")

	title := lipgloss.NewStyle().
		Foreground(ColorWhite).
		Bold(true).
		Render("Page not found")

	detail := helpStyle.Render("The page you are looking for does not exist.")
	if p.path != "" {
		detail = helpStyle.Render(fmt.Sprintf("No page is registered for %q.", p.path))
	}

	link := linkStyle.Render("← Return home") + helpStyle.Render("  (enter)")

	body := lipgloss.JoinVertical(lipgloss.Center, code, "", title, detail, "", link)
	if width <= 0 || height <= 0 {
		return body
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
