package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// App is the top-level Bubble Tea model that routes between pages.
// Navigation to an unknown page ID lands on the not-found page.
type App struct {
	pages      map[string]Page
	homeID     string
	activePage string
	notFound   *NotFoundPage
	zones      *zone.Manager
	width      int
	height     int
}

// NewApp creates a new App with the given pages. The first page is the home page.
func NewApp(pages ...Page) *App {
	pageMap := make(map[string]Page, len(pages))
	var firstID string
	for i, p := range pages {
		pageMap[p.ID()] = p
		if i == 0 {
			firstID = p.ID()
		}
	}
	return &App{
		pages:      pageMap,
		homeID:     firstID,
		activePage: firstID,
		notFound:   NewNotFoundPage(firstID),
	}
}

// SetZones installs the zone manager used to resolve mouse hover regions.
// The final frame is scanned through it on every View.
func (a *App) SetZones(z *zone.Manager) {
	a.zones = z
}

// Route selects the page shown first. Unknown IDs show the not-found page.
func (a *App) Route(pageID string) {
	if pageID == "" {
		pageID = a.homeID
	}
	a.activePage = pageID
	if _, ok := a.pages[pageID]; !ok {
		a.notFound.SetPath(pageID)
	}
}

// ActivePage returns the ID of the page currently shown.
func (a *App) ActivePage() string {
	if _, ok := a.pages[a.activePage]; ok {
		return a.activePage
	}
	return a.notFound.ID()
}

func (a *App) current() Page {
	if p, ok := a.pages[a.activePage]; ok {
		return p
	}
	return a.notFound
}

func (a *App) Init() tea.Cmd {
	return a.current().Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wsm.Width
		a.height = wsm.Height
	}

	p := a.current()
	cmd, nav := p.Update(msg)
	if nav == nil || nav.PageID == a.activePage {
		return a, cmd
	}

	if l, ok := p.(Leaver); ok {
		l.Leave()
	}
	a.Route(nav.PageID)
	return a, tea.Batch(cmd, a.current().Init())
}

func (a *App) View() string {
	view := a.current().View(a.width, a.height)
	if a.zones != nil {
		return a.zones.Scan(view)
	}
	return view
}
