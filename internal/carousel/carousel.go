// Package carousel renders an endlessly scrolling horizontal strip of token
// cards. The strip holds two copies of the items so that wrapping the offset
// back to zero after one copy has scrolled past is invisible.
//
// Scrolling is an explicit state machine driven by frame messages:
//
//	Idle --Start--> Running --PointerEnter--> Paused --PointerLeave--> Running
//	any  --Stop--> Stopped
//
// Each transition either schedules or cancels the next frame. Cancellation
// bumps a generation tag; frames carrying an old tag are dropped, so at most
// one frame per carousel is ever acted on.
package carousel

import (
	"math"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/tinytelemetry/lotus-wallet/internal/model"
)

// State is the scrolling state of a carousel.
type State int

const (
	StateIdle    State = iota // created, not mounted yet
	StateRunning              // frames are scheduled
	StatePaused               // pointer is hovering
	StateStopped              // unmounted; nothing fires or renders
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// FrameMsg is one scheduled tick of a carousel.
type FrameMsg struct {
	ID  int
	Gen int
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Model is a single carousel instance.
type Model struct {
	id     int
	zoneID string
	zones  *zone.Manager

	items []model.DisplayItem
	strip []model.DisplayItem

	position      float64
	speed         float64
	frameInterval time.Duration
	copyWidth     int
	viewWidth     int

	state   State
	gen     int
	pending bool
	hovered bool

	cardStyle  lipgloss.Style
	labelStyle lipgloss.Style
	subStyle   lipgloss.Style
	gap        int

	// rendered copy, invalidated when items or styles change
	copyView string
}

// Option configures a Model.
type Option func(*Model)

// WithSpeed sets the per-frame displacement in cells. Non-positive values are ignored.
func WithSpeed(speed float64) Option {
	return func(m *Model) {
		if speed > 0 && !math.IsInf(speed, 0) && !math.IsNaN(speed) {
			m.speed = speed
		}
	}
}

// WithFrameInterval sets the delay between frames.
func WithFrameInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.frameInterval = d
		}
	}
}

// WithZone enables hover tracking through the given zone manager. The host
// must pass its final view through Manager.Scan.
func WithZone(z *zone.Manager) Option {
	return func(m *Model) {
		m.zones = z
	}
}

// WithCardStyle overrides the border style of each card.
func WithCardStyle(s lipgloss.Style) Option {
	return func(m *Model) {
		m.cardStyle = s
	}
}

// New creates a carousel over items. It does not start scrolling until Start.
func New(items []model.DisplayItem, opts ...Option) *Model {
	m := &Model{
		id:            nextID(),
		speed:         model.DefaultCarouselSpeed,
		frameInterval: model.DefaultFrameInterval,
		cardStyle:     defaultCardStyle,
		labelStyle:    defaultLabelStyle,
		subStyle:      defaultSubLabelStyle,
		gap:           1,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.zoneID = "carousel-" + strconv.Itoa(m.id)
	m.setItems(items)
	return m
}

// ID returns the instance identifier carried by this carousel's frames.
func (m *Model) ID() int { return m.id }

// ZoneID returns the bubblezone identifier wrapping the rendered strip.
func (m *Model) ZoneID() string { return m.zoneID }

// State returns the current scrolling state.
func (m *Model) State() State { return m.state }

// Running reports whether frames are being scheduled.
func (m *Model) Running() bool { return m.state == StateRunning }

// Hovered reports whether the pointer is over the carousel.
func (m *Model) Hovered() bool { return m.hovered }

// Position returns the current horizontal offset, always in (-CopyWidth, 0].
func (m *Model) Position() float64 { return m.position }

// CopyWidth returns the measured width of one copy of the items, or 0 when
// the carousel has not been laid out yet.
func (m *Model) CopyWidth() int { return m.copyWidth }

// Items returns the carousel items.
func (m *Model) Items() []model.DisplayItem {
	return append([]model.DisplayItem(nil), m.items...)
}

// StripItems returns the duplicated sequence that backs the rendering.
func (m *Model) StripItems() []model.DisplayItem {
	return append([]model.DisplayItem(nil), m.strip...)
}

// Init mounts the carousel.
func (m *Model) Init() tea.Cmd {
	return m.Start()
}

// Start mounts the carousel from a zero offset and schedules the first frame.
func (m *Model) Start() tea.Cmd {
	m.cancel()
	m.position = 0
	m.hovered = false
	m.state = StateRunning
	return m.schedule()
}

// Stop unmounts the carousel: the pending frame is cancelled, hover tracking
// is detached and View renders nothing until the next Start.
func (m *Model) Stop() {
	m.cancel()
	m.hovered = false
	m.state = StateStopped
}

// PointerEnter pauses scrolling. Calling it repeatedly has no further effect.
func (m *Model) PointerEnter() tea.Cmd {
	if m.state != StateRunning && m.state != StatePaused {
		return nil
	}
	m.cancel()
	m.state = StatePaused
	return nil
}

// PointerLeave resumes scrolling from the current offset with a fresh frame.
func (m *Model) PointerLeave() tea.Cmd {
	if m.state != StateRunning && m.state != StatePaused {
		return nil
	}
	m.cancel()
	m.state = StateRunning
	return m.schedule()
}

// SetWidth records the visible width of the host area. The first width
// measurement of the strip happens on the next frame after this.
func (m *Model) SetWidth(width int) {
	if width < 0 {
		width = 0
	}
	m.viewWidth = width
}

// SetItems replaces the items. The offset restarts at zero and the strip is
// re-measured on the next frame.
func (m *Model) SetItems(items []model.DisplayItem) tea.Cmd {
	m.setItems(items)
	m.position = 0
	if len(m.items) == 0 {
		m.cancel()
		return nil
	}
	if m.state == StateRunning && !m.pending {
		return m.schedule()
	}
	return nil
}

func (m *Model) setItems(items []model.DisplayItem) {
	m.items = append([]model.DisplayItem(nil), items...)
	m.strip = make([]model.DisplayItem, 0, 2*len(m.items))
	m.strip = append(m.strip, m.items...)
	m.strip = append(m.strip, m.items...)
	m.copyView = ""
	m.copyWidth = 0
}

// Update handles frames and hover tracking.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FrameMsg:
		return m.tick(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return nil
}

func (m *Model) tick(msg FrameMsg) tea.Cmd {
	if msg.ID != m.id || msg.Gen != m.gen || m.state != StateRunning {
		return nil
	}
	m.pending = false

	if len(m.items) == 0 {
		return nil
	}

	if m.copyWidth == 0 && m.viewWidth > 0 {
		m.measure()
	}

	// Unmeasured strip: keep the loop alive but leave the offset alone so
	// the wrap check cannot fire on every frame.
	if m.copyWidth > 0 {
		m.position -= m.speed
		if m.position <= -float64(m.copyWidth) {
			m.position = 0
		}
	}

	return m.schedule()
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.zones == nil || m.state == StateStopped || m.state == StateIdle {
		return nil
	}

	inside := false
	if info := m.zones.Get(m.zoneID); info != nil {
		inside = info.InBounds(msg)
	}

	switch {
	case inside && !m.hovered:
		m.hovered = true
		return m.PointerEnter()
	case !inside && m.hovered:
		m.hovered = false
		return m.PointerLeave()
	}
	return nil
}

func (m *Model) schedule() tea.Cmd {
	if len(m.items) == 0 || m.state != StateRunning {
		return nil
	}
	m.pending = true
	id, gen := m.id, m.gen
	return tea.Tick(m.frameInterval, func(time.Time) tea.Msg {
		return FrameMsg{ID: id, Gen: gen}
	})
}

// cancel invalidates any frame in flight. Safe to call any number of times.
func (m *Model) cancel() {
	m.gen++
	m.pending = false
}

func (m *Model) measure() {
	m.copyWidth = lipgloss.Width(m.renderCopy())
	if m.copyWidth > 0 && m.position <= -float64(m.copyWidth) {
		m.position = 0
	}
}

// View renders the visible window of the strip at the current offset.
func (m *Model) View() string {
	if m.state == StateStopped || len(m.items) == 0 {
		return ""
	}

	var out string
	if m.copyWidth == 0 || m.viewWidth == 0 {
		out = m.renderCopy()
		if m.viewWidth > 0 {
			out = cutLines(out, 0, m.viewWidth)
		}
	} else {
		out = m.window(int(math.Floor(-m.position)))
	}

	if m.zones != nil {
		return m.zones.Mark(m.zoneID, out)
	}
	return out
}

// window renders viewWidth cells of the strip starting at offset.
func (m *Model) window(offset int) string {
	copies := 2
	if m.copyWidth > 0 {
		// A view wider than one copy needs extra repetitions to stay filled.
		need := (offset+m.viewWidth)/m.copyWidth + 1
		if need > copies {
			copies = need
		}
	}

	single := m.renderCopy()
	parts := make([]string, copies)
	for i := range parts {
		parts[i] = single
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return cutLines(strip, offset, offset+m.viewWidth)
}

func (m *Model) renderCopy() string {
	if m.copyView != "" {
		return m.copyView
	}
	cards := make([]string, 0, len(m.items))
	spacer := strings.Repeat(" ", m.gap)
	for _, item := range m.items {
		cards = append(cards, m.renderCard(item), spacer)
	}
	m.copyView = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	return m.copyView
}

func (m *Model) renderCard(item model.DisplayItem) string {
	head := m.labelStyle.Render(strings.TrimSpace(item.ImageRef + " " + item.Label))
	sub := m.subStyle.Render(item.SubLabel)
	return m.cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, head, sub))
}

func cutLines(s string, left, right int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, left, right)
	}
	return strings.Join(lines, "\n")
}
