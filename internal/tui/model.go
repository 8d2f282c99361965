package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/tinytelemetry/lotus-wallet/internal/carousel"
	"github.com/tinytelemetry/lotus-wallet/internal/model"
	"github.com/tinytelemetry/lotus-wallet/internal/presets"
	"github.com/tinytelemetry/lotus-wallet/internal/wallet"
)

// WalletOptions configures a WalletModel.
type WalletOptions struct {
	Provider           model.WalletProvider
	Presets            []model.TokenPreset
	FaucetURL          string
	MaxPayloadKB       float64
	CarouselSpeed      float64
	FrameInterval      time.Duration
	RefreshInterval    time.Duration
	ReverseScrollWheel bool
	Zones              *zone.Manager

	// CopyToClipboard defaults to clipboard.WriteAll.
	CopyToClipboard func(text string) error
}

// ModalStackState holds the modal stack.
type ModalStackState struct {
	modalStack []Modal
}

// NavigationState holds deck focus.
type NavigationState struct {
	decks         []Deck
	activeDeckIdx int
}

// WalletModel is the wallet page: decks, modals and the status line.
type WalletModel struct {
	ModalStackState
	NavigationState

	opts     WalletOptions
	provider model.WalletProvider
	keys     KeyMap
	zones    *zone.Manager

	width  int
	height int

	tokens    *TokensDeck
	itemChain uint64 // chain the carousel items were filtered for

	snap   wallet.Snapshot
	loaded bool

	// Last refresh error for the status line (auto-clears after 30s).
	lastError   string
	lastErrorAt time.Time
	toast       Toast

	// Async refresh guard to avoid overlapping snapshot reads.
	fetchInFlight bool
	refreshGen    int
	active        bool
}

// TickMsg schedules a periodic snapshot refresh.
type TickMsg struct {
	Gen int
	At  time.Time
}

// snapshotLoadedMsg carries a fetched snapshot back to the model.
type snapshotLoadedMsg struct {
	snap wallet.Snapshot
	err  error
}

// clipboardMsg reports the result of a copy.
type clipboardMsg struct {
	what string
	err  error
}

// connectToggledMsg reports the result of a connect/disconnect request.
type connectToggledMsg struct {
	connected bool
	err       error
}

// NewWalletModel creates the wallet model. Zero options take package defaults.
func NewWalletModel(opts WalletOptions) *WalletModel {
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = model.DefaultRefreshInterval
	}
	if opts.MaxPayloadKB <= 0 {
		opts.MaxPayloadKB = model.DefaultMaxPayloadKB
	}
	if opts.CarouselSpeed <= 0 {
		opts.CarouselSpeed = model.DefaultCarouselSpeed
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = model.DefaultFrameInterval
	}
	if opts.FaucetURL == "" {
		opts.FaucetURL = model.DefaultFaucetURL
	}
	if opts.Presets == nil {
		opts.Presets = presets.Default()
	}
	if opts.CopyToClipboard == nil {
		opts.CopyToClipboard = clipboard.WriteAll
	}

	m := &WalletModel{
		opts:     opts,
		provider: opts.Provider,
		keys:     DefaultKeyMap(),
		zones:    opts.Zones,
	}

	c := carousel.New(presets.ToDisplayItems(opts.Presets),
		carousel.WithSpeed(opts.CarouselSpeed),
		carousel.WithFrameInterval(opts.FrameInterval),
		carousel.WithZone(opts.Zones),
	)
	m.tokens = NewTokensDeck(c)

	m.SetDecks([]Deck{
		NewBalanceDeck(m.networkModalCmd),
		m.tokens,
		NewRequestDeck(m.copyCmd),
	})
	return m
}

// SetDecks replaces decks and resets deck focus.
func (m *WalletModel) SetDecks(decks []Deck) {
	m.decks = append([]Deck(nil), decks...)
	if m.activeDeckIdx >= len(m.decks) {
		m.activeDeckIdx = 0
	}
}

// Decks returns the decks in display order.
func (m *WalletModel) Decks() []Deck { return m.decks }

// Tokens returns the carousel deck.
func (m *WalletModel) Tokens() *TokensDeck { return m.tokens }

// Snapshot returns the last applied wallet snapshot.
func (m *WalletModel) Snapshot() wallet.Snapshot { return m.snap }

// Toast returns the current status-line notification.
func (m *WalletModel) Toast() Toast { return m.toast }

// LastError returns the last refresh error, empty when healthy.
func (m *WalletModel) LastError() string { return m.lastError }

// Init mounts the page: the carousel starts and the first snapshot is read.
func (m *WalletModel) Init() tea.Cmd {
	m.active = true
	m.refreshGen++
	m.fetchInFlight = false

	var cmds []tea.Cmd
	for _, a := range m.animatedDecks() {
		cmds = append(cmds, a.Start())
	}
	cmds = append(cmds, m.refresh(), m.scheduleRefresh(), m.startSpinnerIfNeeded())
	return tea.Batch(cmds...)
}

// Leave unmounts the page. Pending frames and refresh ticks become stale.
func (m *WalletModel) Leave() {
	m.active = false
	m.refreshGen++
	for _, a := range m.animatedDecks() {
		a.Stop()
	}
	m.modalStack = nil
}

func (m *WalletModel) animatedDecks() []AnimatedDeck {
	var out []AnimatedDeck
	for _, d := range m.decks {
		if a, ok := d.(AnimatedDeck); ok {
			out = append(out, a)
		}
	}
	return out
}

// updateAnimated forwards msg to every animated deck.
func (m *WalletModel) updateAnimated(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, a := range m.animatedDecks() {
		cmds = append(cmds, a.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (m *WalletModel) scheduleRefresh() tea.Cmd {
	gen := m.refreshGen
	return tea.Tick(m.opts.RefreshInterval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}

// refresh starts a snapshot read unless one is already in flight.
func (m *WalletModel) refresh() tea.Cmd {
	if m.fetchInFlight || m.provider == nil {
		return nil
	}
	m.fetchInFlight = true
	return fetchSnapshotCmd(m.provider)
}

func (m *WalletModel) applySnapshot(msg snapshotLoadedMsg) tea.Cmd {
	m.fetchInFlight = false
	m.loaded = true

	// A failed refresh only flags the error; the last good snapshot stays on
	// screen. The flag clears on the next success.
	if msg.err != nil {
		m.lastError = msg.err.Error()
		m.lastErrorAt = time.Now()
		return nil
	}
	m.lastError = ""

	m.snap = msg.snap
	for _, d := range m.decks {
		d.Apply(msg.snap)
	}

	// Visibility-aware refresh: only refresh modal data when it's visible.
	if modal := m.TopModal(); modal != nil {
		if r, ok := modal.(Refreshable); ok {
			r.Refresh(m.viewContext())
		}
	}

	return m.syncTokenItems()
}

// syncTokenItems shows the presets of the active chain in the carousel. When
// no preset matches the chain, all presets are shown.
func (m *WalletModel) syncTokenItems() tea.Cmd {
	chainID := m.snap.Account.ChainID
	if chainID == m.itemChain {
		return nil
	}
	m.itemChain = chainID

	var matching []model.TokenPreset
	for _, p := range m.opts.Presets {
		if p.ChainID == chainID {
			matching = append(matching, p)
		}
	}
	if len(matching) == 0 {
		matching = m.opts.Presets
	}
	return m.tokens.Carousel().SetItems(presets.ToDisplayItems(matching))
}

func (m *WalletModel) viewContext() ViewContext {
	return ViewContext{
		ContentWidth:  m.width,
		ContentHeight: m.height,
		Snapshot:      m.snap,
		Loaded:        m.loaded,
		LastError:     m.lastError,
		FaucetURL:     m.opts.FaucetURL,
	}
}

func (m *WalletModel) modalContext() ModalContext {
	return ModalContext{
		ReverseScrollWheel: m.opts.ReverseScrollWheel,
		Keys:               m.keys,
	}
}

// setToast shows a status-line notification stamped now.
func (m *WalletModel) setToast(t Toast) {
	if t.At.IsZero() {
		t.At = time.Now()
	}
	m.toast = t
}

// PushModal pushes a modal onto the stack. Deduplicates by ID.
func (m *WalletModel) PushModal(modal Modal) {
	for _, existing := range m.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	m.modalStack = append(m.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (m *WalletModel) PopModal() {
	if len(m.modalStack) > 0 {
		m.modalStack = m.modalStack[:len(m.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (m *WalletModel) TopModal() Modal {
	if len(m.modalStack) == 0 {
		return nil
	}
	return m.modalStack[len(m.modalStack)-1]
}

// HasModal returns true if any modal is on the stack.
func (m *WalletModel) HasModal() bool {
	return len(m.modalStack) > 0
}

// networkModalCmd builds the network switcher now and returns a command
// that pushes it.
func (m *WalletModel) networkModalCmd() tea.Cmd {
	modal := NewNetworkModal(m.modalContext(), m.provider, m.snap.Account.ChainID)
	return actionMsg(ActionMsg{Action: ActionPushModal, Payload: modal})
}

func (m *WalletModel) newPayloadModal() *PayloadModal {
	return NewPayloadModal(m.modalContext(), m.snap.Account.Address, m.snap.Account.ChainID, m.opts.MaxPayloadKB)
}

// copyCmd copies text to the system clipboard off the UI loop.
func (m *WalletModel) copyCmd(text string) tea.Cmd {
	copyFn := m.opts.CopyToClipboard
	return func() tea.Msg {
		return clipboardMsg{what: text, err: copyFn(text)}
	}
}
