package tui

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/lotus-wallet/internal/carousel"
	"github.com/tinytelemetry/lotus-wallet/internal/model"
	"github.com/tinytelemetry/lotus-wallet/internal/wallet"
)

const testAddress = "0x1234567890abcdef1234567890abcdef12345678"

type recordingClipboard struct {
	mu     sync.Mutex
	copied []string
	err    error
}

func (c *recordingClipboard) write(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.copied = append(c.copied, text)
	return c.err
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestProvider(t *testing.T, address string) *wallet.StaticProvider {
	t.Helper()
	p, err := wallet.NewStaticProvider(wallet.StaticConfig{
		Address: address,
		ChainID: 11155111,
		Balances: map[uint64]*big.Int{
			11155111: big.NewInt(1_500_000_000_000_000_000),
			1:        big.NewInt(250_000_000_000_000_000),
		},
	})
	if err != nil {
		t.Fatalf("NewStaticProvider: %v", err)
	}
	return p
}

// newLoadedModel returns a mounted wallet model with its first snapshot applied.
func newLoadedModel(t *testing.T, p model.WalletProvider, clip *recordingClipboard) *WalletModel {
	t.Helper()
	opts := WalletOptions{Provider: p}
	if clip != nil {
		opts.CopyToClipboard = clip.write
	}
	m := NewWalletModel(opts)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(fetchSnapshotCmd(p)())
	if !m.loaded {
		t.Fatal("snapshot should be applied")
	}
	return m
}

func TestWalletModel_AppliesSnapshot(t *testing.T) {
	t.Parallel()

	m := newLoadedModel(t, newTestProvider(t, testAddress), nil)

	snap := m.Snapshot()
	if snap.Account.Address != testAddress {
		t.Fatalf("address = %q", snap.Account.Address)
	}
	if snap.Chain.Name != "Sepolia" {
		t.Fatalf("chain = %q, want Sepolia", snap.Chain.Name)
	}
	if got := snap.Balance.Formatted(); got != "1.5 ETH" {
		t.Fatalf("balance = %q, want 1.5 ETH", got)
	}
	if m.fetchInFlight {
		t.Fatal("fetch guard should be released after the snapshot arrives")
	}
	if m.LastError() != "" {
		t.Fatalf("unexpected error %q", m.LastError())
	}

	items := m.Tokens().Carousel().Items()
	if len(items) == 0 {
		t.Fatal("carousel should show the Sepolia presets")
	}
	for _, item := range items {
		if !strings.HasPrefix(item.ID, "11155111:") {
			t.Fatalf("item %q is not a Sepolia token", item.ID)
		}
	}
}

func TestWalletModel_RefreshGuard(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, testAddress)
	m := NewWalletModel(WalletOptions{Provider: p})
	m.Init()

	if !m.fetchInFlight {
		t.Fatal("Init should start the first fetch")
	}
	if cmd, _ := m.Update(keyRune('r')); cmd != nil {
		t.Fatal("refresh should be skipped while a fetch is in flight")
	}

	m.Update(fetchSnapshotCmd(p)())
	if cmd, _ := m.Update(keyRune('r')); cmd == nil {
		t.Fatal("refresh should start once the previous fetch finished")
	}
}

func TestWalletModel_StaleTickIgnored(t *testing.T) {
	t.Parallel()

	m := newLoadedModel(t, newTestProvider(t, testAddress), nil)
	old := m.refreshGen

	m.Leave()
	if cmd, _ := m.Update(TickMsg{Gen: old}); cmd != nil {
		t.Fatal("tick from before Leave should be dropped")
	}
	if got := m.Tokens().Carousel().State(); got != carousel.StateStopped {
		t.Fatalf("carousel state = %v, want stopped", got)
	}
}

func TestWalletModel_SnapshotError(t *testing.T) {
	t.Parallel()

	m := NewWalletModel(WalletOptions{})
	m.Init()
	m.Update(snapshotLoadedMsg{err: errors.New("rpc down")})

	if m.LastError() != "rpc down" {
		t.Fatalf("last error = %q", m.LastError())
	}
	view := m.View(120, 40)
	if !strings.Contains(view, "refresh error") {
		t.Fatal("status line should flag the refresh error")
	}
}

// flakyProvider fails balance reads while failing is set.
type flakyProvider struct {
	*wallet.StaticProvider
	mu      sync.Mutex
	failing bool
}

func (p *flakyProvider) setFailing(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failing = v
}

func (p *flakyProvider) Balance(ctx context.Context, address string, chainID uint64) (model.Balance, error) {
	p.mu.Lock()
	failing := p.failing
	p.mu.Unlock()
	if failing {
		return model.Balance{}, errors.New("rpc down")
	}
	return p.StaticProvider.Balance(ctx, address, chainID)
}

func TestWalletModel_FailedRefreshKeepsLastSnapshot(t *testing.T) {
	t.Parallel()

	p := &flakyProvider{StaticProvider: newTestProvider(t, testAddress)}
	m := newLoadedModel(t, p, nil)
	items := len(m.Tokens().Carousel().Items())
	good := m.Snapshot().Balance.Formatted()
	if !strings.Contains(good, "1.5") {
		t.Fatalf("balance = %q, want 1.5", good)
	}

	p.setFailing(true)
	m.Update(fetchSnapshotCmd(p)())

	if !strings.Contains(m.LastError(), "rpc down") {
		t.Fatalf("last error = %q", m.LastError())
	}
	if got := m.Snapshot().Balance.Formatted(); got != good {
		t.Fatalf("balance = %q after failed refresh, want %q", got, good)
	}
	if m.Snapshot().Account.ChainID != 11155111 {
		t.Fatalf("chain = %d, want the previous chain", m.Snapshot().Account.ChainID)
	}
	if len(m.Tokens().Carousel().Items()) != items {
		t.Fatal("carousel items should not change on a failed refresh")
	}
	view := m.View(120, 40)
	if !strings.Contains(view, "stale") {
		t.Fatal("balance deck should mark the data as stale")
	}
	if strings.Contains(view, "Balance   0 ") {
		t.Fatal("failed refresh should not blank the balance")
	}

	p.setFailing(false)
	m.Update(fetchSnapshotCmd(p)())
	if m.LastError() != "" {
		t.Fatalf("last error = %q after recovery", m.LastError())
	}
	if strings.Contains(m.View(120, 40), "stale") {
		t.Fatal("stale marker should clear after a good refresh")
	}
}

func TestWalletModel_NetworkSwitch(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, testAddress)
	m := newLoadedModel(t, p, nil)

	m.Update(keyRune('n'))
	modal, ok := m.TopModal().(*NetworkModal)
	if !ok {
		t.Fatalf("top modal = %T, want *NetworkModal", m.TopModal())
	}
	if c, _ := modal.Selected(); c.ID != 11155111 {
		t.Fatalf("cursor starts on %d, want the active chain", c.ID)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	target, _ := modal.Selected()

	cmd, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.HasModal() {
		t.Fatal("Enter should close the switcher")
	}
	if cmd == nil {
		t.Fatal("Enter on another chain should start a switch")
	}

	m.Update(cmd())
	toast := m.Toast()
	if toast.Kind != ToastSuccess || !strings.Contains(toast.Text, target.Name) {
		t.Fatalf("toast = %+v", toast)
	}

	m.Update(fetchSnapshotCmd(p)())
	if m.Snapshot().Account.ChainID != target.ID {
		t.Fatalf("chain = %d, want %d", m.Snapshot().Account.ChainID, target.ID)
	}
}

func TestWalletModel_SwitchToUnsupportedChain(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, testAddress)
	m := newLoadedModel(t, p, nil)

	msg := switchChainCmd(p, model.Chain{ID: 999, Name: "Nowhere"})()
	switched, ok := msg.(chainSwitchedMsg)
	if !ok {
		t.Fatalf("msg = %T", msg)
	}
	if !errors.Is(switched.Err, wallet.ErrUnsupportedChain) {
		t.Fatalf("err = %v, want ErrUnsupportedChain", switched.Err)
	}

	m.Update(switched)
	toast := m.Toast()
	if toast.Kind != ToastError || !toast.Active(toast.At) {
		t.Fatalf("toast = %+v, want an active error toast", toast)
	}
	if !strings.Contains(toast.Text, "Nowhere") {
		t.Fatalf("toast text = %q", toast.Text)
	}
}

func TestWalletModel_SameChainClosesWithoutSwitch(t *testing.T) {
	t.Parallel()

	m := newLoadedModel(t, newTestProvider(t, testAddress), nil)
	m.Update(keyRune('n'))

	cmd, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("selecting the active chain should not switch")
	}
	if m.HasModal() {
		t.Fatal("modal should close")
	}
}

func TestWalletModel_PayloadRequiresConnection(t *testing.T) {
	t.Parallel()

	m := newLoadedModel(t, newTestProvider(t, ""), nil)
	m.Update(keyRune('m'))

	if m.HasModal() {
		t.Fatal("memo composer needs a connected account")
	}
	if m.Toast().Kind != ToastError {
		t.Fatalf("toast = %+v, want error", m.Toast())
	}
}

func TestWalletModel_CopyAddress(t *testing.T) {
	t.Parallel()

	clip := &recordingClipboard{}
	m := newLoadedModel(t, newTestProvider(t, testAddress), clip)

	cmd, _ := m.Update(keyRune('y'))
	if cmd == nil {
		t.Fatal("copy should return a command")
	}
	m.Update(cmd())

	if len(clip.copied) != 1 || clip.copied[0] != testAddress {
		t.Fatalf("copied = %v", clip.copied)
	}
	if m.Toast().Kind != ToastSuccess {
		t.Fatalf("toast = %+v", m.Toast())
	}
}

func TestWalletModel_CopyFailureToast(t *testing.T) {
	t.Parallel()

	clip := &recordingClipboard{err: errors.New("no clipboard")}
	m := newLoadedModel(t, newTestProvider(t, testAddress), clip)

	cmd, _ := m.Update(keyRune('l'))
	m.Update(cmd())

	if clip.copied[0] != model.DefaultFaucetURL {
		t.Fatalf("copied %q, want faucet URL", clip.copied[0])
	}
	if m.Toast().Kind != ToastError {
		t.Fatalf("toast = %+v, want error", m.Toast())
	}
}

func TestWalletModel_ConnectToggle(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, testAddress)
	m := newLoadedModel(t, p, nil)

	cmd, _ := m.Update(keyRune('c'))
	m.Update(cmd())
	m.Update(fetchSnapshotCmd(p)())
	if m.Snapshot().Account.Connected() {
		t.Fatal("c should disconnect a connected wallet")
	}

	cmd, _ = m.Update(keyRune('c'))
	m.Update(cmd())
	m.Update(fetchSnapshotCmd(p)())
	if !m.Snapshot().Account.Connected() {
		t.Fatal("c should reconnect")
	}
}

func TestWalletModel_PauseToggle(t *testing.T) {
	t.Parallel()

	m := newLoadedModel(t, newTestProvider(t, testAddress), nil)
	c := m.Tokens().Carousel()

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if c.State() != carousel.StatePaused {
		t.Fatalf("state = %v, want paused", c.State())
	}
	cmd, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if c.State() != carousel.StateRunning {
		t.Fatalf("state = %v, want running", c.State())
	}
	if cmd == nil {
		t.Fatal("resume should schedule a frame")
	}
}

func TestWalletModel_DeckNavigation(t *testing.T) {
	t.Parallel()

	m := newLoadedModel(t, newTestProvider(t, testAddress), nil)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.activeDeckIdx != 1 {
		t.Fatalf("active deck = %d, want 1", m.activeDeckIdx)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.activeDeckIdx != len(m.Decks())-1 {
		t.Fatalf("shift+tab should wrap, got %d", m.activeDeckIdx)
	}
}

func TestWalletModel_EnterOnBalanceOpensSwitcher(t *testing.T) {
	t.Parallel()

	m := newLoadedModel(t, newTestProvider(t, testAddress), nil)

	cmd, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Enter on the balance deck should open the switcher")
	}
	m.Update(cmd())
	if _, ok := m.TopModal().(*NetworkModal); !ok {
		t.Fatalf("top modal = %T", m.TopModal())
	}
}

func TestWalletModel_ViewContainsDecks(t *testing.T) {
	t.Parallel()

	m := newLoadedModel(t, newTestProvider(t, testAddress), nil)
	view := m.View(120, 40)

	for _, want := range []string{"Balance", "Tokens", "Request Tokens", "Lotus", "0x1234"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestWalletModel_HelpModal(t *testing.T) {
	t.Parallel()

	m := newLoadedModel(t, newTestProvider(t, testAddress), nil)
	m.Update(keyRune('?'))
	if _, ok := m.TopModal().(*HelpModal); !ok {
		t.Fatalf("top modal = %T, want *HelpModal", m.TopModal())
	}
	if !strings.Contains(m.View(120, 40), "switch network") {
		t.Fatal("help should list key bindings")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.HasModal() {
		t.Fatal("esc should close help")
	}
}
