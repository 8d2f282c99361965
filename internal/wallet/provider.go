// Package wallet adapts the wallet integration layer for the UI: an
// in-memory provider for local use and the snapshot fetch the dashboard
// renders from.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/tinytelemetry/lotus-wallet/internal/model"
)

var (
	ErrUnsupportedChain = errors.New("wallet: unsupported chain")
	ErrNotConnected     = errors.New("wallet: not connected")
	ErrUnknownAccount   = errors.New("wallet: unknown account")
)

// DefaultChains lists the networks offered by the switcher out of the box.
func DefaultChains() []model.Chain {
	return []model.Chain{
		{ID: 1, Name: "Ethereum", NativeSymbol: "ETH", Decimals: 18, ExplorerURL: "https://etherscan.io"},
		{ID: 11155111, Name: "Sepolia", NativeSymbol: "ETH", Decimals: 18, ExplorerURL: "https://sepolia.etherscan.io", Testnet: true},
		{ID: 8453, Name: "Base", NativeSymbol: "ETH", Decimals: 18, ExplorerURL: "https://basescan.org"},
		{ID: 137, Name: "Polygon", NativeSymbol: "POL", Decimals: 18, ExplorerURL: "https://polygonscan.com"},
		{ID: 43114, Name: "Avalanche", NativeSymbol: "AVAX", Decimals: 18, ExplorerURL: "https://snowtrace.io"},
	}
}

// StaticConfig configures a StaticProvider.
type StaticConfig struct {
	Address  string
	ChainID  uint64
	Chains   []model.Chain
	Balances map[uint64]*big.Int // raw amounts in the chain's smallest unit
}

// StaticProvider is an in-memory model.WalletProvider. It is safe for
// concurrent use.
type StaticProvider struct {
	mu       sync.RWMutex
	address  string
	chainID  uint64
	status   model.ConnectionStatus
	chains   []model.Chain
	balances map[uint64]*big.Int
}

// NewStaticProvider creates a provider that starts connected when an address
// is configured.
func NewStaticProvider(cfg StaticConfig) (*StaticProvider, error) {
	chains := cfg.Chains
	if len(chains) == 0 {
		chains = DefaultChains()
	}

	p := &StaticProvider{
		address:  cfg.Address,
		chainID:  cfg.ChainID,
		status:   model.StatusDisconnected,
		chains:   append([]model.Chain(nil), chains...),
		balances: make(map[uint64]*big.Int, len(cfg.Balances)),
	}
	if p.chainID == 0 {
		p.chainID = chains[0].ID
	}
	if _, ok := p.chain(p.chainID); !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChain, p.chainID)
	}
	for id, v := range cfg.Balances {
		if v != nil {
			p.balances[id] = new(big.Int).Set(v)
		}
	}
	if p.address != "" {
		p.status = model.StatusConnected
	}
	return p, nil
}

func (p *StaticProvider) Account(ctx context.Context) (model.Account, error) {
	if err := ctx.Err(); err != nil {
		return model.Account{}, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	acct := model.Account{Status: p.status, ChainID: p.chainID}
	if p.status == model.StatusConnected {
		acct.Address = p.address
	}
	return acct, nil
}

func (p *StaticProvider) Balance(ctx context.Context, address string, chainID uint64) (model.Balance, error) {
	if err := ctx.Err(); err != nil {
		return model.Balance{}, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.status != model.StatusConnected {
		return model.Balance{}, ErrNotConnected
	}
	if !strings.EqualFold(address, p.address) {
		return model.Balance{}, fmt.Errorf("%w: %s", ErrUnknownAccount, address)
	}
	c, ok := p.chain(chainID)
	if !ok {
		return model.Balance{}, fmt.Errorf("%w: %d", ErrUnsupportedChain, chainID)
	}

	value := new(big.Int)
	if v, ok := p.balances[chainID]; ok {
		value.Set(v)
	}
	return model.Balance{Value: value, Decimals: c.Decimals, Symbol: c.NativeSymbol}, nil
}

func (p *StaticProvider) Chains() []model.Chain {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]model.Chain(nil), p.chains...)
}

func (p *StaticProvider) SwitchChain(ctx context.Context, chainID uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.chain(chainID); !ok {
		return fmt.Errorf("%w: %d", ErrUnsupportedChain, chainID)
	}
	p.chainID = chainID
	return nil
}

// Connect marks the configured account as connected.
func (p *StaticProvider) Connect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.address == "" {
		return fmt.Errorf("%w: no address configured", ErrNotConnected)
	}
	p.status = model.StatusConnected
	return nil
}

// Disconnect marks the account as disconnected.
func (p *StaticProvider) Disconnect(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = model.StatusDisconnected
	return nil
}

// chain must be called with p.mu held.
func (p *StaticProvider) chain(id uint64) (model.Chain, bool) {
	for _, c := range p.chains {
		if c.ID == id {
			return c, true
		}
	}
	return model.Chain{}, false
}

// TruncateAddress shortens an address for display, e.g. 0x1234…abcd.
func TruncateAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}
