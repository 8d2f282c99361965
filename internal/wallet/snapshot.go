package wallet

import (
	"context"
	"fmt"
	"sync"

	"github.com/tinytelemetry/lotus-wallet/internal/model"
	"golang.org/x/sync/errgroup"
)

// Connector is implemented by providers that support connect/disconnect.
type Connector interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
}

// Snapshot is everything the wallet page renders for one refresh.
type Snapshot struct {
	Account  model.Account
	Chains   []model.Chain
	Chain    model.Chain              // active chain, zero when unknown
	Balance  model.Balance            // balance on the active chain
	Balances map[uint64]model.Balance // balances on every supported chain
}

// FetchSnapshot reads the account, then the balances on every supported
// chain concurrently. Balances are skipped while disconnected.
func FetchSnapshot(ctx context.Context, p model.WalletProvider) (Snapshot, error) {
	acct, err := p.Account(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading account: %w", err)
	}

	snap := Snapshot{
		Account:  acct,
		Chains:   p.Chains(),
		Balances: make(map[uint64]model.Balance),
	}
	for _, c := range snap.Chains {
		if c.ID == acct.ChainID {
			snap.Chain = c
		}
	}
	if !acct.Connected() {
		return snap, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range snap.Chains {
		g.Go(func() error {
			bal, err := p.Balance(gctx, acct.Address, c.ID)
			if err != nil {
				return fmt.Errorf("reading %s balance: %w", c.Name, err)
			}
			mu.Lock()
			snap.Balances[c.ID] = bal
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return snap, err
	}

	snap.Balance = snap.Balances[acct.ChainID]
	return snap, nil
}
