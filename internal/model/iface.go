package model

import "context"

// AccountReader supplies the connected account.
type AccountReader interface {
	Account(ctx context.Context) (Account, error)
}

// BalanceReader supplies the native balance of an address on a chain.
type BalanceReader interface {
	Balance(ctx context.Context, address string, chainID uint64) (Balance, error)
}

// ChainSwitcher lists supported chains and switches the active one.
type ChainSwitcher interface {
	Chains() []Chain
	SwitchChain(ctx context.Context, chainID uint64) error
}

// WalletProvider is the unified contract of the wallet integration layer.
type WalletProvider interface {
	AccountReader
	BalanceReader
	ChainSwitcher
}
