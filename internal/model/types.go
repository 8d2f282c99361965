package model

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// DisplayItem is one entry of the token carousel.
type DisplayItem struct {
	ID       string
	Label    string
	SubLabel string
	ImageRef string // glyph or short icon text rendered in the card
}

// TokenPreset is static token metadata shown in the carousel and served by the API.
type TokenPreset struct {
	Symbol   string `json:"symbol" yaml:"symbol"`
	Name     string `json:"name" yaml:"name"`
	Address  string `json:"address,omitempty" yaml:"address"`
	ChainID  uint64 `json:"chainId" yaml:"chainId"`
	Decimals uint8  `json:"decimals" yaml:"decimals"`
	Icon     string `json:"icon" yaml:"icon"`
}

// Chain describes a network the wallet can switch to.
type Chain struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	NativeSymbol string `json:"nativeSymbol"`
	Decimals     uint8  `json:"decimals"`
	ExplorerURL  string `json:"explorerUrl,omitempty"`
	Testnet      bool   `json:"testnet"`
}

// ConnectionStatus mirrors the wallet integration's connection lifecycle.
type ConnectionStatus string

const (
	StatusDisconnected ConnectionStatus = "disconnected"
	StatusConnecting   ConnectionStatus = "connecting"
	StatusConnected    ConnectionStatus = "connected"
	StatusReconnecting ConnectionStatus = "reconnecting"
)

// Account is the connected account as reported by the wallet integration.
type Account struct {
	Address string
	Status  ConnectionStatus
	ChainID uint64
}

// Connected reports whether the account can be used for balance display.
func (a Account) Connected() bool {
	return a.Status == StatusConnected && a.Address != ""
}

// Balance is a raw on-chain amount with its unit metadata.
type Balance struct {
	Value    *big.Int
	Decimals uint8
	Symbol   string
}

// maxDisplayFraction bounds the fractional digits shown for balances.
const maxDisplayFraction = 4

// Formatted renders the amount in whole units, e.g. "1.2345 ETH".
// Trailing zeros of the fraction are trimmed.
func (b Balance) Formatted() string {
	amount := b.Units()
	if b.Symbol == "" {
		return amount
	}
	return amount + " " + b.Symbol
}

// Units renders the amount in whole units without the symbol.
func (b Balance) Units() string {
	return b.decimal().Truncate(maxDisplayFraction).String()
}

// Float returns an approximate float value in whole units, for charts only.
func (b Balance) Float() float64 {
	return b.decimal().InexactFloat64()
}

func (b Balance) decimal() decimal.Decimal {
	if b.Value == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(b.Value, -int32(b.Decimals))
}
