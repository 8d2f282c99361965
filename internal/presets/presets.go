// Package presets holds the static token metadata table shown by the wallet.
package presets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tinytelemetry/lotus-wallet/internal/model"
	"gopkg.in/yaml.v3"
)

// ErrInvalidPreset is returned by LoadFile for entries missing required fields.
var ErrInvalidPreset = errors.New("presets: invalid token preset")

var defaultPresets = []model.TokenPreset{
	{Symbol: "ETH", Name: "Ether", ChainID: 11155111, Decimals: 18, Icon: "Ξ"},
	{Symbol: "USDC", Name: "USD Coin", Address: "0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238", ChainID: 11155111, Decimals: 6, Icon: "$"},
	{Symbol: "DAI", Name: "Dai Stablecoin", Address: "0xff34b3d4Aee8ddCd6F9AFFFB6Fe49bD371b8a357", ChainID: 11155111, Decimals: 18, Icon: "◈"},
	{Symbol: "WETH", Name: "Wrapped Ether", Address: "0x7b79995e5f793A07Bc00c21412e50Ecae098E7f9", ChainID: 11155111, Decimals: 18, Icon: "W"},
	{Symbol: "UNI", Name: "Uniswap", Address: "0xa3382DfFcA847B84592C05AB05937aE1A38623BC", ChainID: 11155111, Decimals: 18, Icon: "🦄"},
	{Symbol: "LINK", Name: "Chainlink", Address: "0x779877A7B0D9E8603169DdbD7836e478b4624789", ChainID: 11155111, Decimals: 18, Icon: "⬡"},
}

// Default returns a copy of the built-in token table.
func Default() []model.TokenPreset {
	return append([]model.TokenPreset(nil), defaultPresets...)
}

// Lookup finds a preset by symbol, case-insensitively.
func Lookup(list []model.TokenPreset, symbol string) (model.TokenPreset, bool) {
	for _, p := range list {
		if strings.EqualFold(p.Symbol, symbol) {
			return p, true
		}
	}
	return model.TokenPreset{}, false
}

// ToDisplayItems maps presets to carousel items.
func ToDisplayItems(list []model.TokenPreset) []model.DisplayItem {
	items := make([]model.DisplayItem, 0, len(list))
	for _, p := range list {
		items = append(items, model.DisplayItem{
			ID:       fmt.Sprintf("%d:%s", p.ChainID, p.Symbol),
			Label:    p.Symbol,
			SubLabel: p.Name,
			ImageRef: p.Icon,
		})
	}
	return items
}

type presetFile struct {
	Tokens []model.TokenPreset `yaml:"tokens"`
}

// LoadFile reads a YAML token list of the form:
//
//	tokens:
//	  - symbol: ETH
//	    name: Ether
//	    chainId: 1
//	    decimals: 18
func LoadFile(path string) ([]model.TokenPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading token presets: %w", err)
	}

	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing token presets %s: %w", path, err)
	}

	for i, p := range f.Tokens {
		if strings.TrimSpace(p.Symbol) == "" || strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("%w: entry %d needs symbol and name", ErrInvalidPreset, i)
		}
		if p.ChainID == 0 {
			return nil, fmt.Errorf("%w: %s has no chainId", ErrInvalidPreset, p.Symbol)
		}
	}
	return f.Tokens, nil
}

// Load returns the presets from path, or the built-in table when path is empty.
func Load(path string) ([]model.TokenPreset, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
