package main

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tinytelemetry/lotus-wallet/internal/model"
)

const (
	defaultCarouselSpeed   = model.DefaultCarouselSpeed
	defaultFrameInterval   = model.DefaultFrameInterval
	defaultRefreshInterval = model.DefaultRefreshInterval
	defaultMaxPayloadKB    = model.DefaultMaxPayloadKB
	defaultChainID         = model.DefaultChainID
	defaultFaucetURL       = model.DefaultFaucetURL
	defaultAPIAddr         = model.DefaultAPIAddr
)

// cliConfig holds the wallet TUI configuration.
type cliConfig struct {
	Address            string            `mapstructure:"address"`
	ChainID            uint64            `mapstructure:"chain-id"`
	Balances           map[string]string `mapstructure:"balances"` // chain ID -> amount in the smallest unit
	CarouselSpeed      float64           `mapstructure:"carousel-speed"`
	FrameInterval      time.Duration     `mapstructure:"frame-interval"`
	RefreshInterval    time.Duration     `mapstructure:"refresh-interval"`
	MaxPayloadKB       float64           `mapstructure:"max-payload-kb"`
	FaucetURL          string            `mapstructure:"faucet-url"`
	TokenPresets       string            `mapstructure:"token-presets"`
	ReverseScrollWheel bool              `mapstructure:"reverse-scroll-wheel"`
	APIEnabled         bool              `mapstructure:"api-enabled"`
	APIAddr            string            `mapstructure:"api-addr"`
	ConfigPath         string            `mapstructure:"-"` // not from config file
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("LOTUS_WALLET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("address", "")
	v.SetDefault("chain-id", defaultChainID)
	v.SetDefault("carousel-speed", defaultCarouselSpeed)
	v.SetDefault("frame-interval", defaultFrameInterval)
	v.SetDefault("refresh-interval", defaultRefreshInterval)
	v.SetDefault("max-payload-kb", defaultMaxPayloadKB)
	v.SetDefault("faucet-url", defaultFaucetURL)
	v.SetDefault("token-presets", "")
	v.SetDefault("reverse-scroll-wheel", false)
	v.SetDefault("api-enabled", false)
	v.SetDefault("api-addr", defaultAPIAddr)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "lotus-wallet", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if err := checkAddress(cfg.Address); err != nil {
		return cfg, err
	}
	if cfg.CarouselSpeed <= 0 {
		return cfg, fmt.Errorf("invalid carousel-speed: %v", cfg.CarouselSpeed)
	}
	if cfg.FrameInterval <= 0 {
		return cfg, fmt.Errorf("invalid frame-interval: %v", cfg.FrameInterval)
	}
	if cfg.RefreshInterval <= 0 {
		return cfg, fmt.Errorf("invalid refresh-interval: %v", cfg.RefreshInterval)
	}
	if cfg.MaxPayloadKB <= 0 {
		return cfg, fmt.Errorf("invalid max-payload-kb: %v", cfg.MaxPayloadKB)
	}
	if _, err := cfg.balances(); err != nil {
		return cfg, err
	}

	// Expand ~ in token-presets
	if strings.HasPrefix(cfg.TokenPresets, "~/") {
		cfg.TokenPresets = filepath.Join(home, cfg.TokenPresets[2:])
	}

	return cfg, nil
}

// checkAddress accepts an empty address (disconnected) or 0x followed by
// 40 hex digits.
func checkAddress(addr string) error {
	if addr == "" {
		return nil
	}
	hexPart, ok := strings.CutPrefix(addr, "0x")
	if !ok || len(hexPart) != 40 {
		return fmt.Errorf("invalid address: %q", addr)
	}
	for _, r := range hexPart {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return fmt.Errorf("invalid address: %q", addr)
		}
	}
	return nil
}

// balances parses the configured per-chain amounts.
func (c cliConfig) balances() (map[uint64]*big.Int, error) {
	out := make(map[uint64]*big.Int, len(c.Balances))
	for chain, amount := range c.Balances {
		id, err := strconv.ParseUint(chain, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid balances key %q: chain IDs must be integers", chain)
		}
		v, ok := new(big.Int).SetString(strings.TrimSpace(amount), 10)
		if !ok || v.Sign() < 0 {
			return nil, fmt.Errorf("invalid balance %q for chain %d", amount, id)
		}
		out[id] = v
	}
	return out, nil
}
