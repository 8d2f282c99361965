package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/tinytelemetry/lotus-wallet/internal/model"
)

const (
	defaultAPIAddr      = model.DefaultAPIAddr
	defaultMaxPayloadKB = model.DefaultMaxPayloadKB
)

// appConfig is internal runtime configuration for the API daemon.
// It reads the same file as the TUI and ignores the TUI-only keys.
type appConfig struct {
	APIAddr      string  `mapstructure:"api-addr"`
	MaxPayloadKB float64 `mapstructure:"max-payload-kb"`
	TokenPresets string  `mapstructure:"token-presets"`
	ConfigPath   string  `mapstructure:"-"` // not from config file
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("LOTUS_WALLET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("api-addr", defaultAPIAddr)
	v.SetDefault("max-payload-kb", defaultMaxPayloadKB)
	v.SetDefault("token-presets", "")

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

	if _, _, err := net.SplitHostPort(cfg.APIAddr); err != nil {
		return cfg, fmt.Errorf("invalid api-addr %q: %w", cfg.APIAddr, err)
	}
	if cfg.MaxPayloadKB <= 0 {
		return cfg, fmt.Errorf("invalid max-payload-kb: %v", cfg.MaxPayloadKB)
	}

	// Expand ~ in token-presets
	if strings.HasPrefix(cfg.TokenPresets, "~/") {
		cfg.TokenPresets = filepath.Join(home, cfg.TokenPresets[2:])
	}

	return cfg, nil
}
