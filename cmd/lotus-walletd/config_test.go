package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tinytelemetry/lotus-wallet/internal/model"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.APIAddr != model.DefaultAPIAddr {
		t.Errorf("api-addr = %q", cfg.APIAddr)
	}
	if cfg.MaxPayloadKB != model.DefaultMaxPayloadKB {
		t.Errorf("max-payload-kb = %v", cfg.MaxPayloadKB)
	}
	if cfg.ConfigPath != "" {
		t.Errorf("config path = %q, want none", cfg.ConfigPath)
	}
}

func TestLoadConfig_IgnoresTUIKeys(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, "wallet.yml")
	body := "address: \"0xabc\"\ncarousel-speed: 3\napi-addr: \"0.0.0.0:8080\"\ntoken-presets: ~/tokens.yml\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.APIAddr != "0.0.0.0:8080" {
		t.Errorf("api-addr = %q", cfg.APIAddr)
	}
	if cfg.TokenPresets != filepath.Join(home, "tokens.yml") {
		t.Errorf("token-presets = %q, want ~ expanded", cfg.TokenPresets)
	}
}

func TestLoadConfig_InvalidAddr(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LOTUS_WALLET_API_ADDR", "no-port")

	if _, err := loadConfig(""); err == nil {
		t.Fatal("expected invalid api-addr error")
	}
}
