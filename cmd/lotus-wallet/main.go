package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/tinytelemetry/lotus-wallet/internal/httpserver"
	"github.com/tinytelemetry/lotus-wallet/internal/presets"
	"github.com/tinytelemetry/lotus-wallet/internal/tui"
	"github.com/tinytelemetry/lotus-wallet/internal/wallet"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var address string
	var route string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/lotus-wallet/config.yml)")
	flag.StringVar(&address, "address", "", "override the wallet address")
	flag.StringVar(&route, "route", "", "page to open first (default is the wallet page)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Lotus Wallet - Terminal Wallet\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if address != "" {
		if err := checkAddress(address); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg.Address = address
	}

	if err := runTUI(cfg, route); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg cliConfig, route string) error {
	cleanupLogger := configureRuntimeLogger()
	defer cleanupLogger()

	balances, err := cfg.balances()
	if err != nil {
		return err
	}
	provider, err := wallet.NewStaticProvider(wallet.StaticConfig{
		Address:  cfg.Address,
		ChainID:  cfg.ChainID,
		Balances: balances,
	})
	if err != nil {
		return fmt.Errorf("configuring wallet: %w", err)
	}

	tokens, err := presets.Load(cfg.TokenPresets)
	if err != nil {
		return err
	}

	if cfg.APIEnabled {
		apiServer := httpserver.NewServer(cfg.APIAddr, httpserver.Config{
			Tokens:       tokens,
			Chains:       provider,
			MaxPayloadKB: cfg.MaxPayloadKB,
		})
		if err := apiServer.Start(); err != nil {
			return fmt.Errorf("failed to start API server: %w", err)
		}
		defer apiServer.Stop()
		log.Printf("api: listening on %s", apiServer.Addr())
	}

	zones := zone.New()
	defer zones.Close()

	walletPage := tui.NewWalletModel(tui.WalletOptions{
		Provider:           provider,
		Presets:            tokens,
		FaucetURL:          cfg.FaucetURL,
		MaxPayloadKB:       cfg.MaxPayloadKB,
		CarouselSpeed:      cfg.CarouselSpeed,
		FrameInterval:      cfg.FrameInterval,
		RefreshInterval:    cfg.RefreshInterval,
		ReverseScrollWheel: cfg.ReverseScrollWheel,
		Zones:              zones,
	})
	app := tui.NewApp(walletPage)
	app.SetZones(zones)
	app.Route(route)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// configureRuntimeLogger sends log output to a file; the TUI owns the terminal.
func configureRuntimeLogger() func() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	home, err := os.UserHomeDir()
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	logDir := filepath.Join(home, ".local", "state", "lotus-wallet")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	logPath := filepath.Join(logDir, "lotus-wallet.log")
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	log.SetOutput(f)
	return func() {
		_ = f.Close()
	}
}
