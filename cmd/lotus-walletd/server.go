package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/lotus-wallet/internal/httpserver"
	"github.com/tinytelemetry/lotus-wallet/internal/presets"
	"github.com/tinytelemetry/lotus-wallet/internal/wallet"
)

// runServer serves the wallet API until interrupted.
func runServer(cfg appConfig) error {
	cleanupLogger := configureRuntimeLogger()
	defer cleanupLogger()

	tokens, err := presets.Load(cfg.TokenPresets)
	if err != nil {
		return err
	}

	// Chain metadata only; the daemon never reads an account.
	chains, err := wallet.NewStaticProvider(wallet.StaticConfig{})
	if err != nil {
		return fmt.Errorf("configuring chains: %w", err)
	}

	apiServer := httpserver.NewServer(cfg.APIAddr, httpserver.Config{
		Tokens:       tokens,
		Chains:       chains,
		MaxPayloadKB: cfg.MaxPayloadKB,
	})
	if err := apiServer.Start(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}
	log.Printf("api: listening on %s", apiServer.Addr())

	// Set up context and signal handling before errgroup
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	printStartupBanner(cfg, apiServer.Addr(), len(tokens))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		select {
		case <-sigCh:
			fmt.Println("\nShutting down gracefully... (press Ctrl+C again to force)")
		case <-gctx.Done():
		}
		cancel()
		return nil
	})

	// Force exit on a second signal or when shutdown overruns its deadline.
	g.Go(func() error {
		<-gctx.Done()
		deadline := time.NewTimer(10 * time.Second)
		defer deadline.Stop()
		done := make(chan error, 1)
		go func() { done <- apiServer.Stop() }()

		select {
		case err := <-done:
			return err
		case <-sigCh:
			fmt.Println("\nForce shutdown.")
		case <-deadline.C:
			fmt.Println("Shutdown timed out, forcing exit.")
		}
		os.Exit(1)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("server: shutdown error: %v", err)
		return err
	}
	return nil
}

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

	logPath := filepath.Join(logDir, "lotus-walletd.log")
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

func printStartupBanner(cfg appConfig, addr string, tokenCount int) {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cyan := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	bold := lipgloss.NewStyle().Bold(true)

	check := green.Render("●")
	dot := dim.Render("●")

	logo := cyan.Bold(true).Render(`
    ╦  ╔═╗╔╦╗╦ ╦╔═╗  ╦ ╦╔═╗╦  ╦  ╔═╗╔╦╗
    ║  ║ ║ ║ ║ ║╚═╗  ║║║╠═╣║  ║  ║╣  ║
    ╩═╝╚═╝ ╩ ╚═╝╚═╝  ╚╩╝╩ ╩╩═╝╩═╝╚═╝ ╩ `)

	separator := dim.Render("    ─────────────────────────────────")

	tokenSource := "built-in"
	if cfg.TokenPresets != "" {
		tokenSource = shortenPath(cfg.TokenPresets)
	}

	lines := []string{
		"",
		logo,
		"    " + dim.Render("v"+version),
		"",
		separator,
		"",
		bold.Render("    Gateway"),
		"",
		fmt.Sprintf("    %s  HTTP API       %s", check, cyan.Render(addr)),
		fmt.Sprintf("    %s  Payload limit  %s", check, dim.Render(fmt.Sprintf("%.2fKB", cfg.MaxPayloadKB))),
		"",
		bold.Render("    Data"),
		"",
		fmt.Sprintf("    %s  Token presets  %s", check, dim.Render(fmt.Sprintf("%d (%s)", tokenCount, tokenSource))),
		"",
		bold.Render("    Config"),
		"",
	}
	if cfg.ConfigPath != "" {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", check, dim.Render(shortenPath(cfg.ConfigPath))))
	} else {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", dot, dim.Render("default (no file)")))
	}
	lines = append(lines,
		"",
		separator,
		"",
		"    "+dim.Render("Press ")+yellow.Render("Ctrl+C")+dim.Render(" to stop"),
		"",
	)

	fmt.Println(strings.Join(lines, "\n"))
}

func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
