package model

import "time"

// Shared defaults used by both the TUI and the API binaries.
const (
	DefaultCarouselSpeed   = 1.0
	DefaultFrameInterval   = time.Second / 60
	DefaultMaxPayloadKB    = 10.0
	DefaultChainID         = 11155111
	DefaultFaucetURL       = "https://faucet.lotus-wallet.dev"
	DefaultRefreshInterval = 15 * time.Second
	DefaultAPIAddr         = "127.0.0.1:3100"
)
