package app

import (
	"github.com/filtersight/filtersight/internal/probe"
	"github.com/filtersight/filtersight/internal/webclient"
)

// Config aggregates the runtime configuration of the internal modules.
type Config struct {
	// WebClient configuration
	WebClientCfg webclient.Config

	// Prober configuration
	ProbeCfg probe.Config

	// StaticDir is the directory served at the site root. Empty disables
	// static hosting.
	StaticDir string

	// MaxScanBodyBytes caps the /api/scan request body.
	MaxScanBodyBytes int64
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		WebClientCfg: webclient.Config{
			Backend: "nethttp",
		},
		ProbeCfg: probe.Config{
			HopLimit:   probe.DefaultHopLimit,
			HopTimeout: probe.DefaultHopTimeout,
		},
		StaticDir:        "static",
		MaxScanBodyBytes: 64 << 10,
	}
}
