package webclient

import (
	"github.com/filtersight/filtersight/internal/logging"
)

// RegisterDefaultBackends registers the default nethttp backend. Call this
// early in main() (or test setup) to make it available to New. It is safe
// to call more than once.
func RegisterDefaultBackends() {
	RegisterBackend("nethttp", func(cfg Config, logger logging.Logger) (WebClient, error) {
		return NewNetHTTPClient(cfg, logger, nil)
	})
}
