package server

import (
	"github.com/filtersight/filtersight/internal/app"
	"github.com/filtersight/filtersight/internal/logging"
)

// Config configures the HTTP API surface.
type Config struct {
	// ListenAddr is the address passed to the http.Server, e.g. ":8080".
	ListenAddr string

	// AppConfig wires the internal modules. Nil means app.DefaultConfig().
	AppConfig *app.Config

	// Logger receives structured request/scan logs. Nil means stdout.
	Logger logging.Logger
}
