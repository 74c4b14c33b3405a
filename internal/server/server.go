package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/filtersight/filtersight/docs/swagger" // swagger spec registration

	"github.com/filtersight/filtersight/internal/app"
	"github.com/filtersight/filtersight/internal/logging"
	"github.com/filtersight/filtersight/internal/probe"
	"github.com/filtersight/filtersight/internal/urlnorm"
	"github.com/filtersight/filtersight/internal/webclient"
)

// Server is the HTTP + WebSocket API surface for FilterSight.
type Server struct {
	cfg      Config
	prober   *probe.Prober
	wc       webclient.WebClient
	router   chi.Router
	upgrader websocket.Upgrader
	logger   logging.Logger
}

// NewServer creates a new Server with its own WebClient and Prober.
func NewServer(cfg Config) (*Server, error) {
	if cfg.AppConfig == nil {
		cfg.AppConfig = app.DefaultConfig()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewStdoutLogger("Server")
	}

	webclient.RegisterDefaultBackends()
	wc, err := webclient.New(cfg.AppConfig.WebClientCfg, logger)
	if err != nil {
		return nil, err
	}

	prober := probe.New(cfg.AppConfig.ProbeCfg, wc, logger)

	r := chi.NewRouter()
	s := &Server{
		cfg:    cfg,
		prober: prober,
		wc:     wc,
		router: r,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// TODO: tighten for production
				return true
			},
		},
	}

	s.routes()
	return s, nil
}

// Prober returns the underlying prober for advanced use (tests, etc.).
func (s *Server) Prober() *probe.Prober {
	return s.prober
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.corsMiddleware)

	// CORS preflight
	r.Options("/api/scan", s.optionsHandler("POST"))
	r.Options("/api/health", s.optionsHandler("GET"))

	r.Post("/api/scan", s.handleScan)
	r.Get("/api/health", s.handleHealth)

	// WebSocket for live hop streaming
	r.Get("/ws/scan", s.handleScanWS)

	// Interactive API docs
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Frontend assets
	if dir := s.cfg.AppConfig.StaticDir; dir != "" {
		if _, err := os.Stat(dir); err == nil {
			r.Handle("/*", http.FileServer(http.Dir(dir)))
		} else {
			s.logger.Warn("static dir not found, static hosting disabled",
				logging.Field{Key: "dir", Value: dir})
		}
	}
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) optionsHandler(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", methods)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.logger.Info("http_request",
		logging.Field{Key: "method", Value: r.Method},
		logging.Field{Key: "path", Value: r.URL.Path})

	s.router.ServeHTTP(w, r)
}

// Close shuts down the underlying resources.
func (s *Server) Close() {
	if s.wc != nil {
		_ = s.wc.Close()
	}
}

// HTTPServer creates an *http.Server ready to ListenAndServe. Write
// timeout stays generous: a worst-case probe holds the handler for
// hop limit x hop timeout.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:        s.cfg.ListenAddr,
		Handler:     s,
		ReadTimeout: 15 * time.Second,
	}
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// --- HTTP handlers ---

// handleScan probes the submitted URL.
//
//	@Summary	Probe a URL for content-filter blocking
//	@Accept		json
//	@Produce	json
//	@Param		request	body	server.scanRequest	true	"URL to scan"
//	@Success	200	{object}	server.scanResponse
//	@Failure	400	{object}	map[string]string
//	@Router		/api/scan [post]
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	// A failing probe must never take the service down with it.
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("scan handler panicked", logging.Field{Key: "panic", Value: rec})
			writeError(w, http.StatusBadRequest, "scan failed")
		}
	}()

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.AppConfig.MaxScanBodyBytes)

	var body scanRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.Warn("decoding scan body", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	res, err := s.prober.Probe(r.Context(), body.URL)
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, urlnorm.ErrInvalidInput) {
			s.logger.Warn("probe failed", logging.Field{Key: "error", Value: err.Error()})
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, newScanResponse(res))
}

// handleHealth reports liveness.
//
//	@Summary	Liveness check
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/api/health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
