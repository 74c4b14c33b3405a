package demoserver

import (
	"fmt"
	"net/http"
	"time"
)

// DemoServer simulates probe targets: block pages, redirect chains and
// misbehaving endpoints. It exists for exercising the prober end to end
// against known responses.
type DemoServer struct {
	cfg   Config
	pages map[string]PageDefinition
}

// NewDemoServer creates a new demo server instance.
func NewDemoServer(cfg Config) *DemoServer {
	pageMap := make(map[string]PageDefinition)
	for _, p := range GetAllPages() {
		pageMap[p.Path] = p
	}

	return &DemoServer{
		cfg:   cfg,
		pages: pageMap,
	}
}

// Handler returns the demo server's routing mux.
func (s *DemoServer) Handler() http.Handler {
	mux := http.NewServeMux()

	for path := range s.pages {
		p := path // capture for closure
		mux.HandleFunc(p, s.pageHandler(p))
	}

	// Redirect scenarios
	mux.HandleFunc("/redirect/chain", s.redirectHandler("/redirect/chain2"))
	mux.HandleFunc("/redirect/chain2", s.redirectHandler("/final"))
	mux.HandleFunc("/redirect/loop", s.loopHandler)
	mux.HandleFunc("/redirect/broken", s.brokenLocationHandler)

	// A HEAD here answers 200 without a Content-Type, which forces the
	// prober into its GET fallback.
	mux.HandleFunc("/noct", s.noContentTypeHandler)

	mux.HandleFunc("/slow", s.slowHandler)

	return mux
}

// Start starts the demo server.
func (s *DemoServer) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	fmt.Printf("Demo server starting on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// pageHandler returns a handler for a specific page path.
func (s *DemoServer) pageHandler(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := s.pages[path]
		if !ok || (path == "/" && r.URL.Path != "/") {
			http.NotFound(w, r)
			return
		}

		for k, v := range page.Headers {
			w.Header().Set(k, v)
		}

		contentType := page.ContentType
		if contentType == "" {
			contentType = "text/html"
		}
		w.Header().Set("Content-Type", contentType)

		status := page.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)

		if r.Method != http.MethodHead {
			_, _ = w.Write([]byte(page.HTML))
		}
	}
}

func (s *DemoServer) redirectHandler(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusFound)
	}
}

// loopHandler always redirects back to itself; probes against it exercise
// the hop limit.
func (s *DemoServer) loopHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/redirect/loop", http.StatusFound)
}

// brokenLocationHandler answers a 302 whose Location cannot be resolved.
func (s *DemoServer) brokenLocationHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Location", "ht tp://%%broken")
	w.WriteHeader(http.StatusFound)
}

func (s *DemoServer) noContentTypeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		// No body write, so net/http adds no Content-Type.
		w.WriteHeader(http.StatusOK)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	_, _ = w.Write([]byte(`<html><body><p>Only GET carries a content type here.</p></body></html>`))
}

func (s *DemoServer) slowHandler(w http.ResponseWriter, r *http.Request) {
	select {
	case <-time.After(s.cfg.SlowDelay):
	case <-r.Context().Done():
		return
	}
	_, _ = w.Write([]byte(`<html><body><p>Finally.</p></body></html>`))
}
