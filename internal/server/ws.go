package server

import (
	"net/http"

	"github.com/filtersight/filtersight/internal/logging"
	"github.com/filtersight/filtersight/internal/model"
)

// handleScanWS streams a probe over a WebSocket: one JSON message per
// completed hop attempt, then the final result. The target URL comes from
// the "url" query parameter.
//
//	@Summary	Probe a URL with live hop streaming
//	@Param		url	query	string	true	"URL to scan"
//	@Success	101
//	@Failure	400	{object}	map[string]string
//	@Router		/ws/scan [get]
func (s *Server) handleScanWS(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		writeError(w, http.StatusBadRequest, "missing url query parameter")
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", logging.Field{Key: "error", Value: err.Error()})
		return
	}
	defer conn.Close()

	// Buffer covers the longest possible chain plus the result event, so
	// the prober's non-blocking sends never drop under a healthy reader.
	events := make(chan model.HopEvent, 16)

	var probeErr error
	go func() {
		defer close(events)
		_, probeErr = s.prober.ProbeStream(r.Context(), rawURL, events)
	}()

	for ev := range events {
		if err := conn.WriteJSON(ev); err != nil {
			s.logger.Debug("websocket write failed", logging.Field{Key: "error", Value: err.Error()})
			break
		}
	}
	for range events {
		// drain until close so the probe goroutine has finished
	}

	// Channel close happens-after ProbeStream returns, so probeErr is safe
	// to read here.
	if probeErr != nil {
		_ = conn.WriteJSON(map[string]string{"type": "error", "error": probeErr.Error()})
	}
}
