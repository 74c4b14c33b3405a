// Package probe drives the bounded redirect chase against a target URL and
// turns the resulting attempt chain into a block/allow verdict.
package probe

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rbmk-project/common/errclass"

	"github.com/filtersight/filtersight/internal/detect"
	"github.com/filtersight/filtersight/internal/logging"
	"github.com/filtersight/filtersight/internal/model"
	"github.com/filtersight/filtersight/internal/urlnorm"
	"github.com/filtersight/filtersight/internal/webclient"
)

// Verdict confidence scores.
const (
	scoreVendorDetected = 90
	scoreAllowed        = 80
	scoreForbidden      = 75
	scoreTransportFail  = 45
	scoreDefault        = 50
)

var redirectStatuses = map[int]bool{
	http.StatusMovedPermanently:  true, // 301
	http.StatusFound:             true, // 302
	http.StatusSeeOther:          true, // 303
	http.StatusTemporaryRedirect: true, // 307
	http.StatusPermanentRedirect: true, // 308
}

// Prober probes one target at a time: normalize, chase redirects hop by
// hop with HEAD, fall back to GET on the terminal hop when the HEAD
// response is unusable, then score the chain.
type Prober struct {
	cfg    Config
	wc     webclient.WebClient
	logger logging.Logger
}

// New creates a Prober on top of wc.
func New(cfg Config, wc webclient.WebClient, logger logging.Logger) *Prober {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Prober{
		cfg:    cfg,
		wc:     wc,
		logger: logger.With(logging.Field{Key: "component", Value: "probe"}),
	}
}

// Probe runs a full probe of raw. The only error it returns is invalid
// input from normalization; every mid-probe failure is recorded in-band on
// the chain instead.
func (p *Prober) Probe(ctx context.Context, raw string) (*model.Result, error) {
	return p.ProbeStream(ctx, raw, nil)
}

// ProbeStream is Probe with a live event feed: one event per completed
// attempt plus a final result event. Sends are non-blocking; slow
// consumers lose events, never stall the probe. events may be nil.
func (p *Prober) ProbeStream(ctx context.Context, raw string, events chan<- model.HopEvent) (*model.Result, error) {
	normalized, err := urlnorm.Normalize(raw)
	if err != nil {
		return nil, err
	}

	res := &model.Result{
		ScanID:    uuid.NewString(),
		Input:     normalized,
		StartedAt: time.Now(),
	}
	logger := p.logger.With(logging.Field{Key: "scan_id", Value: res.ScanID})
	logger.Info("probe started", logging.Field{Key: "target", Value: normalized})

	current := normalized
	for hop := 0; hop < p.cfg.hopLimit(); hop++ {
		head := p.attempt(ctx, current, http.MethodHead)
		res.Chain = append(res.Chain, head)
		emit(events, model.HopEvent{Type: model.HopEventHop, Hop: &head})

		if next, ok := redirectTarget(&head, current); ok {
			logger.Debug("chasing redirect",
				logging.Field{Key: "hop", Value: hop},
				logging.Field{Key: "status", Value: head.Status},
				logging.Field{Key: "next", Value: next})
			current = next
			continue
		}

		// Terminal hop. A HEAD that failed, errored at the HTTP level
		// or carries no Content-Type tells us nothing about the page,
		// so probe the body with a GET.
		if needsBodyProbe(&head) {
			get := p.attempt(ctx, current, http.MethodGet)
			res.Chain = append(res.Chain, get)
			emit(events, model.HopEvent{Type: model.HopEventHop, Hop: &get})
		}
		break
	}

	verdict, score, vendor := Evaluate(res.Chain)
	res.Verdict = verdict
	res.Score = score
	res.BlockVendor = vendor
	res.DurationMs = time.Since(res.StartedAt).Milliseconds()

	logger.Info("probe finished",
		logging.Field{Key: "verdict", Value: string(res.Verdict)},
		logging.Field{Key: "score", Value: res.Score},
		logging.Field{Key: "hops", Value: len(res.Chain)},
		logging.Field{Key: "duration_ms", Value: res.DurationMs})

	emit(events, model.HopEvent{Type: model.HopEventResult, Result: res})
	return res, nil
}

// attempt issues a single HEAD or GET with its own deadline. The timeout
// scope is released on every exit path. Failures come back as non-OK
// attempts, never as errors.
func (p *Prober) attempt(ctx context.Context, target, method string) model.HopAttempt {
	hopCtx, cancel := context.WithTimeout(ctx, p.cfg.hopTimeout())
	defer cancel()

	start := time.Now()
	resp, err := p.wc.Do(hopCtx, &webclient.Request{Method: method, URL: target})
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		return model.HopAttempt{
			URL:        target,
			Method:     method,
			TimeMs:     elapsed,
			Error:      err.Error(),
			ErrorClass: errclass.New(err),
		}
	}

	att := model.HopAttempt{
		URL:         target,
		Method:      method,
		OK:          true,
		Status:      resp.StatusCode,
		TimeMs:      elapsed,
		Location:    resp.Headers.Get("Location"),
		ContentType: resp.Headers.Get("Content-Type"),
	}
	if method == http.MethodGet {
		att.Snippet = string(resp.Body)
	}
	return att
}

// redirectTarget reports whether att is a chaseable redirect and, if so,
// the absolute next target. A malformed Location is treated as "no usable
// redirect" and falls through to the terminal branch.
func redirectTarget(att *model.HopAttempt, base string) (string, bool) {
	if !att.OK || !redirectStatuses[att.Status] || att.Location == "" {
		return "", false
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return "", false
	}
	loc, err := url.Parse(att.Location)
	if err != nil {
		return "", false
	}

	resolved := baseURL.ResolveReference(loc)
	if resolved.Host == "" || (resolved.Scheme != "http" && resolved.Scheme != "https") {
		return "", false
	}
	return resolved.String(), true
}

// needsBodyProbe reports whether the terminal HEAD response is too
// ambiguous to score on its own.
func needsBodyProbe(att *model.HopAttempt) bool {
	return !att.OK || att.Status >= 400 || att.ContentType == ""
}

// Evaluate derives the verdict from a finished chain. It is a pure
// function of the chain: recomputing it yields identical output.
//
// The attempt that counts is the most recent GET when one exists, else the
// final entry; the signature detector only ever sees GET bodies.
func Evaluate(chain []model.HopAttempt) (model.Verdict, int, *string) {
	if len(chain) == 0 {
		return model.VerdictUncertain, scoreTransportFail, nil
	}

	last := chain[len(chain)-1]
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].Method == http.MethodGet {
			last = chain[i]
			break
		}
	}

	if vendor, found := detect.Vendor(last.Snippet); found {
		return model.VerdictLikelyBlocked, scoreVendorDetected, &vendor
	}

	switch {
	case last.OK && last.Status >= 200 && last.Status < 400:
		return model.VerdictLikelyAllowed, scoreAllowed, nil
	case last.OK && last.Status == http.StatusForbidden:
		return model.VerdictLikelyBlocked, scoreForbidden, nil
	case !last.OK:
		return model.VerdictUncertain, scoreTransportFail, nil
	default:
		return model.VerdictUncertain, scoreDefault, nil
	}
}

func emit(events chan<- model.HopEvent, ev model.HopEvent) {
	if events == nil {
		return
	}
	// Non-blocking send; drop if buffer is full.
	select {
	case events <- ev:
	default:
	}
}
