// Package testutil provides shared test doubles for use across package
// tests. All dummies implement the corresponding interfaces from the
// production code, allowing injection into components under test without
// real I/O or side effects.
package testutil

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/filtersight/filtersight/internal/logging"
	"github.com/filtersight/filtersight/internal/webclient"
)

// ─── Logger ────────────────────────────────────────────────────────────

// DummyLogger implements logging.Logger with in-memory recording.
type DummyLogger struct {
	mu     sync.Mutex
	Errors []string
	Infos  []string
	Debugs []string
	Warns  []string
}

func (l *DummyLogger) Debug(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Debugs = append(l.Debugs, msg)
}

func (l *DummyLogger) Info(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Infos = append(l.Infos, msg)
}

func (l *DummyLogger) Warn(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Warns = append(l.Warns, msg)
}

func (l *DummyLogger) Error(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Errors = append(l.Errors, msg)
}

func (l *DummyLogger) With(_ ...logging.Field) logging.Logger { return l }

// ─── WebClient ─────────────────────────────────────────────────────────

// ScriptedResponse is one canned answer for a ScriptedWebClient.
type ScriptedResponse struct {
	Status  int
	Headers http.Header
	Body    []byte
	Err     error

	// Delay postpones the answer; combined with a short caller deadline
	// it simulates a hop timeout.
	Delay time.Duration
}

// ScriptedWebClient implements webclient.WebClient from a script keyed by
// "METHOD url". Requests without a scripted answer fall back to Default;
// with no Default either, Do returns an error.
type ScriptedWebClient struct {
	Responses map[string]ScriptedResponse
	Default   *ScriptedResponse

	mu       sync.Mutex
	Requests []*webclient.Request
}

// Key builds the script key for a method/url pair.
func Key(method, url string) string { return method + " " + url }

func (c *ScriptedWebClient) Do(ctx context.Context, req *webclient.Request) (*webclient.Response, error) {
	c.mu.Lock()
	c.Requests = append(c.Requests, req)
	c.mu.Unlock()

	sr, ok := c.Responses[Key(req.Method, req.URL)]
	if !ok {
		if c.Default == nil {
			return nil, &errString{"no scripted response for " + Key(req.Method, req.URL)}
		}
		sr = *c.Default
	}

	if sr.Delay > 0 {
		select {
		case <-time.After(sr.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if sr.Err != nil {
		return nil, sr.Err
	}

	headers := sr.Headers
	if headers == nil {
		headers = http.Header{}
	}
	body := sr.Body
	if req.Method == http.MethodHead {
		body = nil
	}

	return &webclient.Response{
		Request:    req,
		StatusCode: sr.Status,
		Headers:    headers,
		Body:       body,
		Elapsed:    sr.Delay,
		FetchedAt:  time.Now(),
	}, nil
}

func (c *ScriptedWebClient) Close() error { return nil }

// RequestKeys returns the script keys of all recorded requests in order.
func (c *ScriptedWebClient) RequestKeys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.Requests))
	for _, r := range c.Requests {
		out = append(out, Key(r.Method, r.URL))
	}
	return out
}

// ─── helpers ───────────────────────────────────────────────────────────

type errString struct{ s string }

func (e *errString) Error() string { return e.s }
