package probe_test

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/rbmk-project/common/errclass"

	"github.com/filtersight/filtersight/internal/model"
	"github.com/filtersight/filtersight/internal/probe"
	"github.com/filtersight/filtersight/internal/testutil"
	"github.com/filtersight/filtersight/internal/urlnorm"
)

func htmlHeaders() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "text/html")
	return h
}

func redirectHeaders(location string) http.Header {
	h := http.Header{}
	h.Set("Location", location)
	return h
}

func newProber(wc *testutil.ScriptedWebClient) *probe.Prober {
	return probe.New(probe.Config{}, wc, &testutil.DummyLogger{})
}

// ─── Terminal hops ─────────────────────────────────────────────────────

func TestProbe_CleanTargetIsLikelyAllowed(t *testing.T) {
	t.Parallel()
	wc := &testutil.ScriptedWebClient{
		Responses: map[string]testutil.ScriptedResponse{
			"HEAD https://example.test/": {Status: 200, Headers: htmlHeaders()},
		},
	}

	res, err := newProber(wc).Probe(context.Background(), "example.test")
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}

	if res.Input != "https://example.test/" {
		t.Errorf("expected normalized input, got %q", res.Input)
	}
	if res.ScanID == "" {
		t.Error("expected a scan ID")
	}
	if len(res.Chain) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(res.Chain))
	}
	if res.Verdict != model.VerdictLikelyAllowed || res.Score != 80 {
		t.Errorf("expected likely_allowed/80, got %s/%d", res.Verdict, res.Score)
	}
	if res.BlockVendor != nil {
		t.Errorf("expected nil vendor, got %q", *res.BlockVendor)
	}
}

func TestProbe_Forbidden403WithoutSignature(t *testing.T) {
	t.Parallel()
	wc := &testutil.ScriptedWebClient{
		Responses: map[string]testutil.ScriptedResponse{
			"HEAD https://example.test/": {Status: 403, Headers: htmlHeaders()},
			"GET https://example.test/":  {Status: 403, Headers: htmlHeaders(), Body: []byte("<h1>Forbidden</h1>")},
		},
	}

	res, err := newProber(wc).Probe(context.Background(), "https://example.test")
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}

	want := []string{"HEAD https://example.test/", "GET https://example.test/"}
	if got := wc.RequestKeys(); !reflect.DeepEqual(got, want) {
		t.Errorf("request order %v, want %v", got, want)
	}
	if res.Verdict != model.VerdictLikelyBlocked || res.Score != 75 {
		t.Errorf("expected likely_blocked/75, got %s/%d", res.Verdict, res.Score)
	}
	if res.BlockVendor != nil {
		t.Errorf("expected nil vendor, got %q", *res.BlockVendor)
	}
}

func TestProbe_VendorSignatureWinsRegardlessOfStatus(t *testing.T) {
	t.Parallel()
	wc := &testutil.ScriptedWebClient{
		Responses: map[string]testutil.ScriptedResponse{
			"HEAD https://example.test/": {Status: 503, Headers: htmlHeaders()},
			"GET https://example.test/":  {Status: 503, Headers: htmlHeaders(), Body: []byte("<html>This site is Blocked By GoGuardian</html>")},
		},
	}

	res, err := newProber(wc).Probe(context.Background(), "example.test")
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}

	if res.Verdict != model.VerdictLikelyBlocked || res.Score != 90 {
		t.Errorf("expected likely_blocked/90, got %s/%d", res.Verdict, res.Score)
	}
	if res.BlockVendor == nil || *res.BlockVendor != "GoGuardian" {
		t.Errorf("expected GoGuardian, got %v", res.BlockVendor)
	}
}

func TestProbe_AmbiguousHEADTriggersGET(t *testing.T) {
	t.Parallel()
	// HEAD succeeds but carries no Content-Type.
	wc := &testutil.ScriptedWebClient{
		Responses: map[string]testutil.ScriptedResponse{
			"HEAD https://example.test/": {Status: 200},
			"GET https://example.test/":  {Status: 200, Headers: htmlHeaders(), Body: []byte("hello")},
		},
	}

	res, err := newProber(wc).Probe(context.Background(), "example.test")
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}

	if len(res.Chain) != 2 {
		t.Fatalf("expected HEAD then GET, got %d attempts", len(res.Chain))
	}
	if res.Chain[1].Method != http.MethodGet {
		t.Errorf("expected a GET fallback, got %s", res.Chain[1].Method)
	}
	if res.Verdict != model.VerdictLikelyAllowed {
		t.Errorf("expected likely_allowed, got %s", res.Verdict)
	}
}

// ─── Redirect chasing ──────────────────────────────────────────────────

func TestProbe_ChasesRelativeRedirect(t *testing.T) {
	t.Parallel()
	wc := &testutil.ScriptedWebClient{
		Responses: map[string]testutil.ScriptedResponse{
			"HEAD https://example.test/":      {Status: 302, Headers: redirectHeaders("/login")},
			"HEAD https://example.test/login": {Status: 200, Headers: htmlHeaders()},
		},
	}

	res, err := newProber(wc).Probe(context.Background(), "example.test")
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}

	if len(res.Chain) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(res.Chain))
	}
	if res.Chain[1].URL != "https://example.test/login" {
		t.Errorf("expected the relative Location resolved, got %q", res.Chain[1].URL)
	}
	if res.Verdict != model.VerdictLikelyAllowed {
		t.Errorf("expected likely_allowed, got %s", res.Verdict)
	}
}

func TestProbe_IntermediateRedirectWithoutContentTypeNeverGETs(t *testing.T) {
	t.Parallel()
	// The redirect hop is ambiguous (no Content-Type) but only the
	// terminal hop may trigger the GET fallback.
	wc := &testutil.ScriptedWebClient{
		Responses: map[string]testutil.ScriptedResponse{
			"HEAD https://example.test/":      {Status: 301, Headers: redirectHeaders("https://example.test/home")},
			"HEAD https://example.test/home":  {Status: 200, Headers: htmlHeaders()},
		},
	}

	res, err := newProber(wc).Probe(context.Background(), "example.test")
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}

	for _, att := range res.Chain {
		if att.Method == http.MethodGet {
			t.Errorf("unexpected GET against %s", att.URL)
		}
	}
	if len(res.Chain) != 2 {
		t.Errorf("expected 2 HEAD attempts, got %d", len(res.Chain))
	}
}

func TestProbe_HopLimitBoundsRedirectLoop(t *testing.T) {
	t.Parallel()
	wc := &testutil.ScriptedWebClient{
		Responses: map[string]testutil.ScriptedResponse{
			"HEAD https://example.test/loop": {Status: 302, Headers: redirectHeaders("/loop")},
		},
	}

	res, err := newProber(wc).Probe(context.Background(), "https://example.test/loop")
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}

	if len(res.Chain) != probe.DefaultHopLimit {
		t.Fatalf("expected exactly %d HEAD attempts, got %d", probe.DefaultHopLimit, len(res.Chain))
	}
	for _, att := range res.Chain {
		if att.Method != http.MethodHead {
			t.Errorf("expected only HEAD attempts, got %s", att.Method)
		}
	}
}

func TestProbe_MalformedLocationIsTerminal(t *testing.T) {
	t.Parallel()
	wc := &testutil.ScriptedWebClient{
		Responses: map[string]testutil.ScriptedResponse{
			"HEAD https://example.test/": {Status: 302, Headers: redirectHeaders("ht tp://%%broken")},
		},
	}

	res, err := newProber(wc).Probe(context.Background(), "example.test")
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}

	// No usable redirect: one terminal hop. The 302 HEAD carries no
	// Content-Type either, so the body probe still runs.
	if len(res.Chain) != 2 {
		t.Fatalf("expected HEAD then GET fallback, got %d attempts", len(res.Chain))
	}
	if res.Chain[0].Method != http.MethodHead || res.Chain[1].Method != http.MethodGet {
		t.Errorf("unexpected methods %s, %s", res.Chain[0].Method, res.Chain[1].Method)
	}
}

// ─── Failures ──────────────────────────────────────────────────────────

func TestProbe_TimeoutOnBothAttemptsIsUncertain(t *testing.T) {
	t.Parallel()
	wc := &testutil.ScriptedWebClient{
		Default: &testutil.ScriptedResponse{Delay: time.Second},
	}

	prober := probe.New(probe.Config{HopTimeout: 20 * time.Millisecond}, wc, &testutil.DummyLogger{})

	res, err := prober.Probe(context.Background(), "example.test")
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}

	if len(res.Chain) != 2 {
		t.Fatalf("expected 2 failed attempts, got %d", len(res.Chain))
	}
	for _, att := range res.Chain {
		if att.OK {
			t.Errorf("expected a failed attempt for %s %s", att.Method, att.URL)
		}
		if att.Error == "" {
			t.Error("expected an error description")
		}
		if att.ErrorClass != errclass.ETIMEDOUT {
			t.Errorf("expected %s, got %q", errclass.ETIMEDOUT, att.ErrorClass)
		}
	}
	if res.Verdict != model.VerdictUncertain || res.Score != 45 {
		t.Errorf("expected uncertain/45, got %s/%d", res.Verdict, res.Score)
	}
	if res.BlockVendor != nil {
		t.Errorf("expected nil vendor, got %q", *res.BlockVendor)
	}
}

func TestProbe_InvalidInputProducesNoChain(t *testing.T) {
	t.Parallel()
	wc := &testutil.ScriptedWebClient{}

	res, err := newProber(wc).Probe(context.Background(), "   ")
	if !errors.Is(err, urlnorm.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if res != nil {
		t.Errorf("expected no result, got %+v", res)
	}
	if len(wc.Requests) != 0 {
		t.Errorf("expected no network calls, got %d", len(wc.Requests))
	}
}

// ─── Verdict function ──────────────────────────────────────────────────

func TestEvaluate_Deterministic(t *testing.T) {
	t.Parallel()
	chain := []model.HopAttempt{
		{URL: "https://a.test/", Method: "HEAD", OK: true, Status: 302, Location: "/b"},
		{URL: "https://a.test/b", Method: "HEAD", OK: true, Status: 403, ContentType: "text/html"},
		{URL: "https://a.test/b", Method: "GET", OK: true, Status: 403, ContentType: "text/html", Snippet: "denied by securly"},
	}

	v1, s1, ven1 := probe.Evaluate(chain)
	for i := 0; i < 10; i++ {
		v2, s2, ven2 := probe.Evaluate(chain)
		if v1 != v2 || s1 != s2 {
			t.Fatalf("verdict changed between runs: %s/%d vs %s/%d", v1, s1, v2, s2)
		}
		if (ven1 == nil) != (ven2 == nil) || (ven1 != nil && *ven1 != *ven2) {
			t.Fatal("vendor changed between runs")
		}
	}
	if v1 != model.VerdictLikelyBlocked || s1 != 90 {
		t.Errorf("expected likely_blocked/90, got %s/%d", v1, s1)
	}
}

func TestEvaluate_UsesMostRecentGET(t *testing.T) {
	t.Parallel()
	// The final entry is a failed HEAD, but an earlier GET exists and
	// takes precedence for scoring.
	chain := []model.HopAttempt{
		{URL: "https://a.test/", Method: "GET", OK: true, Status: 200, ContentType: "text/html", Snippet: "all fine"},
		{URL: "https://a.test/", Method: "HEAD", Error: "boom"},
	}

	v, s, _ := probe.Evaluate(chain)
	if v != model.VerdictLikelyAllowed || s != 80 {
		t.Errorf("expected likely_allowed/80 from the GET, got %s/%d", v, s)
	}
}

func TestEvaluate_EmptyChain(t *testing.T) {
	t.Parallel()
	v, s, vendor := probe.Evaluate(nil)
	if v != model.VerdictUncertain || s != 45 || vendor != nil {
		t.Errorf("expected uncertain/45/nil, got %s/%d/%v", v, s, vendor)
	}
}
