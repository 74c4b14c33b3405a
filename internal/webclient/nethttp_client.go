package webclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/filtersight/filtersight/internal/logging"
)

// net/http backed implementation of WebClient.
type NetHTTPClient struct {
	cfg    Config
	client *http.Client
	logger logging.Logger
}

// NewNetHTTPClient builds a WebClient on top of httpClient. If httpClient
// is nil a default client is constructed. Either way the client is forced
// into manual-redirect mode; deadlines come from the per-request context.
func NewNetHTTPClient(cfg Config, logger logging.Logger, httpClient *http.Client) (*NetHTTPClient, error) {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	componentLogger := logger.With(logging.Field{Key: "component", Value: "webclient.nethttp"})

	if httpClient == nil {
		httpClient = &http.Client{}
	}
	httpClient.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		// prevent automatic redirects
		return http.ErrUseLastResponse
	}

	componentLogger.Info("created nethttp webclient",
		logging.Field{Key: "snippet_limit", Value: cfg.snippetLimit()})

	return &NetHTTPClient{
		cfg:    cfg,
		client: httpClient,
		logger: componentLogger,
	}, nil
}

// Do implements WebClient. It issues exactly one request: no redirects
// are followed and no retries are made. For GET the body is read up to
// the configured snippet limit; for HEAD it is never read.
func (nhc *NetHTTPClient) Do(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}

	method := strings.ToUpper(req.Method)
	start := time.Now()

	nhc.logger.Debug("sending http request",
		logging.Field{Key: "method", Value: method},
		logging.Field{Key: "url", Value: req.URL})

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("User-Agent", nhc.cfg.userAgent())
	httpReq.Header.Set("Accept", DefaultAccept)
	if req.Headers != nil {
		for k, vs := range req.Headers {
			for _, v := range vs {
				httpReq.Header.Add(k, v)
			}
		}
	}

	resp, err := nhc.client.Do(httpReq)
	if err != nil {
		nhc.logger.Warn("http request failed",
			logging.Field{Key: "method", Value: method},
			logging.Field{Key: "url", Value: req.URL},
			logging.Field{Key: "elapsed", Value: time.Since(start).String()},
			logging.Field{Key: "error", Value: err.Error()})
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close()

	var body []byte
	if method != http.MethodHead {
		body, err = io.ReadAll(io.LimitReader(resp.Body, int64(nhc.cfg.snippetLimit())))
		if err != nil {
			nhc.logger.Warn("failed to read response body",
				logging.Field{Key: "method", Value: method},
				logging.Field{Key: "url", Value: req.URL},
				logging.Field{Key: "error", Value: err.Error()})
			return nil, fmt.Errorf("read body: %w", err)
		}
	}

	return &Response{
		Request:    req,
		Body:       body,
		Headers:    resp.Header,
		StatusCode: resp.StatusCode,
		Elapsed:    time.Since(start),
		FetchedAt:  time.Now(),
	}, nil
}

func (nhc *NetHTTPClient) Close() error {
	nhc.logger.Debug("closing nethttp webclient")
	nhc.client.CloseIdleConnections()
	return nil
}

// HTTPClient returns the underlying *http.Client.
func (nhc *NetHTTPClient) HTTPClient() *http.Client {
	return nhc.client
}
