package webclient

import "context"

// WebClient performs exactly one HTTP request per Do call. Implementations
// must never follow redirects: a 3xx response is returned as-is so the
// caller can decide whether to chase it.
type WebClient interface {
	Do(ctx context.Context, req *Request) (*Response, error)

	Close() error
}
