package webclient

import (
	"net/http"
	"time"
)

type Request struct {
	Method  string
	URL     string
	Headers http.Header
}

type Response struct {
	Request    *Request
	Headers    http.Header
	Body       []byte
	StatusCode int

	// Elapsed is the wall-clock time from request start to completion.
	Elapsed   time.Duration
	FetchedAt time.Time
}
