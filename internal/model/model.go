package model

import "time"

// Verdict classifies whether the probed target appears to be blocked by a
// content filter.
type Verdict string

const (
	VerdictLikelyBlocked Verdict = "likely_blocked"
	VerdictLikelyAllowed Verdict = "likely_allowed"
	VerdictUncertain     Verdict = "uncertain"
)

// HopAttempt is a single request performed during a probe. It is created by
// the prober, appended to the chain and never mutated afterwards.
type HopAttempt struct {
	URL    string `json:"url"`
	Method string `json:"method"`
	OK     bool   `json:"ok"`

	// Status is zero when the attempt failed before a response arrived.
	Status int   `json:"status,omitempty"`
	TimeMs int64 `json:"timeMs"`

	Location    string `json:"location,omitempty"`
	ContentType string `json:"contentType,omitempty"`

	// Snippet is the truncated response body, present only for GET
	// attempts. It feeds signature matching and is not serialized.
	Snippet string `json:"-"`

	Error      string `json:"error,omitempty"`
	ErrorClass string `json:"errorClass,omitempty"`
}

// Result is the final output for a single probed target.
type Result struct {
	ScanID string `json:"scanId"`

	// Input is the normalized form of the user-supplied URL.
	Input   string  `json:"input"`
	Verdict Verdict `json:"verdict"`
	Score   int     `json:"score"`

	// BlockVendor is nil when no filter signature was detected.
	BlockVendor *string `json:"blockVendor"`

	Chain []HopAttempt `json:"chain"`

	StartedAt  time.Time `json:"startedAt"`
	DurationMs int64     `json:"durationMs"`
}

// HopEventType discriminates the messages emitted on a probe event stream.
type HopEventType string

const (
	HopEventHop    HopEventType = "hop"
	HopEventResult HopEventType = "result"
)

// HopEvent is one message on a live probe stream: either a completed hop
// attempt or the final result.
type HopEvent struct {
	Type   HopEventType `json:"type"`
	Hop    *HopAttempt  `json:"hop,omitempty"`
	Result *Result      `json:"result,omitempty"`
}
