package server

import "github.com/filtersight/filtersight/internal/model"

// scanRequest is the body of POST /api/scan.
type scanRequest struct {
	URL string `json:"url" example:"example.com"`
}

// hopSummary is one chain entry as exposed over the API. The body snippet
// stays internal; everything else mirrors model.HopAttempt.
type hopSummary struct {
	URL         string `json:"url"`
	Method      string `json:"method"`
	OK          bool   `json:"ok"`
	Status      int    `json:"status,omitempty"`
	TimeMs      int64  `json:"timeMs"`
	Location    string `json:"location,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	Error       string `json:"error,omitempty"`
	ErrorClass  string `json:"errorClass,omitempty"`
}

// scanResponse is the successful response of POST /api/scan.
type scanResponse struct {
	ScanID      string        `json:"scanId"`
	Input       string        `json:"input"`
	Verdict     model.Verdict `json:"verdict"`
	Score       int           `json:"score"`
	BlockVendor *string       `json:"blockVendor"`
	DurationMs  int64         `json:"durationMs"`
	Chain       []hopSummary  `json:"chain"`
}

func newScanResponse(res *model.Result) scanResponse {
	chain := make([]hopSummary, 0, len(res.Chain))
	for _, att := range res.Chain {
		chain = append(chain, hopSummary{
			URL:         att.URL,
			Method:      att.Method,
			OK:          att.OK,
			Status:      att.Status,
			TimeMs:      att.TimeMs,
			Location:    att.Location,
			ContentType: att.ContentType,
			Error:       att.Error,
			ErrorClass:  att.ErrorClass,
		})
	}
	return scanResponse{
		ScanID:      res.ScanID,
		Input:       res.Input,
		Verdict:     res.Verdict,
		Score:       res.Score,
		BlockVendor: res.BlockVendor,
		DurationMs:  res.DurationMs,
		Chain:       chain,
	}
}
