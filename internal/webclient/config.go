package webclient

const (
	// DefaultUserAgent identifies the probe to filter appliances. It is
	// fixed so that appliances serving different pages per client are
	// probed consistently.
	DefaultUserAgent = "FilterSight/0.1 (+https://github.com/filtersight/filtersight)"

	// DefaultAccept favors HTML so block pages render their full text.
	DefaultAccept = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"

	// DefaultSnippetLimit caps how much of a GET body is kept for
	// signature matching.
	DefaultSnippetLimit = 8 << 10
)

// Config is the minimal configuration required for constructing a WebClient.
type Config struct {
	// Backend names the registered backend to construct, default "nethttp".
	Backend string

	// SnippetLimit is the maximum number of body bytes read on GET.
	// Zero means DefaultSnippetLimit.
	SnippetLimit int

	// UserAgent overrides DefaultUserAgent when non-empty.
	UserAgent string
}

func (c Config) snippetLimit() int {
	if c.SnippetLimit <= 0 {
		return DefaultSnippetLimit
	}
	return c.SnippetLimit
}

func (c Config) userAgent() string {
	if c.UserAgent == "" {
		return DefaultUserAgent
	}
	return c.UserAgent
}
