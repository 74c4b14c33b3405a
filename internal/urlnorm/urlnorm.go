// Package urlnorm turns free-form user input into a well-formed absolute
// URL suitable for probing, defaulting to the https scheme.
package urlnorm

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// ErrInvalidInput marks input that cannot be turned into a probe target:
// empty strings and anything that fails to parse as an absolute URL.
// Callers should match it with errors.Is.
var ErrInvalidInput = errors.New("invalid url")

// Normalize returns the canonical absolute form of raw.
//
// The result always starts with "http://" or "https://" and reparses as a
// valid URL: scheme and host are lowercased, IDN hosts are converted to
// punycode, default ports are elided, credentials and fragments dropped.
// Input without a scheme gets "https://" prepended.
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidInput)
	}

	if !hasHTTPScheme(raw) {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidInput)
	}

	u.Scheme = strings.ToLower(u.Scheme)

	// Lowercase host and convert IDN -> punycode
	host := strings.ToLower(u.Hostname())
	if puny, err := idna.Lookup.ToASCII(host); err == nil {
		host = puny
	}

	// Preserve non-default port only
	port := u.Port()
	switch {
	case (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443"):
		u.Host = host
	case port != "":
		u.Host = net.JoinHostPort(host, port)
	default:
		u.Host = host
	}

	// Drop userinfo (credentials) and fragment
	u.User = nil
	u.Fragment = ""

	if u.Path == "" {
		u.Path = "/"
	}

	return u.String(), nil
}

func hasHTTPScheme(raw string) bool {
	lower := strings.ToLower(raw)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
