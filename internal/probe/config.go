package probe

import "time"

const (
	// DefaultHopLimit bounds the redirect chase. Together with the hop
	// timeout it is the sole bound on worst-case probe latency.
	DefaultHopLimit = 6

	// DefaultHopTimeout is the deadline for a single HEAD or GET attempt.
	DefaultHopTimeout = 7500 * time.Millisecond
)

// Config controls a Prober.
type Config struct {
	// HopLimit is the maximum number of redirect hops followed per probe.
	// Zero or negative means DefaultHopLimit.
	HopLimit int

	// HopTimeout is the per-attempt deadline. Zero means DefaultHopTimeout.
	HopTimeout time.Duration
}

func (c Config) hopLimit() int {
	if c.HopLimit <= 0 {
		return DefaultHopLimit
	}
	return c.HopLimit
}

func (c Config) hopTimeout() time.Duration {
	if c.HopTimeout <= 0 {
		return DefaultHopTimeout
	}
	return c.HopTimeout
}
