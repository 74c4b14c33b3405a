package demoserver

import "time"

// Config holds configuration for the demo target server.
type Config struct {
	// Port is the port on which the demo server listens.
	Port int

	// SlowDelay is how long the /slow endpoint stalls before answering.
	// It should exceed the prober's hop timeout.
	SlowDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Port:      9999,
		SlowDelay: 10 * time.Second,
	}
}
