package quillsign

import (
	"io"

	"github.com/quillsign/quillsign-go/internal/prime"
	"github.com/quillsign/quillsign-go/internal/randutil"
)

// DefaultKeyBits is the modulus size used when no other size is requested.
const DefaultKeyBits = 2048

// defaultMaxKeyGenAttempts bounds the full-restart loop taken when the
// prime product comes up a bit short (just under 40% of draws) or when e
// and phi share a factor (rare). Hitting this bound indicates a broken
// randomness source rather than bad luck.
const defaultMaxKeyGenAttempts = 32

// config holds the settings shared by key generation and signing.
type config struct {
	random            io.Reader
	millerRabinRounds int
	maxKeyGenAttempts int
}

// Option customizes key generation and signing.
type Option func(*config)

func newConfig(opts []Option) *config {
	cfg := &config{
		random:            randutil.Reader(),
		millerRabinRounds: prime.DefaultRounds,
		maxKeyGenAttempts: defaultMaxKeyGenAttempts,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRand sets the randomness source consumed by prime generation and
// OAEP seeding. A fixed-seed reader yields reproducible keys and
// signatures; use that for tests only.
func WithRand(r io.Reader) Option {
	return func(c *config) {
		c.random = r
	}
}

// WithMillerRabinRounds sets the primality test iteration count. The
// default of 40 bounds the false-positive probability by 4^-40.
func WithMillerRabinRounds(rounds int) Option {
	return func(c *config) {
		c.millerRabinRounds = rounds
	}
}
