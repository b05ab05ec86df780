// Package randutil supplies the randomness source used for key generation
// and OAEP seeding.
package randutil

import (
	cryptorand "crypto/rand"
	"io"
	mathrand "math/rand"
	"sync"
	"time"
)

// Reader returns a source that serves bytes from crypto/rand and degrades
// to a time-seeded pseudorandom stream only if the secure source fails.
// The fallback is an accepted weakening carried over from the scheme this
// package interoperates with; callers that must not tolerate it should
// inject their own reader. The returned reader is safe for concurrent use.
func Reader() io.Reader {
	return &fallbackReader{}
}

type fallbackReader struct {
	mu       sync.Mutex
	fallback *mathrand.Rand
}

func (r *fallbackReader) Read(p []byte) (int, error) {
	if n, err := io.ReadFull(cryptorand.Reader, p); err == nil {
		return n, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fallback == nil {
		r.fallback = mathrand.New(mathrand.NewSource(time.Now().UnixNano()))
	}
	return r.fallback.Read(p)
}
