// Package prime provides probabilistic primality testing and prime
// generation for RSA key material.
package prime

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// DefaultRounds is the Miller-Rabin iteration count used for key material.
// A composite survives one round with probability at most 1/4, so the
// overall false-positive bound is 4^-40.
const DefaultRounds = 40

// maxAttemptsPerBit scales the candidate cap in Generate. By the prime
// density heuristic a forced-odd bits-bit value is prime with probability
// about 2/(bits * ln 2), so the cap leaves a wide margin.
const maxAttemptsPerBit = 64

// ErrRetriesExhausted is returned when Generate runs out of candidates,
// which in practice means the randomness source is broken.
var ErrRetriesExhausted = errors.New("prime generation retries exhausted")

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// IsProbablePrime reports whether n is prime using rounds iterations of the
// Miller-Rabin test with witnesses drawn from random. A true result is
// wrong with probability at most 4^-rounds; a false result is always
// correct. A failing randomness source makes the test conservatively
// report composite.
func IsProbablePrime(n *big.Int, rounds int, random io.Reader) bool {
	if n.Cmp(two) == 0 || n.Cmp(three) == 0 {
		return true
	}
	if n.Cmp(one) <= 0 || n.Bit(0) == 0 {
		return false
	}

	// n-1 = 2^r * d with d odd.
	nMinus1 := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinus1)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	x := new(big.Int)
	witnessRange := new(big.Int).Sub(n, three)
	for i := 0; i < rounds; i++ {
		// Witness a uniform in [2, n-2].
		a, err := rand.Int(random, witnessRange)
		if err != nil {
			return false
		}
		a.Add(a, two)

		x.Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}

		composite := true
		for j := 0; j < r-1; j++ {
			x.Mul(x, x).Mod(x, n)
			if x.Cmp(nMinus1) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}

// Generate returns a prime of exactly bits bits, drawn from random. The top
// and bottom bits of each candidate are forced so candidates have the exact
// bit length and are odd. The candidate loop is bounded; exhausting it
// returns ErrRetriesExhausted.
func Generate(bits, rounds int, random io.Reader) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("prime size must be at least 2 bits, got %d", bits)
	}

	buf := make([]byte, (bits+7)/8)
	excess := uint(len(buf)*8 - bits)
	maxAttempts := bits * maxAttemptsPerBit

	p := new(big.Int)
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, fmt.Errorf("read prime candidate: %w", err)
		}
		p.SetBytes(buf)
		p.Rsh(p, excess)
		p.SetBit(p, bits-1, 1)
		p.SetBit(p, 0, 1)

		if IsProbablePrime(p, rounds, random) && p.BitLen() == bits {
			return new(big.Int).Set(p), nil
		}
	}
	return nil, fmt.Errorf("%w: no %d-bit prime in %d candidates", ErrRetriesExhausted, bits, maxAttempts)
}
