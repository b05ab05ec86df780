package quillsign

import (
	"fmt"
	"math/big"

	"github.com/quillsign/quillsign-go/internal/prime"
)

// publicExponent is fixed at 65537. It is prime, so coprimality with phi
// fails only when 65537 divides p-1 or q-1.
const publicExponent = 65537

// PublicKey holds the verification half of an RSA key pair.
type PublicKey struct {
	N *big.Int // modulus
	E *big.Int // public exponent
}

// PrivateKey holds the signing half of an RSA key pair.
type PrivateKey struct {
	N *big.Int // modulus
	D *big.Int // private exponent
}

// KeyPair bundles both key halves together with the primes that produced
// them.
type KeyPair struct {
	Public  PublicKey
	Private PrivateKey

	// P and Q are retained so callers can audit the pair's arithmetic
	// invariants; signing and verification never touch them.
	P *big.Int
	Q *big.Int
}

// Size returns the modulus length in bytes.
func (k *PublicKey) Size() int {
	return (k.N.BitLen() + 7) / 8
}

// Size returns the modulus length in bytes.
func (k *PrivateKey) Size() int {
	return (k.N.BitLen() + 7) / 8
}

// GenerateKeyPair creates an RSA key pair whose modulus has exactly bits
// bits. Two distinct primes of bits/2 bits each are generated, e is fixed
// at 65537, and d is the modular inverse of e modulo (p-1)(q-1). If e and
// phi turn out to share a factor, both primes are redrawn; the restart loop
// is bounded and exhaustion is reported through ErrKeyGeneration.
func GenerateKeyPair(bits int, opts ...Option) (*KeyPair, error) {
	if bits < 16 || bits%2 != 0 {
		return nil, fmt.Errorf("%w: key size must be an even number of at least 16 bits, got %d",
			ErrKeyGeneration, bits)
	}
	cfg := newConfig(opts)

	e := big.NewInt(publicExponent)
	one := big.NewInt(1)

	for attempt := 0; attempt < cfg.maxKeyGenAttempts; attempt++ {
		p, err := prime.Generate(bits/2, cfg.millerRabinRounds, cfg.random)
		if err != nil {
			return nil, fmt.Errorf("%w: generate p: %v", ErrKeyGeneration, err)
		}

		var q *big.Int
		for {
			q, err = prime.Generate(bits/2, cfg.millerRabinRounds, cfg.random)
			if err != nil {
				return nil, fmt.Errorf("%w: generate q: %v", ErrKeyGeneration, err)
			}
			if q.Cmp(p) != 0 {
				break
			}
		}

		n := new(big.Int).Mul(p, q)
		// Two bits/2-bit primes multiply to bits or bits-1 bits; redraw
		// when the product comes up a bit short.
		if n.BitLen() != bits {
			continue
		}

		pMinus1 := new(big.Int).Sub(p, one)
		qMinus1 := new(big.Int).Sub(q, one)
		phi := new(big.Int).Mul(pMinus1, qMinus1)

		// 65537 divides p-1 or q-1: redraw both primes.
		if new(big.Int).GCD(nil, nil, e, phi).Cmp(one) != 0 {
			continue
		}
		d := new(big.Int).ModInverse(e, phi)
		if d == nil {
			continue
		}

		return &KeyPair{
			Public:  PublicKey{N: n, E: new(big.Int).Set(e)},
			Private: PrivateKey{N: n, D: d},
			P:       p,
			Q:       q,
		}, nil
	}
	return nil, fmt.Errorf("%w: e and phi shared a factor on all %d attempts",
		ErrKeyGeneration, cfg.maxKeyGenAttempts)
}
