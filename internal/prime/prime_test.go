package prime

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestIsProbablePrimeKnownPrimes(t *testing.T) {
	rng := testRand()
	for _, p := range []int64{2, 3, 5, 7, 97, 7919, 104729} {
		if !IsProbablePrime(big.NewInt(p), DefaultRounds, rng) {
			t.Errorf("IsProbablePrime(%d) = false, want true", p)
		}
	}
}

func TestIsProbablePrimeKnownComposites(t *testing.T) {
	rng := testRand()
	// 561 and 41041 are Carmichael numbers, which defeat the plain Fermat
	// test but not Miller-Rabin.
	for _, n := range []int64{4, 9, 15, 100, 561, 41041, 7917} {
		if IsProbablePrime(big.NewInt(n), DefaultRounds, rng) {
			t.Errorf("IsProbablePrime(%d) = true, want false", n)
		}
	}
}

func TestIsProbablePrimeSmallAndNonPositive(t *testing.T) {
	rng := testRand()
	for _, n := range []int64{-7, -1, 0, 1} {
		if IsProbablePrime(big.NewInt(n), DefaultRounds, rng) {
			t.Errorf("IsProbablePrime(%d) = true, want false", n)
		}
	}
}

func TestIsProbablePrimeRepeatedTrials(t *testing.T) {
	// Composites must be rejected across independent randomness streams.
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for _, n := range []int64{100, 561, 41041} {
			if IsProbablePrime(big.NewInt(n), DefaultRounds, rng) {
				t.Fatalf("%d accepted as prime at %d rounds (seed %d)", n, DefaultRounds, seed)
			}
		}
	}
}

func TestGenerate(t *testing.T) {
	rng := testRand()
	for _, bits := range []int{16, 64, 128, 256} {
		p, err := Generate(bits, DefaultRounds, rng)
		if err != nil {
			t.Fatalf("Generate(%d) error = %v", bits, err)
		}
		if p.BitLen() != bits {
			t.Errorf("Generate(%d) bit length = %d", bits, p.BitLen())
		}
		if p.Bit(0) != 1 {
			t.Errorf("Generate(%d) returned an even value", bits)
		}
		if !IsProbablePrime(p, DefaultRounds, rng) {
			t.Errorf("Generate(%d) returned a composite: %s", bits, p)
		}
	}
}

func TestGenerateDistinct(t *testing.T) {
	rng := testRand()
	p, err := Generate(128, DefaultRounds, rng)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	q, err := Generate(128, DefaultRounds, rng)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if p.Cmp(q) == 0 {
		t.Error("consecutive Generate calls returned the same prime")
	}
}

func TestGenerateTooFewBits(t *testing.T) {
	if _, err := Generate(1, DefaultRounds, testRand()); err == nil {
		t.Error("Generate(1) succeeded, want error")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("no entropy")
}

func TestGenerateFailingSource(t *testing.T) {
	if _, err := Generate(64, DefaultRounds, failingReader{}); err == nil {
		t.Error("Generate with failing randomness source succeeded, want error")
	}
}
