package quillsign

import (
	"errors"
	"math/big"
	"math/rand"
	"sync"
	"testing"
)

// testKeyBits keeps test key generation fast while leaving room for the
// OAEP-encoded digest (the modulus must be at least 98 bytes).
const testKeyBits = 1024

var (
	testKeyOnce sync.Once
	testKey     *KeyPair
	testKeyErr  error
)

// testKeyPair returns a process-wide key pair generated from a fixed seed.
func testKeyPair(t *testing.T) *KeyPair {
	t.Helper()
	testKeyOnce.Do(func() {
		testKey, testKeyErr = GenerateKeyPair(testKeyBits, WithRand(rand.New(rand.NewSource(99))))
	})
	if testKeyErr != nil {
		t.Fatalf("GenerateKeyPair(%d) error = %v", testKeyBits, testKeyErr)
	}
	return testKey
}

func TestGenerateKeyPairInvariants(t *testing.T) {
	kp := testKeyPair(t)
	one := big.NewInt(1)

	if got := kp.Public.N.BitLen(); got != testKeyBits {
		t.Errorf("modulus bit length = %d, want %d", got, testKeyBits)
	}
	if kp.Public.E.Int64() != 65537 {
		t.Errorf("public exponent = %s, want 65537", kp.Public.E)
	}
	if kp.Public.N.Cmp(kp.Private.N) != 0 {
		t.Error("public and private moduli differ")
	}

	if kp.P.Cmp(kp.Q) == 0 {
		t.Error("p equals q")
	}
	if got := kp.P.BitLen(); got != testKeyBits/2 {
		t.Errorf("p bit length = %d, want %d", got, testKeyBits/2)
	}
	if got := kp.Q.BitLen(); got != testKeyBits/2 {
		t.Errorf("q bit length = %d, want %d", got, testKeyBits/2)
	}

	n := new(big.Int).Mul(kp.P, kp.Q)
	if n.Cmp(kp.Public.N) != 0 {
		t.Error("n != p*q")
	}

	// (e*d) mod phi == 1, with phi reconstructed from the primes.
	phi := new(big.Int).Mul(
		new(big.Int).Sub(kp.P, one),
		new(big.Int).Sub(kp.Q, one),
	)
	ed := new(big.Int).Mul(kp.Public.E, kp.Private.D)
	if ed.Mod(ed, phi).Cmp(one) != 0 {
		t.Error("(e*d) mod phi != 1")
	}
}

func TestGenerateKeyPairExactModulusWidth(t *testing.T) {
	// The product of two bits/2-bit primes is one bit short roughly 40% of
	// the time; generation must redraw until the modulus width is exact.
	for seed := int64(1); seed <= 8; seed++ {
		kp, err := GenerateKeyPair(512, WithRand(rand.New(rand.NewSource(seed))))
		if err != nil {
			t.Fatalf("GenerateKeyPair(512) error = %v (seed %d)", err, seed)
		}
		if got := kp.Public.N.BitLen(); got != 512 {
			t.Errorf("modulus bit length = %d, want 512 (seed %d)", got, seed)
		}
	}
}

func TestGenerateKeyPairDeterministicWithFixedSeed(t *testing.T) {
	a, err := GenerateKeyPair(512, WithRand(rand.New(rand.NewSource(5))))
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	b, err := GenerateKeyPair(512, WithRand(rand.New(rand.NewSource(5))))
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	if a.Public.N.Cmp(b.Public.N) != 0 || a.Private.D.Cmp(b.Private.D) != 0 {
		t.Error("fixed-seed key generation is not reproducible")
	}
}

func TestGenerateKeyPairDistinct(t *testing.T) {
	a, err := GenerateKeyPair(512, WithRand(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	b, err := GenerateKeyPair(512, WithRand(rand.New(rand.NewSource(2))))
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	if a.Public.N.Cmp(b.Public.N) == 0 {
		t.Error("independently seeded key pairs share a modulus")
	}
}

func TestGenerateKeyPairRejectsBadSizes(t *testing.T) {
	for _, bits := range []int{0, 8, 15, 513} {
		if _, err := GenerateKeyPair(bits); !errors.Is(err, ErrKeyGeneration) {
			t.Errorf("GenerateKeyPair(%d) error = %v, want ErrKeyGeneration", bits, err)
		}
	}
}

func TestKeySize(t *testing.T) {
	kp := testKeyPair(t)
	want := testKeyBits / 8
	if got := kp.Public.Size(); got != want {
		t.Errorf("PublicKey.Size() = %d, want %d", got, want)
	}
	if got := kp.Private.Size(); got != want {
		t.Errorf("PrivateKey.Size() = %d, want %d", got, want)
	}
}
