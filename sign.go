package quillsign

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/quillsign/quillsign-go/internal/keccak"
	"github.com/quillsign/quillsign-go/internal/oaep"
)

// Sign signs content with key: the SHA3-256 digest of content is
// OAEP-encoded to the width of the modulus and raised to the private
// exponent. The returned bytes are the signature's big-endian encoding
// without leading zeros, as the envelope format carries it.
//
// The modulus must be at least 98 bytes (784 bits) to hold an OAEP-encoded
// 32-byte digest.
func Sign(content []byte, key *PrivateKey, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)

	digest := keccak.Sum256(content)
	k := key.Size()

	em, err := oaep.Encode(digest[:], k, cfg.random)
	if err != nil {
		return nil, fmt.Errorf("encode digest: %w", err)
	}

	m := new(big.Int).SetBytes(em)
	sig := new(big.Int).Exp(m, key.D, key.N)
	return sig.Bytes(), nil
}

// Verify checks signature over content. All three outcomes are normal
// reported results:
//
//   - (true, nil): the signature is valid.
//   - (false, nil): the encoding is intact but the recovered digest differs
//     from the content digest.
//   - (false, err): the exponentiated signature does not carry a
//     well-formed OAEP structure; err matches ErrInvalidPadding.
func Verify(content, signature []byte, key *PublicKey) (bool, error) {
	k := key.Size()

	sig := new(big.Int).SetBytes(signature)
	recovered := new(big.Int).Exp(sig, key.E, key.N)

	// Left-pad the recovered block back to the modulus width.
	em := make([]byte, k)
	recovered.FillBytes(em)

	digest, err := oaep.Decode(em, k)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidPadding, err)
	}

	expected := keccak.Sum256(content)
	return bytes.Equal(digest, expected[:]), nil
}
