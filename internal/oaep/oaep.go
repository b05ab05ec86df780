// Package oaep implements the OAEP encoding transform over SHA3-256 with an
// empty label, together with its MGF1 mask generator.
//
// Encoded messages are exactly the byte length of the modulus: a zero byte,
// a 32-byte masked seed, and a masked data block holding the label hash,
// zero padding, a 0x01 separator, and the message.
package oaep

import (
	"bytes"
	"fmt"
	"io"

	"github.com/quillsign/quillsign-go/internal/keccak"
)

// hLen is the output length of the underlying hash.
const hLen = keccak.Size

// MinModulusBytes is the smallest modulus length, in bytes, that can carry
// an OAEP-encoded message.
const MinModulusBytes = 2*hLen + 2

// MaxMessageLen returns the longest message that fits a k-byte modulus.
func MaxMessageLen(k int) int { return k - 2*hLen - 2 }

// Encode produces the k-byte encoded form of message. The seed is drawn
// from random; every other step is deterministic.
func Encode(message []byte, k int, random io.Reader) ([]byte, error) {
	if len(message) > MaxMessageLen(k) {
		return nil, fmt.Errorf("%w: %d bytes exceeds capacity %d", ErrMessageTooLong, len(message), MaxMessageLen(k))
	}

	lHash := keccak.Sum256(nil)

	// DB = lHash || zero padding || 0x01 || message
	db := make([]byte, k-hLen-1)
	copy(db, lHash[:])
	db[len(db)-len(message)-1] = 0x01
	copy(db[len(db)-len(message):], message)

	seed := make([]byte, hLen)
	if _, err := io.ReadFull(random, seed); err != nil {
		return nil, fmt.Errorf("read OAEP seed: %w", err)
	}

	maskedDB := xorBytes(db, mgf1(seed, len(db)))
	maskedSeed := xorBytes(seed, mgf1(maskedDB, hLen))

	em := make([]byte, 0, k)
	em = append(em, 0x00)
	em = append(em, maskedSeed...)
	em = append(em, maskedDB...)
	return em, nil
}

// Decode recovers the message from a k-byte encoded form. Structural
// failures are reported through ErrInvalidInputLength and ErrInvalidPadding;
// the checks below are not constant time.
func Decode(em []byte, k int) ([]byte, error) {
	if k < MinModulusBytes {
		return nil, fmt.Errorf("%w: %d-byte modulus cannot hold an encoded message", ErrInvalidInputLength, k)
	}
	if len(em) != k {
		return nil, fmt.Errorf("%w: encoded message is %d bytes, want %d", ErrInvalidInputLength, len(em), k)
	}

	maskedSeed := em[1 : 1+hLen]
	maskedDB := em[1+hLen:]

	seed := xorBytes(maskedSeed, mgf1(maskedDB, hLen))
	db := xorBytes(maskedDB, mgf1(seed, len(maskedDB)))

	lHash := keccak.Sum256(nil)
	if !bytes.Equal(db[:hLen], lHash[:]) {
		return nil, fmt.Errorf("%w: label hash mismatch", ErrInvalidPadding)
	}

	sep := hLen
	for sep < len(db) && db[sep] == 0x00 {
		sep++
	}
	if sep == len(db) || db[sep] != 0x01 {
		return nil, fmt.Errorf("%w: message separator not found", ErrInvalidPadding)
	}
	return db[sep+1:], nil
}

func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}
