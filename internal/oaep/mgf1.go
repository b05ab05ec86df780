package oaep

import (
	"encoding/binary"

	"github.com/quillsign/quillsign-go/internal/keccak"
)

// mgf1 expands seed into a length-byte mask (RFC 8017 B.2.1): the SHA3-256
// digests of seed followed by a 4-byte big-endian counter are concatenated
// and truncated to length.
func mgf1(seed []byte, length int) []byte {
	input := make([]byte, len(seed)+4)
	copy(input, seed)

	mask := make([]byte, 0, length+keccak.Size)
	for counter := uint32(0); len(mask) < length; counter++ {
		binary.BigEndian.PutUint32(input[len(seed):], counter)
		digest := keccak.Sum256(input)
		mask = append(mask, digest[:]...)
	}
	return mask[:length]
}
