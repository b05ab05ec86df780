// Package keccak implements SHA3-256 from scratch on top of the
// Keccak-f[1600] permutation.
//
// The state is 25 sixty-four-bit lanes. Input is padded with the SHA3
// multi-rate rule (0x06 domain byte, zero fill, 0x80 in the final byte),
// absorbed in 136-byte blocks as little-endian words, and the digest is the
// first 32 bytes of the lane array after the last permutation.
package keccak

import (
	"encoding/binary"
	"math/bits"
)

// Size is the length of a SHA3-256 digest in bytes.
const Size = 32

// rate is the sponge rate for SHA3-256: 1088 bits (136 bytes) per block.
const rate = 136

// roundConstants are the 24 iota-step constants of Keccak-f[1600].
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a,
	0x8000000080008000, 0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009, 0x000000000000008a,
	0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089,
	0x8000000000008003, 0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a, 0x8000000080008081,
	0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotationOffsets holds the rho-step rotation amount for each lane, indexed
// as x + 5*y.
var rotationOffsets = [25]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// piLane traces the pi-step lane cycle (x, y) -> (y, (2x+3y) mod 5)
// starting at lane 1: step t moves the lane visited at step t-1 into lane
// piLane[t], and step 23 closes the cycle back at lane 1.
var piLane = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// Sum256 computes the SHA3-256 digest of data. It is a total function:
// every input length, including zero, produces a 32-byte digest.
func Sum256(data []byte) [Size]byte {
	var state [25]uint64

	// Multi-rate padding always adds at least one byte; when the input ends
	// one byte short of a block boundary, 0x06 and 0x80 share that byte.
	padded := make([]byte, (len(data)/rate+1)*rate)
	copy(padded, data)
	padded[len(data)] = 0x06
	padded[len(padded)-1] |= 0x80

	for block := 0; block < len(padded); block += rate {
		for i := 0; i < rate/8; i++ {
			state[i] ^= binary.LittleEndian.Uint64(padded[block+i*8:])
		}
		keccakF1600(&state)
	}

	var digest [Size]byte
	for i := 0; i < Size/8; i++ {
		binary.LittleEndian.PutUint64(digest[i*8:], state[i])
	}
	return digest
}

// keccakF1600 applies the 24-round Keccak permutation in place.
func keccakF1600(s *[25]uint64) {
	for round := 0; round < 24; round++ {
		// theta: XOR each lane with the parity of two neighboring columns.
		var c, d [5]uint64
		for x := 0; x < 5; x++ {
			c[x] = s[x] ^ s[x+5] ^ s[x+10] ^ s[x+15] ^ s[x+20]
		}
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}
		for x := 0; x < 5; x++ {
			for y := 0; y < 25; y += 5 {
				s[y+x] ^= d[x]
			}
		}

		// rho and pi: rotate each lane by its own rho offset while walking
		// the pi cycle, so one pass through the cycle does both steps.
		current := s[1]
		src := 1
		for t := 0; t < 24; t++ {
			next := piLane[t]
			current, s[next] = s[next], bits.RotateLeft64(current, rotationOffsets[src])
			src = next
		}

		// chi: the only nonlinear step, applied row by row.
		for y := 0; y < 25; y += 5 {
			var row [5]uint64
			copy(row[:], s[y:y+5])
			for x := 0; x < 5; x++ {
				s[y+x] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
			}
		}

		// iota: break symmetry by folding the round constant into lane 0.
		s[0] ^= roundConstants[round]
	}
}
