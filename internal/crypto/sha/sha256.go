// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sha

import (
	"encoding/binary"

	"github.com/Poizon7/spectrum/internal/arith"
	"github.com/Poizon7/spectrum/internal/crypto"
)

const (
	// Size is the SHA-256 digest length in bytes.
	Size = 32
	// ChunkSize is the compression block length in bytes.
	ChunkSize = 64
)

// =============================================================================
// CONSTANTS
// =============================================================================

// iv is the initial chaining value.
var iv = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// k is the round-constant table.
var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// =============================================================================
// HASHER
// =============================================================================

// SHA256 is a stateless SHA-256 engine. The zero value is ready to use.
type SHA256 struct{}

var (
	_ crypto.Hasher = SHA256{}
	_ crypto.Named  = SHA256{}
)

// New returns a SHA-256 engine.
func New() SHA256 { return SHA256{} }

// Name returns "SHA-256".
func (SHA256) Name() string { return "SHA-256" }

// Size returns the digest length.
func (SHA256) Size() int { return Size }

// Hash returns the 32-byte digest of message.
func (SHA256) Hash(message []byte) []byte {
	d := Sum256(message)
	return d[:]
}

// HashHex returns the digest of message as 64 lowercase hex characters.
func (h SHA256) HashHex(message []byte) string {
	return crypto.BytesToHex(h.Hash(message))
}

// Sum256 returns the SHA-256 digest of message.
func Sum256(message []byte) [Size]byte {
	state := iv
	padded := pad(message)
	for off := 0; off < len(padded); off += ChunkSize {
		compress(&state, padded[off:off+ChunkSize])
	}

	var digest [Size]byte
	for i, h := range state {
		binary.BigEndian.PutUint32(digest[i*4:], h)
	}
	return digest
}

// pad appends 0x80, zeros up to 56 mod 64 and the 64-bit big-endian bit
// length of message.
func pad(message []byte) []byte {
	n := len(message)
	total := (n + 1 + 8 + ChunkSize - 1) / ChunkSize * ChunkSize

	padded := make([]byte, total)
	copy(padded, message)
	padded[n] = 0x80
	binary.BigEndian.PutUint64(padded[total-8:], uint64(n)*8)
	return padded
}

// compress folds one 64-byte chunk into the chaining state.
func compress(state *[8]uint32, chunk []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(chunk[i*4:])
	}
	for i := 16; i < 64; i++ {
		w[i] = w[i-16] + sigma0(w[i-15]) + w[i-7] + sigma1(w[i-2])
	}

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]
	for i := 0; i < 64; i++ {
		t1 := h + bigSigma1(e) + ch(e, f, g) + k[i] + w[i]
		t2 := bigSigma0(a) + maj(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

// =============================================================================
// MIXING FUNCTIONS
// =============================================================================

func sigma0(x uint32) uint32 {
	return arith.RotateRight32(x, 7) ^ arith.RotateRight32(x, 18) ^ x>>3
}

func sigma1(x uint32) uint32 {
	return arith.RotateRight32(x, 17) ^ arith.RotateRight32(x, 19) ^ x>>10
}

func bigSigma0(x uint32) uint32 {
	return arith.RotateRight32(x, 2) ^ arith.RotateRight32(x, 13) ^ arith.RotateRight32(x, 22)
}

func bigSigma1(x uint32) uint32 {
	return arith.RotateRight32(x, 6) ^ arith.RotateRight32(x, 11) ^ arith.RotateRight32(x, 25)
}

func ch(e, f, g uint32) uint32 {
	return e&f ^ ^e&g
}

func maj(a, b, c uint32) uint32 {
	return a&b ^ a&c ^ b&c
}
