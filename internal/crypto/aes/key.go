// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package aes

import (
	"fmt"
	"io"

	"github.com/Poizon7/spectrum/internal/arith"
	"github.com/Poizon7/spectrum/internal/crypto"
)

// =============================================================================
// KEY SIZES
// =============================================================================

// KeySize is the length of AES key material in bytes.
type KeySize int

const (
	KeySize128 KeySize = 16
	KeySize192 KeySize = 24
	KeySize256 KeySize = 32
)

// maxScheduleLen is the schedule length of the largest variant.
const maxScheduleLen = 240

// KeySizeFromBits maps 128/192/256 to a KeySize.
func KeySizeFromBits(bits int) (KeySize, error) {
	switch bits {
	case 128:
		return KeySize128, nil
	case 192:
		return KeySize192, nil
	case 256:
		return KeySize256, nil
	}
	return 0, fmt.Errorf("%w: unsupported key length %d bits", crypto.ErrKeySizeMismatch, bits)
}

// Valid reports whether k is one of the three supported sizes.
func (k KeySize) Valid() bool {
	return k == KeySize128 || k == KeySize192 || k == KeySize256
}

// Bits returns the key length in bits.
func (k KeySize) Bits() int { return int(k) * 8 }

// Rounds returns Nr: 10, 12 or 14.
func (k KeySize) Rounds() int { return int(k)/4 + 6 }

// ScheduleLen returns the expanded schedule length: 176, 208 or 240 bytes.
func (k KeySize) ScheduleLen() int { return (k.Rounds() + 1) * BlockSize }

func (k KeySize) String() string {
	if !k.Valid() {
		return fmt.Sprintf("AES-invalid(%d)", int(k))
	}
	return fmt.Sprintf("AES-%d", k.Bits())
}

// =============================================================================
// KEY
// =============================================================================

// Key is an AES key of one of the three variants, tagged by size. Only the
// first size bytes of material and ScheduleLen bytes of schedule are used.
type Key struct {
	size     KeySize
	material [32]byte
	schedule [maxScheduleLen]byte
}

// NewKey copies material and expands it into a round-key schedule.
func NewKey(size KeySize, material []byte) (*Key, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: unsupported key size %d bytes", crypto.ErrKeySizeMismatch, int(size))
	}
	if len(material) != int(size) {
		return nil, fmt.Errorf("%w: %s needs %d bytes, got %d", crypto.ErrKeySizeMismatch, size, int(size), len(material))
	}

	k := &Key{size: size}
	copy(k.material[:], material)
	expandKey(k.schedule[:size.ScheduleLen()], material)
	return k, nil
}

// GenerateKey reads size bytes of key material from random. The quality of the
// key is that of the reader; pass crypto/rand.Reader for real use.
func GenerateKey(size KeySize, random io.Reader) (*Key, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: unsupported key size %d bytes", crypto.ErrKeySizeMismatch, int(size))
	}
	material := make([]byte, size)
	if _, err := io.ReadFull(random, material); err != nil {
		return nil, fmt.Errorf("failed to read key material: %w", err)
	}
	return NewKey(size, material)
}

// ParseKey decodes a hex key. The variant is inferred from its length:
// 32, 48 or 64 hex characters.
func ParseKey(s string) (*Key, error) {
	material, err := crypto.HexToBytes(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode key: %w", err)
	}
	size := KeySize(len(material))
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %d-byte key is not 16, 24 or 32 bytes", crypto.ErrKeySizeMismatch, len(material))
	}
	return NewKey(size, material)
}

// Size returns the key variant.
func (k *Key) Size() KeySize { return k.size }

// Bytes returns a copy of the original key material.
func (k *Key) Bytes() []byte {
	out := make([]byte, k.size)
	copy(out, k.material[:k.size])
	return out
}

// Hex returns the key material as lowercase hex.
func (k *Key) Hex() string { return crypto.BytesToHex(k.material[:k.size]) }

// Schedule returns a copy of the expanded round-key schedule.
func (k *Key) Schedule() []byte {
	n := k.size.ScheduleLen()
	out := make([]byte, n)
	copy(out, k.schedule[:n])
	return out
}

// roundKey returns the 16-byte round key for round r.
func (k *Key) roundKey(r int) []byte {
	if r < 0 || r > k.size.Rounds() {
		panic(fmt.Sprintf("aes: round %d out of range for %s", r, k.size))
	}
	return k.schedule[r*BlockSize : (r+1)*BlockSize]
}

// String never includes key material.
func (k *Key) String() string { return k.size.String() + " key" }

// =============================================================================
// KEY SCHEDULE
// =============================================================================

// expandKey fills schedule from material. len(schedule) selects the variant's
// round count; len(material) is N.
func expandKey(schedule, material []byte) {
	n := len(material)
	copy(schedule, material)

	var temp [4]byte
	i := 1
	for c := n; c < len(schedule); c += 4 {
		copy(temp[:], schedule[c-4:c])

		if c%n == 0 {
			scheduleCore(&temp, i)
			i++
		}
		// AES-256 only: extra substitution halfway between rcon words.
		if n == int(KeySize256) && c%32 == 16 {
			for j := range temp {
				temp[j] = sbox[temp[j]]
			}
		}

		for j := 0; j < 4; j++ {
			schedule[c+j] = schedule[c-n+j] ^ temp[j]
		}
	}
}

// scheduleCore rotates the word left one byte, substitutes it through the
// S-box and mixes rcon(i) into its first byte.
func scheduleCore(word *[4]byte, i int) {
	word[0], word[1], word[2], word[3] = word[1], word[2], word[3], word[0]
	for j := range word {
		word[j] = sbox[word[j]]
	}
	word[0] ^= rcon(i)
}

// rcon returns the round constant x^(i-1) in GF(2^8). rcon(0) is 0.
func rcon(i int) byte {
	if i == 0 {
		return 0
	}
	c := byte(1)
	for ; i > 1; i-- {
		c = arith.Double(c)
	}
	return c
}
