// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package aes

import "github.com/Poizon7/spectrum/internal/arith"

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// Block is the 4x4 state matrix in column-major order: byte 4*col+row.
type Block [BlockSize]byte

// =============================================================================
// ROUND TRANSFORM
// =============================================================================

// encryptBlock runs the forward cipher on b in place.
func encryptBlock(b *Block, k *Key) {
	nr := k.size.Rounds()

	b.addRoundKey(k.roundKey(0))
	for round := 1; round < nr; round++ {
		b.subBytes()
		b.shiftRows()
		b.mixColumns()
		b.addRoundKey(k.roundKey(round))
	}
	b.subBytes()
	b.shiftRows()
	b.addRoundKey(k.roundKey(nr))
}

// decryptBlock runs the inverse cipher on b in place.
func decryptBlock(b *Block, k *Key) {
	nr := k.size.Rounds()

	b.addRoundKey(k.roundKey(nr))
	b.invShiftRows()
	b.invSubBytes()
	for round := nr - 1; round > 0; round-- {
		b.addRoundKey(k.roundKey(round))
		b.invMixColumns()
		b.invShiftRows()
		b.invSubBytes()
	}
	b.addRoundKey(k.roundKey(0))
}

// =============================================================================
// STEPS
// =============================================================================

func (b *Block) addRoundKey(rk []byte) {
	for i := range b {
		b[i] ^= rk[i]
	}
}

func (b *Block) subBytes() {
	for i := range b {
		b[i] = sbox[b[i]]
	}
}

func (b *Block) invSubBytes() {
	for i := range b {
		b[i] = invSbox[b[i]]
	}
}

// shiftRows rotates row r left by r positions.
func (b *Block) shiftRows() {
	var t Block
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			t[4*col+row] = b[4*((col+row)%4)+row]
		}
	}
	*b = t
}

// invShiftRows rotates row r right by r positions.
func (b *Block) invShiftRows() {
	var t Block
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			t[4*((col+row)%4)+row] = b[4*col+row]
		}
	}
	*b = t
}

// mixColumns multiplies each column by [[2,3,1,1],[1,2,3,1],[1,1,2,3],[3,1,1,2]].
func (b *Block) mixColumns() {
	for col := 0; col < 4; col++ {
		c := b[4*col : 4*col+4]
		a0, a1, a2, a3 := c[0], c[1], c[2], c[3]

		c[0] = arith.Multiply(2, a0) ^ arith.Multiply(3, a1) ^ a2 ^ a3
		c[1] = a0 ^ arith.Multiply(2, a1) ^ arith.Multiply(3, a2) ^ a3
		c[2] = a0 ^ a1 ^ arith.Multiply(2, a2) ^ arith.Multiply(3, a3)
		c[3] = arith.Multiply(3, a0) ^ a1 ^ a2 ^ arith.Multiply(2, a3)
	}
}

// invMixColumns multiplies each column by
// [[14,11,13,9],[9,14,11,13],[13,9,14,11],[11,13,9,14]].
func (b *Block) invMixColumns() {
	for col := 0; col < 4; col++ {
		c := b[4*col : 4*col+4]
		a0, a1, a2, a3 := c[0], c[1], c[2], c[3]

		c[0] = arith.Multiply(14, a0) ^ arith.Multiply(11, a1) ^ arith.Multiply(13, a2) ^ arith.Multiply(9, a3)
		c[1] = arith.Multiply(9, a0) ^ arith.Multiply(14, a1) ^ arith.Multiply(11, a2) ^ arith.Multiply(13, a3)
		c[2] = arith.Multiply(13, a0) ^ arith.Multiply(9, a1) ^ arith.Multiply(14, a2) ^ arith.Multiply(11, a3)
		c[3] = arith.Multiply(11, a0) ^ arith.Multiply(13, a1) ^ arith.Multiply(9, a2) ^ arith.Multiply(14, a3)
	}
}
