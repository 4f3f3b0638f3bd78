// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package arith

// Reduction is the low byte of the AES field polynomial x^8+x^4+x^3+x+1.
const Reduction = 0x1b

// Multiply returns a*b in GF(2^8).
//
// Eight rounds of shift-and-add: the running multiplicand is doubled each
// round and reduced by Reduction whenever its high bit overflows.
func Multiply(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 == 1 {
			p ^= a
		}
		b >>= 1
		carry := a & 0x80
		a <<= 1
		if carry != 0 {
			a ^= Reduction
		}
	}
	return p
}

// Double returns x*2 in GF(2^8) (the "xtime" operation).
func Double(x byte) byte {
	carry := x & 0x80
	x <<= 1
	if carry != 0 {
		x ^= Reduction
	}
	return x
}
