// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package arith

import "github.com/holiman/uint256"

// ModExp returns base^exp mod m.
//
// Square-and-multiply over the bits of exp, least significant first. MulMod
// reduces the full 512-bit product, so any operands in the 256-bit domain are
// accepted. The result matches repeated multiply-and-reduce for every
// exponent, including exp == 0 which yields 1 mod m.
func ModExp(base, exp, m *uint256.Int) (*uint256.Int, error) {
	if m.IsZero() {
		return nil, ErrZeroModulus
	}

	result := uint256.NewInt(1)
	result.Mod(result, m)

	b := new(uint256.Int).Mod(base, m)
	e := exp.Clone()
	for !e.IsZero() {
		if e.Uint64()&1 == 1 {
			result.MulMod(result, b, m)
		}
		e.Rsh(e, 1)
		if !e.IsZero() {
			b.MulMod(b, b, m)
		}
	}
	return result, nil
}

// MulChecked returns x*y or ErrOverflow if the product needs more than 256 bits.
func MulChecked(x, y *uint256.Int) (*uint256.Int, error) {
	z, overflow := new(uint256.Int).MulOverflow(x, y)
	if overflow {
		return nil, ErrOverflow
	}
	return z, nil
}
