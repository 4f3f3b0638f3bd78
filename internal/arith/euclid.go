// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package arith

import "github.com/holiman/uint256"

// =============================================================================
// EXTENDED EUCLID
// =============================================================================

// ExtendedGCD solves a*x + b*y = gcd(a, b).
//
// x and y are two's-complement values: a negative coefficient has Sign() == -1
// and adding it to a modulus with (*uint256.Int).Add yields the positive
// representative. Both operands must have the top bit clear so the
// coefficients, bounded by max(a, b), cannot reach the sign bit.
func ExtendedGCD(a, b *uint256.Int) (g, x, y *uint256.Int, err error) {
	if a.BitLen() > 255 || b.BitLen() > 255 {
		return nil, nil, nil, ErrOutOfRange
	}

	oldR, r := a.Clone(), b.Clone()
	oldS, s := uint256.NewInt(1), uint256.NewInt(0)
	oldT, t := uint256.NewInt(0), uint256.NewInt(1)

	q := new(uint256.Int)
	tmp := new(uint256.Int)
	for !r.IsZero() {
		// Remainders stay non-negative, so the quotient is an unsigned division.
		q.Div(oldR, r)

		tmp.Mul(q, r)
		oldR, r = r, new(uint256.Int).Sub(oldR, tmp)

		tmp.Mul(q, s)
		oldS, s = s, new(uint256.Int).Sub(oldS, tmp)

		tmp.Mul(q, t)
		oldT, t = t, new(uint256.Int).Sub(oldT, tmp)
	}

	return oldR, oldS, oldT, nil
}
