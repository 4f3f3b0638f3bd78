// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package arith

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// GF(2^8) TESTS
// =============================================================================

func TestMultiply_KnownProducts(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		{0x57, 0x83, 0xc1},
		{0x57, 0x13, 0xfe},
		{0x57, 0x02, 0xae},
		{0x57, 0x04, 0x47},
		{0x57, 0x08, 0x8e},
		{0x57, 0x10, 0x07},
		{0x00, 0xff, 0x00},
		{0x53, 0xca, 0x01},
	}
	for _, tt := range tests {
		if got := Multiply(tt.a, tt.b); got != tt.want {
			t.Errorf("Multiply(%#02x, %#02x) = %#02x, want %#02x", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMultiply_Identity(t *testing.T) {
	for x := 0; x < 256; x++ {
		require.Equal(t, byte(x), Multiply(1, byte(x)))
		require.Equal(t, byte(0), Multiply(0, byte(x)))
	}
}

func TestMultiply_Commutative(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			if Multiply(byte(a), byte(b)) != Multiply(byte(b), byte(a)) {
				t.Fatalf("Multiply not commutative for %#02x, %#02x", a, b)
			}
		}
	}
}

func TestMultiply_DistributesOverXor(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20000; i++ {
		a, b, c := byte(r.Intn(256)), byte(r.Intn(256)), byte(r.Intn(256))
		require.Equal(t, Multiply(a, b)^Multiply(a, c), Multiply(a, b^c))
	}
}

func TestDouble_MatchesMultiply(t *testing.T) {
	for x := 0; x < 256; x++ {
		require.Equal(t, Multiply(2, byte(x)), Double(byte(x)))
	}
}

// =============================================================================
// ROTATION TESTS
// =============================================================================

func TestRotateRight32(t *testing.T) {
	tests := []struct {
		x    uint32
		n    uint
		want uint32
	}{
		{0x00000001, 1, 0x80000000},
		{0x80000000, 31, 0x00000001},
		{0x12345678, 8, 0x78123456},
		{0x12345678, 0, 0x12345678},
		{0x12345678, 32, 0x12345678},
		{0xdeadbeef, 16, 0xbeefdead},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, RotateRight32(tt.x, tt.n), "RotateRight32(%#08x, %d)", tt.x, tt.n)
	}
}

// =============================================================================
// EXTENDED EUCLID TESTS
// =============================================================================

// signed converts a two's-complement uint256 to a big.Int.
func signed(z *uint256.Int) *big.Int {
	if z.Sign() >= 0 {
		return z.ToBig()
	}
	return new(big.Int).Neg(new(uint256.Int).Neg(z).ToBig())
}

func TestExtendedGCD_Bezout(t *testing.T) {
	tests := []struct {
		a, b string
		gcd  string
	}{
		{"240", "46", "2"},
		{"65537", "3120", "1"},
		{"17", "0", "17"},
		{"0", "17", "17"},
		{"65537", "89578665257400789817635331742994557696292207746605930904160", "1"},
	}
	for _, tt := range tests {
		a := uint256.MustFromDecimal(tt.a)
		b := uint256.MustFromDecimal(tt.b)

		g, x, y, err := ExtendedGCD(a, b)
		require.NoError(t, err)
		require.Equal(t, tt.gcd, g.Dec())

		// a*x + b*y == g over the integers
		lhs := new(big.Int).Mul(a.ToBig(), signed(x))
		lhs.Add(lhs, new(big.Int).Mul(b.ToBig(), signed(y)))
		require.Equal(t, g.ToBig().String(), lhs.String(), "Bezout identity for (%s, %s)", tt.a, tt.b)
	}
}

func TestExtendedGCD_NegativeCoefficient(t *testing.T) {
	// 65537*x + 3120*y = 1 has x = -367 from the iterative recurrence.
	_, x, _, err := ExtendedGCD(uint256.NewInt(65537), uint256.NewInt(3120))
	require.NoError(t, err)
	require.Equal(t, -1, x.Sign())
	require.Equal(t, "-367", signed(x).String())
}

func TestExtendedGCD_RejectsTopBit(t *testing.T) {
	top := new(uint256.Int).Lsh(uint256.NewInt(1), 255)
	_, _, _, err := ExtendedGCD(top, uint256.NewInt(3))
	require.ErrorIs(t, err, ErrOutOfRange)
}

// =============================================================================
// MODULAR EXPONENTIATION TESTS
// =============================================================================

// modExpLinear is the reference repeated multiply-and-reduce loop.
func modExpLinear(base, exp, m uint64) uint64 {
	c := uint64(1) % m
	for f := uint64(0); f < exp; f++ {
		c = (base * c) % m
	}
	return c
}

func TestModExp_MatchesLinear(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 2000; i++ {
		base := uint64(r.Intn(1 << 16))
		exp := uint64(r.Intn(300))
		m := uint64(r.Intn(1<<16) + 1)

		got, err := ModExp(uint256.NewInt(base), uint256.NewInt(exp), uint256.NewInt(m))
		require.NoError(t, err)
		require.Equal(t, modExpLinear(base, exp, m), got.Uint64(), "%d^%d mod %d", base, exp, m)
	}
}

func TestModExp_MatchesBigInt(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	for i := 0; i < 200; i++ {
		var base, exp, m uint256.Int
		for j := 0; j < 4; j++ {
			base[j] = r.Uint64()
			exp[j] = r.Uint64()
			m[j] = r.Uint64()
		}
		m[0] |= 1

		got, err := ModExp(&base, &exp, &m)
		require.NoError(t, err)

		want := new(big.Int).Exp(base.ToBig(), exp.ToBig(), m.ToBig())
		require.Equal(t, want.String(), got.Dec())
	}
}

func TestModExp_EdgeCases(t *testing.T) {
	got, err := ModExp(uint256.NewInt(5), uint256.NewInt(0), uint256.NewInt(7))
	require.NoError(t, err)
	require.Equal(t, uint64(1), got.Uint64())

	got, err = ModExp(uint256.NewInt(5), uint256.NewInt(3), uint256.NewInt(1))
	require.NoError(t, err)
	require.True(t, got.IsZero())

	_, err = ModExp(uint256.NewInt(5), uint256.NewInt(3), uint256.NewInt(0))
	require.ErrorIs(t, err, ErrZeroModulus)
}

func TestMulChecked(t *testing.T) {
	half := new(uint256.Int).Lsh(uint256.NewInt(1), 128)
	_, err := MulChecked(half, half)
	require.ErrorIs(t, err, ErrOverflow)

	z, err := MulChecked(uint256.NewInt(1<<32), uint256.NewInt(1<<32))
	require.NoError(t, err)
	require.Equal(t, "18446744073709551616", z.Dec())
}
