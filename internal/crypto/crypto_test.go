// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// =============================================================================
// HEX TESTS
// =============================================================================

func TestBytesToHex(t *testing.T) {
	require.Equal(t, "", BytesToHex(nil))
	require.Equal(t, "00", BytesToHex([]byte{0}))
	require.Equal(t, "000102ff7f80", BytesToHex([]byte{0x00, 0x01, 0x02, 0xff, 0x7f, 0x80}))
}

func TestHexToBytes_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
	}{
		{"", []byte{}},
		{"00", []byte{0x00}},
		{"ff", []byte{0xff}},
		{"FF", []byte{0xff}},
		{"a1B2", []byte{0xa1, 0xb2}},
		{"0f1e2d3c", []byte{0x0f, 0x1e, 0x2d, 0x3c}},
	}
	for _, tt := range tests {
		got, err := HexToBytes(tt.in)
		require.NoError(t, err, "HexToBytes(%q)", tt.in)
		require.Equal(t, tt.want, got, "HexToBytes(%q)", tt.in)
	}
}

func TestHexToBytes_IndependentNibbles(t *testing.T) {
	// Each nibble is decoded from its own character position.
	got, err := HexToBytes("1f")
	require.NoError(t, err)
	require.Equal(t, []byte{0x1f}, got)

	got, err = HexToBytes("f1")
	require.NoError(t, err)
	require.Equal(t, []byte{0xf1}, got)
}

func TestHexToBytes_Rejects(t *testing.T) {
	for _, in := range []string{"0", "abc", "zz", "0g", "g0", " 0", "0x00", "12 34"} {
		_, err := HexToBytes(in)
		require.Error(t, err, "HexToBytes(%q) should fail", in)
		require.True(t, errors.Is(err, ErrDecode), "HexToBytes(%q) should wrap ErrDecode, got %v", in, err)
	}
}

func TestHex_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for n := 0; n < 300; n++ {
		b := make([]byte, n)
		r.Read(b)

		s := BytesToHex(b)
		require.Equal(t, hex.EncodeToString(b), s)

		back, err := HexToBytes(s)
		require.NoError(t, err)
		require.True(t, bytes.Equal(b, back))
	}
}

func TestBytesToText(t *testing.T) {
	s, err := BytesToText([]byte("héllo"))
	require.NoError(t, err)
	require.Equal(t, "héllo", s)

	_, err = BytesToText([]byte{0xff, 0xfe})
	require.ErrorIs(t, err, ErrDecode)
}

// =============================================================================
// CAPABILITY TESTS
// =============================================================================

type xorCipher struct{ k byte }

func (x xorCipher) Encrypt(p []byte) ([]byte, error) {
	out := make([]byte, len(p))
	for i := range p {
		out[i] = p[i] ^ x.k
	}
	return out, nil
}

func (x xorCipher) Decrypt(c []byte) ([]byte, error) { return x.Encrypt(c) }

func (xorCipher) Name() string { return "XOR" }

type lenHasher struct{}

func (lenHasher) Hash(m []byte) []byte { return []byte{byte(len(m))} }

func TestCapabilities_Dispatch(t *testing.T) {
	var c SymmetricCipher = xorCipher{k: 0x5a}

	ct, err := Encrypt(c, []byte("swap"))
	require.NoError(t, err)
	pt, err := Decrypt(c, ct)
	require.NoError(t, err)
	require.Equal(t, "swap", string(pt))

	require.Equal(t, []byte{3}, Hash(lenHasher{}, []byte("abc")))
	require.Equal(t, "XOR", NameOf(c))
	require.Equal(t, "unknown", NameOf(lenHasher{}))
}

func TestCapabilities_NilCipher(t *testing.T) {
	_, err := Encrypt(nil, []byte("x"))
	require.ErrorIs(t, err, ErrKeyNotInitialized)
	_, err = Decrypt(nil, []byte("x"))
	require.ErrorIs(t, err, ErrKeyNotInitialized)
}

// =============================================================================
// INVENTORY TESTS
// =============================================================================

func TestAlgorithms(t *testing.T) {
	all := Algorithms()
	require.Len(t, all, 5)

	all[0].Name = "mutated"
	require.Equal(t, "AES-128", Algorithms()[0].Name, "Algorithms must return a copy")

	info, ok := LookupAlgorithm("sha-256")
	require.True(t, ok)
	require.Equal(t, 32, info.OutputSize)

	_, ok = LookupAlgorithm("DES")
	require.False(t, ok)

	require.Len(t, AlgorithmsByType(AlgorithmTypeSymmetric), 3)
	require.Len(t, AlgorithmsByType(AlgorithmTypeHash), 1)
}
