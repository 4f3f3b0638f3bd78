// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sha

import (
	"bytes"
	stdsha "crypto/sha256"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/Poizon7/spectrum/internal/crypto"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// KNOWN-ANSWER TESTS
// =============================================================================

func TestHash_KnownAnswers(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{
			"448 bits",
			"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			"248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
		},
		{
			"896 bits",
			"abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
			"cf5b16a778af8380036ce59e7b0492370b249b11e8f07a51afac45037afee9d1",
		},
		{"quick fox", "The quick brown fox jumps over the lazy dog", "d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592"},
	}
	var h SHA256
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, h.HashHex([]byte(tt.in)))
			require.Equal(t, tt.want, crypto.BytesToHex(h.Hash([]byte(tt.in))))
		})
	}
}

func TestHash_MillionA(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long message in short mode")
	}
	msg := strings.Repeat("a", 1000000)
	require.Equal(t, "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0", New().HashHex([]byte(msg)))
}

func TestHash_MatchesStandardLibrary(t *testing.T) {
	r := rand.New(rand.NewSource(256))
	// Every length around the padding boundaries plus some multi-chunk messages.
	for n := 0; n < 300; n++ {
		msg := make([]byte, n)
		r.Read(msg)
		want := stdsha.Sum256(msg)
		got := Sum256(msg)
		if got != want {
			t.Fatalf("Sum256 mismatch for %d-byte message: got %x, want %x", n, got, want)
		}
	}
}

// =============================================================================
// PADDING TESTS
// =============================================================================

func TestPad_Lengths(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 64},
		{3, 64},
		{55, 64},
		{56, 128},
		{63, 128},
		{64, 128},
		{119, 128},
		{120, 192},
	}
	for _, tt := range tests {
		p := pad(make([]byte, tt.n))
		require.Len(t, p, tt.want, "pad(%d bytes)", tt.n)
		require.Zero(t, len(p)%ChunkSize)
		require.Equal(t, byte(0x80), p[tt.n])
	}
}

func TestPad_Layout(t *testing.T) {
	p := pad([]byte("abc"))
	require.Equal(t, []byte("abc"), p[:3])
	require.Equal(t, byte(0x80), p[3])
	require.Equal(t, make([]byte, 52), p[4:56])
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0x18}, p[56:])
}

func TestPad_DoesNotModifyInput(t *testing.T) {
	msg := make([]byte, 3, 64)
	copy(msg, "abc")
	_ = pad(msg)
	require.Equal(t, make([]byte, 61), msg[3:64])
}

// =============================================================================
// PROPERTY TESTS
// =============================================================================

func TestHash_Stateless(t *testing.T) {
	h := New()
	first := h.Hash([]byte("message"))
	_ = h.Hash(bytes.Repeat([]byte("x"), 1000))
	require.Equal(t, first, h.Hash([]byte("message")))
}

func TestHash_Concurrent(t *testing.T) {
	h := New()
	want := h.HashHex([]byte("shared engine"))

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = h.HashHex([]byte("shared engine"))
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		require.Equal(t, want, got)
	}
}

func TestHash_Capability(t *testing.T) {
	var h crypto.Hasher = New()
	require.Len(t, crypto.Hash(h, nil), Size)
	require.Equal(t, "SHA-256", crypto.NameOf(h))
	require.Equal(t, Size, New().Size())
}

// FuzzSum256 compares against crypto/sha256.
func FuzzSum256(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("abc"))
	f.Add(bytes.Repeat([]byte{0}, 56))

	f.Fuzz(func(t *testing.T, msg []byte) {
		if Sum256(msg) != stdsha.Sum256(msg) {
			t.Fatalf("Sum256(%x) differs from crypto/sha256", msg)
		}
	})
}
