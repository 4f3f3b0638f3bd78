// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package aes

import (
	"bytes"
	stdaes "crypto/aes"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/Poizon7/spectrum/internal/crypto"
	"github.com/stretchr/testify/require"
)

var allSizes = []KeySize{KeySize128, KeySize192, KeySize256}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := crypto.HexToBytes(s)
	require.NoError(t, err)
	return b
}

func sequentialKey(n int) []byte {
	k := make([]byte, n)
	for i := range k {
		k[i] = byte(i)
	}
	return k
}

// =============================================================================
// KEY SIZE TESTS
// =============================================================================

func TestKeySize_Parameters(t *testing.T) {
	tests := []struct {
		size        KeySize
		bits        int
		rounds      int
		scheduleLen int
		name        string
	}{
		{KeySize128, 128, 10, 176, "AES-128"},
		{KeySize192, 192, 12, 208, "AES-192"},
		{KeySize256, 256, 14, 240, "AES-256"},
	}
	for _, tt := range tests {
		require.True(t, tt.size.Valid())
		require.Equal(t, tt.bits, tt.size.Bits())
		require.Equal(t, tt.rounds, tt.size.Rounds())
		require.Equal(t, tt.scheduleLen, tt.size.ScheduleLen())
		require.Equal(t, tt.name, tt.size.String())

		fromBits, err := KeySizeFromBits(tt.bits)
		require.NoError(t, err)
		require.Equal(t, tt.size, fromBits)
	}

	require.False(t, KeySize(20).Valid())
	_, err := KeySizeFromBits(160)
	require.ErrorIs(t, err, crypto.ErrKeySizeMismatch)
}

// =============================================================================
// KEY SCHEDULE TESTS
// =============================================================================

func TestRcon(t *testing.T) {
	want := []byte{0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}
	for i, w := range want {
		require.Equal(t, w, rcon(i), "rcon(%d)", i)
	}
}

func TestExpandKey_FIPS197AppendixA(t *testing.T) {
	key, err := NewKey(KeySize128, mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c"))
	require.NoError(t, err)

	schedule := key.Schedule()
	require.Len(t, schedule, 176)
	require.Equal(t, "2b7e151628aed2a6abf7158809cf4f3c", crypto.BytesToHex(schedule[:16]))
	require.Equal(t, "a0fafe1788542cb123a339392a6c7605", crypto.BytesToHex(schedule[16:32]))
	require.Equal(t, "d014f9a8c9ee2589e13f0cc8b6630ca6", crypto.BytesToHex(schedule[160:]))
}

func TestExpandKey_LastRoundKeys(t *testing.T) {
	tests := []struct {
		size KeySize
		last string
	}{
		{KeySize192, "a4970a331a78dc09c418c271e3a41d5d"},
		{KeySize256, "24fc79ccbf0979e9371ac23c6d68de36"},
	}
	for _, tt := range tests {
		key, err := NewKey(tt.size, sequentialKey(int(tt.size)))
		require.NoError(t, err)

		schedule := key.Schedule()
		require.Len(t, schedule, tt.size.ScheduleLen())
		require.Equal(t, tt.last, crypto.BytesToHex(schedule[len(schedule)-16:]), "%s last round key", tt.size)
	}
}

func TestExpandKey_Deterministic(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for _, size := range allSizes {
		material := make([]byte, size)
		r.Read(material)

		k1, err := NewKey(size, material)
		require.NoError(t, err)
		k2, err := NewKey(size, material)
		require.NoError(t, err)
		require.Equal(t, k1.Schedule(), k2.Schedule(), "%s schedules must match", size)

		other := append([]byte(nil), material...)
		other[0] ^= 0x01
		k3, err := NewKey(size, other)
		require.NoError(t, err)
		require.NotEqual(t, k1.Schedule(), k3.Schedule(), "%s schedules must differ", size)
	}
}

func TestNewKey_CopiesMaterial(t *testing.T) {
	material := sequentialKey(16)
	key, err := NewKey(KeySize128, material)
	require.NoError(t, err)

	before := key.Schedule()
	material[0] = 0xff
	require.Equal(t, sequentialKey(16), key.Bytes())
	require.Equal(t, before, key.Schedule())

	// Returned slices are copies.
	key.Bytes()[0] = 0xee
	key.Schedule()[0] = 0xee
	require.Equal(t, sequentialKey(16), key.Bytes())
	require.Equal(t, before, key.Schedule())
}

func TestNewKey_SizeMismatch(t *testing.T) {
	tests := []struct {
		size KeySize
		n    int
	}{
		{KeySize128, 15},
		{KeySize128, 17},
		{KeySize192, 16},
		{KeySize256, 24},
		{KeySize256, 0},
		{KeySize(20), 20},
	}
	for _, tt := range tests {
		_, err := NewKey(tt.size, make([]byte, tt.n))
		require.ErrorIs(t, err, crypto.ErrKeySizeMismatch, "NewKey(%d, %d bytes)", int(tt.size), tt.n)
	}
}

func TestParseKey(t *testing.T) {
	for _, size := range allSizes {
		hexKey := crypto.BytesToHex(sequentialKey(int(size)))
		key, err := ParseKey(hexKey)
		require.NoError(t, err)
		require.Equal(t, size, key.Size())
		require.Equal(t, hexKey, key.Hex())
	}

	_, err := ParseKey("0001020304")
	require.ErrorIs(t, err, crypto.ErrKeySizeMismatch)

	_, err = ParseKey("000102030405060708090a0b0c0d0e0z")
	require.ErrorIs(t, err, crypto.ErrDecode)

	_, err = ParseKey("000")
	require.ErrorIs(t, err, crypto.ErrDecode)
}

func TestGenerateKey(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for _, size := range allSizes {
		key, err := GenerateKey(size, r)
		require.NoError(t, err)
		require.Equal(t, size, key.Size())
		require.Len(t, key.Bytes(), int(size))
	}

	_, err := GenerateKey(KeySize128, bytes.NewReader(make([]byte, 4)))
	require.Error(t, err)

	_, err = GenerateKey(KeySize(7), r)
	require.ErrorIs(t, err, crypto.ErrKeySizeMismatch)
}

func TestKey_StringHidesMaterial(t *testing.T) {
	key, err := NewKey(KeySize256, sequentialKey(32))
	require.NoError(t, err)
	require.Equal(t, "AES-256 key", key.String())
}

// =============================================================================
// KNOWN-ANSWER TESTS
// =============================================================================

func TestEncryptBlock_FIPS197AppendixC(t *testing.T) {
	plaintext := "00112233445566778899aabbccddeeff"
	tests := []struct {
		size KeySize
		want string
	}{
		{KeySize128, "69c4e0d86a7b0430d8cdb78070b4c55a"},
		{KeySize192, "dda97ca4864cdfe06eaf70a0ec0d7191"},
		{KeySize256, "8ea2b7ca516745bfeafc49904b496089"},
	}
	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			key, err := NewKey(tt.size, sequentialKey(int(tt.size)))
			require.NoError(t, err)
			c := New(key)

			ct, err := c.Encrypt(mustHex(t, plaintext))
			require.NoError(t, err)
			require.Equal(t, tt.want, crypto.BytesToHex(ct))

			pt, err := c.Decrypt(ct)
			require.NoError(t, err)
			require.Equal(t, plaintext, crypto.BytesToHex(pt))
		})
	}
}

func TestEncryptBlock_FIPS197AppendixB(t *testing.T) {
	key, err := ParseKey("2b7e151628aed2a6abf7158809cf4f3c")
	require.NoError(t, err)

	dst := make([]byte, BlockSize)
	require.NoError(t, New(key).EncryptBlock(dst, mustHex(t, "3243f6a8885a308d313198a2e0370734")))
	require.Equal(t, "3925841d02dc09fbdc118597196a0b32", crypto.BytesToHex(dst))

	require.NoError(t, New(key).DecryptBlock(dst, dst))
	require.Equal(t, "3243f6a8885a308d313198a2e0370734", crypto.BytesToHex(dst))
}

// =============================================================================
// ROUND-TRIP TESTS
// =============================================================================

func TestRoundTrip_RandomBlocks(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, size := range allSizes {
		c, err := NewRandom(size, r)
		require.NoError(t, err)

		var block [BlockSize]byte
		for i := 0; i < 1200; i++ {
			r.Read(block[:])
			ct, err := c.Encrypt(block[:])
			require.NoError(t, err)
			require.Len(t, ct, BlockSize)

			pt, err := c.Decrypt(ct)
			require.NoError(t, err)
			if !bytes.Equal(block[:], pt) {
				t.Fatalf("%s round trip failed for block %x", size, block)
			}
		}
	}
}

func TestEncrypt_MatchesStandardLibrary(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for _, size := range allSizes {
		for i := 0; i < 50; i++ {
			material := make([]byte, size)
			r.Read(material)
			key, err := NewKey(size, material)
			require.NoError(t, err)

			ref, err := stdaes.NewCipher(material)
			require.NoError(t, err)

			src := make([]byte, BlockSize)
			r.Read(src)
			want := make([]byte, BlockSize)
			ref.Encrypt(want, src)

			got := make([]byte, BlockSize)
			require.NoError(t, New(key).EncryptBlock(got, src))
			require.Equal(t, want, got, "%s key %x block %x", size, material, src)
		}
	}
}

func TestEncrypt_ZeroFillsFinalBlock(t *testing.T) {
	key, err := NewKey(KeySize128, sequentialKey(16))
	require.NoError(t, err)
	c := New(key)

	msg := []byte("twenty-one bytes long")
	ct, err := c.Encrypt(msg)
	require.NoError(t, err)
	require.Len(t, ct, 32)

	padded := make([]byte, 32)
	copy(padded, msg)
	explicit, err := c.Encrypt(padded)
	require.NoError(t, err)
	require.Equal(t, explicit, ct)

	pt, err := c.Decrypt(ct)
	require.NoError(t, err)
	require.Equal(t, padded, pt)
	require.Equal(t, msg, TrimZeroFill(pt))
}

func TestTrimZeroFill_IsLossy(t *testing.T) {
	msg := []byte{'a', 0x00, 0x00}
	require.Equal(t, []byte{'a'}, TrimZeroFill(msg))
}

func TestEncrypt_EmptyInput(t *testing.T) {
	key, err := NewKey(KeySize128, sequentialKey(16))
	require.NoError(t, err)

	ct, err := New(key).Encrypt(nil)
	require.NoError(t, err)
	require.Empty(t, ct)

	pt, err := New(key).Decrypt(ct)
	require.NoError(t, err)
	require.Empty(t, pt)
}

func TestEncrypt_NoChaining(t *testing.T) {
	key, err := NewKey(KeySize128, sequentialKey(16))
	require.NoError(t, err)

	ct, err := New(key).Encrypt(bytes.Repeat([]byte{0x42}, 32))
	require.NoError(t, err)
	require.Equal(t, ct[:16], ct[16:])
}

func TestDecrypt_RejectsPartialBlock(t *testing.T) {
	key, err := NewKey(KeySize128, sequentialKey(16))
	require.NoError(t, err)

	_, err = New(key).Decrypt(make([]byte, 17))
	require.ErrorIs(t, err, crypto.ErrDecode)
}

func TestBlockOps_RejectWrongLength(t *testing.T) {
	key, err := NewKey(KeySize128, sequentialKey(16))
	require.NoError(t, err)
	c := New(key)

	require.ErrorIs(t, c.EncryptBlock(make([]byte, 16), make([]byte, 15)), crypto.ErrDecode)
	require.ErrorIs(t, c.DecryptBlock(make([]byte, 8), make([]byte, 16)), crypto.ErrDecode)
}

// =============================================================================
// UNINITIALIZED CIPHER TESTS
// =============================================================================

func TestCipher_KeyNotInitialized(t *testing.T) {
	var zero Cipher
	var nilCipher *Cipher

	for _, c := range []*Cipher{&zero, nilCipher, New(nil)} {
		_, err := c.Encrypt([]byte("data"))
		require.True(t, errors.Is(err, crypto.ErrKeyNotInitialized))

		_, err = c.Decrypt(make([]byte, 16))
		require.ErrorIs(t, err, crypto.ErrKeyNotInitialized)

		require.ErrorIs(t, c.EncryptBlock(make([]byte, 16), make([]byte, 16)), crypto.ErrKeyNotInitialized)
		require.ErrorIs(t, c.DecryptBlock(make([]byte, 16), make([]byte, 16)), crypto.ErrKeyNotInitialized)

		_, err = c.EncryptText("x")
		require.ErrorIs(t, err, crypto.ErrKeyNotInitialized)

		require.Equal(t, "AES", c.Name())
	}
}

// =============================================================================
// TEXT TESTS
// =============================================================================

func TestText_RoundTrip(t *testing.T) {
	key, err := NewKey(KeySize256, sequentialKey(32))
	require.NoError(t, err)
	c := New(key)

	for _, s := range []string{"", "hello", "exactly sixteen!", "a longer message spanning blocks", "grüße, 世界"} {
		ct, err := c.EncryptText(s)
		require.NoError(t, err)
		require.Zero(t, len(ct)%BlockSize)

		got, err := c.DecryptText(ct)
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
}

func TestText_SpaceFill(t *testing.T) {
	key, err := NewKey(KeySize128, sequentialKey(16))
	require.NoError(t, err)
	c := New(key)

	ct, err := c.EncryptText("abc")
	require.NoError(t, err)
	want, err := c.Encrypt([]byte("abc             "))
	require.NoError(t, err)
	require.Equal(t, want, ct)
}

func TestDecryptText_InvalidUTF8(t *testing.T) {
	key, err := NewKey(KeySize128, sequentialKey(16))
	require.NoError(t, err)
	c := New(key)

	ct, err := c.Encrypt([]byte{0xff, 0xfe, 0xfd})
	require.NoError(t, err)

	_, err = c.DecryptText(ct)
	require.ErrorIs(t, err, crypto.ErrDecode)
}

// =============================================================================
// CONCURRENCY TESTS
// =============================================================================

func TestCipher_ConcurrentUse(t *testing.T) {
	key, err := NewKey(KeySize192, sequentialKey(24))
	require.NoError(t, err)
	c := New(key)

	msg := bytes.Repeat([]byte("concurrent"), 20)
	want, err := c.Encrypt(msg)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				ct, err := c.Encrypt(msg)
				if err != nil {
					errs <- err
					return
				}
				if !bytes.Equal(ct, want) {
					errs <- errors.New("ciphertext diverged under concurrent use")
					return
				}
				if _, err := c.Decrypt(ct); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

// =============================================================================
// CAPABILITY TESTS
// =============================================================================

func TestCipher_SatisfiesCapability(t *testing.T) {
	key, err := NewKey(KeySize128, sequentialKey(16))
	require.NoError(t, err)

	var sc crypto.SymmetricCipher = New(key)
	ct, err := crypto.Encrypt(sc, []byte("capability"))
	require.NoError(t, err)
	pt, err := crypto.Decrypt(sc, ct)
	require.NoError(t, err)
	require.Equal(t, "capability", string(TrimZeroFill(pt)))
	require.Equal(t, "AES-128", crypto.NameOf(sc))
}
