// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package aes

import (
	"bytes"
	"fmt"
	"io"

	"github.com/Poizon7/spectrum/internal/crypto"
)

// Cipher encrypts and decrypts with a fixed Key. The zero value has no key
// and every operation on it fails with crypto.ErrKeyNotInitialized.
type Cipher struct {
	key *Key
}

var (
	_ crypto.SymmetricCipher = (*Cipher)(nil)
	_ crypto.Named           = (*Cipher)(nil)
)

// New returns a Cipher bound to key.
func New(key *Key) *Cipher {
	return &Cipher{key: key}
}

// NewRandom generates a key of the given size from random and binds it.
func NewRandom(size KeySize, random io.Reader) (*Cipher, error) {
	key, err := GenerateKey(size, random)
	if err != nil {
		return nil, err
	}
	return New(key), nil
}

// Key returns the bound key, or nil.
func (c *Cipher) Key() *Key {
	if c == nil {
		return nil
	}
	return c.key
}

// Name returns "AES-128", "AES-192" or "AES-256".
func (c *Cipher) Name() string {
	if c == nil || c.key == nil {
		return "AES"
	}
	return c.key.size.String()
}

func (c *Cipher) ready() error {
	if c == nil || c.key == nil {
		return fmt.Errorf("aes: %w", crypto.ErrKeyNotInitialized)
	}
	return nil
}

// =============================================================================
// BUFFER OPERATIONS
// =============================================================================

// Encrypt encrypts plaintext block by block, zero-filling a short final
// block. The result length is len(plaintext) rounded up to BlockSize.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	return c.encryptFilled(plaintext, 0x00)
}

// Decrypt decrypts ciphertext block by block. ciphertext must be a whole
// number of blocks; anything else fails with crypto.ErrDecode. Zero fill
// added by Encrypt is not removed.
func (c *Cipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	if len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a multiple of %d", crypto.ErrDecode, len(ciphertext), BlockSize)
	}

	out := make([]byte, len(ciphertext))
	var b Block
	for off := 0; off < len(ciphertext); off += BlockSize {
		copy(b[:], ciphertext[off:off+BlockSize])
		decryptBlock(&b, c.key)
		copy(out[off:], b[:])
	}
	return out, nil
}

func (c *Cipher) encryptFilled(plaintext []byte, fill byte) ([]byte, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	n := (len(plaintext) + BlockSize - 1) / BlockSize * BlockSize
	out := make([]byte, n)
	var b Block
	for off := 0; off < n; off += BlockSize {
		m := copy(b[:], plaintext[off:min(off+BlockSize, len(plaintext))])
		for i := m; i < BlockSize; i++ {
			b[i] = fill
		}
		encryptBlock(&b, c.key)
		copy(out[off:], b[:])
	}
	return out, nil
}

// =============================================================================
// BLOCK OPERATIONS
// =============================================================================

// EncryptBlock encrypts exactly one block from src into dst. dst and src may
// overlap entirely.
func (c *Cipher) EncryptBlock(dst, src []byte) error {
	if err := c.ready(); err != nil {
		return err
	}
	if len(src) != BlockSize || len(dst) < BlockSize {
		return fmt.Errorf("%w: block operations need %d bytes", crypto.ErrDecode, BlockSize)
	}
	var b Block
	copy(b[:], src)
	encryptBlock(&b, c.key)
	copy(dst, b[:])
	return nil
}

// DecryptBlock decrypts exactly one block from src into dst.
func (c *Cipher) DecryptBlock(dst, src []byte) error {
	if err := c.ready(); err != nil {
		return err
	}
	if len(src) != BlockSize || len(dst) < BlockSize {
		return fmt.Errorf("%w: block operations need %d bytes", crypto.ErrDecode, BlockSize)
	}
	var b Block
	copy(b[:], src)
	decryptBlock(&b, c.key)
	copy(dst, b[:])
	return nil
}

// =============================================================================
// TEXT OPERATIONS
// =============================================================================

// EncryptText encrypts s, filling the final block with spaces.
func (c *Cipher) EncryptText(s string) ([]byte, error) {
	return c.encryptFilled([]byte(s), ' ')
}

// DecryptText decrypts ciphertext produced by EncryptText and trims trailing
// spaces. Text that genuinely ended in spaces loses them.
func (c *Cipher) DecryptText(ciphertext []byte) (string, error) {
	plain, err := c.Decrypt(ciphertext)
	if err != nil {
		return "", err
	}
	s, err := crypto.BytesToText(bytes.TrimRight(plain, " "))
	if err != nil {
		return "", fmt.Errorf("aes: decrypted text: %w", err)
	}
	return s, nil
}

// TrimZeroFill removes trailing zero bytes left by Encrypt's block filling.
// Plaintext that ended in zero bytes is truncated; carry the true length
// alongside the ciphertext when exact round trips matter.
func TrimZeroFill(plain []byte) []byte {
	return bytes.TrimRight(plain, "\x00")
}
