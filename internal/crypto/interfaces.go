// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package crypto

// SymmetricCipher encrypts and decrypts byte buffers under a key held by the
// implementation. Implementations are read-only after construction and safe
// for concurrent use.
type SymmetricCipher interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// Hasher computes a fixed-size digest of a whole message.
type Hasher interface {
	Hash(message []byte) []byte
}

// Named is implemented by primitives that can report their algorithm name,
// e.g. "AES-256" or "SHA-256".
type Named interface {
	Name() string
}

// Encrypt encrypts plaintext with c.
func Encrypt(c SymmetricCipher, plaintext []byte) ([]byte, error) {
	if c == nil {
		return nil, ErrKeyNotInitialized
	}
	return c.Encrypt(plaintext)
}

// Decrypt decrypts ciphertext with c.
func Decrypt(c SymmetricCipher, ciphertext []byte) ([]byte, error) {
	if c == nil {
		return nil, ErrKeyNotInitialized
	}
	return c.Decrypt(ciphertext)
}

// Hash returns h's digest of message.
func Hash(h Hasher, message []byte) []byte {
	return h.Hash(message)
}

// NameOf returns the algorithm name of v, or "unknown".
func NameOf(v any) string {
	if n, ok := v.(Named); ok {
		return n.Name()
	}
	return "unknown"
}
