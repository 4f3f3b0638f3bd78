// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package crypto defines the capabilities shared by the spectrum primitives.
//
// Two small interfaces let callers swap algorithms behind one call shape:
//   - SymmetricCipher: Encrypt/Decrypt over owned byte buffers (AES)
//   - Hasher: one-shot digest of a message (SHA-256)
//
// The algorithm packages live underneath:
//   - crypto/aes: AES-128/192/256 block cipher
//   - crypto/rsa: textbook RSA over a fixed prime pool
//   - crypto/sha: SHA-256
//
// # Errors
//
// Every failure wraps one of the sentinel errors so callers can branch with
// errors.Is:
//
//	ct, err := crypto.Encrypt(cipher, plaintext)
//	if errors.Is(err, crypto.ErrKeyNotInitialized) {
//	    ...
//	}
//
// # Hex helpers
//
// BytesToHex and HexToBytes convert between byte slices and lowercase hex.
// HexToBytes rejects odd-length or non-hex input with ErrDecode instead of
// truncating.
package crypto
