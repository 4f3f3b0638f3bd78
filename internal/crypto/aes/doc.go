// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package aes implements the AES block cipher for 128, 192 and 256-bit keys.
//
// A Key holds the original key material and its expanded round-key schedule.
// The schedule is computed once in NewKey and never changes, so a Cipher can
// be shared between goroutines without locking:
//
//	key, err := aes.NewKey(aes.KeySize128, material)
//	if err != nil {
//	    return err
//	}
//	c := aes.New(key)
//	ct, err := c.Encrypt(plaintext)
//	pt, err := c.Decrypt(ct)
//
// # Block filling
//
// Encrypt splits its input into 16-byte blocks and zero-fills a short final
// block. This is not a padding scheme: Decrypt returns the filled length, and
// the caller must track the true plaintext length. TrimZeroFill strips
// trailing zeros and is lossy for plaintext that legitimately ends in zero
// bytes. No chaining mode is applied; equal plaintext blocks produce equal
// ciphertext blocks.
//
// EncryptText and DecryptText fill with spaces instead and validate UTF-8 on
// the way back.
package aes
