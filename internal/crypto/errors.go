// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package crypto

import "errors"

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrKeySizeMismatch indicates key material whose length does not match the
	// declared AES variant (16, 24 or 32 bytes).
	ErrKeySizeMismatch = errors.New("key size mismatch")
	// ErrKeyNotInitialized indicates a cipher used before a key schedule exists.
	ErrKeyNotInitialized = errors.New("key not initialized")
	// ErrDecode indicates malformed hex, malformed ciphertext framing, or bytes
	// that are not valid UTF-8 where text is expected.
	ErrDecode = errors.New("decode error")
	// ErrArithmeticOverflow indicates an RSA value outside the 256-bit integer
	// domain or outside the range of the modulus.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
)
