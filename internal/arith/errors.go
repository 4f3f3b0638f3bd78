// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package arith

import "errors"

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrOutOfRange indicates an operand that does not fit the signed 255-bit
	// range the Bezout coefficients are tracked in.
	ErrOutOfRange = errors.New("operand exceeds 255-bit range")
	// ErrOverflow indicates a product or sum that does not fit in 256 bits.
	ErrOverflow = errors.New("256-bit overflow")
	// ErrZeroModulus indicates a modular operation with modulus zero.
	ErrZeroModulus = errors.New("modulus is zero")
)
