// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package arith provides the finite-field and integer arithmetic shared by the
// cipher and hash engines.
//
// # GF(2^8)
//
// Multiply implements multiplication in the AES field with reduction
// polynomial x^8+x^4+x^3+x+1 (0x11B):
//
//	arith.Multiply(0x57, 0x83) // 0xc1
//
// # Multi-precision integers
//
// RSA works in a fixed 256-bit unsigned domain backed by
// github.com/holiman/uint256. ModExp is square-and-multiply using a full-width
// MulMod, so intermediate products never wrap. ExtendedGCD is the iterative
// extended Euclidean algorithm; its Bezout coefficients are returned in two's
// complement and can be tested with (*uint256.Int).Sign.
//
// # Bit rotation
//
// RotateRight32 is the 32-bit right rotation used by the SHA-256 schedule and
// compression functions.
package arith
