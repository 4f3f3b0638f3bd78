// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package rsa implements textbook RSA over a fixed pool of two primes.
//
// This is a teaching primitive, not a secure cipher: there is no padding,
// messages are encrypted one byte symbol at a time, and the modulus is built
// from a public two-entry prime pool. Values live in a fixed 256-bit unsigned
// domain (github.com/holiman/uint256); any product or operand that does not
// fit fails with crypto.ErrArithmeticOverflow instead of wrapping.
//
//	kp, err := rsa.GenerateKey(rand.Reader)
//	c, err := rsa.Encrypt(uint256.NewInt('A'), &kp.E, &kp.N)
//	m, err := rsa.Decrypt(c, &kp.D, &kp.N)
package rsa
