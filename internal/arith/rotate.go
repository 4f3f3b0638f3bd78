// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package arith

import "math/bits"

// RotateRight32 rotates x right by n bits. n is taken modulo 32.
func RotateRight32(x uint32, n uint) uint32 {
	return bits.RotateLeft32(x, -int(n%32))
}
