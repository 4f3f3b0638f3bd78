// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sha implements the SHA-256 hash function (FIPS 180-4).
//
// SHA256 is stateless: every Hash call pads the whole message, compresses it
// chunk by chunk and returns a fresh 32-byte digest. There is no streaming
// interface and no HMAC.
//
//	var h sha.SHA256
//	digest := h.Hash([]byte("abc"))
//	fmt.Println(h.HashHex([]byte("abc")))
//	// ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
package sha
