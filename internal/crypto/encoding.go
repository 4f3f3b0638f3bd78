// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package crypto

import (
	"fmt"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// BytesToHex renders b as lowercase hex, two characters per byte.
func BytesToHex(b []byte) string {
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = hexDigits[v>>4]
		out[i*2+1] = hexDigits[v&0x0f]
	}
	return string(out)
}

// HexToBytes parses s as hex. Upper- and lowercase digits are accepted. Odd
// length or any non-hex character fails with ErrDecode.
func HexToBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd hex length %d", ErrDecode, len(s))
	}

	out := make([]byte, len(s)/2)
	for i := 0; i < len(out); i++ {
		hi, ok := nibble(s[i*2])
		if !ok {
			return nil, fmt.Errorf("%w: invalid hex character %q at offset %d", ErrDecode, s[i*2], i*2)
		}
		lo, ok := nibble(s[i*2+1])
		if !ok {
			return nil, fmt.Errorf("%w: invalid hex character %q at offset %d", ErrDecode, s[i*2+1], i*2+1)
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// BytesToText returns b as a string, failing with ErrDecode when b is not
// valid UTF-8.
func BytesToText(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: invalid UTF-8", ErrDecode)
	}
	return string(b), nil
}
