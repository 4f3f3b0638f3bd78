// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// =============================================================================
// COLUMN LAYOUT
// =============================================================================

// StringWidth returns the number of terminal columns s occupies.
// Double-width characters (CJK) count as 2 columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PadRight pads s with spaces to width columns. Wider strings are returned
// unchanged.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Truncate shortens s to at most width columns, ending in "..." when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// =============================================================================
// SIZES AND RATES
// =============================================================================

// FormatBytes renders n using binary units, e.g. "4.0 KiB".
func FormatBytes(n int) string {
	if n < 0 {
		return "N/A"
	}
	return humanize.IBytes(uint64(n))
}

// FormatRate renders a throughput in decimal megabytes per second.
func FormatRate(mbps float64) string {
	if mbps <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%s MB/s", humanize.CommafWithDigits(mbps, 2))
}
