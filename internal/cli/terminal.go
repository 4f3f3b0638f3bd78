// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection for spectrum.
//
// USABILITY: TTY detection for proper terminal handling
//
// Input is read from stdin only when stdin is not a terminal, and colour
// is used only when stdout is one.

package cli

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY returns true if stdin is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// =============================================================================
// TERMINAL WIDTH DETECTION
// =============================================================================

const (
	// DefaultTerminalWidth is the fallback width when detection fails
	DefaultTerminalWidth = 80

	// MinTerminalWidth is the minimum width we'll use for layout
	MinTerminalWidth = 40
)

// GetTerminalWidth returns the current terminal width.
// Returns DefaultTerminalWidth (80) if width cannot be determined.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	return width
}

// =============================================================================
// COLOR OUTPUT CONTROL
// =============================================================================

var (
	colorsMu      sync.Mutex
	colorsEnabled bool
)

// configureColors switches lipgloss between the terminal's detected profile
// and plain ASCII output.
func configureColors(enabled bool) {
	colorsMu.Lock()
	defer colorsMu.Unlock()

	colorsEnabled = enabled
	if enabled {
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ColorsEnabled reports the current colour decision.
func ColorsEnabled() bool {
	colorsMu.Lock()
	defer colorsMu.Unlock()
	return colorsEnabled
}

// wantColors combines configuration, flags and terminal detection.
// FORCE_COLOR overrides the TTY check but not an explicit opt-out.
func wantColors(configured, noColorFlag, stdoutTTY bool) bool {
	if !configured || noColorFlag {
		return false
	}
	return stdoutTTY || os.Getenv("FORCE_COLOR") != ""
}
