// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// helpers.go - Input and path helpers shared by spectrum commands.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// maxStdinBytes bounds how much input a command reads from a pipe.
const maxStdinBytes = 64 << 20

// readInput returns the positional argument at index, "-" meaning stdin. With
// no argument, stdin is read when it is not a terminal. One trailing newline
// is dropped from piped input.
func (a *App) readInput(p *ArgParser, index int, what string) (string, error) {
	if index < p.PositionalCount() {
		arg := JoinPositionalArgs(p, index)
		if arg != "-" {
			return arg, nil
		}
	} else if a.StdinIsTerminal() {
		return "", NewUsageError(what, "", "missing (pass it as an argument or pipe it on stdin)")
	}

	data, err := io.ReadAll(io.LimitReader(a.Stdin, maxStdinBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) > maxStdinBytes {
		return "", NewUsageError(what, "", fmt.Sprintf("stdin exceeds %d bytes", maxStdinBytes))
	}

	s := string(data)
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}

// compactHex removes whitespace so wrapped or spaced hex dumps decode.
func compactHex(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// ValidateOutputPath ensures path is safe for writing.
// SECURITY: Paths must resolve inside the home, working or temp directory.
func ValidateOutputPath(path string) (string, error) {
	if strings.Contains(path, "..") {
		return "", errors.New("path traversal not allowed")
	}

	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	home, _ := os.UserHomeDir()
	cwd, _ := os.Getwd()

	for _, dir := range []string{home, cwd, os.TempDir()} {
		if dir == "" {
			continue
		}
		if isPathWithinDir(abs, dir) {
			return abs, nil
		}
	}
	return "", fmt.Errorf("path must be within home, cwd, or temp directory")
}

// isPathWithinDir checks if a path is within a directory, ensuring proper path boundaries.
// SECURITY: Prevents HasPrefix bypass where /home/userEVIL would pass check for /home/user.
func isPathWithinDir(path, dir string) bool {
	cleanPath := filepath.Clean(path)
	cleanDir := filepath.Clean(dir)

	if cleanPath == cleanDir {
		return true
	}
	return strings.HasPrefix(cleanPath, cleanDir+string(filepath.Separator))
}
