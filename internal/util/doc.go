// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides file and display helpers shared by the spectrum
// command-line tool.
//
// # Key Functions
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//   - WriteSecretFile: AtomicWriteFile with owner-only permissions, for keys
//
// Display:
//   - StringWidth, PadRight, Truncate: column-aware text layout
//   - FormatBytes, FormatRate: human readable sizes and throughput
//
// # Usage
//
//	// Write files atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0644)
//
//	// Key material is never world readable
//	err := util.WriteSecretFile(keyPath, []byte(key.Hex()))
package util
