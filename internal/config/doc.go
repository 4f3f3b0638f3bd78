// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for spectrum.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure
//   - AESConfig: Default key size for generated AES keys
//   - OutputConfig: Output format and colour
//   - LogConfig: slog level for the command-line tool
//   - BenchmarkConfig: Iterations, payload size and results directory
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (SPECTRUM_*)
//   - ~/.spectrum/config.toml
//   - ~/.spectrum/config.json
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	size, _ := cfg.AESKeySize()
package config
