// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line interface parsing and execution for
// spectrum.
//
// Every command returns its result as data and an error; App.Run renders
// the data as text or as a JSON envelope and maps the error to an exit code.
//
// # Key Types
//
//   - Command: Enumeration of all available CLI commands
//   - Args: Parsed global flags plus the command's own arguments
//   - ArgParser: Uniform flag and positional parsing for subcommands
//   - App: Runs commands against injectable stdin, stdout, stderr and RNG
//   - JSONResponse: Envelope written in --json mode
//
// # Usage
//
//	os.Exit(cli.Main(ctx, os.Args[1:]))
//
// Tests drive an App directly:
//
//	app := &cli.App{Stdin: in, Stdout: &out, Stderr: &errOut, Random: rand.Reader, ...}
//	code := app.Run(ctx, []string{"hash", "abc"})
//
// # Commands Overview
//
//   - aes: keygen, encrypt, decrypt (hex or --text)
//   - rsa: keygen, encrypt, decrypt (per-byte textbook RSA)
//   - hash: SHA-256 digest
//   - bench: throughput of every primitive, optionally saved
//   - algorithms: inventory of implemented algorithms
//   - config: show, path, init, get, set
//   - version, help
//
// Exit codes: 0 success, 1 operation failed, 2 invalid usage.
package cli
