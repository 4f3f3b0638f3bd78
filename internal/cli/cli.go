// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command parsing, dispatch and output for spectrum.

package cli

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/Poizon7/spectrum/internal/config"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdHelp Command = iota
	CmdAES
	CmdRSA
	CmdHash
	CmdBench
	CmdAlgorithms
	CmdConfig
	CmdVersion
)

var commandNames = map[string]Command{
	"help":       CmdHelp,
	"aes":        CmdAES,
	"rsa":        CmdRSA,
	"hash":       CmdHash,
	"sha256":     CmdHash,
	"bench":      CmdBench,
	"benchmark":  CmdBench,
	"algorithms": CmdAlgorithms,
	"algs":       CmdAlgorithms,
	"config":     CmdConfig,
	"version":    CmdVersion,
}

// String returns the canonical command name.
func (c Command) String() string {
	switch c {
	case CmdAES:
		return "aes"
	case CmdRSA:
		return "rsa"
	case CmdHash:
		return "hash"
	case CmdBench:
		return "bench"
	case CmdAlgorithms:
		return "algorithms"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	default:
		return "help"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	JSON       bool   // Output in JSON format
	Verbose    bool   // Debug logging on stderr
	NoColor    bool   // Disable colour regardless of terminal
	ConfigPath string // Explicit config file

	// Raw holds the command's own arguments, global flags removed.
	Raw []string
}

const usageText = `spectrum - AES, RSA and SHA-256 from first principles

Usage:
  spectrum <command> [subcommand] [flags] [input]

Commands:
  aes keygen [--bits N] [--out FILE]          Generate an AES key (hex)
  aes encrypt (--key HEX | --key-file FILE) [--text] [INPUT]
                                              Encrypt hex INPUT (or text with --text)
  aes decrypt (--key HEX | --key-file FILE) [--text] [--trim] [INPUT]
                                              Decrypt hex INPUT
  rsa keygen                                  Generate a textbook RSA key pair
  rsa encrypt --n N [--e E] [TEXT]            Encrypt TEXT per byte
  rsa decrypt --n N --d D [SYMBOLS]           Decrypt comma-separated symbols
  hash [--hex] [INPUT]                        SHA-256 digest of INPUT
  bench [--iterations N] [--size BYTES] [--save]
                                              Measure throughput of every primitive
  algorithms [--type TYPE]                    List implemented algorithms
  config [show|path|init|get KEY|set KEY VAL] Configuration
  version                                     Show version information
  help                                        Show this help

Global flags:
  --json            Output a JSON envelope
  --config PATH     Use a specific config file
  --verbose, -v     Debug logging on stderr
  --no-color        Disable colour

INPUT is read from stdin when omitted and stdin is not a terminal, or when
it is "-".

Examples:
  spectrum aes keygen --bits 128
  spectrum aes encrypt --key 000102030405060708090a0b0c0d0e0f 00112233445566778899aabbccddeeff
  echo -n hello | spectrum hash
  spectrum bench --iterations 50 --save
`

// Parse separates global flags from the command and its arguments.
func Parse(raw []string) (Command, Args, error) {
	var args Args
	cmd := CmdHelp
	found := false

	for i := 0; i < len(raw); i++ {
		arg := raw[i]
		switch {
		case arg == "--json":
			args.JSON = true
		case arg == "--verbose" || arg == "-v":
			args.Verbose = true
		case arg == "--no-color":
			args.NoColor = true
		case arg == "--config" && !found:
			if i+1 >= len(raw) {
				return cmd, args, NewUsageError("--config", "", "requires a path")
			}
			i++
			args.ConfigPath = raw[i]
		case strings.HasPrefix(arg, "--config=") && !found:
			args.ConfigPath = strings.TrimPrefix(arg, "--config=")
		case !found && (arg == "--help" || arg == "-h"):
			found = true
		case !found && arg == "--version":
			cmd, found = CmdVersion, true
		case !found && !strings.HasPrefix(arg, "-"):
			c, ok := commandNames[strings.ToLower(arg)]
			if !ok {
				return cmd, args, NewUsageErrorWithExample("command", arg, "unknown command", "spectrum help")
			}
			cmd, found = c, true
		default:
			args.Raw = append(args.Raw, arg)
		}
	}

	return cmd, args, nil
}

// =============================================================================
// APPLICATION
// =============================================================================

// App runs spectrum commands against injectable streams.
type App struct {
	Stdin            io.Reader
	Stdout           io.Writer
	Stderr           io.Writer
	Random           io.Reader
	StdinIsTerminal  func() bool
	StdoutIsTerminal func() bool

	cfg  *config.Config
	log  *slog.Logger
	json bool
}

// NewApp returns an App wired to the process streams and crypto/rand.
func NewApp() *App {
	return &App{
		Stdin:            os.Stdin,
		Stdout:           os.Stdout,
		Stderr:           os.Stderr,
		Random:           rand.Reader,
		StdinIsTerminal:  IsTTY,
		StdoutIsTerminal: IsStdoutTTY,
	}
}

// Main runs spectrum with the process streams and returns the exit code.
func Main(ctx context.Context, raw []string) int {
	return NewApp().Run(ctx, raw)
}

// Run executes one command and returns the process exit code.
func (a *App) Run(ctx context.Context, raw []string) int {
	cmd, args, err := Parse(raw)
	if err != nil {
		a.json = args.JSON
		return a.fail(cmd, err)
	}

	cfg, err := a.loadConfig(cmd, args)
	if err != nil {
		a.json = args.JSON
		return a.fail(cmd, err)
	}
	a.cfg = cfg
	a.json = args.JSON || cfg.Output.Format == config.FormatJSON

	level := cfg.SlogLevel()
	if args.Verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(a.Stderr, &slog.HandlerOptions{Level: level}))

	configureColors(wantColors(cfg.Output.Color, args.NoColor, a.StdoutIsTerminal()))

	a.log.Debug("running command", "command", cmd.String(), "args", len(args.Raw))

	data, err := a.dispatch(ctx, cmd, args)
	if err != nil {
		return a.fail(cmd, err)
	}

	if a.json {
		if err := NewJSONResponse(cmd.String(), data).Write(a.Stdout); err != nil {
			fmt.Fprintf(a.Stderr, "failed to write output: %v\n", err)
			return ExitGeneralError
		}
	}
	return ExitSuccess
}

// loadConfig loads the explicit or default config. A broken config still
// lets "config", "help" and "version" run on defaults so it can be repaired.
func (a *App) loadConfig(cmd Command, args Args) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err == nil {
		return cfg, nil
	}

	switch cmd {
	case CmdConfig, CmdHelp, CmdVersion:
		fmt.Fprintf(a.Stderr, "%s %v (using defaults)\n", WarningStyle.Render("Warning:"), err)
		return config.Default(), nil
	}
	return nil, NewCommandError("config", "load", err)
}

func (a *App) fail(cmd Command, err error) int {
	if a.json {
		if werr := NewJSONErrorResponse(cmd.String(), err).Write(a.Stdout); werr != nil {
			fmt.Fprintf(a.Stderr, "failed to write output: %v\n", werr)
		}
	} else {
		DisplayError(a.Stderr, err)
	}
	return ExitCode(err)
}

func (a *App) dispatch(ctx context.Context, cmd Command, args Args) (interface{}, error) {
	switch cmd {
	case CmdAES:
		return a.runAES(args.Raw)
	case CmdRSA:
		return a.runRSA(args.Raw)
	case CmdHash:
		return a.runHash(args.Raw)
	case CmdBench:
		return a.runBench(ctx, args.Raw)
	case CmdAlgorithms:
		return a.runAlgorithms(args.Raw)
	case CmdConfig:
		return a.runConfig(args)
	case CmdVersion:
		return a.runVersion()
	default:
		return a.runHelp()
	}
}

// printf writes human-readable output; it is silent in JSON mode.
func (a *App) printf(format string, args ...interface{}) {
	if a.json {
		return
	}
	fmt.Fprintf(a.Stdout, format, args...)
}

// =============================================================================
// HELP / VERSION
// =============================================================================

func (a *App) runHelp() (interface{}, error) {
	if a.json {
		return map[string]string{"usage": usageText}, nil
	}
	fmt.Fprint(a.Stdout, usageText)
	return nil, nil
}

func (a *App) runVersion() (interface{}, error) {
	data := VersionData{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
	a.printf("%s %s\n", TitleStyle.Render("spectrum"), data.Version)
	a.printf("%s%s\n", RenderLabel("Commit:"), data.GitCommit)
	a.printf("%s%s\n", RenderLabel("Built:"), data.BuildDate)
	a.printf("%s%s\n", RenderLabel("Go:"), data.GoVersion)
	return data, nil
}

// subcommandError reports a missing or unknown subcommand.
func subcommandError(command, got string, valid ...string) error {
	reason := "expected one of: " + strings.Join(valid, ", ")
	if got == "" {
		return NewUsageErrorWithExample(command+" subcommand", "", reason, "spectrum "+command+" "+valid[0])
	}
	return NewUsageErrorWithExample(command+" subcommand", got, reason, "spectrum "+command+" "+valid[0])
}
