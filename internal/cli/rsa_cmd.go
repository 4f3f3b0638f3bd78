// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// rsa_cmd.go - The "rsa" command: textbook key generation and per-byte
// encryption.

package cli

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/holiman/uint256"

	"github.com/Poizon7/spectrum/internal/crypto"
	"github.com/Poizon7/spectrum/internal/crypto/rsa"
)

func (a *App) runRSA(raw []string) (interface{}, error) {
	p := NewArgParser(raw)

	switch p.Subcommand() {
	case "keygen", "generate":
		return a.rsaKeygen()
	case "encrypt", "enc":
		return a.rsaEncrypt(p)
	case "decrypt", "dec":
		return a.rsaDecrypt(p)
	default:
		return nil, subcommandError("rsa", p.Subcommand(), "keygen", "encrypt", "decrypt")
	}
}

func (a *App) rsaKeygen() (interface{}, error) {
	kp, err := rsa.GenerateKey(a.Random)
	if err != nil {
		return nil, NewCommandError("rsa", "keygen", err)
	}

	data := RSAKeyData{
		KeyID: uuid.NewString(),
		N:     kp.N.Dec(),
		E:     kp.E.Dec(),
		D:     kp.D.Dec(),
	}
	a.log.Debug("generated rsa key", "key_id", data.KeyID, "bits", kp.N.BitLen())

	a.printf("n=%s\n", data.N)
	a.printf("e=%s\n", data.E)
	a.printf("d=%s\n", data.D)
	return data, nil
}

// rsaInt parses a required decimal flag.
func rsaInt(p *ArgParser, name, fallback string) (*uint256.Int, error) {
	s := p.FlagOrDefault(name, fallback)
	if s == "" {
		return nil, NewUsageErrorWithExample("--"+name, "", "a decimal value is required",
			"spectrum rsa keygen  # then pass --n and --e or --d")
	}
	z, err := rsa.ParseInt(s)
	if err != nil {
		return nil, NewUsageError("--"+name, s, err.Error())
	}
	return z, nil
}

func (a *App) rsaEncrypt(p *ArgParser) (interface{}, error) {
	n, err := rsaInt(p, "n", "")
	if err != nil {
		return nil, err
	}
	e, err := rsaInt(p, "e", strconv.Itoa(rsa.PublicExponent))
	if err != nil {
		return nil, err
	}

	text, err := a.readInput(p, 1, "message")
	if err != nil {
		return nil, err
	}

	kp := &rsa.KeyPair{N: *n, E: *e}
	symbols, err := kp.EncryptBytes([]byte(text))
	if err != nil {
		return nil, NewCommandError("rsa", "encrypt", err)
	}

	out := rsa.FormatSymbols(symbols)
	a.printf("%s\n", out)
	return RSAResultData{Symbols: decimals(symbols)}, nil
}

func (a *App) rsaDecrypt(p *ArgParser) (interface{}, error) {
	n, err := rsaInt(p, "n", "")
	if err != nil {
		return nil, err
	}
	d, err := rsaInt(p, "d", "")
	if err != nil {
		return nil, err
	}

	input, err := a.readInput(p, 1, "symbols")
	if err != nil {
		return nil, err
	}
	symbols, err := rsa.ParseSymbols(input)
	if err != nil {
		return nil, NewUsageError("symbols", "", err.Error())
	}

	kp := &rsa.KeyPair{N: *n, D: *d}
	plain, err := kp.DecryptBytes(symbols)
	if err != nil {
		return nil, NewCommandError("rsa", "decrypt", err)
	}
	text, err := crypto.BytesToText(plain)
	if err != nil {
		return nil, NewCommandError("rsa", "decrypt", err)
	}

	a.printf("%s\n", text)
	return RSAResultData{Symbols: decimals(symbols), Text: text}, nil
}

func decimals(symbols []*uint256.Int) []string {
	out := make([]string, len(symbols))
	for i, s := range symbols {
		out[i] = s.Dec()
	}
	return out
}
