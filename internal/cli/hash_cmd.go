// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// hash_cmd.go - The "hash" command.

package cli

import (
	"github.com/Poizon7/spectrum/internal/crypto"
	"github.com/Poizon7/spectrum/internal/crypto/sha"
)

func (a *App) runHash(raw []string) (interface{}, error) {
	p := NewArgParser(raw, "hex")

	// Positionals start at 0: hash has no subcommand.
	input, err := a.readInput(p, 0, "input")
	if err != nil {
		return nil, err
	}

	message := []byte(input)
	if p.BoolFlag("hex") {
		message, err = crypto.HexToBytes(compactHex(input))
		if err != nil {
			return nil, NewUsageError("input", "", err.Error())
		}
	}

	h := sha.New()
	digest := crypto.BytesToHex(crypto.Hash(h, message))

	a.printf("%s\n", HighlightStyle.Render(digest))
	return HashData{Algorithm: h.Name(), Digest: digest, InputBytes: len(message)}, nil
}
