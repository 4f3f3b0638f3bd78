// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// algorithms_cmd.go - The "algorithms" command.

package cli

import (
	"strconv"
	"strings"

	"github.com/Poizon7/spectrum/internal/crypto"
	"github.com/Poizon7/spectrum/internal/util"
)

// maxDescriptionWidth caps the description column.
const maxDescriptionWidth = 48

// descriptionWidth fits the description column to the terminal; piped output
// always gets the full width.
func (a *App) descriptionWidth() int {
	if !a.StdoutIsTerminal() {
		return maxDescriptionWidth
	}
	// The other seven columns take roughly 80 cells.
	return min(maxDescriptionWidth, max(16, GetTerminalWidth()-80))
}

func (a *App) runAlgorithms(raw []string) (interface{}, error) {
	p := NewArgParser(raw)

	algs := crypto.Algorithms()
	if t := p.Flag("type"); t != "" {
		switch crypto.AlgorithmType(strings.ToLower(t)) {
		case crypto.AlgorithmTypeSymmetric, crypto.AlgorithmTypeAsymmetric, crypto.AlgorithmTypeHash:
			algs = crypto.AlgorithmsByType(crypto.AlgorithmType(strings.ToLower(t)))
		default:
			return nil, NewUsageErrorWithExample("--type", t, "must be symmetric, asymmetric or hash", "spectrum algorithms --type hash")
		}
	}
	if name := p.Subcommand(); name != "" {
		info, ok := crypto.LookupAlgorithm(name)
		if !ok {
			return nil, NewUsageError("algorithm", name, "not implemented")
		}
		algs = []crypto.AlgorithmInfo{info}
	}

	width := a.descriptionWidth()
	rows := make([][]string, 0, len(algs))
	for _, alg := range algs {
		rows = append(rows, []string{
			alg.Name,
			string(alg.Type),
			bitsOrDash(alg.KeySize),
			bytesOrDash(alg.BlockSize),
			bytesOrDash(alg.OutputSize),
			countOrDash(alg.Rounds),
			alg.Standard,
			util.Truncate(alg.Description, width),
		})
	}
	a.printf("%s", RenderTable(
		[]string{"Name", "Type", "Key", "Block", "Output", "Rounds", "Standard", "Description"},
		rows,
	))

	return AlgorithmsData{Algorithms: algs}, nil
}

func bitsOrDash(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n) + " bit"
}

func bytesOrDash(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n) + " B"
}

func countOrDash(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n)
}
