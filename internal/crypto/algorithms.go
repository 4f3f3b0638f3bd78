// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package crypto

import "strings"

// =============================================================================
// TYPES
// =============================================================================

// AlgorithmType represents the category of a primitive.
type AlgorithmType string

const (
	AlgorithmTypeSymmetric  AlgorithmType = "symmetric"
	AlgorithmTypeAsymmetric AlgorithmType = "asymmetric"
	AlgorithmTypeHash       AlgorithmType = "hash"
)

// AlgorithmInfo describes a primitive implemented by this module.
type AlgorithmInfo struct {
	Name        string        `json:"name"`
	Type        AlgorithmType `json:"type"`
	KeySize     int           `json:"key_size,omitempty"`   // bits
	BlockSize   int           `json:"block_size,omitempty"` // bytes
	OutputSize  int           `json:"output_size,omitempty"`
	Rounds      int           `json:"rounds,omitempty"`
	Description string        `json:"description,omitempty"`
	Standard    string        `json:"standard,omitempty"`
}

// =============================================================================
// INVENTORY
// =============================================================================

var algorithms = []AlgorithmInfo{
	{
		Name:        "AES-128",
		Type:        AlgorithmTypeSymmetric,
		KeySize:     128,
		BlockSize:   16,
		Rounds:      10,
		Description: "Advanced Encryption Standard, zero-filled blocks, no chaining mode",
		Standard:    "FIPS 197",
	},
	{
		Name:        "AES-192",
		Type:        AlgorithmTypeSymmetric,
		KeySize:     192,
		BlockSize:   16,
		Rounds:      12,
		Description: "Advanced Encryption Standard, zero-filled blocks, no chaining mode",
		Standard:    "FIPS 197",
	},
	{
		Name:        "AES-256",
		Type:        AlgorithmTypeSymmetric,
		KeySize:     256,
		BlockSize:   16,
		Rounds:      14,
		Description: "Advanced Encryption Standard, zero-filled blocks, no chaining mode",
		Standard:    "FIPS 197",
	},
	{
		Name:        "RSA-textbook",
		Type:        AlgorithmTypeAsymmetric,
		KeySize:     196,
		Description: "Per-byte textbook RSA over a fixed two-prime pool (not secure)",
		Standard:    "none",
	},
	{
		Name:        "SHA-256",
		Type:        AlgorithmTypeHash,
		BlockSize:   64,
		OutputSize:  32,
		Rounds:      64,
		Description: "Secure Hash Algorithm 2 (256-bit)",
		Standard:    "FIPS 180-4",
	},
}

// Algorithms returns a copy of the algorithm inventory.
func Algorithms() []AlgorithmInfo {
	out := make([]AlgorithmInfo, len(algorithms))
	copy(out, algorithms)
	return out
}

// LookupAlgorithm finds an algorithm by name, case-insensitively.
func LookupAlgorithm(name string) (AlgorithmInfo, bool) {
	for _, a := range algorithms {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return AlgorithmInfo{}, false
}

// AlgorithmsByType returns the algorithms of type t.
func AlgorithmsByType(t AlgorithmType) []AlgorithmInfo {
	var out []AlgorithmInfo
	for _, a := range algorithms {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}
