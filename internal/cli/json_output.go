// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// json_output.go - Machine-readable output for every spectrum command.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Poizon7/spectrum/internal/benchmark"
	"github.com/Poizon7/spectrum/internal/crypto"
)

// JSONResponse is the envelope written by every command in JSON mode.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific response data
	Data interface{} `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// Timestamp is the RFC 3339 time the response was generated
	Timestamp string `json:"timestamp"`

	// Command is the command that was executed
	Command string `json:"command,omitempty"`
}

// NewJSONResponse creates a new successful JSON response.
func NewJSONResponse(command string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// NewJSONErrorResponse creates a new error JSON response.
func NewJSONErrorResponse(command string, err error) *JSONResponse {
	errStr := err.Error()
	return &JSONResponse{
		Success:   false,
		Error:     &errStr,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// Write encodes the response, indented, to w.
func (r *JSONResponse) Write(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// String returns the JSON response as a string.
func (r *JSONResponse) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"success":false,"error":"failed to marshal response: %s","timestamp":"%s"}`,
			err.Error(), time.Now().UTC().Format(time.RFC3339))
	}
	return string(data)
}

// =============================================================================
// COMMAND-SPECIFIC DATA STRUCTURES
// =============================================================================

// AESKeyData is returned by "aes keygen".
type AESKeyData struct {
	KeyID string `json:"key_id"`
	Bits  int    `json:"bits"`
	Key   string `json:"key,omitempty"`
	Path  string `json:"path,omitempty"`
}

// AESResultData is returned by "aes encrypt" and "aes decrypt".
type AESResultData struct {
	Algorithm  string `json:"algorithm"`
	InputBytes int    `json:"input_bytes"`
	Hex        string `json:"hex"`
	Text       string `json:"text,omitempty"`
}

// RSAKeyData is returned by "rsa keygen". Values are decimal strings.
type RSAKeyData struct {
	KeyID string `json:"key_id"`
	N     string `json:"n"`
	E     string `json:"e"`
	D     string `json:"d"`
}

// RSAResultData is returned by "rsa encrypt" and "rsa decrypt".
type RSAResultData struct {
	Symbols []string `json:"symbols"`
	Text    string   `json:"text,omitempty"`
}

// HashData is returned by "hash".
type HashData struct {
	Algorithm  string `json:"algorithm"`
	Digest     string `json:"digest"`
	InputBytes int    `json:"input_bytes"`
}

// BenchData is returned by "bench".
type BenchData struct {
	Result *benchmark.Result `json:"result"`
	Saved  string            `json:"saved,omitempty"`
}

// AlgorithmsData is returned by "algorithms".
type AlgorithmsData struct {
	Algorithms []crypto.AlgorithmInfo `json:"algorithms"`
}

// ConfigData is returned by the config subcommands.
type ConfigData struct {
	Path   string                 `json:"config_path"`
	Values map[string]interface{} `json:"values,omitempty"`
}

// VersionData represents the data returned by the version command.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version,omitempty"`
}
