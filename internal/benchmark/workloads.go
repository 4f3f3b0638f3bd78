// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package benchmark

import (
	"fmt"
	"io"

	"github.com/Poizon7/spectrum/internal/crypto"
	"github.com/Poizon7/spectrum/internal/crypto/aes"
	"github.com/Poizon7/spectrum/internal/crypto/sha"
)

// =============================================================================
// WORKLOAD DEFINITIONS
// =============================================================================

// WorkloadType categorizes what a workload exercises.
type WorkloadType string

const (
	WorkloadSymmetric WorkloadType = "symmetric"
	WorkloadHash      WorkloadType = "hash"
)

// Workload is one benchmark case. Exactly one of Cipher or Hasher is set,
// matching Type.
type Workload struct {
	Name         string
	Type         WorkloadType
	Cipher       crypto.SymmetricCipher
	Hasher       crypto.Hasher
	PayloadBytes int
	Iterations   int
}

// Validate checks the workload can run.
func (w Workload) Validate() error {
	if w.Iterations < 1 {
		return fmt.Errorf("workload %s: iterations must be positive", w.Name)
	}
	if w.PayloadBytes < 0 {
		return fmt.Errorf("workload %s: negative payload size", w.Name)
	}
	switch w.Type {
	case WorkloadSymmetric:
		if w.Cipher == nil {
			return fmt.Errorf("workload %s: %w", w.Name, crypto.ErrKeyNotInitialized)
		}
	case WorkloadHash:
		if w.Hasher == nil {
			return fmt.Errorf("workload %s: no hasher", w.Name)
		}
	default:
		return fmt.Errorf("workload %s: unknown type %q", w.Name, w.Type)
	}
	return nil
}

// SymmetricWorkload builds a round-trip workload named after c.
func SymmetricWorkload(c crypto.SymmetricCipher, payloadBytes, iterations int) Workload {
	return Workload{
		Name:         crypto.NameOf(c),
		Type:         WorkloadSymmetric,
		Cipher:       c,
		PayloadBytes: payloadBytes,
		Iterations:   iterations,
	}
}

// HashWorkload builds a digest workload named after h.
func HashWorkload(h crypto.Hasher, payloadBytes, iterations int) Workload {
	return Workload{
		Name:         crypto.NameOf(h),
		Type:         WorkloadHash,
		Hasher:       h,
		PayloadBytes: payloadBytes,
		Iterations:   iterations,
	}
}

// =============================================================================
// STANDARD SUITE
// =============================================================================

// StandardSuite returns AES-128, AES-192, AES-256 (fresh keys from random)
// and SHA-256 workloads.
func StandardSuite(iterations, payloadBytes int, random io.Reader) ([]Workload, error) {
	suite := make([]Workload, 0, 4)

	for _, size := range []aes.KeySize{aes.KeySize128, aes.KeySize192, aes.KeySize256} {
		c, err := aes.NewRandom(size, random)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s cipher: %w", size, err)
		}
		suite = append(suite, SymmetricWorkload(c, payloadBytes, iterations))
	}

	suite = append(suite, HashWorkload(sha.New(), payloadBytes, iterations))
	return suite, nil
}

// payload returns a deterministic buffer of n bytes.
func payload(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i % 251)
	}
	return p
}
