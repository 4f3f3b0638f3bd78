// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package benchmark

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// ErrVerification is recorded when a workload's output is wrong.
var ErrVerification = errors.New("benchmark: output verification failed")

// =============================================================================
// BENCHMARK RUNNER
// =============================================================================

// Runner executes benchmark suites.
// Note: Runner is not thread-safe and should not be used concurrently
// from multiple goroutines.
type Runner struct {
	log *slog.Logger
	now func() time.Time
}

// NewRunner creates a new benchmark runner. A nil logger discards output.
func NewRunner(log *slog.Logger) *Runner {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Runner{log: log, now: time.Now}
}

// Run executes every workload in order. A failing workload is recorded and
// the run continues; cancellation stops the run and returns the partial
// result together with ctx.Err().
func (r *Runner) Run(ctx context.Context, suite []Workload) (*Result, error) {
	result := &Result{
		ID:        uuid.NewString(),
		StartTime: r.now(),
		Workloads: make([]WorkloadResult, 0, len(suite)),
	}

	var runErr error
	for _, w := range suite {
		wr, err := r.runWorkload(ctx, w)
		result.Workloads = append(result.Workloads, wr)
		if err != nil {
			r.log.Warn("workload failed", "run", result.ID, "workload", w.Name, "err", err)
			if ctx.Err() != nil {
				runErr = ctx.Err()
				break
			}
			continue
		}
		r.log.Debug("workload done",
			"run", result.ID,
			"workload", w.Name,
			"duration", wr.Duration,
			"mb_per_sec", wr.MBPerSec,
		)
	}

	result.EndTime = r.now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	result.computeAggregates()

	r.log.Info("benchmark complete",
		"run", result.ID,
		"passed", result.Passed,
		"failed", result.Failed,
		"duration", result.Duration,
	)
	return result, runErr
}

// runWorkload executes a single workload.
func (r *Runner) runWorkload(ctx context.Context, w Workload) (WorkloadResult, error) {
	wr := WorkloadResult{
		Name:         w.Name,
		Type:         w.Type,
		Status:       StatusRunning,
		PayloadBytes: w.PayloadBytes,
	}

	fail := func(err error) (WorkloadResult, error) {
		wr.Status = StatusFailed
		wr.Error = err.Error()
		return wr, err
	}

	if err := w.Validate(); err != nil {
		return fail(err)
	}

	input := payload(w.PayloadBytes)
	var firstDigest []byte

	start := r.now()
	for i := 0; i < w.Iterations; i++ {
		// Check for context cancellation between iterations
		if err := ctx.Err(); err != nil {
			return fail(err)
		}

		switch w.Type {
		case WorkloadSymmetric:
			ct, err := w.Cipher.Encrypt(input)
			if err != nil {
				return fail(fmt.Errorf("encrypt: %w", err))
			}
			pt, err := w.Cipher.Decrypt(ct)
			if err != nil {
				return fail(fmt.Errorf("decrypt: %w", err))
			}
			if !roundTripped(input, pt) {
				return fail(fmt.Errorf("%w: iteration %d", ErrVerification, i))
			}
		case WorkloadHash:
			digest := w.Hasher.Hash(input)
			if firstDigest == nil {
				firstDigest = digest
			} else if !bytes.Equal(firstDigest, digest) {
				return fail(fmt.Errorf("%w: digest changed at iteration %d", ErrVerification, i))
			}
		}
		wr.Iterations++
	}
	wr.Duration = r.now().Sub(start)

	wr.BytesProcessed = int64(wr.Iterations) * int64(w.PayloadBytes)
	if wr.Duration > 0 {
		wr.MBPerSec = float64(wr.BytesProcessed) / 1e6 / wr.Duration.Seconds()
	}
	wr.Verified = true
	wr.Status = StatusPassed
	return wr, nil
}

// roundTripped reports whether got is want followed only by zero fill.
func roundTripped(want, got []byte) bool {
	if len(got) < len(want) || !bytes.Equal(got[:len(want)], want) {
		return false
	}
	for _, b := range got[len(want):] {
		if b != 0 {
			return false
		}
	}
	return true
}
