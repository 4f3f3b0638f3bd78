// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package benchmark measures the throughput of spectrum's primitives.
//
// Each Workload drives one capability (a symmetric cipher round trip or a
// hash) over a fixed payload for a number of iterations and verifies the
// output, so a benchmark run doubles as a smoke test.
//
// # Key Types
//
//   - Runner: Executes a suite of workloads, honouring context cancellation
//   - Workload: One capability, payload size and iteration count
//   - Result: A complete run with per-workload timings and a uuid ID
//   - Storage: JSON persistence of results
//
// # Usage
//
//	suite, err := benchmark.StandardSuite(200, 4096, rand.Reader)
//	result, err := benchmark.NewRunner(logger).Run(ctx, suite)
//	fmt.Println(result.Summary())
package benchmark
