// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// bench_cmd.go - The "bench" command.

package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/Poizon7/spectrum/internal/benchmark"
	"github.com/Poizon7/spectrum/internal/config"
	"github.com/Poizon7/spectrum/internal/util"
)

func (a *App) runBench(ctx context.Context, raw []string) (interface{}, error) {
	p := NewArgParser(raw, "save")

	iterations, err := p.FlagInt("iterations", a.cfg.Benchmark.Iterations)
	if err != nil {
		return nil, err
	}
	if iterations > config.MaxIterations {
		return nil, NewUsageError("--iterations", p.Flag("iterations"), fmt.Sprintf("must be at most %d", config.MaxIterations))
	}
	size, err := p.FlagInt("size", a.cfg.Benchmark.PayloadBytes)
	if err != nil {
		return nil, err
	}
	if size > config.MaxPayloadBytes {
		return nil, NewUsageError("--size", p.Flag("size"), fmt.Sprintf("must be at most %d", config.MaxPayloadBytes))
	}

	suite, err := benchmark.StandardSuite(iterations, size, a.Random)
	if err != nil {
		return nil, NewCommandError("bench", "setup", err)
	}

	a.log.Info("starting benchmark", "workloads", len(suite), "iterations", iterations, "payload_bytes", size)
	a.printf("%s\n\n", TitleStyle.Render(fmt.Sprintf("Benchmark: %d x %s per workload", iterations, util.FormatBytes(size))))

	result, err := benchmark.NewRunner(a.log).Run(ctx, suite)
	if err != nil {
		return nil, NewCommandError("bench", "run", err)
	}

	a.printf("%s\n", renderBenchTable(result))
	a.printf("%s\n", result.Summary())

	data := BenchData{Result: result}
	if p.BoolFlag("save") {
		dir, err := a.cfg.BenchmarkDir()
		if err != nil {
			return nil, NewCommandError("bench", "save", err)
		}
		storage, err := benchmark.NewStorage(dir)
		if err != nil {
			return nil, NewCommandError("bench", "save", err)
		}
		name, err := storage.Save(result)
		if err != nil {
			return nil, NewCommandError("bench", "save", err)
		}
		data.Saved = filepath.Join(storage.Dir(), name)
		a.printf("\n%s saved to %s\n", SuccessStyle.Render("[OK]"), data.Saved)
	}

	if result.Failed > 0 {
		return nil, NewCommandError("bench", "run", fmt.Errorf("%d of %d workloads failed", result.Failed, len(result.Workloads)))
	}
	return data, nil
}

func renderBenchTable(result *benchmark.Result) string {
	rows := make([][]string, 0, len(result.Workloads))
	for _, w := range result.Workloads {
		rows = append(rows, []string{
			w.Name,
			string(w.Type),
			util.FormatBytes(w.PayloadBytes),
			strconv.Itoa(w.Iterations),
			benchmark.FormatDuration(w.Duration),
			util.FormatRate(w.MBPerSec),
			RenderStatus(string(w.Status)),
		})
	}
	return RenderTable(
		[]string{"Algorithm", "Type", "Payload", "Iterations", "Time", "Throughput", "Status"},
		rows,
	)
}
