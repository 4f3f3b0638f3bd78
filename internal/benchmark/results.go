// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Poizon7/spectrum/internal/util"
)

// =============================================================================
// RESULT TYPES
// =============================================================================

// Result contains a complete benchmark run.
type Result struct {
	ID         string           `json:"id"`
	StartTime  time.Time        `json:"start_time"`
	EndTime    time.Time        `json:"end_time"`
	Duration   time.Duration    `json:"duration"`
	Workloads  []WorkloadResult `json:"workloads"`
	TotalBytes int64            `json:"total_bytes"`
	Passed     int              `json:"passed"`
	Failed     int              `json:"failed"`
}

// WorkloadResult contains the outcome of a single workload.
type WorkloadResult struct {
	Name           string        `json:"name"`
	Type           WorkloadType  `json:"type"`
	Status         Status        `json:"status"`
	Iterations     int           `json:"iterations"`
	PayloadBytes   int           `json:"payload_bytes"`
	BytesProcessed int64         `json:"bytes_processed"`
	Duration       time.Duration `json:"duration"`
	MBPerSec       float64       `json:"mb_per_sec"`
	Verified       bool          `json:"verified"`
	Error          string        `json:"error,omitempty"`
}

// Status indicates the outcome of a workload.
type Status string

const (
	StatusRunning Status = "running"
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
)

// computeAggregates calculates totals from individual workloads.
func (r *Result) computeAggregates() {
	r.TotalBytes, r.Passed, r.Failed = 0, 0, 0
	for _, w := range r.Workloads {
		r.TotalBytes += w.BytesProcessed
		switch w.Status {
		case StatusPassed:
			r.Passed++
		case StatusFailed:
			r.Failed++
		}
	}
}

// Fastest returns the passed workload with the highest throughput.
func (r *Result) Fastest() (WorkloadResult, bool) {
	var best WorkloadResult
	found := false
	for _, w := range r.Workloads {
		if w.Status != StatusPassed {
			continue
		}
		if !found || w.MBPerSec > best.MBPerSec {
			best = w
			found = true
		}
	}
	return best, found
}

// =============================================================================
// RESULT STORAGE
// =============================================================================

// Storage handles saving and loading benchmark results.
type Storage struct {
	dir string
}

// NewStorage creates a storage rooted at dir, creating it if needed.
func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create benchmark directory: %w", err)
	}
	return &Storage{dir: dir}, nil
}

// Dir returns the storage directory.
func (s *Storage) Dir() string { return s.dir }

// Save writes result to disk and returns the file name used.
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func (s *Storage) Save(result *Result) (string, error) {
	timestamp := result.StartTime.UTC().Format("20060102-150405.000")
	filename := fmt.Sprintf("bench_%s_%s.json", timestamp, shortID(result.ID))

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := util.AtomicWriteFile(filepath.Join(s.dir, filename), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write result: %w", err)
	}
	return filename, nil
}

// Load loads a benchmark result from disk.
func (s *Storage) Load(filename string) (*Result, error) {
	if filename != filepath.Base(filename) {
		return nil, fmt.Errorf("invalid result file name: %s", filename)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to read result: %w", err)
	}

	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}
	return &result, nil
}

// List returns all benchmark result files, newest first. File names embed
// the run's start time, so name order is chronological.
func (s *Storage) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && strings.HasPrefix(name, "bench_") && filepath.Ext(name) == ".json" {
			files = append(files, name)
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(files)))
	return files, nil
}

// Latest returns the most recent saved result.
func (s *Storage) Latest() (*Result, error) {
	files, err := s.List()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no benchmark results in %s", s.dir)
	}
	return s.Load(files[0])
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "noid"
	}
	return id
}

// =============================================================================
// FORMATTING HELPERS
// =============================================================================

// FormatDuration formats duration for display.
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "N/A"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}

// Summary returns a text summary of the benchmark result.
func (r *Result) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Run: %s\n", r.ID)
	fmt.Fprintf(&sb, "Duration: %s\n", FormatDuration(r.Duration))
	fmt.Fprintf(&sb, "Workloads: %d passed, %d failed\n", r.Passed, r.Failed)
	fmt.Fprintf(&sb, "Processed: %s", util.FormatBytes(int(r.TotalBytes)))
	if best, ok := r.Fastest(); ok {
		fmt.Fprintf(&sb, "\nFastest: %s (%s)", best.Name, util.FormatRate(best.MBPerSec))
	}
	return sb.String()
}
