// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile_Basic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	data := []byte(`{"id":"abc"}`)

	if err := AtomicWriteFile(path, data, 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != string(data) {
		t.Errorf("Content mismatch: got %q, want %q", string(content), string(data))
	}
}

func TestAtomicWriteFile_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmarks", "2025", "run.json")

	require.NoError(t, AtomicWriteFile(path, []byte("{}"), 0644))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestAtomicWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, AtomicWriteFile(path, []byte("initial"), 0644))
	require.NoError(t, AtomicWriteFile(path, []byte("updated"), 0644))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "updated", string(content))
}

func TestAtomicWriteFile_EmptyData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")

	require.NoError(t, AtomicWriteFile(path, []byte{}, 0644))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestAtomicWriteFile_LargeData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "large.bin")

	data := make([]byte, 1024*1024)
	for i := range data {
		data[i] = byte(i % 256)
	}

	require.NoError(t, AtomicWriteFile(path, data, 0644))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, content)
}

func TestAtomicWriteFile_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		require.NoError(t, AtomicWriteFile(filepath.Join(dir, "out.txt"), []byte("x"), 0644))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAtomicWriteFile_ParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := AtomicWriteFile(filepath.Join(blocker, "child.txt"), []byte("x"), 0644)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parent directory")
}

func TestWriteSecretFile_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}

	path := filepath.Join(t.TempDir(), "keys", "aes.key")
	require.NoError(t, WriteSecretFile(path, []byte("000102030405060708090a0b0c0d0e0f")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, SecretFilePerm, info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, SecretDirPerm, dirInfo.Mode().Perm())
}

// =============================================================================
// DISPLAY TESTS
// =============================================================================

func TestStringWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"AES-128", 7},
		{"日本語", 6},
		{"héllo", 5},
	}

	for _, tt := range tests {
		if got := StringWidth(tt.in); got != tt.want {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "SHA-256   ", PadRight("SHA-256", 10))
	assert.Equal(t, "日本  ", PadRight("日本", 6))
	assert.Equal(t, "RSA-textbook", PadRight("RSA-textbook", 4))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "AES-256", 10, "AES-256"},
		{"ellipsis", "Advanced Encryption Standard", 11, "Advanced..."},
		{"narrow", "hello", 3, "hel"},
		{"zero", "hello", 0, ""},
		{"negative", "hello", -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.width)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, StringWidth(got), max(tt.width, 0))
		})
	}
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0 B", FormatBytes(0))
	assert.Equal(t, "100 B", FormatBytes(100))
	assert.Equal(t, "4.0 KiB", FormatBytes(4096))
	assert.Equal(t, "1.0 MiB", FormatBytes(1024*1024))
	assert.Equal(t, "N/A", FormatBytes(-1))
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "N/A", FormatRate(0))
	assert.Equal(t, "12 MB/s", FormatRate(12))
	assert.Equal(t, "1,234.5 MB/s", FormatRate(1234.5))
}
