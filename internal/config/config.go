// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Poizon7/spectrum/internal/crypto/aes"
	"github.com/Poizon7/spectrum/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete spectrum configuration.
type Config struct {
	AES       AESConfig       `toml:"aes" json:"aes"`
	Output    OutputConfig    `toml:"output" json:"output"`
	Log       LogConfig       `toml:"log" json:"log"`
	Benchmark BenchmarkConfig `toml:"benchmark" json:"benchmark"`
}

// AESConfig holds symmetric cipher defaults.
type AESConfig struct {
	// KeyBits is the size of keys produced by "aes keygen": 128, 192 or 256.
	KeyBits int `toml:"key_bits" json:"key_bits"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// Format is "hex" or "json".
	Format string `toml:"format" json:"format"`
	Color  bool   `toml:"color" json:"color"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" json:"level"`
}

// BenchmarkConfig controls the throughput benchmark.
type BenchmarkConfig struct {
	Iterations   int    `toml:"iterations" json:"iterations"`
	PayloadBytes int    `toml:"payload_bytes" json:"payload_bytes"`
	ResultsDir   string `toml:"results_dir" json:"results_dir"`
}

// Output formats.
const (
	FormatHex  = "hex"
	FormatJSON = "json"
)

// Limits enforced by Validate.
const (
	MaxIterations   = 1_000_000
	MaxPayloadBytes = 64 << 20
)

// =============================================================================
// DEFAULT CONFIG
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AES: AESConfig{
			KeyBits: 256,
		},
		Output: OutputConfig{
			Format: FormatHex,
			Color:  true,
		},
		Log: LogConfig{
			Level: "warn",
		},
		Benchmark: BenchmarkConfig{
			Iterations:   200,
			PayloadBytes: 4096,
			ResultsDir:   "~/.spectrum/benchmarks",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the spectrum configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".spectrum"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			return LoadFromPath(tomlPath)
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			return LoadFromPath(jsonPath)
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path. Keys missing
// from the file keep their defaults; environment overrides win over both.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# spectrum configuration file\n")
	buf.WriteString("# Generated by spectrum - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file.
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if _, err := aes.KeySizeFromBits(c.AES.KeyBits); err != nil {
		errs = append(errs, ValidationError{
			Field:   "aes.key_bits",
			Message: fmt.Sprintf("must be 128, 192 or 256, got %d", c.AES.KeyBits),
		})
	}

	switch c.Output.Format {
	case FormatHex, FormatJSON:
	default:
		errs = append(errs, ValidationError{
			Field:   "output.format",
			Message: fmt.Sprintf("must be %q or %q, got %q", FormatHex, FormatJSON, c.Output.Format),
		})
	}

	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, ValidationError{Field: "log.level", Message: err.Error()})
	}

	if c.Benchmark.Iterations < 1 || c.Benchmark.Iterations > MaxIterations {
		errs = append(errs, ValidationError{
			Field:   "benchmark.iterations",
			Message: fmt.Sprintf("must be between 1 and %d, got %d", MaxIterations, c.Benchmark.Iterations),
		})
	}

	if c.Benchmark.PayloadBytes < 1 || c.Benchmark.PayloadBytes > MaxPayloadBytes {
		errs = append(errs, ValidationError{
			Field:   "benchmark.payload_bytes",
			Message: fmt.Sprintf("must be between 1 and %d, got %d", MaxPayloadBytes, c.Benchmark.PayloadBytes),
		})
	}

	if strings.TrimSpace(c.Benchmark.ResultsDir) == "" {
		errs = append(errs, ValidationError{Field: "benchmark.results_dir", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// DERIVED VALUES
// =============================================================================

// AESKeySize returns the configured key size.
func (c *Config) AESKeySize() (aes.KeySize, error) {
	return aes.KeySizeFromBits(c.AES.KeyBits)
}

// SlogLevel returns the configured log level, falling back to warn.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

// BenchmarkDir returns the results directory with "~" expanded.
func (c *Config) BenchmarkDir() (string, error) {
	return ExpandHome(c.Benchmark.ResultsDir)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("must be debug, info, warn or error, got %q", s)
	}
	return level, nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - SPECTRUM_AES_KEY_BITS: overrides aes.key_bits
//   - SPECTRUM_OUTPUT: overrides output.format
//   - SPECTRUM_NO_COLOR: set to "1" or "true" to disable colour (NO_COLOR is honoured too)
//   - SPECTRUM_LOG_LEVEL: overrides log.level
//   - SPECTRUM_BENCH_ITERATIONS: overrides benchmark.iterations
//
// Unparseable numbers are stored as -1 so Validate reports them.
func (c *Config) ApplyEnvOverrides() {
	if bits := os.Getenv("SPECTRUM_AES_KEY_BITS"); bits != "" {
		c.AES.KeyBits = atoiOrInvalid(bits)
	}

	if format := os.Getenv("SPECTRUM_OUTPUT"); format != "" {
		c.Output.Format = strings.ToLower(format)
	}

	if os.Getenv("NO_COLOR") != "" || isTruthy(os.Getenv("SPECTRUM_NO_COLOR")) {
		c.Output.Color = false
	}

	if level := os.Getenv("SPECTRUM_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}

	if iterations := os.Getenv("SPECTRUM_BENCH_ITERATIONS"); iterations != "" {
		c.Benchmark.Iterations = atoiOrInvalid(iterations)
	}
}

func isTruthy(s string) bool {
	s = strings.ToLower(s)
	return s == "1" || s == "true" || s == "yes"
}

func atoiOrInvalid(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return -1
	}
	return n
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "aes.key_bits").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation. String values are
// converted to the field's type. The result is not validated.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	if key == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			if field.Kind() == reflect.Struct {
				return reflect.Value{}, fmt.Errorf("field '%s' is a section, not a value", key)
			}
			return field, nil
		}

		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}

	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			field.SetBool(isTruthy(strVal))
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) && field.Kind() != reflect.String {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation, in file order.
func GetAllKeys() []string {
	var keys []string
	t := reflect.TypeOf(Config{})
	for i := 0; i < t.NumField(); i++ {
		section := t.Field(i)
		prefix := tomlName(section)
		for j := 0; j < section.Type.NumField(); j++ {
			keys = append(keys, prefix+"."+tomlName(section.Type.Field(j)))
		}
	}
	return keys
}

func tomlName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
	if name == "" {
		return strings.ToLower(f.Name)
	}
	return name
}

// String returns a string representation of the config for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}
