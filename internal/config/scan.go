// Package config loads the scan parameters shared by the CLI and tests.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/banshee-data/beacon.report/internal/geom"
)

// DefaultConfigPath is the path to the canonical scan defaults file.
const DefaultConfigPath = "config/scan.defaults.json"

// Built-in fallbacks used when a field is absent.
const (
	DefaultRow           int64 = 2000000
	DefaultLimit         int64 = 4000000
	DefaultMultiplier    int64 = 4000000
	DefaultWorkers             = 1
	DefaultProfileMargin int64 = 0
)

// ScanConfig holds the query parameters for one scan. Pointer fields
// distinguish "not set" from zero so partial files and flag overrides
// compose.
type ScanConfig struct {
	// Row is the y coordinate of the row-coverage query.
	Row *int64 `json:"row,omitempty"`
	// Limit bounds the gap search to [0, limit]².
	Limit *int64 `json:"limit,omitempty"`
	// Multiplier combines the gap point into a score as x*multiplier + y.
	Multiplier *int64 `json:"multiplier,omitempty"`
	// Workers bounds the goroutines used by the gap search.
	Workers *int `json:"workers,omitempty"`
	// ProfileMargin extends the HTML row profile beyond [0, limit].
	ProfileMargin *int64 `json:"profile_margin,omitempty"`
}

func ptrInt64(v int64) *int64 { return &v }
func ptrInt(v int) *int       { return &v }

// EmptyScanConfig returns a ScanConfig with all fields unset.
func EmptyScanConfig() *ScanConfig {
	return &ScanConfig{}
}

// DefaultScanConfig returns a ScanConfig with every field set to its
// built-in default.
func DefaultScanConfig() *ScanConfig {
	return &ScanConfig{
		Row:           ptrInt64(DefaultRow),
		Limit:         ptrInt64(DefaultLimit),
		Multiplier:    ptrInt64(DefaultMultiplier),
		Workers:       ptrInt(DefaultWorkers),
		ProfileMargin: ptrInt64(DefaultProfileMargin),
	}
}

// LoadScanConfig loads a ScanConfig from a JSON file.
// The file must have a .json extension and be at most 1MB. Omitted fields
// stay unset and fall back to defaults through the Get* accessors.
func LoadScanConfig(path string) (*ScanConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyScanConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads DefaultConfigPath, searching the current
// directory and its parents up to the repository root.
// Panics if the file cannot be loaded, intended for test setup.
func MustLoadDefaultConfig() *ScanConfig {
	candidates := []string{
		DefaultConfigPath,
		"../../" + DefaultConfigPath,    // from internal/config/
		"../../../" + DefaultConfigPath, // deeper packages
	}
	for _, path := range candidates {
		if cfg, err := LoadScanConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that the configuration values are valid.
func (c *ScanConfig) Validate() error {
	if c.Limit != nil && *c.Limit < 0 {
		return fmt.Errorf("limit must be non-negative, got %d", *c.Limit)
	}
	if c.Limit != nil && *c.Limit > geom.MaxLimit {
		return fmt.Errorf("limit must be at most %d, got %d", geom.MaxLimit, *c.Limit)
	}

	if c.Multiplier != nil && *c.Multiplier <= 0 {
		return fmt.Errorf("multiplier must be positive, got %d", *c.Multiplier)
	}

	if c.Workers != nil && *c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", *c.Workers)
	}

	if c.ProfileMargin != nil && *c.ProfileMargin < 0 {
		return fmt.Errorf("profile_margin must be non-negative, got %d", *c.ProfileMargin)
	}
	if c.Limit != nil && c.ProfileMargin != nil && *c.ProfileMargin > math.MaxInt64-*c.Limit {
		return fmt.Errorf("limit %d + profile_margin %d overflows", *c.Limit, *c.ProfileMargin)
	}

	return nil
}

// Merge overlays every set field of other onto c.
func (c *ScanConfig) Merge(other *ScanConfig) {
	if other == nil {
		return
	}
	if other.Row != nil {
		c.Row = ptrInt64(*other.Row)
	}
	if other.Limit != nil {
		c.Limit = ptrInt64(*other.Limit)
	}
	if other.Multiplier != nil {
		c.Multiplier = ptrInt64(*other.Multiplier)
	}
	if other.Workers != nil {
		c.Workers = ptrInt(*other.Workers)
	}
	if other.ProfileMargin != nil {
		c.ProfileMargin = ptrInt64(*other.ProfileMargin)
	}
}

// GetRow returns the row value or the default.
func (c *ScanConfig) GetRow() int64 {
	if c.Row == nil {
		return DefaultRow
	}
	return *c.Row
}

// GetLimit returns the limit value or the default.
func (c *ScanConfig) GetLimit() int64 {
	if c.Limit == nil {
		return DefaultLimit
	}
	return *c.Limit
}

// GetMultiplier returns the multiplier value or the default.
func (c *ScanConfig) GetMultiplier() int64 {
	if c.Multiplier == nil {
		return DefaultMultiplier
	}
	return *c.Multiplier
}

// GetWorkers returns the workers value or the default.
func (c *ScanConfig) GetWorkers() int {
	if c.Workers == nil {
		return DefaultWorkers
	}
	return *c.Workers
}

// GetProfileMargin returns the profile_margin value or the default.
func (c *ScanConfig) GetProfileMargin() int64 {
	if c.ProfileMargin == nil {
		return DefaultProfileMargin
	}
	return *c.ProfileMargin
}
