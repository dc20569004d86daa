package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/dkt-index-engine/internal/domain"
)

// ConfigName is the base name of the configuration file, without extension.
const ConfigName = "dkt-indices"

// AdultMaleCohort names the built-in reference cohort.
const AdultMaleCohort = "adult_male"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

var (
	validReferences = map[string]bool{AdultMaleCohort: true}
	validFormats    = map[string]bool{"text": true, "json": true, "yaml": true}
	validLogFormats = map[string]bool{"text": true, "json": true}
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *domain.Config {
	return &domain.Config{
		Engine: domain.EngineConfig{
			Workers:   4,
			CacheSize: 128,
			Reference: AdultMaleCohort,
		},
		Output: domain.OutputConfig{
			Format: "text",
		},
		Logging: domain.LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ConfigDir returns the per-user configuration directory, empty when the
// home directory is unknown.
func ConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".dkt-indices")
}

// EnsureParentDir creates the directory that will hold path if it doesn't exist.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
