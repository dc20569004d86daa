// Package setup writes and inspects the per-user dkt-indices configuration file.
package setup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkt-index-engine/internal/config"
	"github.com/dkt-index-engine/internal/domain"
)

// ErrConfigExists is returned when a configuration file would be overwritten.
var ErrConfigExists = errors.New("configuration file already exists")

const configHeader = `# dkt-indices configuration
#
# Every key can be overridden from the environment with the DKT_ prefix,
# e.g. DKT_ENGINE_WORKERS=8 or DKT_OUTPUT_FORMAT=json.
`

// Options contains options for writing the configuration file.
type Options struct {
	Path  string // Target file; defaults to DefaultConfigPath
	Force bool   // Overwrite an existing file
}

// DefaultConfigPath returns the per-user configuration file path.
func DefaultConfigPath() (string, error) {
	dir := config.ConfigDir()
	if dir == "" {
		return "", errors.New("failed to determine home directory")
	}
	return filepath.Join(dir, config.ConfigName+".yaml"), nil
}

// WriteConfig saves cfg as YAML and returns the path written.
func WriteConfig(cfg *domain.Config, opts Options) (string, error) {
	path := opts.Path
	if path == "" {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			return "", err
		}
	}

	if _, err := os.Stat(path); err == nil && !opts.Force {
		return "", fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	if err := config.Validate(cfg); err != nil {
		return "", err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := config.EnsureParentDir(path); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}

// Status represents the state of a configuration file.
type Status struct {
	ConfigPath string
	Exists     bool
	Valid      bool
	Config     *domain.Config
	Issues     []string
}

// GetStatus loads the configuration file at path, or the default path when
// path is empty, and reports whether it is usable.
func GetStatus(path string) (*Status, error) {
	if path == "" {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			return nil, err
		}
	}

	status := &Status{ConfigPath: path, Issues: []string{}}

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
		status.Issues = append(status.Issues, "Configuration file does not exist; defaults apply")
		return status, nil
	}
	status.Exists = true

	manager, err := config.NewManager(path)
	if err != nil {
		status.Issues = append(status.Issues, fmt.Sprintf("Cannot load configuration: %v", err))
		return status, nil
	}
	status.Config = manager.GetConfig()

	if err := manager.Validate(); err != nil {
		status.Issues = append(status.Issues, err.Error())
		return status, nil
	}

	status.Valid = true
	return status, nil
}
