// Package config loads the engine configuration from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/dkt-index-engine/internal/domain"
)

// EnvPrefix prefixes every environment override, e.g. DKT_ENGINE_WORKERS
const EnvPrefix = "DKT"

// Manager implements the ConfigManager interface using Viper
type Manager struct {
	v          *viper.Viper
	configFile string
	config     *domain.Config
}

var _ domain.ConfigManager = (*Manager)(nil)

// NewManager creates a new configuration manager. An empty configFile
// searches the default locations; a missing file there is not an error.
func NewManager(configFile string) (*Manager, error) {
	m := &Manager{configFile: configFile}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from various sources
func (m *Manager) loadConfig() error {
	v := viper.New()

	if m.configFile != "" {
		v.SetConfigFile(m.configFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if dir := ConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, DefaultConfig())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using defaults and environment variables
	}

	config := &domain.Config{}
	if err := v.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.v = v
	m.config = config
	return nil
}

// setDefaults registers every default so that environment overrides of
// keys absent from the file are still unmarshaled
func setDefaults(v *viper.Viper, defaults *domain.Config) {
	// Engine defaults
	v.SetDefault("engine.workers", defaults.Engine.Workers)
	v.SetDefault("engine.cache_size", defaults.Engine.CacheSize)
	v.SetDefault("engine.strict_validation", defaults.Engine.StrictValidation)
	v.SetDefault("engine.reference", defaults.Engine.Reference)

	// Output defaults
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.show_details", defaults.Output.ShowDetails)

	// Logging defaults
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.output", defaults.Logging.Output)
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetEngineConfig returns engine configuration
func (m *Manager) GetEngineConfig() *domain.EngineConfig {
	return &m.config.Engine
}

// GetOutputConfig returns output configuration
func (m *Manager) GetOutputConfig() *domain.OutputConfig {
	return &m.config.Output
}

// GetLoggingConfig returns logging configuration
func (m *Manager) GetLoggingConfig() *domain.LoggingConfig {
	return &m.config.Logging
}

// ConfigFileUsed returns the path of the loaded file, empty when none was found
func (m *Manager) ConfigFileUsed() string {
	return m.v.ConfigFileUsed()
}

// Reload reloads the configuration
func (m *Manager) Reload() error {
	return m.loadConfig()
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	return Validate(m.config)
}

// Validate checks config for out-of-range values
func Validate(config *domain.Config) error {
	// Validate engine configuration
	if config.Engine.Workers < 1 {
		return fmt.Errorf("%w: engine workers must be at least 1, got %d", ErrInvalidConfig, config.Engine.Workers)
	}
	if config.Engine.CacheSize < 0 {
		return fmt.Errorf("%w: engine cache size must not be negative, got %d", ErrInvalidConfig, config.Engine.CacheSize)
	}
	if !validReferences[strings.ToLower(config.Engine.Reference)] {
		return fmt.Errorf("%w: unknown reference cohort: %s", ErrInvalidConfig, config.Engine.Reference)
	}

	// Validate output configuration
	if !validFormats[strings.ToLower(config.Output.Format)] {
		return fmt.Errorf("%w: invalid output format: %s", ErrInvalidConfig, config.Output.Format)
	}

	// Validate logging configuration
	if _, err := logrus.ParseLevel(config.Logging.Level); err != nil {
		return fmt.Errorf("%w: invalid log level: %s", ErrInvalidConfig, config.Logging.Level)
	}
	if !validLogFormats[strings.ToLower(config.Logging.Format)] {
		return fmt.Errorf("%w: invalid log format: %s", ErrInvalidConfig, config.Logging.Format)
	}

	return nil
}
