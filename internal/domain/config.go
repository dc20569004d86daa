package domain

// Config represents the main application configuration
type Config struct {
	Engine  EngineConfig  `mapstructure:"engine" yaml:"engine"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// EngineConfig controls how analyses are executed
type EngineConfig struct {
	// Workers bounds the number of indices evaluated concurrently.
	Workers int `mapstructure:"workers" yaml:"workers"`
	// CacheSize is the number of analysis reports kept in memory. Zero disables caching.
	CacheSize int `mapstructure:"cache_size" yaml:"cache_size"`
	// StrictValidation rejects reports holding non-finite measurements
	// instead of letting them propagate as undetermined results.
	StrictValidation bool `mapstructure:"strict_validation" yaml:"strict_validation"`
	// Reference names the reference cohort.
	Reference string `mapstructure:"reference" yaml:"reference"`
}

// OutputConfig represents report rendering configuration
type OutputConfig struct {
	Format      string `mapstructure:"format" yaml:"format"`
	ShowDetails bool   `mapstructure:"show_details" yaml:"show_details"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	Output string `mapstructure:"output" yaml:"output"`
}
