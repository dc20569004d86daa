package domain

import (
	"context"
	"io"
)

// StatsParser turns raw stats report text into per-hemisphere data
type StatsParser interface {
	ParseStats(r io.Reader) (HemisphereMap, error)
	ParseMeasures(r io.Reader) ([]GlobalMeasure, error)
}

// IndexEvaluator computes every catalogued index for one subject
type IndexEvaluator interface {
	EvaluateAll(ctx context.Context, left, right HemisphereMap) ([]IndexResult, error)
	Evaluate(indexID string, left, right HemisphereMap) (*IndexResult, error)
	Definitions() []IndexDefinition
}

// Classification is the band an index value falls into
type Classification struct {
	Label     string    `json:"label"`
	Text      string    `json:"text"`
	RiskLevel RiskLevel `json:"risk_level,omitempty"`
}

// InterpretationClassifier maps an index value to its qualitative band
type InterpretationClassifier interface {
	Classify(indexID string, value float64) Classification
}

// SummaryAggregator derives the report summary from index results
type SummaryAggregator interface {
	Summarize(results []IndexResult) AnalysisSummary
}

// ReportFormatter renders an analysis report
type ReportFormatter interface {
	Format(w io.Writer, report *AnalysisReport) error
}

// ConfigManager defines the interface for configuration management
type ConfigManager interface {
	GetConfig() *Config
	GetEngineConfig() *EngineConfig
	GetOutputConfig() *OutputConfig
	GetLoggingConfig() *LoggingConfig
	Reload() error
	Validate() error
}
