package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dkt-index-engine/internal/domain"
)

// YAMLFormatter writes a report as YAML.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a YAML report formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format writes the report as YAML to the given writer. Non-finite values
// are written as .nan or .inf.
func (f *YAMLFormatter) Format(w io.Writer, report *domain.AnalysisReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding yaml report: %w", err)
	}
	return enc.Close()
}
