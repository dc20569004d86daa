package export

import (
	"encoding/json"
	"io"

	"github.com/dkt-index-engine/internal/domain"
)

// JSONFormatter writes a report as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON report formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format writes the report as indented JSON to the given writer. Non-finite
// values are written as null.
func (f *JSONFormatter) Format(w io.Writer, report *domain.AnalysisReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(report)
}
