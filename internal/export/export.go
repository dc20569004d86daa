// Package export renders analysis reports as JSON, YAML or plain text.
package export

import (
	"fmt"
	"strings"

	"github.com/dkt-index-engine/internal/domain"
)

// Supported output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Options controls report rendering.
type Options struct {
	// ShowDetails adds the per-region breakdown to text output. JSON and
	// YAML always carry it.
	ShowDetails bool
}

// NewFormatter returns the formatter registered for format.
func NewFormatter(format string, opts Options) (domain.ReportFormatter, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return NewTextFormatter(opts.ShowDetails), nil
	case FormatJSON:
		return NewJSONFormatter(), nil
	case FormatYAML:
		return NewYAMLFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}
}

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}
