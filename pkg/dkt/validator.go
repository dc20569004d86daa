package dkt

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/dkt-index-engine/internal/domain"
)

// Issue is one finding of a report content check.
type Issue struct {
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Region  string `json:"region,omitempty" yaml:"region,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// ValidationReport summarizes a report content check.
type ValidationReport struct {
	HasMarker   bool     `json:"has_marker" yaml:"has_marker"`
	HasMeasures bool     `json:"has_measures" yaml:"has_measures"`
	Regions     int      `json:"regions" yaml:"regions"`
	Unknown     []string `json:"unknown_regions,omitempty" yaml:"unknown_regions,omitempty"`
	Issues      []Issue  `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// Valid reports whether the report carries usable regional data.
func (v *ValidationReport) Valid() bool {
	return v.HasMarker && v.Regions > 0 && len(v.Issues) == 0
}

// ValidFor reports whether the report is usable as a report of kind. An
// aseg report carries only "# Measure" headers and no regional table.
func (v *ValidationReport) ValidFor(kind ReportKind) bool {
	if kind == ASEG {
		return v.HasMeasures
	}
	return v.Valid()
}

// Validator checks stats reports before they are handed to the engine.
type Validator struct {
	reference domain.ReferenceTable
}

// NewValidator creates a validator that also reports regions absent from reference.
func NewValidator(reference domain.ReferenceTable) *Validator {
	return &Validator{reference: reference}
}

// Validate reads a stats report and lists every structural problem: a
// missing marker or measure header, short rows and non-finite fields.
func (v *Validator) Validate(r io.Reader) (*ValidationReport, error) {
	report := &ValidationReport{}
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	inTable := false
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.HasPrefix(line, MeasurePrefix) {
			report.HasMeasures = true
		}
		if strings.Contains(line, TableMarker) {
			inTable = true
			report.HasMarker = true
			continue
		}
		if !inTable || strings.TrimSpace(line) == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < minFields {
			report.Issues = append(report.Issues, Issue{
				Line:    lineNo,
				Message: fmt.Sprintf("row has %d fields, at least %d are required", len(fields), minFields),
			})
			continue
		}

		name := fields[colName]
		seen[name] = true
		columns := []struct {
			metric domain.Metric
			index  int
		}{
			{domain.SURFACE_AREA, colSurfaceArea},
			{domain.VOLUME, colVolume},
			{domain.THICKNESS, colThickness},
		}
		for _, c := range columns {
			if !isFiniteNumber(parseNumber(fields[c.index])) {
				report.Issues = append(report.Issues, Issue{
					Line:    lineNo,
					Region:  name,
					Message: fmt.Sprintf("%s value %q is not a finite number", strings.ToLower(c.metric.String()), fields[c.index]),
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("validating stats report: %w", err)
	}

	report.Regions = len(seen)
	if v.reference != nil {
		for name := range seen {
			if _, ok := v.reference.Lookup(name); !ok {
				report.Unknown = append(report.Unknown, name)
			}
		}
		sort.Strings(report.Unknown)
	}

	if !report.HasMarker {
		report.Issues = append(report.Issues, Issue{Message: fmt.Sprintf("no %s marker line found", TableMarker)})
	}
	if !report.HasMeasures {
		report.Issues = append(report.Issues, Issue{Message: fmt.Sprintf("no %q header lines found", MeasurePrefix)})
	}

	return report, nil
}

// ValidateString is a convenience wrapper around Validate.
func (v *Validator) ValidateString(content string) (*ValidationReport, error) {
	return v.Validate(strings.NewReader(content))
}

// Finite returns an error naming every region of m holding a non-finite metric.
func Finite(hemi domain.Hemisphere, m domain.HemisphereMap) error {
	bad := m.NonFinite()
	if len(bad) == 0 {
		return nil
	}
	sort.Strings(bad)
	return fmt.Errorf("%s hemisphere: %w in regions %s", strings.ToLower(hemi.String()), domain.ErrNonFiniteMeasure, strings.Join(bad, ", "))
}

func isFiniteNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
