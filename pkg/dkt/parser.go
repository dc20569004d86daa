// Package dkt reads FreeSurfer cortical parcellation stats reports
// (aparc.DKTatlas.stats, aparc.stats) and whole-brain aseg.stats headers.
package dkt

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dkt-index-engine/internal/domain"
)

const (
	// TableMarker is the header token that precedes the per-region rows.
	TableMarker = "ColHeaders"
	// MeasurePrefix starts every whole-structure measure header line.
	MeasurePrefix = "# Measure"

	commentPrefix = "#"
	minFields     = 5

	// Column positions of a stats table row.
	colName        = 0
	colSurfaceArea = 2
	colVolume      = 3
	colThickness   = 4

	maxLineSize = 1024 * 1024
)

// leadingFloatPattern matches the longest numeric prefix of a field.
var leadingFloatPattern = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// Parser reads stats report text.
type Parser struct{}

// NewParser creates a new stats report parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseStats reads a per-region stats table. Rows before the ColHeaders
// marker, blank lines and comment lines are ignored. Malformed numeric
// fields yield NaN. A report without the marker yields an empty map.
func (p *Parser) ParseStats(r io.Reader) (domain.HemisphereMap, error) {
	regions := make(domain.HemisphereMap)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	inTable := false
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, TableMarker) {
			inTable = true
			continue
		}
		if !inTable || strings.TrimSpace(line) == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < minFields {
			continue
		}
		regions[fields[colName]] = domain.RegionMeasurement{
			SurfaceArea: parseNumber(fields[colSurfaceArea]),
			Volume:      parseNumber(fields[colVolume]),
			Thickness:   parseNumber(fields[colThickness]),
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stats table: %w", err)
	}

	return regions, nil
}

// ParseStatsString is a convenience wrapper around ParseStats.
func (p *Parser) ParseStatsString(content string) domain.HemisphereMap {
	regions, err := p.ParseStats(strings.NewReader(content))
	if err != nil {
		// strings.Reader never fails; only an over-long line can reach here
		return make(domain.HemisphereMap)
	}
	return regions
}

// ParseMeasures reads the "# Measure <structure>, <key>, <description>, <value>, <unit>"
// header lines of a stats report. Lines with fewer than four fields are skipped.
func (p *Parser) ParseMeasures(r io.Reader) ([]domain.GlobalMeasure, error) {
	var measures []domain.GlobalMeasure

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, MeasurePrefix) {
			continue
		}

		parts := strings.Split(strings.TrimPrefix(line, MeasurePrefix), ",")
		if len(parts) < 4 {
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		m := domain.GlobalMeasure{
			Structure:   parts[0],
			Key:         parts[1],
			Description: parts[2],
			Value:       parseNumber(parts[3]),
		}
		if len(parts) > 4 {
			m.Unit = parts[4]
		}
		measures = append(measures, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading measure headers: %w", err)
	}

	return measures, nil
}

// MeasureValue returns the value of the first measure whose key equals key.
func MeasureValue(measures []domain.GlobalMeasure, key string) (float64, bool) {
	for _, m := range measures {
		if m.Key == key {
			return m.Value, true
		}
	}
	return 0, false
}

// parseNumber converts the numeric prefix of s, returning NaN when s does
// not start with a number. "12.5mm" therefore parses as 12.5.
func parseNumber(s string) float64 {
	match := leadingFloatPattern.FindString(strings.TrimSpace(s))
	if match == "" {
		return math.NaN()
	}

	switch strings.TrimLeft(match, "+-") {
	case "Infinity":
		if strings.HasPrefix(match, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		// out-of-range values saturate to ±Inf or 0, as ParseFloat reports them
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return v
		}
		return math.NaN()
	}
	return v
}
