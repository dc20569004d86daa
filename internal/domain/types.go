// Package domain contains the core entities of the structural index engine:
// per-hemisphere regional measurements, the fixed reference cohort, index
// definitions and the results derived from them.
//
// Region names follow the Desikan-Killiany-Tourville (DKT) cortical
// parcellation as written by FreeSurfer's aparc.DKTatlas stats tables.
package domain

import (
	"errors"
)

// Hemisphere identifies one side of the cortex.
type Hemisphere string

const (
	LEFT  Hemisphere = "LEFT"
	RIGHT Hemisphere = "RIGHT"
)

// Metric is one of the three per-region structural measurements.
type Metric string

const (
	THICKNESS    Metric = "THICKNESS"
	SURFACE_AREA Metric = "SURFACE_AREA"
	VOLUME       Metric = "VOLUME"
)

// CombinationRule selects how per-region composite scores of both
// hemispheres are folded into one index value.
type CombinationRule string

const (
	// ASYMMETRY_DIFFERENCE sums regionWeight × (zSide1 − zSide2).
	ASYMMETRY_DIFFERENCE CombinationRule = "ASYMMETRY_DIFFERENCE"
	// BLENDED_MEAN sums regionWeight × (left share·zLeft + right share·zRight).
	BLENDED_MEAN CombinationRule = "BLENDED_MEAN"
	// NORMALIZED_DIFFERENCE divides the hemispheric difference by the absolute sum.
	NORMALIZED_DIFFERENCE CombinationRule = "NORMALIZED_DIFFERENCE"
)

// SideOrder is the sign convention of an asymmetry index.
type SideOrder string

const (
	LEFT_MINUS_RIGHT SideOrder = "L-R"
	RIGHT_MINUS_LEFT SideOrder = "R-L"
)

// PercentileStrategy names the mapping from an index value to a population percentile.
type PercentileStrategy string

const (
	NORMAL_CDF       PercentileStrategy = "NORMAL_CDF"
	PIECEWISE_LINEAR PercentileStrategy = "PIECEWISE_LINEAR"
	LINEAR           PercentileStrategy = "LINEAR"
)

// RoundingMode controls how the reported index value is rounded.
type RoundingMode string

const (
	// HALF_UP rounds the scaled value to the nearest integer, ties toward +Inf.
	HALF_UP RoundingMode = "HALF_UP"
	// FIXED_POINT rounds the exact binary value to a fixed number of decimals,
	// ties away from zero.
	FIXED_POINT RoundingMode = "FIXED_POINT"
)

// IndexCategory groups indices for reporting.
type IndexCategory string

const (
	BASIC_LATERALIZATION      IndexCategory = "BASIC_LATERALIZATION"
	FUNCTIONAL_LATERALIZATION IndexCategory = "FUNCTIONAL_LATERALIZATION"
	PERCEPTION                IndexCategory = "PERCEPTION"
	LANGUAGE_READING          IndexCategory = "LANGUAGE_READING"
	COGNITION                 IndexCategory = "COGNITION"
)

// Comparison is the operator a band threshold is tested with.
type Comparison string

const (
	GTE Comparison = ">="
	GT  Comparison = ">"
	LTE Comparison = "<="
	LT  Comparison = "<"
)

// RiskLevel is the discrete label reported by risk-type indices.
type RiskLevel string

const (
	HIGH_RISK     RiskLevel = "HIGH"
	MODERATE_RISK RiskLevel = "MODERATE"
	LOW_RISK      RiskLevel = "LOW"
	VERY_LOW_RISK RiskLevel = "VERY_LOW"
)

// UNDETERMINED is the band label given to a non-finite index value.
const UNDETERMINED = "undetermined"

var (
	ErrIndexNotFound      = errors.New("index not found")
	ErrNoUsableData       = errors.New("no usable regional data")
	ErrNonFiniteMeasure   = errors.New("non-finite measurement")
	ErrInvalidRule        = errors.New("invalid combination rule")
	ErrInvalidStrategy    = errors.New("invalid percentile strategy")
	ErrInvalidDefinition  = errors.New("invalid index definition")
	ErrUnsupportedFormat  = errors.New("unsupported output format")
	ErrHemisphereMismatch = errors.New("hemisphere mismatch")
	ErrUnrecognizedReport = errors.New("unrecognized report file")
)

// IsValid reports whether h names a hemisphere.
func (h Hemisphere) IsValid() bool {
	switch h {
	case LEFT, RIGHT:
		return true
	default:
		return false
	}
}

// String returns the string representation of the hemisphere.
func (h Hemisphere) String() string {
	return string(h)
}

// Prefix returns the FreeSurfer file prefix, "lh" or "rh".
func (h Hemisphere) Prefix() string {
	switch h {
	case LEFT:
		return "lh"
	case RIGHT:
		return "rh"
	default:
		return ""
	}
}

// IsValid reports whether m names a known metric.
func (m Metric) IsValid() bool {
	switch m {
	case THICKNESS, SURFACE_AREA, VOLUME:
		return true
	default:
		return false
	}
}

// String returns the string representation of the metric.
func (m Metric) String() string {
	return string(m)
}

// IsValid reports whether r is a supported combination rule.
func (r CombinationRule) IsValid() bool {
	switch r {
	case ASYMMETRY_DIFFERENCE, BLENDED_MEAN, NORMALIZED_DIFFERENCE:
		return true
	default:
		return false
	}
}

// String returns the string representation of the combination rule.
func (r CombinationRule) String() string {
	return string(r)
}

// IsValid reports whether s is a supported side order.
func (s SideOrder) IsValid() bool {
	switch s {
	case LEFT_MINUS_RIGHT, RIGHT_MINUS_LEFT:
		return true
	default:
		return false
	}
}

// String returns the string representation of the side order.
func (s SideOrder) String() string {
	return string(s)
}

// IsValid reports whether p is a supported percentile strategy.
func (p PercentileStrategy) IsValid() bool {
	switch p {
	case NORMAL_CDF, PIECEWISE_LINEAR, LINEAR:
		return true
	default:
		return false
	}
}

// String returns the string representation of the percentile strategy.
func (p PercentileStrategy) String() string {
	return string(p)
}

// IsValid reports whether m is a supported rounding mode.
func (m RoundingMode) IsValid() bool {
	switch m {
	case HALF_UP, FIXED_POINT:
		return true
	default:
		return false
	}
}

// String returns the string representation of the rounding mode.
func (m RoundingMode) String() string {
	return string(m)
}

// IsValid reports whether c is a known index category.
func (c IndexCategory) IsValid() bool {
	switch c {
	case BASIC_LATERALIZATION, FUNCTIONAL_LATERALIZATION, PERCEPTION, LANGUAGE_READING, COGNITION:
		return true
	default:
		return false
	}
}

// String returns the string representation of the category.
func (c IndexCategory) String() string {
	return string(c)
}

// Title returns a human-readable heading for the category.
func (c IndexCategory) Title() string {
	switch c {
	case BASIC_LATERALIZATION:
		return "Basic lateralization"
	case FUNCTIONAL_LATERALIZATION:
		return "Functional lateralization"
	case PERCEPTION:
		return "Perception"
	case LANGUAGE_READING:
		return "Language and reading"
	case COGNITION:
		return "Cognition"
	default:
		return "Other"
	}
}

// IsValid reports whether c is a supported comparison operator.
func (c Comparison) IsValid() bool {
	switch c {
	case GTE, GT, LTE, LT:
		return true
	default:
		return false
	}
}

// Holds reports whether value satisfies "value <op> threshold".
func (c Comparison) Holds(value, threshold float64) bool {
	switch c {
	case GTE:
		return value >= threshold
	case GT:
		return value > threshold
	case LTE:
		return value <= threshold
	case LT:
		return value < threshold
	default:
		return false
	}
}

// IsValid reports whether r is a known risk level.
func (r RiskLevel) IsValid() bool {
	switch r {
	case HIGH_RISK, MODERATE_RISK, LOW_RISK, VERY_LOW_RISK:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk level.
func (r RiskLevel) String() string {
	return string(r)
}

// Description returns the label used in interpretation text.
func (r RiskLevel) Description() string {
	switch r {
	case HIGH_RISK:
		return "High risk"
	case MODERATE_RISK:
		return "Moderate risk"
	case LOW_RISK:
		return "Low risk"
	case VERY_LOW_RISK:
		return "Very low risk"
	default:
		return ""
	}
}
