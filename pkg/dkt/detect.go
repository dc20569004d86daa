package dkt

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dkt-index-engine/internal/domain"
)

// ReportKind identifies a FreeSurfer stats file.
type ReportKind string

const (
	LEFT_DKT    ReportKind = "LEFT_DKT"
	RIGHT_DKT   ReportKind = "RIGHT_DKT"
	LEFT_APARC  ReportKind = "LEFT_APARC"
	RIGHT_APARC ReportKind = "RIGHT_APARC"
	ASEG        ReportKind = "ASEG"
	UNKNOWN     ReportKind = "UNKNOWN"
)

// kindSuffixes is checked in order; DKT suffixes must precede the plain
// aparc ones because "lh.aparc.DKTatlas.stats" never ends in "lh.aparc.stats".
var kindSuffixes = []struct {
	kind   ReportKind
	suffix string
	label  string
}{
	{LEFT_DKT, "lh.aparc.dktatlas.stats", "left hemisphere DKT"},
	{RIGHT_DKT, "rh.aparc.dktatlas.stats", "right hemisphere DKT"},
	{LEFT_APARC, "lh.aparc.stats", "left hemisphere aparc"},
	{RIGHT_APARC, "rh.aparc.stats", "right hemisphere aparc"},
	{ASEG, "aseg.stats", "subcortical segmentation"},
}

// FileName returns the canonical file name of the kind.
func (k ReportKind) FileName() string {
	switch k {
	case LEFT_DKT:
		return "lh.aparc.DKTatlas.stats"
	case RIGHT_DKT:
		return "rh.aparc.DKTatlas.stats"
	case LEFT_APARC:
		return "lh.aparc.stats"
	case RIGHT_APARC:
		return "rh.aparc.stats"
	case ASEG:
		return "aseg.stats"
	default:
		return ""
	}
}

// Label returns a human-readable description of the kind.
func (k ReportKind) Label() string {
	for _, ks := range kindSuffixes {
		if ks.kind == k {
			return ks.label
		}
	}
	return "unknown report"
}

// Hemisphere returns the hemisphere a per-hemisphere kind belongs to.
func (k ReportKind) Hemisphere() (domain.Hemisphere, bool) {
	switch k {
	case LEFT_DKT, LEFT_APARC:
		return domain.LEFT, true
	case RIGHT_DKT, RIGHT_APARC:
		return domain.RIGHT, true
	default:
		return "", false
	}
}

// String returns the string representation of the kind.
func (k ReportKind) String() string {
	return string(k)
}

// DetectKind recognizes a stats file by its name, case-insensitively.
func DetectKind(path string) ReportKind {
	name := strings.ToLower(filepath.Base(path))
	for _, ks := range kindSuffixes {
		if strings.HasSuffix(name, ks.suffix) {
			return ks.kind
		}
	}
	return UNKNOWN
}

// CheckKind verifies that path names a report of the expected kind and
// explains the most common mix-ups.
func CheckKind(path string, expected ReportKind) error {
	detected := DetectKind(path)
	if detected == expected {
		return nil
	}

	name := filepath.Base(path)
	if detected != UNKNOWN {
		return fmt.Errorf("%w: %s is a %s report, not %s", domain.ErrUnrecognizedReport, name, detected.Label(), expected.Label())
	}

	if hemi, ok := expected.Hemisphere(); ok {
		lower := strings.ToLower(name)
		switch {
		case hemi == domain.LEFT && strings.Contains(lower, "rh."):
			return fmt.Errorf("%w: %s is a right hemisphere (rh) file, a left hemisphere (lh) file is required", domain.ErrHemisphereMismatch, name)
		case hemi == domain.RIGHT && strings.Contains(lower, "lh."):
			return fmt.Errorf("%w: %s is a left hemisphere (lh) file, a right hemisphere (rh) file is required", domain.ErrHemisphereMismatch, name)
		}
	}

	return fmt.Errorf("%w: %s does not match %s", domain.ErrUnrecognizedReport, name, expected.FileName())
}
