package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/dkt-index-engine/internal/domain"
	"github.com/dkt-index-engine/pkg/dkt"
)

// WriteCatalog lists index definitions in the given format
func WriteCatalog(w io.Writer, defs []domain.IndexDefinition, format string) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(defs)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(defs); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tRULE\tPERCENTILE\tREGIONS")
	for i := range defs {
		d := &defs[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.Name, ruleLabel(d), d.Percentile, strings.Join(d.RegionLabels(), ", "))
	}
	return tw.Flush()
}

func ruleLabel(d *domain.IndexDefinition) string {
	switch d.Rule {
	case domain.ASYMMETRY_DIFFERENCE:
		return fmt.Sprintf("%s %s", d.Rule, d.SideOrder)
	case domain.BLENDED_MEAN:
		return fmt.Sprintf("%s %g/%g", d.Rule, d.Blend.Left, d.Blend.Right)
	default:
		return d.Rule.String()
	}
}

// WriteValidation prints the content check of one report file
func WriteValidation(w io.Writer, path string, kind dkt.ReportKind, report *dkt.ValidationReport) error {
	ew := &errWriter{w: w}

	status := "ok"
	if !report.ValidFor(kind) {
		status = "invalid"
	}
	fmt.Fprintf(ew, "%s: %s\n", path, status)
	fmt.Fprintf(ew, "  kind:     %s\n", kind.Label())
	fmt.Fprintf(ew, "  regions:  %d\n", report.Regions)
	if len(report.Unknown) > 0 {
		fmt.Fprintf(ew, "  unknown:  %s\n", strings.Join(report.Unknown, ", "))
	}
	for _, issue := range report.Issues {
		switch {
		case issue.Line > 0 && issue.Region != "":
			fmt.Fprintf(ew, "  line %d (%s): %s\n", issue.Line, issue.Region, issue.Message)
		case issue.Line > 0:
			fmt.Fprintf(ew, "  line %d: %s\n", issue.Line, issue.Message)
		default:
			fmt.Fprintf(ew, "  %s\n", issue.Message)
		}
	}
	return ew.err
}
