package export

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/montanaflynn/stats"

	"github.com/dkt-index-engine/internal/domain"
	"github.com/dkt-index-engine/pkg/normscore"
)

const rule = "══════════════════════════════════════════"

// categoryOrder is the section order of the text report
var categoryOrder = []domain.IndexCategory{
	domain.BASIC_LATERALIZATION,
	domain.FUNCTIONAL_LATERALIZATION,
	domain.PERCEPTION,
	domain.LANGUAGE_READING,
	domain.COGNITION,
}

// TextFormatter writes a plain-text report.
type TextFormatter struct {
	showDetails bool
}

// NewTextFormatter creates a text report formatter.
func NewTextFormatter(showDetails bool) *TextFormatter {
	return &TextFormatter{showDetails: showDetails}
}

// Format writes the report grouped by category, followed by the summary.
func (f *TextFormatter) Format(w io.Writer, report *domain.AnalysisReport) error {
	ew := &errWriter{w: w}

	f.writeHeader(ew, report)
	f.writeIndices(ew, report)
	f.writeSummary(ew, report)
	f.writeFooter(ew, report)

	return ew.err
}

func (f *TextFormatter) writeHeader(w io.Writer, report *domain.AnalysisReport) {
	fmt.Fprintf(w, "%s\n  Structural Brain Index Report\n%s\n", rule, rule)
	if report.Subject != "" {
		fmt.Fprintf(w, "  Subject:       %s\n", report.Subject)
	}
	fmt.Fprintf(w, "  Overall score: %d/100 [%s]\n", report.Overall.Score, report.Overall.Label)

	if m := report.Measures; !m.IsEmpty() {
		fmt.Fprintln(w)
		writeMeasure(w, "eTIV", m.EstimatedTIV, "mm³")
		writeMeasure(w, "Brain segmentation volume", m.BrainSegVolume, "mm³")
		writeMeasure(w, "Cortex volume", m.CortexVolume, "mm³")
		writeMeasure(w, "Cerebral white matter", m.CerebralWhiteMatterVol, "mm³")
		writeMeasure(w, "Left mean thickness", m.LeftMeanThickness, "mm")
		writeMeasure(w, "Right mean thickness", m.RightMeanThickness, "mm")
	}
	fmt.Fprintln(w)
}

func writeMeasure(w io.Writer, name string, value float64, unit string) {
	if value == 0 {
		return
	}
	fmt.Fprintf(w, "  %-27s %.2f %s\n", name+":", value, unit)
}

func (f *TextFormatter) writeIndices(w io.Writer, report *domain.AnalysisReport) {
	grouped := make(map[domain.IndexCategory][]domain.IndexResult)
	for _, r := range report.Indices {
		grouped[r.Category] = append(grouped[r.Category], r)
	}

	for _, category := range categoryOrder {
		results, ok := grouped[category]
		if !ok {
			continue
		}

		fmt.Fprintf(w, "── %s (%d) %s──\n", category.Title(), len(results), categoryStats(results))

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, r := range results {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", r.Name, formatValue(r), formatPercentile(r), r.Label)
		}
		tw.Flush()

		for _, r := range results {
			if r.RegionsUsed < r.RegionsTotal {
				fmt.Fprintf(w, "    ! %s used %d of %d regions\n", r.Name, r.RegionsUsed, r.RegionsTotal)
			}
			if f.showDetails {
				writeDetails(w, r)
			}
		}
		fmt.Fprintln(w)
	}
}

// categoryStats describes the determined percentiles of a category
func categoryStats(results []domain.IndexResult) string {
	percentiles := make([]float64, 0, len(results))
	for i := range results {
		if results[i].IsDetermined() {
			percentiles = append(percentiles, float64(results[i].Percentile))
		}
	}
	if len(percentiles) == 0 {
		return ""
	}

	mean, err := stats.Mean(percentiles)
	if err != nil {
		return ""
	}
	median, err := stats.Median(percentiles)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("mean P%.0f, median P%.0f ", normscore.RoundHalfUp(mean), normscore.RoundHalfUp(median))
}

func writeDetails(w io.Writer, r domain.IndexResult) {
	fmt.Fprintf(w, "    %s\n", r.Name)
	fmt.Fprintf(w, "      %s\n", r.Formula)
	fmt.Fprintf(w, "      %s\n", r.Interpretation)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "      region\tweight\tz left\tz right\tcontrib left\tcontrib right\t\n")
	for _, d := range r.Details {
		fmt.Fprintf(tw, "      %s\t%.2f\t%.3f\t%.3f\t%.3f\t%.3f\t\n",
			d.Region, d.RegionWeight, d.ZLeft, d.ZRight, d.ContribLeft, d.ContribRight)
	}
	tw.Flush()
}

func formatValue(r domain.IndexResult) string {
	if !r.IsDetermined() {
		return "n/a"
	}
	return normscore.ToFixed(r.Value, 3)
}

func formatPercentile(r domain.IndexResult) string {
	if !r.IsDetermined() {
		return "-"
	}
	return fmt.Sprintf("P%d", r.Percentile)
}

func (f *TextFormatter) writeSummary(w io.Writer, report *domain.AnalysisReport) {
	writeList(w, "Top strengths", report.Summary.TopStrengths)
	writeList(w, "Special features", report.Summary.SpecialFeatures)
	writeList(w, "Recommendations", report.Summary.Recommendations)
	writeList(w, "Warnings", report.Warnings)
}

func writeList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  • %s\n", item)
	}
	fmt.Fprintln(w)
}

func (f *TextFormatter) writeFooter(w io.Writer, report *domain.AnalysisReport) {
	parts := []string{"Run: " + report.RunID}
	if report.Cached {
		parts = append(parts, "cached")
	}
	parts = append(parts, fmt.Sprintf("%d ms", report.ProcessingTimeMs))
	fmt.Fprintf(w, "%s\n  %s\n  Generated: %s\n", rule, strings.Join(parts, " | "), report.CreatedAt.Format("2006-01-02 15:04:05"))
}

// errWriter records the first write error and drops later writes
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
