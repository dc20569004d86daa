package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"time"
)

// RegionMeasurement is one anatomical region's observed data for one hemisphere.
// Fields parsed from malformed text are NaN.
type RegionMeasurement struct {
	Thickness   float64 `json:"thickness" yaml:"thickness"`       // mm
	SurfaceArea float64 `json:"surface_area" yaml:"surface_area"` // mm²
	Volume      float64 `json:"volume" yaml:"volume"`             // mm³
}

// Value returns the measurement for metric m.
func (r RegionMeasurement) Value(m Metric) float64 {
	switch m {
	case THICKNESS:
		return r.Thickness
	case SURFACE_AREA:
		return r.SurfaceArea
	case VOLUME:
		return r.Volume
	default:
		return math.NaN()
	}
}

// IsFinite reports whether all three metrics are finite numbers.
func (r RegionMeasurement) IsFinite() bool {
	return isFinite(r.Thickness) && isFinite(r.SurfaceArea) && isFinite(r.Volume)
}

// HemisphereMap maps region name to its measurement for one hemisphere.
type HemisphereMap map[string]RegionMeasurement

// Lookup returns the measurement for region and whether it is present.
func (h HemisphereMap) Lookup(region string) (RegionMeasurement, bool) {
	m, ok := h[region]
	return m, ok
}

// NonFinite returns the names of regions holding at least one non-finite metric.
func (h HemisphereMap) NonFinite() []string {
	var regions []string
	for name, m := range h {
		if !m.IsFinite() {
			regions = append(regions, name)
		}
	}
	return regions
}

// MetricWeights is a (thickness, surface area, volume) weight triple
// expressed in percent.
type MetricWeights struct {
	Thickness   float64 `json:"thickness"`
	SurfaceArea float64 `json:"surface_area"`
	Volume      float64 `json:"volume"`
}

// W builds a MetricWeights triple.
func W(thickness, surfaceArea, volume float64) MetricWeights {
	return MetricWeights{Thickness: thickness, SurfaceArea: surfaceArea, Volume: volume}
}

// String renders the triple as "T:A:V".
func (w MetricWeights) String() string {
	return fmt.Sprintf("%s:%s:%s", formatWeight(w.Thickness), formatWeight(w.SurfaceArea), formatWeight(w.Volume))
}

func formatWeight(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

// BlendRatio is the (left, right) share pair of a blended mean. Both shares
// are literals; Right is never derived from Left.
type BlendRatio struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

// Even is the 0.5/0.5 blend.
var Even = BlendRatio{Left: 0.5, Right: 0.5}

// IsValid reports whether both shares are within [0,1] and sum to 1.
func (b BlendRatio) IsValid() bool {
	if b.Left < 0 || b.Left > 1 || b.Right < 0 || b.Right > 1 {
		return false
	}
	return math.Abs(b.Left+b.Right-1) < 1e-9
}

// Contributor is one region's participation in an index.
type Contributor struct {
	// Label is the display name reported in diagnostics. It differs from
	// Region when a region stands in for one the atlas does not parcellate.
	Label      string        `json:"label"`
	LocalLabel string        `json:"local_label,omitempty"`
	Region     string        `json:"region"`
	Weight     float64       `json:"weight"`
	Metrics    MetricWeights `json:"metrics"`
}

// IndexDefinition is the static description of how one index is computed.
type IndexDefinition struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	LocalName string        `json:"local_name"`
	Category  IndexCategory `json:"category"`

	Rule      CombinationRule `json:"rule"`
	SideOrder SideOrder       `json:"side_order,omitempty"`

	// Blend holds the hemisphere shares of a blended mean.
	Blend BlendRatio `json:"blend"`

	Contributors []Contributor      `json:"contributors"`
	Renormalize  bool               `json:"renormalize,omitempty"`
	Percentile   PercentileStrategy `json:"percentile"`
	Digits       int                `json:"digits"`
	Rounding     RoundingMode       `json:"rounding"`

	// ReportsZScore attaches the auxiliary strength score to the result.
	ReportsZScore bool `json:"reports_z_score,omitempty"`

	// UnscaledDetails reports blended-mean contributions as weight × z,
	// leaving the hemisphere share out of the diagnostic rows only.
	UnscaledDetails bool `json:"unscaled_details,omitempty"`

	Formula    string   `json:"formula"`
	Threshold  string   `json:"threshold"`
	References []string `json:"references"`
	Weights    string   `json:"weights"`
}

// Validate checks the definition for internal consistency.
func (d *IndexDefinition) Validate() error {
	if d.ID == "" {
		return NewValidationError("id", "index id is required", d.ID)
	}
	if !d.Rule.IsValid() {
		return fmt.Errorf("%s: %w: %s", d.ID, ErrInvalidRule, d.Rule)
	}
	if d.Rule == ASYMMETRY_DIFFERENCE && !d.SideOrder.IsValid() {
		return NewValidationError("side_order", "asymmetry index requires a side order", d.SideOrder)
	}
	if d.Rule == BLENDED_MEAN && !d.Blend.IsValid() {
		return NewValidationError("blend", "blend shares must be within [0,1] and sum to 1", d.Blend)
	}
	if !d.Percentile.IsValid() {
		return fmt.Errorf("%s: %w: %s", d.ID, ErrInvalidStrategy, d.Percentile)
	}
	if !d.Rounding.IsValid() {
		return NewValidationError("rounding", "unknown rounding mode", d.Rounding)
	}
	if len(d.Contributors) == 0 {
		return fmt.Errorf("%s: %w: no contributing regions", d.ID, ErrInvalidDefinition)
	}
	for _, c := range d.Contributors {
		if c.Region == "" || c.Weight <= 0 {
			return fmt.Errorf("%s: %w: contributor %q", d.ID, ErrInvalidDefinition, c.Label)
		}
	}
	return nil
}

// RegionLabels returns the "<label> (<weight>)" strings shown alongside a result.
func (d *IndexDefinition) RegionLabels() []string {
	labels := make([]string, 0, len(d.Contributors))
	for _, c := range d.Contributors {
		labels = append(labels, fmt.Sprintf("%s (%.2f)", c.Label, c.Weight))
	}
	return labels
}

// RegionContribution is the per-region diagnostic record of one index evaluation.
type RegionContribution struct {
	Region       string  `json:"region" yaml:"region"`
	LocalLabel   string  `json:"local_label,omitempty" yaml:"local_label,omitempty"`
	RegionWeight float64 `json:"region_weight" yaml:"region_weight"`
	ZLeft        float64 `json:"z_left" yaml:"z_left"`
	ZRight       float64 `json:"z_right" yaml:"z_right"`
	ContribLeft  float64 `json:"contrib_left" yaml:"contrib_left"`
	ContribRight float64 `json:"contrib_right" yaml:"contrib_right"`
	WeightsUsed  string  `json:"weights_used" yaml:"weights_used"`
}

// MarshalJSON encodes non-finite scores as null.
func (c RegionContribution) MarshalJSON() ([]byte, error) {
	type alias RegionContribution
	return json.Marshal(struct {
		alias
		ZLeft        *float64 `json:"z_left"`
		ZRight       *float64 `json:"z_right"`
		ContribLeft  *float64 `json:"contrib_left"`
		ContribRight *float64 `json:"contrib_right"`
	}{
		alias:        alias(c),
		ZLeft:        finiteOrNil(c.ZLeft),
		ZRight:       finiteOrNil(c.ZRight),
		ContribLeft:  finiteOrNil(c.ContribLeft),
		ContribRight: finiteOrNil(c.ContribRight),
	})
}

// IndexResult is the outcome of evaluating one IndexDefinition against a subject.
type IndexResult struct {
	ID        string        `json:"id" yaml:"id"`
	Name      string        `json:"name" yaml:"name"`
	LocalName string        `json:"local_name" yaml:"local_name"`
	Category  IndexCategory `json:"category" yaml:"category"`

	// Value is rounded to the definition's precision. Percentile and
	// Interpretation were derived from the unrounded value.
	Value          float64   `json:"value" yaml:"value"`
	Percentile     int       `json:"percentile" yaml:"percentile"`
	Label          string    `json:"label" yaml:"label"`
	Interpretation string    `json:"interpretation" yaml:"interpretation"`
	RiskLevel      RiskLevel `json:"risk_level,omitempty" yaml:"risk_level,omitempty"`

	ZScore    *float64 `json:"z_score,omitempty" yaml:"z_score,omitempty"`
	Magnitude float64  `json:"signal_magnitude,omitempty" yaml:"signal_magnitude,omitempty"`

	RegionsUsed  int `json:"regions_used" yaml:"regions_used"`
	RegionsTotal int `json:"regions_total" yaml:"regions_total"`

	Threshold  string               `json:"threshold" yaml:"threshold"`
	Formula    string               `json:"formula" yaml:"formula"`
	References []string             `json:"references" yaml:"references"`
	Regions    []string             `json:"regions" yaml:"regions"`
	Weights    string               `json:"weights" yaml:"weights"`
	Details    []RegionContribution `json:"details" yaml:"details"`
}

// Coverage returns the fraction of defined regions that contributed.
func (r *IndexResult) Coverage() float64 {
	if r.RegionsTotal == 0 {
		return 0
	}
	return float64(r.RegionsUsed) / float64(r.RegionsTotal)
}

// IsDetermined reports whether the value is a finite number.
func (r *IndexResult) IsDetermined() bool {
	return isFinite(r.Value)
}

// MarshalJSON encodes every non-finite number as null.
func (r IndexResult) MarshalJSON() ([]byte, error) {
	type alias IndexResult
	var z, magnitude *float64
	if r.ZScore != nil {
		z = finiteOrNil(*r.ZScore)
	}
	if r.Magnitude != 0 {
		magnitude = finiteOrNil(r.Magnitude)
	}
	return json.Marshal(struct {
		alias
		Value     *float64 `json:"value"`
		ZScore    *float64 `json:"z_score,omitempty"`
		Magnitude *float64 `json:"signal_magnitude,omitempty"`
	}{
		alias:     alias(r),
		Value:     finiteOrNil(r.Value),
		ZScore:    z,
		Magnitude: magnitude,
	})
}

// Clone returns a copy that shares no slices or pointers with r.
func (r IndexResult) Clone() IndexResult {
	if r.ZScore != nil {
		z := *r.ZScore
		r.ZScore = &z
	}
	r.References = slices.Clone(r.References)
	r.Regions = slices.Clone(r.Regions)
	r.Details = slices.Clone(r.Details)
	return r
}

// AnalysisSummary is derived from the full list of index results.
type AnalysisSummary struct {
	TopStrengths    []string `json:"top_strengths" yaml:"top_strengths"`
	SpecialFeatures []string `json:"special_features" yaml:"special_features"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

// OverallScore condenses the ability-type indices into one 0–100 score.
type OverallScore struct {
	Score            int     `json:"score" yaml:"score"`
	Label            string  `json:"label" yaml:"label"`
	Contributors     int     `json:"contributors" yaml:"contributors"`
	PercentileSpread float64 `json:"percentile_spread" yaml:"percentile_spread"`
}

// GlobalMeasure is one "# Measure" header entry of a stats report.
type GlobalMeasure struct {
	Structure   string  `json:"structure" yaml:"structure"`
	Key         string  `json:"key" yaml:"key"`
	Description string  `json:"description" yaml:"description"`
	Value       float64 `json:"value" yaml:"value"`
	Unit        string  `json:"unit" yaml:"unit"`
}

// BrainMeasures holds optional whole-brain measures taken from report headers.
type BrainMeasures struct {
	EstimatedTIV           float64 `json:"etiv,omitempty" yaml:"etiv,omitempty"`
	BrainSegVolume         float64 `json:"brain_seg_volume,omitempty" yaml:"brain_seg_volume,omitempty"`
	CortexVolume           float64 `json:"cortex_volume,omitempty" yaml:"cortex_volume,omitempty"`
	CerebralWhiteMatterVol float64 `json:"cerebral_white_matter_volume,omitempty" yaml:"cerebral_white_matter_volume,omitempty"`
	LeftMeanThickness      float64 `json:"left_mean_thickness,omitempty" yaml:"left_mean_thickness,omitempty"`
	RightMeanThickness     float64 `json:"right_mean_thickness,omitempty" yaml:"right_mean_thickness,omitempty"`
}

// IsEmpty reports whether no measure was found.
func (b *BrainMeasures) IsEmpty() bool {
	return b == nil || *b == BrainMeasures{}
}

// AnalysisReport is the final object handed to the presentation layer.
type AnalysisReport struct {
	RunID            string          `json:"run_id" yaml:"run_id"`
	Subject          string          `json:"subject,omitempty" yaml:"subject,omitempty"`
	CreatedAt        time.Time       `json:"created_at" yaml:"created_at"`
	Indices          []IndexResult   `json:"indices" yaml:"indices"`
	Summary          AnalysisSummary `json:"summary" yaml:"summary"`
	Overall          OverallScore    `json:"overall" yaml:"overall"`
	Measures         *BrainMeasures  `json:"measures,omitempty" yaml:"measures,omitempty"`
	Warnings         []string        `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Cached           bool            `json:"cached" yaml:"cached"`
	ProcessingTimeMs int64           `json:"processing_time_ms" yaml:"processing_time_ms"`
}

// Clone returns a deep copy of the report.
func (r *AnalysisReport) Clone() *AnalysisReport {
	clone := *r
	if r.Indices != nil {
		clone.Indices = make([]IndexResult, len(r.Indices))
		for i := range r.Indices {
			clone.Indices[i] = r.Indices[i].Clone()
		}
	}
	clone.Summary = AnalysisSummary{
		TopStrengths:    slices.Clone(r.Summary.TopStrengths),
		SpecialFeatures: slices.Clone(r.Summary.SpecialFeatures),
		Recommendations: slices.Clone(r.Summary.Recommendations),
	}
	clone.Warnings = slices.Clone(r.Warnings)
	if r.Measures != nil {
		measures := *r.Measures
		clone.Measures = &measures
	}
	return &clone
}

// Index returns the result with the given ID.
func (r *AnalysisReport) Index(id string) (*IndexResult, bool) {
	for i := range r.Indices {
		if r.Indices[i].ID == id {
			return &r.Indices[i], true
		}
	}
	return nil, false
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteOrNil(v float64) *float64 {
	if !isFinite(v) {
		return nil
	}
	return &v
}
