package domain

import (
	"errors"
	"math"
	"testing"
)

func TestHemisphere(t *testing.T) {
	tests := []struct {
		name   string
		value  Hemisphere
		valid  bool
		prefix string
	}{
		{"Left", LEFT, true, "lh"},
		{"Right", RIGHT, true, "rh"},
		{"Unknown", Hemisphere("BOTH"), false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value.IsValid() != tt.valid {
				t.Errorf("Expected IsValid %v for %s", tt.valid, tt.value)
			}
			if tt.value.Prefix() != tt.prefix {
				t.Errorf("Expected prefix %q, got %q", tt.prefix, tt.value.Prefix())
			}
		})
	}
}

func TestEnumValidity(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"THICKNESS", THICKNESS.IsValid()},
		{"SURFACE_AREA", SURFACE_AREA.IsValid()},
		{"VOLUME", VOLUME.IsValid()},
		{"ASYMMETRY_DIFFERENCE", ASYMMETRY_DIFFERENCE.IsValid()},
		{"BLENDED_MEAN", BLENDED_MEAN.IsValid()},
		{"NORMALIZED_DIFFERENCE", NORMALIZED_DIFFERENCE.IsValid()},
		{"L-R", LEFT_MINUS_RIGHT.IsValid()},
		{"R-L", RIGHT_MINUS_LEFT.IsValid()},
		{"NORMAL_CDF", NORMAL_CDF.IsValid()},
		{"PIECEWISE_LINEAR", PIECEWISE_LINEAR.IsValid()},
		{"LINEAR", LINEAR.IsValid()},
		{"HALF_UP", HALF_UP.IsValid()},
		{"FIXED_POINT", FIXED_POINT.IsValid()},
		{"COGNITION", COGNITION.IsValid()},
		{"HIGH", HIGH_RISK.IsValid()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.valid {
				t.Errorf("Expected %s to be valid", tt.name)
			}
		})
	}

	invalid := []bool{
		Metric("DEPTH").IsValid(),
		CombinationRule("RATIO").IsValid(),
		SideOrder("L+R").IsValid(),
		PercentileStrategy("RANK").IsValid(),
		RoundingMode("BANKERS").IsValid(),
		IndexCategory("MOTOR").IsValid(),
		Comparison("==").IsValid(),
		RiskLevel("NONE").IsValid(),
	}
	for i, v := range invalid {
		if v {
			t.Errorf("Expected invalid value %d to be rejected", i)
		}
	}
}

func TestComparisonHolds(t *testing.T) {
	tests := []struct {
		op        Comparison
		value     float64
		threshold float64
		expected  bool
	}{
		{GTE, 0.5, 0.5, true},
		{GT, 0.5, 0.5, false},
		{LTE, -0.5, -0.5, true},
		{LT, -0.5, -0.5, false},
		{GT, math.NaN(), 0, false},
		{Comparison("=="), 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			if got := tt.op.Holds(tt.value, tt.threshold); got != tt.expected {
				t.Errorf("Expected %v %s %v to be %v, got %v", tt.value, tt.op, tt.threshold, tt.expected, got)
			}
		})
	}
}

func TestCategoryTitleAndRiskDescription(t *testing.T) {
	if BASIC_LATERALIZATION.Title() != "Basic lateralization" {
		t.Errorf("Unexpected title %q", BASIC_LATERALIZATION.Title())
	}
	if IndexCategory("MOTOR").Title() != "Other" {
		t.Errorf("Unknown category should be titled Other")
	}
	if VERY_LOW_RISK.Description() != "Very low risk" {
		t.Errorf("Unexpected description %q", VERY_LOW_RISK.Description())
	}
	if RiskLevel("NONE").Description() != "" {
		t.Errorf("Unknown risk level should have no description")
	}
}

func TestBlendRatio(t *testing.T) {
	tests := []struct {
		name  string
		blend BlendRatio
		valid bool
	}{
		{"Even", Even, true},
		{"Literal shares", BlendRatio{Left: 0.7, Right: 0.3}, true},
		{"Sum below one", BlendRatio{Left: 0.6, Right: 0.3}, false},
		{"Negative share", BlendRatio{Left: 1.2, Right: -0.2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.blend.IsValid() != tt.valid {
				t.Errorf("Expected IsValid %v for %+v", tt.valid, tt.blend)
			}
		})
	}
}

func TestIndexDefinitionValidate(t *testing.T) {
	valid := func() *IndexDefinition {
		return &IndexDefinition{
			ID:         "test",
			Rule:       ASYMMETRY_DIFFERENCE,
			SideOrder:  LEFT_MINUS_RIGHT,
			Percentile: NORMAL_CDF,
			Rounding:   HALF_UP,
			Digits:     3,
			Contributors: []Contributor{
				{Label: "precentral", Region: "precentral", Weight: 1, Metrics: W(40, 30, 30)},
			},
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("Expected valid definition, got %v", err)
	}

	tests := []struct {
		name     string
		mutate   func(*IndexDefinition)
		sentinel error
	}{
		{"Missing id", func(d *IndexDefinition) { d.ID = "" }, nil},
		{"Unknown rule", func(d *IndexDefinition) { d.Rule = "RATIO" }, ErrInvalidRule},
		{"Missing side order", func(d *IndexDefinition) { d.SideOrder = "" }, nil},
		{"Invalid blend", func(d *IndexDefinition) { d.Rule = BLENDED_MEAN; d.Blend = BlendRatio{Left: 0.7, Right: 0.7} }, nil},
		{"Unknown strategy", func(d *IndexDefinition) { d.Percentile = "RANK" }, ErrInvalidStrategy},
		{"Unknown rounding", func(d *IndexDefinition) { d.Rounding = "" }, nil},
		{"No contributors", func(d *IndexDefinition) { d.Contributors = nil }, ErrInvalidDefinition},
		{"Zero weight", func(d *IndexDefinition) { d.Contributors[0].Weight = 0 }, ErrInvalidDefinition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid()
			tt.mutate(d)

			err := d.Validate()
			if err == nil {
				t.Fatalf("Expected validation error")
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("Expected %v, got %v", tt.sentinel, err)
			}
		})
	}
}

func TestReferenceTable(t *testing.T) {
	if err := AdultMaleReference.Validate(); err != nil {
		t.Fatalf("Built-in reference should be valid: %v", err)
	}

	regions := AdultMaleReference.Regions()
	if len(regions) != len(AdultMaleReference) {
		t.Errorf("Expected %d regions, got %d", len(AdultMaleReference), len(regions))
	}
	for i := 1; i < len(regions); i++ {
		if regions[i-1] >= regions[i] {
			t.Errorf("Regions not sorted at %d: %s >= %s", i, regions[i-1], regions[i])
		}
	}

	broken := ReferenceTable{"insula": ref(3, 0, 2500, 300, 7800, 900)}
	var validationErr *ValidationError
	if err := broken.Validate(); !errors.As(err, &validationErr) {
		t.Errorf("Expected ValidationError for zero standard deviation, got %v", err)
	}
}

func TestHemisphereMapNonFinite(t *testing.T) {
	m := HemisphereMap{
		"insula":   {Thickness: 3, SurfaceArea: 2500, Volume: 7800},
		"fusiform": {Thickness: math.Inf(1), SurfaceArea: 3300, Volume: 9500},
	}

	got := m.NonFinite()
	if len(got) != 1 || got[0] != "fusiform" {
		t.Errorf("Expected [fusiform], got %v", got)
	}
}
