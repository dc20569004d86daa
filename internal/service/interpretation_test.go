package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkt-index-engine/internal/domain"
)

func TestInterpretationService_Classify(t *testing.T) {
	classifier := NewInterpretationService(testLogger())

	tests := []struct {
		name     string
		indexID  string
		value    float64
		expected string
	}{
		{"Handedness at strong boundary", IndexHandedness, 1.28, "very strong right-handed"},
		{"Handedness just below", IndexHandedness, 1.2799, "strong right-handed"},
		{"Handedness mixed lower bound", IndexHandedness, -0.52, "mixed"},
		{"Handedness fallback", IndexHandedness, -0.85, "strong left-handed"},
		{"Nostril inclusive upper band", IndexPreferredNostril, 0.3, "mild right nostril"},
		{"Nostril exclusive lower band", IndexPreferredNostril, -0.3, "mild left nostril"},
		{"Nostril fallback", IndexPreferredNostril, -1.2, "very strong left nostril"},
		{"Language bilateral", IndexLanguageLat, 0.0, "bilateral"},
		{"Language marked right", IndexLanguageLat, -0.16, "marked right"},
		{"Olfactory strict threshold", IndexOlfactory, 1.0, "normal"},
		{"Olfactory above threshold", IndexOlfactory, 1.01, "good"},
		{"Language composite outstanding", IndexLanguageComposite, 2.5, "outstanding"},
		{"Dyslexia high", IndexDyslexiaRisk, -1.01, "high risk"},
		{"Dyslexia boundary is moderate", IndexDyslexiaRisk, -1.0, "moderate risk"},
		{"Dyslexia low", IndexDyslexiaRisk, 0.49, "low risk"},
		{"Dyslexia very low", IndexDyslexiaRisk, 0.5, "very low risk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifier.Classify(tt.indexID, tt.value).Label)
		})
	}

	t.Run("Risk prefix", func(t *testing.T) {
		c := classifier.Classify(IndexDyslexiaRisk, -2)
		assert.Equal(t, domain.HIGH_RISK, c.RiskLevel)
		assert.Contains(t, c.Text, "High risk. ")
	})

	t.Run("Non-finite values", func(t *testing.T) {
		for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			c := classifier.Classify(IndexHandedness, v)
			assert.Equal(t, domain.UNDETERMINED, c.Label)
			assert.Empty(t, c.RiskLevel)
		}
	})

	t.Run("Unknown index", func(t *testing.T) {
		assert.Equal(t, domain.UNDETERMINED, classifier.Classify("nonexistent", 1).Label)
	})
}

func TestInterpretationService_Bands(t *testing.T) {
	classifier := NewInterpretationService(testLogger())

	for _, def := range Catalog() {
		t.Run(def.ID, func(t *testing.T) {
			table, ok := classifier.Bands(def.ID)
			require.True(t, ok)
			require.NotEmpty(t, table.Bands)
			assert.NotEmpty(t, table.Fallback.Label)

			for _, b := range table.Bands {
				assert.True(t, b.Comparison.IsValid(), b.Label)
				assert.NotEmpty(t, b.Text, b.Label)
			}
		})
	}
}
