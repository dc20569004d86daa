package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dkt-index-engine/internal/domain"
	"github.com/dkt-index-engine/internal/service"
	"github.com/dkt-index-engine/pkg/dkt"
)

func sampleReport() *domain.AnalysisReport {
	z := 1.25
	return &domain.AnalysisReport{
		RunID:     "6f1c2a9e-0000-4000-8000-000000000001",
		Subject:   "sub-01",
		CreatedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		Indices: []domain.IndexResult{
			{
				ID:             service.IndexHandedness,
				Name:           "Handedness Index",
				Category:       domain.BASIC_LATERALIZATION,
				Value:          2.0,
				Percentile:     98,
				Label:          "very strong right-handed",
				Interpretation: "Very strong right-handedness.",
				RegionsUsed:    2,
				RegionsTotal:   3,
				Formula:        "LI_hand = Σ[w × (z_L − z_R)]",
				ZScore:         &z,
				Details: []domain.RegionContribution{
					{Region: "precentral", RegionWeight: 0.55, ZLeft: 2, ZRight: 0, ContribLeft: 1.1, ContribRight: 0},
				},
			},
			{
				ID:             service.IndexDominantEye,
				Name:           "Dominant Eye Index",
				Category:       domain.BASIC_LATERALIZATION,
				Value:          math.NaN(),
				Label:          domain.UNDETERMINED,
				Interpretation: "Not determined.",
				RegionsUsed:    3,
				RegionsTotal:   3,
			},
			{
				ID:           service.IndexEmpathy,
				Name:         "Empathy Index",
				Category:     domain.COGNITION,
				Value:        0,
				Percentile:   50,
				Label:        "normal",
				RegionsUsed:  4,
				RegionsTotal: 4,
			},
		},
		Summary: domain.AnalysisSummary{
			TopStrengths:    []string{"Handedness Index (top 2%)"},
			SpecialFeatures: []string{"Pure right-handed (top 10%)"},
			Recommendations: []string{service.DefaultRecommendation},
		},
		Overall:  domain.OverallScore{Score: 75, Label: "good", Contributors: 1},
		Measures: &domain.BrainMeasures{EstimatedTIV: 1500000, LeftMeanThickness: 2.51},
		Warnings: []string{"right hemisphere is missing 1 reference regions: precentral"},
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format   string
		expected domain.ReportFormatter
	}{
		{"text", &TextFormatter{}},
		{"", &TextFormatter{}},
		{"json", &JSONFormatter{}},
		{"JSON", &JSONFormatter{}},
		{"yaml", &YAMLFormatter{}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f, err := NewFormatter(tt.format, Options{})
			require.NoError(t, err)
			assert.IsType(t, tt.expected, f)
		})
	}

	t.Run("Unsupported", func(t *testing.T) {
		_, err := NewFormatter("xml", Options{})
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(&buf, sampleReport()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "sub-01", decoded["subject"])
	indices := decoded["indices"].([]interface{})
	require.Len(t, indices, 3)

	first := indices[0].(map[string]interface{})
	assert.Equal(t, 2.0, first["value"])
	assert.Equal(t, 1.25, first["z_score"])

	second := indices[1].(map[string]interface{})
	assert.Nil(t, second["value"], "non-finite values encode as null")
	assert.Equal(t, domain.UNDETERMINED, second["label"])

	assert.Contains(t, buf.String(), "Σ[w × (z_L − z_R)]")
	assert.Contains(t, buf.String(), "\n  \"run_id\"")
}

func TestJSONFormatter_NonFiniteLanguageRegion(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel) // Suppress logs during testing

	left := make(domain.HemisphereMap, len(domain.AdultMaleReference))
	right := make(domain.HemisphereMap, len(domain.AdultMaleReference))
	for name, ref := range domain.AdultMaleReference {
		left[name] = ref.Mean()
		right[name] = ref.Shifted(1)
	}
	superiortemporal := left["superiortemporal"]
	superiortemporal.Volume = math.NaN()
	left["superiortemporal"] = superiortemporal

	results, err := service.NewIndexEngine(logger, 2).EvaluateAll(context.Background(), left, right)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(&buf, &domain.AnalysisReport{Subject: "sub-nan", Indices: results}))

	var decoded struct {
		Indices []map[string]interface{} `json:"indices"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	var langlat map[string]interface{}
	for _, r := range decoded.Indices {
		if r["id"] == service.IndexLanguageLat {
			langlat = r
		}
	}
	require.NotNil(t, langlat)
	assert.Nil(t, langlat["value"])
	assert.NotContains(t, langlat, "signal_magnitude", "non-finite magnitude is dropped")
	assert.Equal(t, domain.UNDETERMINED, langlat["label"])
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter().Format(&buf, sampleReport()))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "sub-01", decoded["subject"])
	overall := decoded["overall"].(map[string]interface{})
	assert.Equal(t, 75, overall["score"])

	measures := decoded["measures"].(map[string]interface{})
	assert.Equal(t, 2.51, measures["left_mean_thickness"])
	assert.NotContains(t, measures, "cortex_volume")
}

func TestTextFormatter(t *testing.T) {
	t.Run("Summary view", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewTextFormatter(false).Format(&buf, sampleReport()))
		out := buf.String()

		assert.Contains(t, out, "Structural Brain Index Report")
		assert.Contains(t, out, "Subject:       sub-01")
		assert.Contains(t, out, "Overall score: 75/100 [good]")
		assert.Contains(t, out, "eTIV:")
		assert.NotContains(t, out, "Cortex volume:")
		assert.Contains(t, out, "── Basic lateralization (2) mean P98, median P98 ──")
		assert.Contains(t, out, "── Cognition (1) mean P50, median P50 ──")
		assert.NotContains(t, out, "Perception")
		assert.Contains(t, out, "2.000")
		assert.Contains(t, out, "n/a")
		assert.Contains(t, out, "! Handedness Index used 2 of 3 regions")
		assert.Contains(t, out, "Top strengths:\n  • Handedness Index (top 2%)")
		assert.Contains(t, out, "Warnings:")
		assert.Contains(t, out, "Run: 6f1c2a9e-0000-4000-8000-000000000001")
		assert.NotContains(t, out, "contrib left")

		// categories appear in report order
		assert.Less(t, strings.Index(out, "Basic lateralization"), strings.Index(out, "Cognition"))
	})

	t.Run("Detail view", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewTextFormatter(true).Format(&buf, sampleReport()))
		out := buf.String()

		assert.Contains(t, out, "contrib left")
		assert.Contains(t, out, "precentral")
		assert.Contains(t, out, "1.100")
		assert.Contains(t, out, "LI_hand")
	})

	t.Run("Write error", func(t *testing.T) {
		err := NewTextFormatter(false).Format(failingWriter{}, sampleReport())
		assert.Error(t, err)
	})
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestCategoryStats(t *testing.T) {
	results := []domain.IndexResult{
		{Value: 1, Percentile: 90},
		{Value: 0, Percentile: 50},
		{Value: -1, Percentile: 13},
		{Value: math.NaN()},
	}
	assert.Equal(t, "mean P51, median P50 ", categoryStats(results))
	assert.Empty(t, categoryStats([]domain.IndexResult{{Value: math.NaN()}}))
}

func TestWriteCatalog(t *testing.T) {
	defs := service.Catalog()

	t.Run("Text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteCatalog(&buf, defs, "text"))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 20)
		assert.True(t, strings.HasPrefix(lines[0], "ID"))
		assert.Contains(t, lines[1], "handedness")
		assert.Contains(t, lines[1], "ASYMMETRY_DIFFERENCE L-R")
		assert.Contains(t, buf.String(), "BLENDED_MEAN 0.7/0.3")
		assert.Contains(t, buf.String(), "precentral (0.55)")
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteCatalog(&buf, defs, "json"))

		var decoded []domain.IndexDefinition
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, len(defs))
		assert.Equal(t, defs[0].ID, decoded[0].ID)
		assert.Equal(t, defs[0].Contributors, decoded[0].Contributors)
		assert.Equal(t, domain.BlendRatio{Left: 0.7, Right: 0.3}, decoded[12].Blend)
	})

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteCatalog(&buf, defs[:1], "yaml"))
		assert.Contains(t, buf.String(), "handedness")
	})

	t.Run("Unsupported", func(t *testing.T) {
		assert.ErrorIs(t, WriteCatalog(&bytes.Buffer{}, defs, "csv"), domain.ErrUnsupportedFormat)
	})
}

func TestWriteValidation(t *testing.T) {
	report := &dkt.ValidationReport{
		HasMarker: true,
		Regions:   30,
		Unknown:   []string{"bankssts"},
		Issues: []dkt.Issue{
			{Line: 70, Region: "insula", Message: "thickness value \"abc\" is not a finite number"},
			{Message: "no \"# Measure\" header lines found"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteValidation(&buf, "lh.aparc.DKTatlas.stats", dkt.LEFT_DKT, report))
	out := buf.String()

	assert.Contains(t, out, "lh.aparc.DKTatlas.stats: invalid")
	assert.Contains(t, out, "kind:     left hemisphere DKT")
	assert.Contains(t, out, "regions:  30")
	assert.Contains(t, out, "unknown:  bankssts")
	assert.Contains(t, out, "line 70 (insula): thickness value")
	assert.Contains(t, out, "  no \"# Measure\" header lines found")
}
