package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkt-index-engine/internal/domain"
)

// statsReport renders regions as a DKT stats table with a MeanThickness header
func statsReport(regions domain.HemisphereMap, meanThickness float64) string {
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("# Measure Cortex, NumVert, Number of Vertices, 120000, unitless\n")
	fmt.Fprintf(&b, "# Measure Cortex, MeanThickness, Mean Thickness, %g, mm\n", meanThickness)
	b.WriteString("# ColHeaders StructName NumVert SurfArea GrayVol ThickAvg ThickStd MeanCurv GausCurv FoldInd CurvInd\n")
	for _, name := range names {
		m := regions[name]
		fmt.Fprintf(&b, "%s 1000 %g %g %g 0.5 0.1 0.1 1 1\n", name, m.SurfaceArea, m.Volume, m.Thickness)
	}
	return b.String()
}

const asegReport = `# Measure BrainSeg, BrainSegVol, Brain Segmentation Volume, 1150000.0, mm^3
# Measure Cortex, CortexVol, Total cortical gray matter volume, 480000.0, mm^3
# Measure CerebralWhiteMatter, CerebralWhiteMatterVol, Total cerebral white matter volume, 450000.0, mm^3
# Measure EstimatedTotalIntraCranialVol, eTIV, Estimated Total Intracranial Volume, 1500000.0, mm^3
`

func meanInput(subject string) *AnalysisInput {
	return &AnalysisInput{
		Subject: subject,
		Left:    statsReport(meanHemisphere(), 2.51),
		Right:   statsReport(meanHemisphere(), 2.49),
	}
}

func createTestAnalyzer(t *testing.T, config domain.EngineConfig) *AnalyzerService {
	t.Helper()
	analyzer, err := NewDefaultAnalyzerService(config, testLogger())
	require.NoError(t, err)
	return analyzer
}

func requireEngineError(t *testing.T, err error, code string) *domain.EngineError {
	t.Helper()
	var engineErr *domain.EngineError
	require.True(t, errors.As(err, &engineErr), "expected EngineError, got %v", err)
	assert.Equal(t, code, engineErr.Code)
	return engineErr
}

func TestAnalyzerService_Analyze(t *testing.T) {
	ctx := context.Background()

	t.Run("Mean subject", func(t *testing.T) {
		analyzer := createTestAnalyzer(t, domain.EngineConfig{Workers: 4})

		report, err := analyzer.Analyze(ctx, meanInput("sub-01"))
		require.NoError(t, err)

		assert.NotEmpty(t, report.RunID)
		assert.Equal(t, "sub-01", report.Subject)
		assert.Len(t, report.Indices, 19)
		assert.Empty(t, report.Warnings)
		assert.False(t, report.Cached)
		assert.Equal(t, 75, report.Overall.Score)
		assert.Equal(t, []string{DefaultRecommendation}, report.Summary.Recommendations)

		require.NotNil(t, report.Measures)
		assert.Equal(t, 2.51, report.Measures.LeftMeanThickness)
		assert.Equal(t, 2.49, report.Measures.RightMeanThickness)
		assert.Zero(t, report.Measures.EstimatedTIV)

		handedness, ok := report.Index(IndexHandedness)
		require.True(t, ok)
		assert.Equal(t, 50, handedness.Percentile)
	})

	t.Run("Whole-brain measures", func(t *testing.T) {
		analyzer := createTestAnalyzer(t, domain.EngineConfig{Workers: 2})

		input := meanInput("sub-02")
		input.Aseg = asegReport
		input.LeftAparc = "# Measure Cortex, MeanThickness, Mean Thickness, 2.61, mm\n"

		report, err := analyzer.Analyze(ctx, input)
		require.NoError(t, err)

		require.NotNil(t, report.Measures)
		assert.Equal(t, 1500000.0, report.Measures.EstimatedTIV)
		assert.Equal(t, 1150000.0, report.Measures.BrainSegVolume)
		assert.Equal(t, 480000.0, report.Measures.CortexVolume)
		assert.Equal(t, 450000.0, report.Measures.CerebralWhiteMatterVol)
		assert.Equal(t, 2.61, report.Measures.LeftMeanThickness, "aparc report takes precedence")
		assert.Equal(t, 2.49, report.Measures.RightMeanThickness)
	})

	t.Run("Cache hit", func(t *testing.T) {
		analyzer := createTestAnalyzer(t, domain.EngineConfig{Workers: 2, CacheSize: 8})

		first, err := analyzer.Analyze(ctx, meanInput("sub-03"))
		require.NoError(t, err)
		require.NotEmpty(t, first.Summary.Recommendations)
		require.NotEmpty(t, first.Indices[0].Details)
		require.NotEmpty(t, first.Indices[0].Regions)
		recommendation := first.Summary.Recommendations[0]
		region := first.Indices[0].Regions[0]
		zLeft := first.Indices[0].Details[0].ZLeft
		first.Indices[0].Value = 42
		first.Summary.Recommendations[0] = "tampered"
		first.Indices[0].Details[0].ZLeft = 99
		first.Indices[0].Regions[0] = "tampered"

		second, err := analyzer.Analyze(ctx, meanInput("sub-03"))
		require.NoError(t, err)
		assert.True(t, second.Cached)
		assert.Equal(t, first.RunID, second.RunID)
		assert.Equal(t, 0.0, second.Indices[0].Value, "cached report is isolated from callers")
		assert.Equal(t, recommendation, second.Summary.Recommendations[0])
		assert.Equal(t, zLeft, second.Indices[0].Details[0].ZLeft)
		assert.Equal(t, region, second.Indices[0].Regions[0])

		stats := analyzer.GetCacheStats()
		assert.Equal(t, int64(1), stats.Hits)
		assert.Equal(t, int64(1), stats.Misses)
		assert.Equal(t, int64(2), stats.TotalRequests)
		assert.InDelta(t, 0.5, stats.HitRatio(), 1e-12)

		analyzer.InvalidateCache()
		third, err := analyzer.Analyze(ctx, meanInput("sub-03"))
		require.NoError(t, err)
		assert.False(t, third.Cached)
		assert.NotEqual(t, first.RunID, third.RunID)
	})

	t.Run("Cache disabled", func(t *testing.T) {
		analyzer := createTestAnalyzer(t, domain.EngineConfig{Workers: 2})

		_, err := analyzer.Analyze(ctx, meanInput("sub-04"))
		require.NoError(t, err)
		report, err := analyzer.Analyze(ctx, meanInput("sub-04"))
		require.NoError(t, err)

		assert.False(t, report.Cached)
		assert.Equal(t, int64(0), analyzer.GetCacheStats().Misses)
	})

	t.Run("Nil input", func(t *testing.T) {
		analyzer := createTestAnalyzer(t, domain.EngineConfig{Workers: 1})

		_, err := analyzer.Analyze(ctx, nil)
		requireEngineError(t, err, domain.ErrInvalidInput)
		assert.Equal(t, int64(1), analyzer.GetCacheStats().ErrorCount)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		analyzer := createTestAnalyzer(t, domain.EngineConfig{Workers: 1})

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := analyzer.Analyze(cancelled, meanInput("sub-05"))
		requireEngineError(t, err, domain.ErrCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestAnalyzerService_InputChecks(t *testing.T) {
	ctx := context.Background()

	badLeft := meanHemisphere()
	delete(badLeft, "precentral")
	nonFinite := statsReport(badLeft, 2.5) + "precentral 1000 abc 9000 2.6 0.5 0.1 0.1 1 1\n"

	tests := []struct {
		name     string
		strict   bool
		left     string
		code     string
		sentinel error
		warning  string
	}{
		{
			name:    "Non-finite field warns",
			left:    nonFinite,
			warning: "left hemisphere: non-finite measurement in regions precentral",
		},
		{
			name:     "Non-finite field rejected in strict mode",
			strict:   true,
			left:     nonFinite,
			code:     domain.ErrValidation,
			sentinel: domain.ErrNonFiniteMeasure,
		},
		{
			name:    "Empty hemisphere warns",
			left:    "",
			warning: "left hemisphere report has no usable regional data",
		},
		{
			name:     "Empty hemisphere rejected in strict mode",
			strict:   true,
			left:     "# Measure Cortex, MeanThickness, Mean Thickness, 2.5, mm\n",
			code:     domain.ErrValidation,
			sentinel: domain.ErrNoUsableData,
		},
		{
			name:    "Missing reference regions warn",
			left:    statsReport(badLeft, 2.5),
			warning: "left hemisphere is missing 1 reference regions: precentral",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := createTestAnalyzer(t, domain.EngineConfig{Workers: 2, StrictValidation: tt.strict})

			input := meanInput("sub-06")
			input.Left = tt.left

			report, err := analyzer.Analyze(ctx, input)
			if tt.code != "" {
				requireEngineError(t, err, tt.code)
				assert.ErrorIs(t, err, tt.sentinel)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, report.Warnings, tt.warning)
		})
	}

	t.Run("Non-finite input yields undetermined index", func(t *testing.T) {
		analyzer := createTestAnalyzer(t, domain.EngineConfig{Workers: 2})

		input := meanInput("sub-07")
		input.Left = nonFinite

		report, err := analyzer.Analyze(ctx, input)
		require.NoError(t, err)

		handedness, ok := report.Index(IndexHandedness)
		require.True(t, ok)
		assert.Equal(t, domain.UNDETERMINED, handedness.Label)
	})
}

func TestAnalyzerService_AnalyzeMaps(t *testing.T) {
	analyzer := createTestAnalyzer(t, domain.EngineConfig{Workers: 2})

	report, err := analyzer.AnalyzeMaps(context.Background(), "sub-08", shiftedHemisphere(2), meanHemisphere())
	require.NoError(t, err)

	handedness, ok := report.Index(IndexHandedness)
	require.True(t, ok)
	assert.InDelta(t, 2.0, handedness.Value, 1e-9)
	assert.Nil(t, report.Measures)
}

func TestAnalyzerService_BatchAnalyze(t *testing.T) {
	analyzer := createTestAnalyzer(t, domain.EngineConfig{Workers: 2, CacheSize: 4})

	t.Run("Partial failure", func(t *testing.T) {
		inputs := []*AnalysisInput{meanInput("sub-a"), nil, meanInput("sub-c")}

		reports, failures := analyzer.BatchAnalyze(context.Background(), inputs)
		require.Len(t, reports, 3)
		assert.NotNil(t, reports[0])
		assert.Nil(t, reports[1])
		assert.NotNil(t, reports[2])
		assert.Equal(t, "sub-c", reports[2].Subject)

		require.Len(t, failures, 1)
		requireEngineError(t, failures[1], domain.ErrInvalidInput)
	})

	t.Run("Empty batch", func(t *testing.T) {
		reports, failures := analyzer.BatchAnalyze(context.Background(), nil)
		assert.Empty(t, reports)
		assert.Empty(t, failures)
	})

	t.Run("Cancelled batch", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		reports, failures := analyzer.BatchAnalyze(ctx, []*AnalysisInput{meanInput("sub-x"), meanInput("sub-y")})
		assert.Len(t, reports, 2)
		assert.Len(t, failures, 2)
		for _, err := range failures {
			requireEngineError(t, err, domain.ErrCancelled)
		}
	})
}
