package dkt

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDKTStats = `# Table of FreeSurfer cortical parcellation anatomical statistics
# CreationTime 2024/03/18-09:12:44-GMT
# hemi lh
# Measure Cortex, NumVert, Number of Vertices, 131538, unitless
# Measure Cortex, WhiteSurfArea, White Surface Total Area, 89721.2, mm^2
# Measure Cortex, MeanThickness, Mean Thickness, 2.51803, mm
# NTableCols 10
# TableCol  1 ColHeader StructName
# TableCol  2 ColHeader NumVert
# ColHeaders StructName NumVert SurfArea GrayVol ThickAvg ThickStd MeanCurv GausCurv FoldInd CurvInd
caudalanteriorcingulate   1867   1266   3528  2.621 0.692     0.130     0.021       18     1.5
precentral               10035   6342  17132  2.612 0.484     0.112     0.022       86     9.1

# trailing comment
superiorfrontal          13851   9012  29870  2.854 0.551     0.110     0.019      125    10.9
`

func TestParser_ParseStats(t *testing.T) {
	parser := NewParser()

	regions, err := parser.ParseStats(strings.NewReader(sampleDKTStats))
	require.NoError(t, err)
	require.Len(t, regions, 3)

	precentral, ok := regions.Lookup("precentral")
	require.True(t, ok)
	assert.Equal(t, 6342.0, precentral.SurfaceArea)
	assert.Equal(t, 17132.0, precentral.Volume)
	assert.Equal(t, 2.612, precentral.Thickness)

	superiorfrontal := regions["superiorfrontal"]
	assert.Equal(t, 9012.0, superiorfrontal.SurfaceArea)
	assert.Equal(t, 29870.0, superiorfrontal.Volume)
	assert.Equal(t, 2.854, superiorfrontal.Thickness)
}

func TestParser_ParseStatsEdgeCases(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, regions map[string]float64)
		count   int
	}{
		{
			name:    "No marker yields empty map",
			content: "precentral 10035 6342 17132 2.612\n",
			count:   0,
		},
		{
			name:    "Rows before the marker are ignored",
			content: "cuneus 1 2 3 4\n# ColHeaders StructName\nlingual 1 3800 8200 2.05\n",
			count:   1,
			check: func(t *testing.T, thickness map[string]float64) {
				assert.Contains(t, thickness, "lingual")
				assert.NotContains(t, thickness, "cuneus")
			},
		},
		{
			name:    "Short rows are skipped",
			content: "# ColHeaders\ninsula 1 2500 7800\nfusiform 1 3300 9500 2.7\n",
			count:   1,
		},
		{
			name:    "Blank and whitespace lines are skipped",
			content: "# ColHeaders\n\n   \t\nfusiform 1 3300 9500 2.7\n",
			count:   1,
		},
		{
			name:    "Later row overwrites earlier row",
			content: "# ColHeaders\nfusiform 1 3300 9500 2.7\nfusiform 1 3300 9500 2.9\n",
			count:   1,
			check: func(t *testing.T, thickness map[string]float64) {
				assert.Equal(t, 2.9, thickness["fusiform"])
			},
		},
		{
			name:    "Windows line endings",
			content: "# ColHeaders\r\nfusiform 1 3300 9500 2.7\r\n",
			count:   1,
			check: func(t *testing.T, thickness map[string]float64) {
				assert.Equal(t, 2.7, thickness["fusiform"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions, err := parser.ParseStats(strings.NewReader(tt.content))
			require.NoError(t, err)
			assert.Len(t, regions, tt.count)

			if tt.check != nil {
				thickness := make(map[string]float64, len(regions))
				for name, m := range regions {
					thickness[name] = m.Thickness
				}
				tt.check(t, thickness)
			}
		})
	}
}

func TestParser_MalformedNumbers(t *testing.T) {
	parser := NewParser()

	regions := parser.ParseStatsString("# ColHeaders\ninsula 1 n/a 7800 3.05\nfusiform 1 3300mm 9500 2.7\n")
	require.Len(t, regions, 2)

	assert.True(t, math.IsNaN(regions["insula"].SurfaceArea))
	assert.Equal(t, 7800.0, regions["insula"].Volume)
	assert.False(t, regions["insula"].IsFinite())

	// numeric prefixes are kept
	assert.Equal(t, 3300.0, regions["fusiform"].SurfaceArea)
	assert.True(t, regions["fusiform"].IsFinite())
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		isNaN    bool
	}{
		{"2.612", 2.612, false},
		{"-0.5", -0.5, false},
		{"+7", 7, false},
		{".25", 0.25, false},
		{"1e3", 1000, false},
		{"1e", 1, false},
		{"12.5abc", 12.5, false},
		{"abc", 0, true},
		{"", 0, true},
		{"-", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseNumber(tt.input)
			if tt.isNaN {
				assert.True(t, math.IsNaN(got), "expected NaN, got %v", got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}

	assert.True(t, math.IsInf(parseNumber("Infinity"), 1))
	assert.True(t, math.IsInf(parseNumber("-Infinity"), -1))
}

func TestParser_ParseMeasures(t *testing.T) {
	parser := NewParser()

	measures, err := parser.ParseMeasures(strings.NewReader(sampleDKTStats))
	require.NoError(t, err)
	require.Len(t, measures, 3)

	assert.Equal(t, "Cortex", measures[2].Structure)
	assert.Equal(t, "MeanThickness", measures[2].Key)
	assert.Equal(t, "Mean Thickness", measures[2].Description)
	assert.Equal(t, 2.51803, measures[2].Value)
	assert.Equal(t, "mm", measures[2].Unit)

	v, ok := MeasureValue(measures, "WhiteSurfArea")
	assert.True(t, ok)
	assert.Equal(t, 89721.2, v)

	_, ok = MeasureValue(measures, "eTIV")
	assert.False(t, ok)
}

func TestParser_ParseMeasuresAseg(t *testing.T) {
	content := `# Measure BrainSeg, BrainSegVol, Brain Segmentation Volume, 1245678.000000, mm^3
# Measure Cortex, CortexVol, Total cortical gray matter volume, 592279.383940, mm^3
# Measure CerebralWhiteMatter, CerebralWhiteMatterVol, Total cerebral white matter volume, 512345.5, mm^3
# Measure EstimatedTotalIntraCranialVol, eTIV, Estimated Total Intracranial Volume, 1598765.123456, mm^3
# Measure broken, line
`
	measures, err := NewParser().ParseMeasures(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, measures, 4)

	etiv, ok := MeasureValue(measures, "eTIV")
	require.True(t, ok)
	assert.InDelta(t, 1598765.123456, etiv, 1e-6)

	cortex, _ := MeasureValue(measures, "CortexVol")
	assert.InDelta(t, 592279.383940, cortex, 1e-6)
}
