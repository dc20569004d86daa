package domain

import "testing"

func TestAnalysisReportClone(t *testing.T) {
	z := 1.5
	report := &AnalysisReport{
		RunID: "run-1",
		Indices: []IndexResult{{
			ID:         "handedness",
			ZScore:     &z,
			References: []string{"ref"},
			Regions:    []string{"precentral"},
			Details:    []RegionContribution{{Region: "precentral", ZLeft: 0.5}},
		}},
		Summary: AnalysisSummary{
			TopStrengths:    []string{"a"},
			SpecialFeatures: []string{"b"},
			Recommendations: []string{"c"},
		},
		Measures: &BrainMeasures{EstimatedTIV: 1500000},
		Warnings: []string{"w"},
	}

	clone := report.Clone()
	clone.Indices[0].Details[0].ZLeft = 9
	clone.Indices[0].References[0] = "x"
	clone.Indices[0].Regions[0] = "x"
	*clone.Indices[0].ZScore = 9
	clone.Summary.TopStrengths[0] = "x"
	clone.Summary.SpecialFeatures[0] = "x"
	clone.Summary.Recommendations[0] = "x"
	clone.Measures.EstimatedTIV = 1
	clone.Warnings[0] = "x"

	original := report.Indices[0]
	if original.Details[0].ZLeft != 0.5 || original.References[0] != "ref" || original.Regions[0] != "precentral" || *original.ZScore != 1.5 {
		t.Errorf("Clone shares index data with the original: %+v", original)
	}
	if report.Summary.TopStrengths[0] != "a" || report.Summary.SpecialFeatures[0] != "b" || report.Summary.Recommendations[0] != "c" {
		t.Errorf("Clone shares summary lists with the original: %+v", report.Summary)
	}
	if report.Measures.EstimatedTIV != 1500000 || report.Warnings[0] != "w" {
		t.Error("Clone shares measures or warnings with the original")
	}
	if clone.RunID != report.RunID {
		t.Errorf("Expected run id %q, got %q", report.RunID, clone.RunID)
	}
}

func TestIndexResultCloneNilSlices(t *testing.T) {
	clone := IndexResult{ID: "olfactory"}.Clone()
	if clone.ZScore != nil || clone.Details != nil || clone.Regions != nil {
		t.Errorf("Expected nil fields to stay nil, got %+v", clone)
	}
}
