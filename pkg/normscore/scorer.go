// Package normscore converts raw regional measurements into
// population-referenced standard scores and percentiles.
package normscore

import (
	"github.com/dkt-index-engine/internal/domain"
)

// ZScore returns (observed − mean) / stdDev.
func ZScore(observed float64, ref domain.MetricReference) float64 {
	return (observed - ref.Mean) / ref.StdDev
}

// MetricScores holds the three per-metric standard scores of one region.
type MetricScores struct {
	Thickness   float64 `json:"thickness"`
	SurfaceArea float64 `json:"surface_area"`
	Volume      float64 `json:"volume"`
}

// Standardize computes the per-metric standard scores of m.
func Standardize(m domain.RegionMeasurement, ref domain.ReferenceEntry) MetricScores {
	return MetricScores{
		Thickness:   ZScore(m.Thickness, ref.Thickness),
		SurfaceArea: ZScore(m.SurfaceArea, ref.SurfaceArea),
		Volume:      ZScore(m.Volume, ref.Volume),
	}
}

// Score blends the three per-metric standard scores of m using percentage
// weights: zT·wT/100 + zA·wA/100 + zV·wV/100, summed in that order.
func Score(m domain.RegionMeasurement, ref domain.ReferenceEntry, w domain.MetricWeights) float64 {
	z := Standardize(m, ref)
	wT, wA, wV := w.Thickness/100, w.SurfaceArea/100, w.Volume/100
	return z.Thickness*wT + z.SurfaceArea*wA + z.Volume*wV
}
