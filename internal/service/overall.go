package service

import (
	"github.com/montanaflynn/stats"

	"github.com/dkt-index-engine/internal/domain"
	"github.com/dkt-index-engine/pkg/normscore"
)

// DefaultOverallScore is reported when no ability index is available
const DefaultOverallScore = 75

// abilityWeights are the overall-score weights of the ability-type indices.
// Lateralization indices do not contribute.
var abilityWeights = []struct {
	id     string
	weight float64
}{
	{IndexOlfactory, 0.08},
	{IndexLanguageComposite, 0.15},
	{IndexReadingFluency, 0.12},
	{IndexEmpathy, 0.12},
	{IndexExecutiveFunction, 0.18},
	{IndexSpatialProcessing, 0.15},
	{IndexFluidIntelligence, 0.20},
	{IndexDyslexiaRisk, 0.10},
}

// OverallScore condenses the ability-type index percentiles into a 0-100
// score. Undetermined indices are left out of the weighted mean.
func OverallScore(results []domain.IndexResult) domain.OverallScore {
	set := newResultSet(results)

	var weightedSum, totalWeight float64
	percentiles := make([]float64, 0, len(abilityWeights))
	for _, a := range abilityWeights {
		p, ok := set.percentile(a.id)
		if !ok {
			continue
		}
		weightedSum += float64(p) * a.weight
		totalWeight += a.weight
		percentiles = append(percentiles, float64(p))
	}

	if totalWeight == 0 {
		return domain.OverallScore{
			Score: DefaultOverallScore,
			Label: ScoreLabel(DefaultOverallScore),
		}
	}

	score := int(normscore.RoundHalfUp(clamp(mapPercentileToScore(weightedSum/totalWeight), 0, 100)))

	spread, err := stats.StandardDeviation(percentiles)
	if err != nil {
		spread = 0
	}

	return domain.OverallScore{
		Score:            score,
		Label:            ScoreLabel(score),
		Contributors:     len(percentiles),
		PercentileSpread: normscore.RoundTo(spread, 2),
	}
}

// mapPercentileToScore maps a mean percentile onto the score scale:
// 50 → 75, 84 → 90, 16 → 60, with a steeper segment below 16
func mapPercentileToScore(raw float64) float64 {
	switch {
	case raw >= 84:
		return 90 + (raw-84)*(10.0/16)
	case raw >= 50:
		return 75 + (raw-50)*(15.0/34)
	case raw >= 16:
		return 60 + (raw-16)*(15.0/34)
	default:
		return 40 + raw*(20.0/16)
	}
}

// ScoreLabel returns the qualitative label of an overall score
func ScoreLabel(score int) string {
	switch {
	case score >= 85:
		return "excellent"
	case score >= 70:
		return "good"
	case score >= 50:
		return "normal"
	case score >= 30:
		return "low"
	default:
		return "needs attention"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
