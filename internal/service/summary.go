package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dkt-index-engine/internal/domain"
)

// Summary thresholds
const (
	strengthPercentile     = 84
	maxTopStrengths        = 5
	excellencePercentile   = 95
	weaknessPercentile     = 20
	careerPercentile       = 90
	musicCareerPercentile  = 92
	bilateralLanguageBound = 0.05
)

// DefaultRecommendation is emitted when no other recommendation rule fires
const DefaultRecommendation = "All indices are within the normal range; maintain balanced development"

// SummaryService derives the report summary from a full list of index results
type SummaryService struct {
	logger *logrus.Logger
}

// NewSummaryService creates a new summary service
func NewSummaryService(logger *logrus.Logger) *SummaryService {
	return &SummaryService{logger: logger}
}

// resultSet indexes results by ID
type resultSet map[string]*domain.IndexResult

func newResultSet(results []domain.IndexResult) resultSet {
	set := make(resultSet, len(results))
	for i := range results {
		set[results[i].ID] = &results[i]
	}
	return set
}

// value returns the rounded value of id and whether it is present and finite
func (s resultSet) value(id string) (float64, bool) {
	r, ok := s[id]
	if !ok || !r.IsDetermined() {
		return 0, false
	}
	return r.Value, true
}

// percentile returns the percentile of id and whether it is present and determined
func (s resultSet) percentile(id string) (int, bool) {
	r, ok := s[id]
	if !ok || !r.IsDetermined() {
		return 0, false
	}
	return r.Percentile, true
}

// Summarize computes top strengths, special features and recommendations.
// Rules look results up by ID; ties among top strengths keep input order.
func (s *SummaryService) Summarize(results []domain.IndexResult) domain.AnalysisSummary {
	set := newResultSet(results)

	summary := domain.AnalysisSummary{
		TopStrengths:    topStrengths(results),
		SpecialFeatures: specialFeatures(set),
		Recommendations: recommendations(results, set),
	}

	s.logger.WithFields(logrus.Fields{
		"top_strengths":    len(summary.TopStrengths),
		"special_features": len(summary.SpecialFeatures),
		"recommendations":  len(summary.Recommendations),
	}).Debug("Summarized index results")

	return summary
}

func topStrengths(results []domain.IndexResult) []string {
	strong := make([]domain.IndexResult, 0, len(results))
	for _, r := range results {
		if r.IsDetermined() && r.Percentile >= strengthPercentile {
			strong = append(strong, r)
		}
	}

	sort.SliceStable(strong, func(i, j int) bool {
		return strong[i].Percentile > strong[j].Percentile
	})
	if len(strong) > maxTopStrengths {
		strong = strong[:maxTopStrengths]
	}

	out := make([]string, 0, len(strong))
	for _, r := range strong {
		out = append(out, fmt.Sprintf("%s (top %d%%)", r.Name, 100-r.Percentile))
	}
	return out
}

func specialFeatures(set resultSet) []string {
	features := make([]string, 0)
	add := func(feature string) {
		features = append(features, feature)
	}

	if v, ok := set.value(IndexHandedness); ok {
		if v < -0.84 {
			add("Left-handed trait (bottom 10%)")
		} else if v >= 1.28 {
			add("Pure right-handed (top 10%)")
		}
	}

	if v, ok := set.value(IndexDominantEye); ok && math.Abs(v) >= 1.5 {
		if v > 0 {
			add("Strong right eye dominance")
		} else {
			add("Strong left eye dominance")
		}
	}

	if v, ok := set.value(IndexPreferredNostril); ok && math.Abs(v) >= 1.2 {
		if v > 0 {
			add("Strong right nostril preference")
		} else {
			add("Strong left nostril preference")
		}
	}

	if v, ok := set.value(IndexLanguageLat); ok {
		if v < -0.15 {
			add("Marked right-hemisphere language lateralization (<0.5%, very rare)")
		} else if math.Abs(v) <= bilateralLanguageBound && set[IndexLanguageLat].Magnitude > 0 {
			// a zero magnitude means no hemispheric signal at all
			add("Bilateral language representation (~3%)")
		}
	}

	if v, ok := set.value(IndexSpatialAttention); ok && v >= 0.80 {
		add("Strong right-hemisphere spatial attention advantage (top 5%)")
	}

	if v, ok := set.value(IndexEmotionLat); ok {
		if v >= 0.90 {
			add("Strong right-hemisphere emotion processing advantage (top 8%)")
		} else if v <= -0.50 {
			add("Left-hemisphere emotion dominance (possible depression association, monitor)")
		}
	}

	if v, ok := set.value(IndexFaceRecognition); ok && v >= 1.00 {
		add("Exceptional face recognition (top 3%)")
	}

	if v, ok := set.value(IndexMusicLat); ok && v >= 1.20 {
		add("Exceptional music perception (top 1%)")
	}

	if v, ok := set.value(IndexTheoryOfMind); ok && v >= 0.80 {
		add("Exceptional mentalizing ability (top 8%)")
	}

	if v, ok := set.value(IndexDyslexiaRisk); ok {
		if v < -1.0 {
			add("High structural dyslexia risk - professional assessment advised")
		} else if v < -0.5 {
			add("Moderate structural dyslexia risk - monitor")
		}
	}

	if p, ok := set.percentile(IndexLanguageComposite); ok && p >= 99 {
		add("Exceptional language ability (top 1%)")
	}

	if p, ok := set.percentile(IndexFluidIntelligence); ok && p >= 98 {
		add("Exceptional fluid intelligence structure (top 2%)")
	}

	if v, ok := set.value(IndexLogicalReasoning); ok {
		if v <= -0.80 {
			add("Exceptional logical reasoning (top 1%, left-hemisphere)")
		} else if v <= -0.50 {
			add("Marked logical reasoning (top 5%, left-hemisphere)")
		}
	}

	if v, ok := set.value(IndexMathematicalAbility); ok {
		if v <= -0.90 {
			add("Exceptional mathematical talent (top 1%, left-hemisphere)")
		} else if v <= -0.60 {
			add("Marked mathematical ability (top 3%, left-hemisphere)")
		}
	}

	return features
}

func recommendations(results []domain.IndexResult, set resultSet) []string {
	recs := make([]string, 0)
	add := func(rec string) {
		recs = append(recs, rec)
	}

	var strong, weak []string
	for _, r := range results {
		if !r.IsDetermined() {
			continue
		}
		if r.Percentile >= excellencePercentile {
			strong = append(strong, r.Name)
		}
		if r.Percentile < weaknessPercentile {
			weak = append(weak, r.Name)
		}
	}
	if len(strong) > 0 {
		add(fmt.Sprintf("Excels in %s; consider developing these areas further", strings.Join(strong, ", ")))
	}
	if len(weak) > 0 {
		add(fmt.Sprintf("%s are relatively weak; targeted training may help", strings.Join(weak, ", ")))
	}

	percentileRules := []struct {
		id        string
		threshold int
		text      string
	}{
		{IndexLanguageComposite, careerPercentile, "Well suited to language-intensive work such as linguistics, translation, writing and education"},
		{IndexReadingFluency, careerPercentile, "Strong reading ability; suited to academic research and literature analysis"},
		{IndexSpatialProcessing, careerPercentile, "Outstanding spatial ability; suited to architecture, engineering and 3D modeling"},
		{IndexEmpathy, careerPercentile, "Strong empathy; suited to counseling, social work and human resources"},
		{IndexExecutiveFunction, careerPercentile, "Outstanding executive function; suited to management, strategic planning and project management"},
		{IndexMusicLat, musicCareerPercentile, "Musical perception talent; consider music study or a music-related career"},
		{IndexFaceRecognition, careerPercentile, "Strong face recognition; suited to professions that need rapid face recognition such as security"},
	}
	for _, rule := range percentileRules {
		if p, ok := set.percentile(rule.id); ok && p >= rule.threshold {
			add(rule.text)
		}
	}

	if v, ok := set.value(IndexLogicalReasoning); ok && v <= -0.50 {
		add("Outstanding logical reasoning; suited to mathematics, programming, philosophy and law")
	}

	if v, ok := set.value(IndexMathematicalAbility); ok {
		if v <= -0.60 {
			add("Outstanding mathematical ability; suited to mathematics, physics, engineering and data science")
		} else if v >= 0.40 {
			add("Strong spatial mathematics; suited to geometry, topology and architectural design")
		}
	}

	if v, ok := set.value(IndexDyslexiaRisk); ok && v < -0.5 {
		add("A professional reading assessment is advised, with reading intervention if needed")
	}

	if v, ok := set.value(IndexEmotionLat); ok && v <= -0.50 {
		add("Attend to emotional health and seek counseling support if needed")
	}

	if len(recs) == 0 {
		add(DefaultRecommendation)
	}
	return recs
}
