package service

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/dkt-index-engine/internal/domain"
)

// undeterminedText is reported when an index value is not a finite number
const undeterminedText = "Not determined: one or more contributing measurements are not finite numbers."

// Band is one ordered interpretation band
type Band struct {
	Comparison domain.Comparison
	Threshold  float64
	Label      string
	Text       string
	RiskLevel  domain.RiskLevel
}

// BandTable is the ordered band list of one index. The first band whose
// comparison holds wins; Fallback applies when none does.
type BandTable struct {
	Bands    []Band
	Fallback Band
}

// Match returns the band value falls into
func (t BandTable) Match(value float64) Band {
	for _, b := range t.Bands {
		if b.Comparison.Holds(value, b.Threshold) {
			return b
		}
	}
	return t.Fallback
}

// InterpretationService classifies index values into qualitative bands
type InterpretationService struct {
	logger *logrus.Logger
	tables map[string]BandTable
}

// NewInterpretationService creates a classifier over the built-in band tables
func NewInterpretationService(logger *logrus.Logger) *InterpretationService {
	return &InterpretationService{
		logger: logger,
		tables: interpretationBands(),
	}
}

// Classify maps value to the band of indexID. Non-finite values and
// unknown indices classify as undetermined.
func (s *InterpretationService) Classify(indexID string, value float64) domain.Classification {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return domain.Classification{Label: domain.UNDETERMINED, Text: undeterminedText}
	}

	table, exists := s.tables[indexID]
	if !exists {
		s.logger.WithField("index", indexID).Warn("No interpretation bands for index")
		return domain.Classification{Label: domain.UNDETERMINED, Text: "No interpretation is available for this index."}
	}

	band := table.Match(value)
	text := band.Text
	if band.RiskLevel != "" {
		text = band.RiskLevel.Description() + ". " + text
	}

	return domain.Classification{
		Label:     band.Label,
		Text:      text,
		RiskLevel: band.RiskLevel,
	}
}

// Bands returns the band table of indexID
func (s *InterpretationService) Bands(indexID string) (BandTable, bool) {
	table, exists := s.tables[indexID]
	return table, exists
}

func interpretationBands() map[string]BandTable {
	return map[string]BandTable{
		IndexHandedness: {
			Bands: []Band{
				{domain.GTE, 1.28, "very strong right-handed", "Very strong right-handedness (top 10% of the population). The motor cortex shows a very strong left-hemisphere advantage with outstanding right-hand fine motor control.", ""},
				{domain.GTE, 0.84, "strong right-handed", "Strong right-handedness (top 20%). A clear left-hemisphere motor advantage, typical of right-handers.", ""},
				{domain.GTE, 0.52, "moderate right-handed", "Moderate right-handedness (top 30%). The left motor cortex dominates and the right hand is preferred in daily tasks.", ""},
				{domain.GTE, -0.52, "mixed", "Mixed or ambidextrous (about 60% of people, most common). The motor cortex is highly symmetric, which may reflect good bimanual coordination.", ""},
				{domain.GTE, -0.84, "moderate left-handed", "Moderate left-handedness (bottom 30%). The right motor cortex dominates and the left hand is preferred in daily tasks.", ""},
			},
			Fallback: Band{Label: "strong left-handed", Text: "Strong left-handedness (bottom 10%). A clear right-hemisphere motor advantage, typical of left-handers."},
		},
		IndexDominantEye: {
			Bands: []Band{
				{domain.GTE, 1.5, "very strong right eye", "Very strong right-eye dominance (about 4-6% of people). The left visual cortex is markedly larger and the right eye leads visual tasks.", ""},
				{domain.GTE, 0.8, "clear right eye", "Clear right-eye dominance (about 18-22%). The left visual cortex leads and the right eye is sharper in fine visual tasks.", ""},
				{domain.GTE, 0.3, "mild right eye", "Mild right-eye preference (about 25-30%). The left visual cortex is slightly larger.", ""},
				{domain.GTE, -0.3, "balanced", "Balanced eyes (about 35-40%, most common). The visual cortex is symmetric with no dominant eye.", ""},
				{domain.GTE, -0.8, "mild left eye", "Mild left-eye preference (about 12-15%). The right visual cortex is slightly larger.", ""},
			},
			Fallback: Band{Label: "clear left eye", Text: "Clear to very strong left-eye dominance (about 5-7%). The right visual cortex leads and the left eye dominates visual tasks."},
		},
		IndexPreferredNostril: {
			Bands: []Band{
				{domain.GTE, 1.2, "very strong right nostril", "Very strong right-nostril preference (top 5%).", ""},
				{domain.GTE, 0.7, "clear right nostril", "Clear right-nostril preference; the right side is more sensitive when eating.", ""},
				{domain.GTE, 0.3, "mild right nostril", "Mild right-nostril preference.", ""},
				{domain.GT, -0.3, "balanced", "Balanced nostrils with no side preference.", ""},
				{domain.GT, -0.7, "mild left nostril", "Mild left-nostril preference.", ""},
				{domain.GT, -1.2, "clear left nostril", "Clear left-nostril preference.", ""},
			},
			Fallback: Band{Label: "very strong left nostril", Text: "Very strong left-nostril preference (bottom 5%)."},
		},
		IndexLanguageLat: {
			Bands: []Band{
				{domain.GTE, 0.20, "typical left", "Typical left lateralization (most common pattern, about 85% of people).", ""},
				{domain.GTE, 0.05, "weak left", "Weak left lateralization (about 10% of people).", ""},
				{domain.GTE, -0.05, "bilateral", "Bilateral representation (rare pattern, about 3% of people).", ""},
				{domain.GTE, -0.15, "weak right", "Weak right lateralization (about 1.5% of people).", ""},
			},
			Fallback: Band{Label: "marked right", Text: "Marked right lateralization (<0.5% of people)."},
		},
		IndexSpatialAttention: {
			Bands: []Band{
				{domain.GTE, 0.80, "very strong right", "Very strong rightward bias (top 5%). The right parietal attention network dominates and attention favors the left visual field.", ""},
				{domain.GTE, 0.40, "clear right", "Clear rightward bias (top 15%). The typical right-hemisphere spatial advantage.", ""},
				{domain.GTE, -0.20, "balanced", "Balanced or mildly rightward. Attention is distributed symmetrically across both visual fields.", ""},
				{domain.GTE, -0.40, "mild left", "Mild leftward bias. The left parietal lobe is slightly larger and attention may favor the right visual field.", ""},
			},
			Fallback: Band{Label: "clear left", Text: "Clear leftward bias (uncommon). The left parietal lobe dominates, an atypical pattern."},
		},
		IndexEmotionLat: {
			Bands: []Band{
				{domain.GTE, 0.90, "very strong right", "Very strong rightward bias (top 8%). The right emotion network dominates and negative emotions may be perceived more keenly.", ""},
				{domain.GTE, 0.50, "clear right", "Clear rightward bias. The right insula and orbitofrontal cortex lead, matching the right-hemisphere emotion hypothesis.", ""},
				{domain.GTE, -0.30, "balanced", "Balanced. Positive and negative emotion processing are symmetric.", ""},
				{domain.GTE, -0.50, "mild left", "Mild leftward bias. The left emotion network is slightly larger and may be more sensitive to positive emotion.", ""},
			},
			Fallback: Band{Label: "clear left", Text: "Clear leftward bias (common with depressive tendency). This pattern has been associated with depression; attention to emotional health is advised."},
		},
		IndexFaceRecognition: {
			Bands: []Band{
				{domain.GTE, 1.00, "very strong right", "Very strong rightward bias (top 3%). The right fusiform face area is highly developed and face recognition may be exceptional.", ""},
				{domain.GTE, 0.60, "clear right", "Clear rightward bias (top 10%). The typical right-hemisphere face advantage with good face memory.", ""},
				{domain.GTE, -0.20, "balanced", "Balanced. Face recognition is within the normal range.", ""},
				{domain.GTE, -0.60, "mild left", "Mild leftward bias (uncommon). May favor analytic processing of facial features.", ""},
			},
			Fallback: Band{Label: "clear left", Text: "Clear leftward bias (rare). An atypical pattern that may relate to face recognition difficulty."},
		},
		IndexMusicLat: {
			Bands: []Band{
				{domain.GTE, 1.20, "very strong right", "Very strong rightward bias (top 1%). The right auditory cortex is highly developed, suggesting keen perception of melody, pitch and timbre.", ""},
				{domain.GTE, 0.70, "clear right", "Clear rightward bias (top 8%). The typical right-hemisphere music advantage with good melody and rhythm perception.", ""},
				{domain.GTE, -0.30, "balanced", "Balanced. Music perception is within the normal range.", ""},
				{domain.GTE, -0.70, "mild left", "Mild leftward bias. May favor rhythmic and temporal processing of music.", ""},
			},
			Fallback: Band{Label: "clear left", Text: "Clear leftward bias (rare). An atypical pattern."},
		},
		IndexTheoryOfMind: {
			Bands: []Band{
				{domain.GTE, 0.80, "very strong right", "Very strong rightward bias (top 8%). The right temporoparietal junction and angular gyrus are highly developed, suggesting exceptional mentalizing.", ""},
				{domain.GTE, 0.40, "clear right", "Clear rightward bias (top 20%). The typical right-hemisphere social cognition advantage.", ""},
				{domain.GTE, -0.20, "balanced", "Balanced. Social cognition is within the normal range.", ""},
				{domain.GTE, -0.40, "mild left", "Mild leftward bias. May favor verbal reasoning about mental states.", ""},
			},
			Fallback: Band{Label: "clear left", Text: "Clear leftward bias. An atypical pattern."},
		},
		IndexLogicalReasoning: {
			Bands: []Band{
				{domain.LTE, -0.80, "very strong left", "Very strong left-hemisphere advantage (top 1%). Left prefrontal and parietal cortex are highly developed; suited to mathematics, programming and philosophy.", ""},
				{domain.LTE, -0.50, "marked left", "Marked left-hemisphere advantage (top 5%). Strong deductive reasoning and problem solving.", ""},
				{domain.LTE, -0.20, "mild left", "Mild left-hemisphere preference (top 20%). The typical left-hemisphere logic advantage.", ""},
				{domain.LTE, 0.20, "balanced", "Balanced or mildly rightward (most common, 50%). Analytic and spatial reasoning may both be available.", ""},
				{domain.LTE, 0.50, "right", "Right-hemisphere advantage (bottom 10%). May be stronger at spatial and holistic reasoning.", ""},
			},
			Fallback: Band{Label: "marked right", Text: "Marked right-hemisphere advantage (rare). An atypical pattern that may reflect distinctive spatial-logical integration."},
		},
		IndexMathematicalAbility: {
			Bands: []Band{
				{domain.LTE, -0.90, "very strong left", "Very strong left-hemisphere advantage (top 1%). The left intraparietal number core is highly developed; suited to mathematics, physics and engineering.", ""},
				{domain.LTE, -0.60, "marked left", "Marked left-hemisphere advantage (top 3%). Strong symbolic and algebraic reasoning.", ""},
				{domain.LTE, -0.20, "mild left", "Mild left-hemisphere preference (top 15%). Good arithmetic and algebra.", ""},
				{domain.LTE, 0.20, "balanced", "Balanced or mildly rightward (most common, 60%). Algebraic and geometric thinking may both be available.", ""},
				{domain.LTE, 0.40, "right", "Right-hemisphere advantage (bottom 10%). May be stronger at spatial mathematics and geometry.", ""},
			},
			Fallback: Band{Label: "marked right", Text: "Marked right-hemisphere advantage (rare). An atypical pattern that may reflect distinctive spatial-mathematical integration."},
		},
		IndexOlfactory: {
			Bands: []Band{
				{domain.GT, 1.5, "excellent", "Excellent olfactory structure (top 7%). Olfactory cortex is well developed.", ""},
				{domain.GT, 1.0, "good", "Good olfactory structure (top 16%). Above-average olfactory cortex.", ""},
				{domain.GT, -0.5, "normal", "Normal olfactory structure.", ""},
			},
			Fallback: Band{Label: "attention", Text: "Olfactory structure needs attention. Olfactory cortex volume is below average."},
		},
		IndexLanguageComposite: {
			Bands: []Band{
				{domain.GT, 2.4, "outstanding", "Outstanding language structure (top 0.7%). Suited to linguistics, translation and writing.", ""},
				{domain.GT, 2.0, "excellent", "Excellent language structure (top 2.5%). Broca and Wernicke areas are well developed.", ""},
				{domain.GT, 1.0, "good", "Good language structure (top 16%).", ""},
				{domain.GT, -0.5, "normal", "Normal language structure.", ""},
			},
			Fallback: Band{Label: "attention", Text: "Language structure needs attention; language training may help."},
		},
		IndexReadingFluency: {
			Bands: []Band{
				{domain.GT, 2.0, "excellent", "Excellent reading structure (top 2.5%). Visual word form and phonological areas are well developed.", ""},
				{domain.GT, 1.0, "good", "Good reading structure (top 16%).", ""},
				{domain.GT, -0.5, "normal", "Normal reading structure.", ""},
			},
			Fallback: Band{Label: "attention", Text: "Reading structure needs attention; reading training may help."},
		},
		IndexDyslexiaRisk: {
			Bands: []Band{
				{domain.LT, -1.0, "high risk", "Left reading-network cortex (superior temporal, fusiform, inferior parietal, supramarginal, middle temporal) is markedly smaller than the right. Insufficient left lateralization is linked to the neural basis of dyslexia; a professional reading assessment is advised.", domain.HIGH_RISK},
				{domain.LT, -0.5, "moderate risk", "Left reading-network cortex is somewhat smaller than the right. Monitor reading development and consider targeted training if difficulties appear.", domain.MODERATE_RISK},
				{domain.LT, 0.5, "low risk", "The reading network is balanced across hemispheres, consistent with normal left lateralization.", domain.LOW_RISK},
			},
			Fallback: Band{Label: "very low risk", Text: "Left reading-network cortex is well developed with a typical left advantage.", RiskLevel: domain.VERY_LOW_RISK},
		},
		IndexEmpathy: {
			Bands: []Band{
				{domain.GT, 1.6, "excellent", "Excellent empathy structure (top 5%). Anterior cingulate and insula are well developed; suited to counseling and social work.", ""},
				{domain.GT, 1.5, "good", "Good empathy structure (top 7%).", ""},
				{domain.GT, 0.5, "above average", "Above-average empathy structure.", ""},
				{domain.GT, -0.5, "normal", "Normal empathy structure.", ""},
			},
			Fallback: Band{Label: "attention", Text: "Empathy structure needs attention; social training may help."},
		},
		IndexExecutiveFunction: {
			Bands: []Band{
				{domain.GT, 1.9, "outstanding", "Outstanding executive structure (top 3%). Prefrontal cortex is highly developed; suited to management and strategic planning.", ""},
				{domain.GT, 1.8, "excellent", "Excellent executive structure (top 4%).", ""},
				{domain.GT, 1.0, "good", "Good executive structure (top 16%).", ""},
				{domain.GT, -0.5, "normal", "Normal executive structure.", ""},
			},
			Fallback: Band{Label: "attention", Text: "Executive structure needs attention; cognitive training may help."},
		},
		IndexSpatialProcessing: {
			Bands: []Band{
				{domain.GT, 1.5, "excellent", "Excellent spatial structure (top 7%). Parietal cortex is highly developed; suited to architecture, design and engineering.", ""},
				{domain.GT, 1.2, "good", "Good spatial structure (top 11%).", ""},
				{domain.GT, 0.5, "above average", "Above-average spatial structure.", ""},
				{domain.GT, -0.5, "normal", "Normal spatial structure.", ""},
			},
			Fallback: Band{Label: "attention", Text: "Spatial structure needs attention; spatial training may help."},
		},
		IndexFluidIntelligence: {
			Bands: []Band{
				{domain.GT, 2.1, "outstanding", "Outstanding structural estimate (top 1.8%). This is the highest estimate a structural index can give.", ""},
				{domain.GT, 2.0, "excellent", "Excellent structural estimate (top 2.5%).", ""},
				{domain.GT, 1.5, "good", "Good structural estimate (top 7%).", ""},
				{domain.GT, 0.5, "above average", "Above-average structural estimate.", ""},
				{domain.GT, -0.5, "normal", "Normal structural estimate.", ""},
			},
			Fallback: Band{Label: "attention", Text: "Structural estimate needs attention; cognitive training may help."},
		},
	}
}
