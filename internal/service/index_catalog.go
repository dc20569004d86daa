package service

import "github.com/dkt-index-engine/internal/domain"

// Index identifiers in catalog order
const (
	IndexHandedness          = "handedness"
	IndexDominantEye         = "dominant_eye"
	IndexPreferredNostril    = "preferred_nostril"
	IndexLanguageLat         = "language_lateralization"
	IndexSpatialAttention    = "spatial_attention_lateralization"
	IndexEmotionLat          = "emotion_lateralization"
	IndexFaceRecognition     = "face_recognition_lateralization"
	IndexMusicLat            = "music_lateralization"
	IndexTheoryOfMind        = "theory_of_mind_lateralization"
	IndexLogicalReasoning    = "logical_reasoning_lateralization"
	IndexMathematicalAbility = "mathematical_ability_lateralization"
	IndexOlfactory           = "olfactory"
	IndexLanguageComposite   = "language_composite"
	IndexReadingFluency      = "reading_fluency"
	IndexDyslexiaRisk        = "dyslexia_risk"
	IndexEmpathy             = "empathy"
	IndexExecutiveFunction   = "executive_function"
	IndexSpatialProcessing   = "spatial_processing"
	IndexFluidIntelligence   = "fluid_intelligence"
)

// normalizedDifferenceEpsilon keeps the language lateralization ratio defined
// when both hemispheric sums are zero
const normalizedDifferenceEpsilon = 0.001

func advancedLateralizationRefs() []string {
	return []string{"ENIGMA 2024", "UKBB 2024", "HCP 2025 meta-analysis"}
}

func cognitionLateralizationRefs() []string {
	return []string{"ENIGMA-Cognition 2024", "UKBB 2024", "HCP 2025 meta-analysis"}
}

// region builds a contributor whose label is the region name
func region(name string, weight float64, metrics domain.MetricWeights) domain.Contributor {
	return domain.Contributor{Label: name, Region: name, Weight: weight, Metrics: metrics}
}

func labeled(c domain.Contributor, label, local string) domain.Contributor {
	c.Label = label
	c.LocalLabel = local
	return c
}

// Catalog returns the index definitions in evaluation and report order.
// Each call returns a fresh copy.
func Catalog() []domain.IndexDefinition {
	return []domain.IndexDefinition{
		{
			ID:        IndexHandedness,
			Name:      "Handedness Index",
			LocalName: "惯用手指数",
			Category:  domain.BASIC_LATERALIZATION,
			Rule:      domain.ASYMMETRY_DIFFERENCE,
			SideOrder: domain.LEFT_MINUS_RIGHT,
			Contributors: []domain.Contributor{
				region("precentral", 0.55, domain.W(60, 30, 10)),
				region("postcentral", 0.25, domain.W(60, 30, 10)),
				region("paracentral", 0.20, domain.W(60, 30, 10)),
			},
			Percentile: domain.NORMAL_CDF,
			Digits:     3,
			Rounding:   domain.HALF_UP,
			Formula:    "LI_hand = Σ[w × (z_L − z_R)]",
			Threshold:  "≥+1.28 very strong right-handed (top 10%); ≥+0.84 strong right-handed (top 20%); ≥+0.52 moderate right-handed (top 30%); ±0.52 mixed (60%); ≤-0.84 left-handed (bottom 10%)",
			References: []string{"Sha 2024 Nat Commun", "Wiberg 2019 PNAS", "UKBB 2024"},
			Weights:    "thickness 60 : surface area 30 : volume 10",
		},
		{
			ID:        IndexDominantEye,
			Name:      "Dominant Eye Index",
			LocalName: "主视眼指数",
			Category:  domain.BASIC_LATERALIZATION,
			Rule:      domain.ASYMMETRY_DIFFERENCE,
			SideOrder: domain.LEFT_MINUS_RIGHT,
			Contributors: []domain.Contributor{
				region("pericalcarine", 0.70, domain.W(92, 4, 4)),
				region("cuneus", 0.15, domain.W(92, 4, 4)),
				region("lingual", 0.15, domain.W(92, 4, 4)),
			},
			Percentile: domain.NORMAL_CDF,
			Digits:     3,
			Rounding:   domain.HALF_UP,
			Formula:    "LI_eye = Σ[w × (z_L − z_R)]",
			Threshold:  "≥+1.5 very strong right eye (4-6%); +0.8~+1.5 clear right eye (18-22%); +0.3~+0.8 mild right eye (25-30%); ±0.3 balanced (35-40%); -0.8~-0.3 mild left eye (12-15%); ≤-0.8 clear left eye (5-7%)",
			References: []string{"Hayat 2022 Neuroimage", "Jensen 2015", "HCP 2024"},
			Weights:    "thickness 92 : surface area 4 : volume 4",
		},
		{
			ID:        IndexPreferredNostril,
			Name:      "Preferred Nostril Index",
			LocalName: "主嗅鼻孔指数",
			Category:  domain.BASIC_LATERALIZATION,
			Rule:      domain.ASYMMETRY_DIFFERENCE,
			SideOrder: domain.RIGHT_MINUS_LEFT,
			Contributors: []domain.Contributor{
				labeled(region("entorhinal", 0.45, domain.W(70, 20, 10)), "entorhinal", "嗅皮质"),
				labeled(region("parahippocampal", 0.20, domain.W(70, 20, 10)), "parahippocampal", "海马旁回"),
				labeled(region("medialorbitofrontal", 0.20, domain.W(70, 20, 10)), "medialorbitofrontal", "内侧眶额（嗅觉奖励）"),
				labeled(region("insula", 0.10, domain.W(70, 20, 10)), "insula", "岛叶（嗅觉整合）"),
				// the atlas has no piriform parcel
				labeled(region("entorhinal", 0.05, domain.W(70, 20, 10)), "piriform (entorhinal proxy)", "梨状皮质（初级嗅觉）"),
			},
			Percentile:    domain.LINEAR,
			Digits:        3,
			Rounding:      domain.FIXED_POINT,
			ReportsZScore: true,
			Formula:       "OLI = Σwᵢ×(zRᵢ − zLᵢ), positive = right nostril",
			Threshold:     "> +0.7 clear right nostril | < -0.7 clear left nostril | ±0.3 balanced",
			References:    []string{"ENIGMA-Olfaction 2024 (n>8,200)", "Zatorre et al. 2023 Chem Senses", "Frasnelli 2022 Physiol Rev meta"},
			Weights:       "thickness 70% : surface area 20% : volume 10%",
		},
		{
			ID:        IndexLanguageLat,
			Name:      "Language Lateralization Index",
			LocalName: "语言偏侧化指数",
			Category:  domain.BASIC_LATERALIZATION,
			Rule:      domain.NORMALIZED_DIFFERENCE,
			Contributors: []domain.Contributor{
				region("superiortemporal", 0.28, domain.W(68, 18, 14)),
				region("parsopercularis", 0.22, domain.W(62, 22, 16)),
				region("parstriangularis", 0.18, domain.W(58, 25, 17)),
				region("inferiorparietal", 0.12, domain.W(55, 32, 13)),
				region("middletemporal", 0.10, domain.W(60, 20, 20)),
				region("fusiform", 0.06, domain.W(45, 20, 35)),
				region("supramarginal", 0.04, domain.W(48, 38, 14)),
			},
			Percentile:    domain.PIECEWISE_LINEAR,
			Digits:        3,
			Rounding:      domain.FIXED_POINT,
			ReportsZScore: true,
			Formula:       "LI = (Σw×zL − Σw×zR) / (|ΣwzL| + |ΣwzR| + 0.001)",
			Threshold:     "≥0.20 typical left | ±0.05 bilateral | ≤-0.10 right",
			References:    []string{"ENIGMA-Laterality 2024", "Labache 2023 Cereb Cortex", "Knecht 2000 Brain"},
			Weights:       "per-region weights, see details",
		},
		{
			ID:        IndexSpatialAttention,
			Name:      "Spatial Attention Lateralization Index",
			LocalName: "空间注意偏向指数",
			Category:  domain.FUNCTIONAL_LATERALIZATION,
			Rule:      domain.ASYMMETRY_DIFFERENCE,
			SideOrder: domain.RIGHT_MINUS_LEFT,
			Contributors: []domain.Contributor{
				region("inferiorparietal", 0.45, domain.W(20, 50, 30)),
				region("superiorparietal", 0.35, domain.W(20, 50, 30)),
				region("precuneus", 0.20, domain.W(25, 45, 30)),
			},
			Percentile: domain.NORMAL_CDF,
			Digits:     3,
			Rounding:   domain.FIXED_POINT,
			Formula:    "LI_spatial = Σ wᵢ(zRᵢ − zLᵢ)",
			Threshold:  "≥+0.80 very strong right (top 5%); ≥+0.40 clear right (top 15%); -0.20~+0.40 balanced; ≤-0.40 left",
			References: advancedLateralizationRefs(),
			Weights:    "thickness 20 : surface area 50 : volume 30",
		},
		{
			ID:        IndexEmotionLat,
			Name:      "Emotion Processing Lateralization Index",
			LocalName: "情绪加工偏侧化指数",
			Category:  domain.FUNCTIONAL_LATERALIZATION,
			Rule:      domain.ASYMMETRY_DIFFERENCE,
			SideOrder: domain.RIGHT_MINUS_LEFT,
			Contributors: []domain.Contributor{
				region("insula", 0.40, domain.W(70, 20, 10)),
				region("medialorbitofrontal", 0.30, domain.W(65, 25, 10)),
				region("rostralanteriorcingulate", 0.20, domain.W(70, 20, 10)),
				region("posteriorcingulate", 0.10, domain.W(65, 25, 10)),
			},
			Percentile: domain.NORMAL_CDF,
			Digits:     3,
			Rounding:   domain.FIXED_POINT,
			Formula:    "LI_emotion = Σ wᵢ(zRᵢ − zLᵢ)",
			Threshold:  "≥+0.90 very strong right (top 8%); ≥+0.50 clear right; -0.30~+0.50 balanced; ≤-0.50 left (depressive tendency)",
			References: advancedLateralizationRefs(),
			Weights:    "thickness 65-70 : surface area 20-25 : volume 10",
		},
		{
			ID:        IndexFaceRecognition,
			Name:      "Face Recognition Lateralization Index",
			LocalName: "面孔识别偏侧化指数",
			Category:  domain.FUNCTIONAL_LATERALIZATION,
			Rule:      domain.ASYMMETRY_DIFFERENCE,
			SideOrder: domain.RIGHT_MINUS_LEFT,
			Contributors: []domain.Contributor{
				labeled(region("fusiform", 0.70, domain.W(40, 20, 40)), "fusiform/FFA", ""),
				region("inferiortemporal", 0.20, domain.W(45, 25, 30)),
				region("lateraloccipital", 0.10, domain.W(40, 30, 30)),
			},
			Percentile: domain.NORMAL_CDF,
			Digits:     3,
			Rounding:   domain.FIXED_POINT,
			Formula:    "LI_face = Σ wᵢ(zRᵢ − zLᵢ)",
			Threshold:  "≥+1.00 very strong right (top 3%); ≥+0.60 clear right (top 10%); -0.20~+0.60 balanced; ≤-0.60 rare left",
			References: advancedLateralizationRefs(),
			Weights:    "thickness 40-45 : surface area 20-30 : volume 30-40",
		},
		{
			ID:        IndexMusicLat,
			Name:      "Music Perception Lateralization Index",
			LocalName: "音乐感知偏侧化指数",
			Category:  domain.FUNCTIONAL_LATERALIZATION,
			Rule:      domain.ASYMMETRY_DIFFERENCE,
			SideOrder: domain.RIGHT_MINUS_LEFT,
			Contributors: []domain.Contributor{
				region("superiortemporal", 0.70, domain.W(65, 25, 10)),
				region("middletemporal", 0.20, domain.W(60, 25, 15)),
				region("insula", 0.10, domain.W(55, 30, 15)),
			},
			Percentile: domain.NORMAL_CDF,
			Digits:     3,
			Rounding:   domain.FIXED_POINT,
			Formula:    "LI_music = Σ wᵢ(zRᵢ − zLᵢ)",
			Threshold:  "≥+1.20 very strong right (top 1%); ≥+0.70 clear right (top 8%); -0.30~+0.70 balanced; ≤-0.70 left (rare)",
			References: advancedLateralizationRefs(),
			Weights:    "thickness 55-65 : surface area 25-30 : volume 10-15",
		},
		{
			ID:        IndexTheoryOfMind,
			Name:      "Theory of Mind Lateralization Index",
			LocalName: "心理理论偏侧化指数",
			Category:  domain.FUNCTIONAL_LATERALIZATION,
			Rule:      domain.ASYMMETRY_DIFFERENCE,
			SideOrder: domain.RIGHT_MINUS_LEFT,
			Contributors: []domain.Contributor{
				labeled(region("inferiorparietal", 0.40, domain.W(55, 30, 15)), "inferiorparietal/angular", ""),
				region("supramarginal", 0.30, domain.W(50, 35, 15)),
				labeled(region("superiortemporal", 0.20, domain.W(60, 25, 15)), "superiortemporal/TPJ", ""),
				region("medialorbitofrontal", 0.10, domain.W(65, 20, 15)),
			},
			Percentile: domain.NORMAL_CDF,
			Digits:     3,
			Rounding:   domain.FIXED_POINT,
			Formula:    "LI_tom = Σ wᵢ(zRᵢ − zLᵢ)",
			Threshold:  "≥+0.80 very strong right (top 8%); ≥+0.40 clear right (top 20%); -0.20~+0.40 balanced; ≤-0.40 left",
			References: advancedLateralizationRefs(),
			Weights:    "thickness 50-65 : surface area 20-35 : volume 15",
		},
		{
			ID:        IndexLogicalReasoning,
			Name:      "Logical Reasoning Lateralization Index",
			LocalName: "逻辑推理偏侧化指数",
			Category:  domain.FUNCTIONAL_LATERALIZATION,
			Rule:      domain.ASYMMETRY_DIFFERENCE,
			SideOrder: domain.RIGHT_MINUS_LEFT,
			Contributors: []domain.Contributor{
				region("rostralmiddlefrontal", 0.40, domain.W(30, 30, 40)),
				region("caudalmiddlefrontal", 0.25, domain.W(35, 25, 40)),
				region("superiorfrontal", 0.20, domain.W(25, 35, 40)),
				region("inferiorparietal", 0.15, domain.W(50, 30, 20)),
			},
			Percentile: domain.NORMAL_CDF,
			Digits:     3,
			Rounding:   domain.FIXED_POINT,
			Formula:    "LI_logic = Σ wᵢ(zRᵢ − zLᵢ), negative = left-hemisphere advantage",
			Threshold:  "≤-0.80 very strong left (top 1%); ≤-0.50 marked left (top 5%); ≤-0.20 mild left (top 20%); ±0.20 balanced; ≥+0.50 right advantage",
			References: cognitionLateralizationRefs(),
			Weights:    "per-region weights, see details",
		},
		{
			ID:        IndexMathematicalAbility,
			Name:      "Mathematical Ability Lateralization Index",
			LocalName: "数学能力偏侧化指数",
			Category:  domain.FUNCTIONAL_LATERALIZATION,
			Rule:      domain.ASYMMETRY_DIFFERENCE,
			SideOrder: domain.RIGHT_MINUS_LEFT,
			Contributors: []domain.Contributor{
				region("inferiorparietal", 0.50, domain.W(40, 30, 30)),
				region("superiorfrontal", 0.25, domain.W(25, 35, 40)),
				region("caudalmiddlefrontal", 0.15, domain.W(35, 25, 40)),
				region("precuneus", 0.10, domain.W(30, 40, 30)),
			},
			Percentile: domain.NORMAL_CDF,
			Digits:     3,
			Rounding:   domain.FIXED_POINT,
			Formula:    "LI_math = Σ wᵢ(zRᵢ − zLᵢ), negative = left-hemisphere advantage",
			Threshold:  "≤-0.90 very strong left (top 1%); ≤-0.60 marked left (top 3%); ≤-0.20 mild left (top 15%); ±0.20 balanced; ≥+0.40 right advantage",
			References: cognitionLateralizationRefs(),
			Weights:    "per-region weights, see details",
		},
		{
			ID:        IndexOlfactory,
			Name:      "Olfactory Function Index",
			LocalName: "嗅觉功能指数",
			Category:  domain.PERCEPTION,
			Rule:      domain.BLENDED_MEAN,
			Blend:     domain.Even,
			Contributors: []domain.Contributor{
				region("entorhinal", 0.60, domain.W(80, 10, 10)),
				region("parahippocampal", 0.20, domain.W(80, 10, 10)),
				region("medialorbitofrontal", 0.20, domain.W(80, 10, 10)),
			},
			UnscaledDetails: true,
			Percentile:      domain.NORMAL_CDF,
			Digits:          2,
			Rounding:        domain.HALF_UP,
			Formula:         "Olfaction_z = Σ[w × ((z_L + z_R)/2)]",
			Threshold:       "> +1.0 top 16%; > +1.5 top 7%",
			References:      []string{"Saygin 2022 Neuroimage", "ENIGMA-Olfaction 2024"},
			Weights:         "thickness 80 : surface area 10 : volume 10",
		},
		{
			ID:        IndexLanguageComposite,
			Name:      "Language Composite Index",
			LocalName: "语言综合指数",
			Category:  domain.LANGUAGE_READING,
			Rule:      domain.BLENDED_MEAN,
			Blend:     domain.BlendRatio{Left: 0.7, Right: 0.3},
			Contributors: []domain.Contributor{
				region("superiortemporal", 0.35, domain.W(45, 30, 25)),
				labeled(region("parsopercularis", 0.25, domain.W(45, 30, 25)), "parsopercularis/BA44", ""),
				labeled(region("parstriangularis", 0.20, domain.W(45, 30, 25)), "parstriangularis/BA45", ""),
				region("middletemporal", 0.10, domain.W(45, 30, 25)),
				region("fusiform", 0.10, domain.W(45, 30, 25)),
			},
			Percentile: domain.NORMAL_CDF,
			Digits:     2,
			Rounding:   domain.HALF_UP,
			Formula:    "Language_z = Σ[w × (0.7×z_L + 0.3×z_R)]",
			Threshold:  "> +2.0 top 2.5%; > +2.4 top 0.7%",
			References: []string{"Friederici 2022 Brain", "ENIGMA-Language 2024"},
			Weights:    "thickness 45 : surface area 30 : volume 25",
		},
		{
			ID:        IndexReadingFluency,
			Name:      "Reading Fluency Index",
			LocalName: "阅读流畅性指数",
			Category:  domain.LANGUAGE_READING,
			Rule:      domain.BLENDED_MEAN,
			Blend:     domain.BlendRatio{Left: 0.75, Right: 0.25},
			Contributors: []domain.Contributor{
				region("superiortemporal", 0.40, domain.W(50, 30, 20)),
				region("supramarginal", 0.25, domain.W(50, 30, 20)),
				region("inferiorparietal", 0.20, domain.W(50, 30, 20)),
				region("fusiform", 0.15, domain.W(50, 30, 20)),
			},
			Percentile: domain.NORMAL_CDF,
			Digits:     2,
			Rounding:   domain.HALF_UP,
			Formula:    "Reading_z = Σ[w × (0.75×z_L + 0.25×z_R)]",
			Threshold:  "> +2.0 top 2.5%",
			References: []string{"Black 2022 Brain", "ABCD/ENIGMA-Reading 2024"},
			Weights:    "thickness 50 : surface area 30 : volume 20",
		},
		{
			ID:        IndexDyslexiaRisk,
			Name:      "Dyslexia Structural Risk Index",
			LocalName: "阅读障碍结构风险指数",
			Category:  domain.LANGUAGE_READING,
			Rule:      domain.ASYMMETRY_DIFFERENCE,
			SideOrder: domain.LEFT_MINUS_RIGHT,
			Contributors: []domain.Contributor{
				region("superiortemporal", 0.25, domain.W(60, 15, 25)),
				region("fusiform", 0.20, domain.W(40, 20, 40)),
				region("inferiorparietal", 0.20, domain.W(50, 30, 20)),
				region("supramarginal", 0.20, domain.W(30, 50, 20)),
				region("middletemporal", 0.15, domain.W(70, 10, 20)),
			},
			Renormalize: true,
			Percentile:  domain.NORMAL_CDF,
			Digits:      2,
			Rounding:    domain.HALF_UP,
			Formula:     "Dyslexia_risk = Σ[w × (z_L − z_R)] / Σw_used × 5 × 0.2",
			Threshold:   "< -1.0 high risk; < -0.5 moderate risk; ≥ -0.5 low risk",
			References:  []string{"Richlan 2013 Hum Brain Mapp", "ENIGMA-Dyslexia 2024", "Vandermosten 2012 Brain"},
			Weights:     "per-region weights, see details",
		},
		{
			ID:        IndexEmpathy,
			Name:      "Empathy Index",
			LocalName: "共情能力指数",
			Category:  domain.COGNITION,
			Rule:      domain.BLENDED_MEAN,
			Blend:     domain.Even,
			Contributors: []domain.Contributor{
				region("rostralanteriorcingulate", 0.45, domain.W(80, 10, 10)),
				region("medialorbitofrontal", 0.25, domain.W(80, 10, 10)),
				region("insula", 0.20, domain.W(80, 10, 10)),
				region("posteriorcingulate", 0.10, domain.W(80, 10, 10)),
			},
			Percentile: domain.NORMAL_CDF,
			Digits:     2,
			Rounding:   domain.HALF_UP,
			Formula:    "Empathy_z = Σ[w × ((z_L + z_R)/2)]",
			Threshold:  "> +1.5 top 7%; > +1.6 top 5%",
			References: []string{"Timmers 2018 Neurosci Biobehav Rev", "UKBB-EQ 2024"},
			Weights:    "thickness 80 : surface area 10 : volume 10",
		},
		{
			ID:        IndexExecutiveFunction,
			Name:      "Executive Function Index",
			LocalName: "执行功能指数",
			Category:  domain.COGNITION,
			Rule:      domain.BLENDED_MEAN,
			Blend:     domain.Even,
			Contributors: []domain.Contributor{
				region("superiorfrontal", 0.40, domain.W(35, 25, 40)),
				region("rostralmiddlefrontal", 0.30, domain.W(35, 25, 40)),
				region("caudalmiddlefrontal", 0.20, domain.W(35, 25, 40)),
				region("parsopercularis", 0.10, domain.W(35, 25, 40)),
			},
			Percentile: domain.NORMAL_CDF,
			Digits:     2,
			Rounding:   domain.HALF_UP,
			Formula:    "Executive_z = Σ[w × ((z_L + z_R)/2)]",
			Threshold:  "> +1.8 top 4%; > +1.9 top 3%",
			References: []string{"Woolgar 2021 Neuropsychopharm", "ENIGMA-Cognition 2024"},
			Weights:    "thickness 35 : surface area 25 : volume 40",
		},
		{
			ID:        IndexSpatialProcessing,
			Name:      "Spatial Processing Index",
			LocalName: "空间加工指数",
			Category:  domain.COGNITION,
			Rule:      domain.BLENDED_MEAN,
			Blend:     domain.BlendRatio{Left: 0.4, Right: 0.6},
			Contributors: []domain.Contributor{
				region("inferiorparietal", 0.50, domain.W(20, 50, 30)),
				region("superiorparietal", 0.35, domain.W(20, 50, 30)),
				region("precuneus", 0.15, domain.W(20, 50, 30)),
			},
			Percentile: domain.NORMAL_CDF,
			Digits:     2,
			Rounding:   domain.HALF_UP,
			Formula:    "Spatial_z = Σ[w × (0.4×z_L + 0.6×z_R)]",
			Threshold:  "> +1.2 top 11%; > +1.5 top 7%",
			References: []string{"Ruthsatz 2023 Cortex", "Seghier 2022 Neuroimage"},
			Weights:    "thickness 20 : surface area 50 : volume 30",
		},
		{
			ID:        IndexFluidIntelligence,
			Name:      "Fluid Intelligence Index (Structural)",
			LocalName: "流体智力结构估计指数",
			Category:  domain.COGNITION,
			Rule:      domain.BLENDED_MEAN,
			Blend:     domain.Even,
			Contributors: []domain.Contributor{
				region("superiorfrontal", 0.25, domain.W(30, 30, 40)),
				region("inferiorparietal", 0.20, domain.W(30, 30, 40)),
				region("superiortemporal", 0.20, domain.W(30, 30, 40)),
				region("rostralmiddlefrontal", 0.20, domain.W(30, 30, 40)),
				region("insula", 0.15, domain.W(30, 30, 40)),
			},
			Percentile: domain.NORMAL_CDF,
			Digits:     2,
			Rounding:   domain.HALF_UP,
			Formula:    "gF_z = Σ[w × ((z_L + z_R)/2)]",
			Threshold:  "> +2.0 top 2.5%; > +2.1 top 1.8% (highest structural estimate)",
			References: []string{"Nave 2023 Sci Adv", "Pietschnig 2020 Cereb Cortex", "UKBB 2024"},
			Weights:    "thickness 30 : surface area 30 : volume 40",
		},
	}
}
