package service

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/dkt-index-engine/internal/domain"
	"github.com/dkt-index-engine/pkg/normscore"
)

// renormalizationScale is the per-region share applied after coverage renormalization
const renormalizationScale = 0.2

// detailDigits is the precision of per-region diagnostic values
const detailDigits = 3

// IndexEngine evaluates index definitions against a pair of hemisphere maps
type IndexEngine struct {
	logger      *logrus.Logger
	reference   domain.ReferenceTable
	classifier  domain.InterpretationClassifier
	definitions []domain.IndexDefinition
	positions   map[string]int
	workers     int
}

// NewIndexEngine creates an engine over the built-in catalog and adult male reference
func NewIndexEngine(logger *logrus.Logger, workers int) *IndexEngine {
	engine, err := NewCustomIndexEngine(logger, domain.AdultMaleReference, Catalog(), NewInterpretationService(logger), workers)
	if err != nil {
		panic(fmt.Sprintf("built-in index catalog is invalid: %v", err))
	}
	return engine
}

// NewCustomIndexEngine creates an engine over caller-supplied definitions.
// Definitions are validated once here; IDs must be unique.
func NewCustomIndexEngine(
	logger *logrus.Logger,
	reference domain.ReferenceTable,
	definitions []domain.IndexDefinition,
	classifier domain.InterpretationClassifier,
	workers int,
) (*IndexEngine, error) {
	if err := reference.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reference table: %w", err)
	}
	if workers < 1 {
		workers = 1
	}

	positions := make(map[string]int, len(definitions))
	for i := range definitions {
		def := &definitions[i]
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, exists := positions[def.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate index id %s", domain.ErrInvalidDefinition, def.ID)
		}
		positions[def.ID] = i
	}

	return &IndexEngine{
		logger:      logger,
		reference:   reference,
		classifier:  classifier,
		definitions: definitions,
		positions:   positions,
		workers:     workers,
	}, nil
}

// EvaluateAll evaluates every definition. Evaluations run on a bounded
// worker group; results keep catalog order regardless of completion order.
func (e *IndexEngine) EvaluateAll(ctx context.Context, left, right domain.HemisphereMap) ([]domain.IndexResult, error) {
	e.logger.WithFields(logrus.Fields{
		"indices":       len(e.definitions),
		"workers":       e.workers,
		"left_regions":  len(left),
		"right_regions": len(right),
	}).Debug("Evaluating all indices")

	results := make([]domain.IndexResult, len(e.definitions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range e.definitions {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.evaluate(&e.definitions[i], left, right)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.WithFields(logrus.Fields{
		"indices":      len(results),
		"undetermined": countUndetermined(results),
	}).Debug("Completed index evaluation")

	return results, nil
}

// Evaluate evaluates a single index by ID
func (e *IndexEngine) Evaluate(indexID string, left, right domain.HemisphereMap) (*domain.IndexResult, error) {
	pos, exists := e.positions[indexID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrIndexNotFound, indexID)
	}

	result := e.evaluate(&e.definitions[pos], left, right)
	return &result, nil
}

// Definitions returns a copy of the definitions in evaluation order
func (e *IndexEngine) Definitions() []domain.IndexDefinition {
	out := make([]domain.IndexDefinition, len(e.definitions))
	copy(out, e.definitions)
	return out
}

// combination accumulates the per-rule sums of one evaluation
type combination struct {
	total      float64
	sumLeft    float64
	sumRight   float64
	strength   float64
	usedWeight float64
}

func (e *IndexEngine) evaluate(def *domain.IndexDefinition, left, right domain.HemisphereMap) domain.IndexResult {
	var acc combination
	details := make([]domain.RegionContribution, 0, len(def.Contributors))

	for _, c := range def.Contributors {
		ref, ok := e.reference.Lookup(c.Region)
		if !ok {
			continue
		}
		lm, ok := left.Lookup(c.Region)
		if !ok {
			continue
		}
		rm, ok := right.Lookup(c.Region)
		if !ok {
			continue
		}

		zL := normscore.Score(lm, ref, c.Metrics)
		zR := normscore.Score(rm, ref, c.Metrics)
		contribL, contribR := c.Weight*zL, c.Weight*zR

		switch def.Rule {
		case domain.ASYMMETRY_DIFFERENCE:
			if def.SideOrder == domain.RIGHT_MINUS_LEFT {
				acc.total += c.Weight * (zR - zL)
			} else {
				acc.total += c.Weight * (zL - zR)
			}
		case domain.BLENDED_MEAN:
			acc.total += c.Weight * (def.Blend.Left*zL + def.Blend.Right*zR)
			contribL, contribR = c.Weight*zL, c.Weight*zR
			if !def.UnscaledDetails {
				contribL *= def.Blend.Left
				contribR *= def.Blend.Right
			}
		case domain.NORMALIZED_DIFFERENCE:
			acc.sumLeft += contribL
			acc.sumRight += contribR
			acc.strength += (zL + zR) / 2 * c.Weight
		}
		acc.usedWeight += c.Weight

		details = append(details, domain.RegionContribution{
			Region:       c.Label,
			LocalLabel:   c.LocalLabel,
			RegionWeight: c.Weight,
			ZLeft:        normscore.Fixed(zL, detailDigits),
			ZRight:       normscore.Fixed(zR, detailDigits),
			ContribLeft:  normscore.Fixed(contribL, detailDigits),
			ContribRight: normscore.Fixed(contribR, detailDigits),
			WeightsUsed:  c.Metrics.String(),
		})
	}

	value := acc.total
	auxiliary := acc.total
	if def.Rule == domain.NORMALIZED_DIFFERENCE {
		value = (acc.sumLeft - acc.sumRight) / (math.Abs(acc.sumLeft) + math.Abs(acc.sumRight) + normalizedDifferenceEpsilon)
		auxiliary = acc.strength
	}
	if def.Renormalize && acc.usedWeight > 0 {
		value = value / acc.usedWeight * float64(len(def.Contributors)) * renormalizationScale
	}

	class := e.classifier.Classify(def.ID, value)
	result := domain.IndexResult{
		ID:             def.ID,
		Name:           def.Name,
		LocalName:      def.LocalName,
		Category:       def.Category,
		Value:          normscore.Round(value, def.Digits, def.Rounding),
		Percentile:     normscore.ToPercentile(def.Percentile, value),
		Label:          class.Label,
		Interpretation: class.Text,
		RiskLevel:      class.RiskLevel,
		RegionsUsed:    len(details),
		RegionsTotal:   len(def.Contributors),
		Threshold:      def.Threshold,
		Formula:        def.Formula,
		References:     append([]string(nil), def.References...),
		Regions:        def.RegionLabels(),
		Weights:        def.Weights,
		Details:        details,
	}
	if def.ReportsZScore {
		z := normscore.Fixed(auxiliary, detailDigits)
		result.ZScore = &z
	}
	if def.Rule == domain.NORMALIZED_DIFFERENCE {
		result.Magnitude = math.Abs(acc.sumLeft) + math.Abs(acc.sumRight)
	}

	e.logger.WithFields(logrus.Fields{
		"index":      def.ID,
		"value":      result.Value,
		"percentile": result.Percentile,
		"regions":    fmt.Sprintf("%d/%d", result.RegionsUsed, result.RegionsTotal),
	}).Debug("Evaluated index")

	return result
}

func countUndetermined(results []domain.IndexResult) int {
	count := 0
	for i := range results {
		if !results[i].IsDetermined() {
			count++
		}
	}
	return count
}
