package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/dkt-index-engine/internal/domain"
	"github.com/dkt-index-engine/pkg/dkt"
)

// AnalysisInput carries the raw report texts of one subject. Left and Right
// are the per-hemisphere DKT stats reports; the others are optional and only
// feed whole-brain measures.
type AnalysisInput struct {
	Subject    string `json:"subject,omitempty"`
	Left       string `json:"-"`
	Right      string `json:"-"`
	LeftAparc  string `json:"-"`
	RightAparc string `json:"-"`
	Aseg       string `json:"-"`
}

// CacheStats represents report cache statistics
type CacheStats struct {
	Hits          int64     `json:"hits"`
	Misses        int64     `json:"misses"`
	TotalRequests int64     `json:"total_requests"`
	ErrorCount    int64     `json:"error_count"`
	LastReset     time.Time `json:"last_reset"`
}

// HitRatio returns hits over cache lookups
func (s CacheStats) HitRatio() float64 {
	lookups := s.Hits + s.Misses
	if lookups == 0 {
		return 0
	}
	return float64(s.Hits) / float64(lookups)
}

// AnalyzerService runs the full analysis pipeline: parse, validate,
// evaluate, summarize and score
type AnalyzerService struct {
	logger     *logrus.Logger
	config     domain.EngineConfig
	parser     domain.StatsParser
	engine     domain.IndexEvaluator
	summarizer domain.SummaryAggregator

	// reportCache is nil when caching is disabled
	reportCache *lru.Cache[string, *domain.AnalysisReport]

	stats   CacheStats
	statsMu sync.RWMutex
}

// NewAnalyzerService creates a new analyzer service
func NewAnalyzerService(
	config domain.EngineConfig,
	parser domain.StatsParser,
	engine domain.IndexEvaluator,
	summarizer domain.SummaryAggregator,
	logger *logrus.Logger,
) (*AnalyzerService, error) {
	if config.Workers < 1 {
		config.Workers = 1
	}

	service := &AnalyzerService{
		logger:     logger,
		config:     config,
		parser:     parser,
		engine:     engine,
		summarizer: summarizer,
		stats:      CacheStats{LastReset: time.Now()},
	}

	if config.CacheSize > 0 {
		reportCache, err := lru.New[string, *domain.AnalysisReport](config.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create report cache: %w", err)
		}
		service.reportCache = reportCache
	}

	return service, nil
}

// NewDefaultAnalyzerService wires the built-in parser, catalog and summary rules
func NewDefaultAnalyzerService(config domain.EngineConfig, logger *logrus.Logger) (*AnalyzerService, error) {
	return NewAnalyzerService(
		config,
		dkt.NewParser(),
		NewIndexEngine(logger, config.Workers),
		NewSummaryService(logger),
		logger,
	)
}

// Analyze runs the pipeline over raw report texts. Identical inputs are
// served from the report cache when it is enabled.
func (a *AnalyzerService) Analyze(ctx context.Context, input *AnalysisInput) (*domain.AnalysisReport, error) {
	a.incrementStat("total_requests")
	runID := uuid.New().String()

	if input == nil {
		a.incrementStat("error_count")
		return nil, domain.NewEngineError(domain.ErrInvalidInput, "analysis input is required", "", runID)
	}

	key := cacheKey(input)
	if report := a.getFromCache(key); report != nil {
		a.incrementStat("hits")
		a.logger.WithFields(logrus.Fields{
			"run_id":        runID,
			"cached_run_id": report.RunID,
			"subject":       input.Subject,
		}).Debug("Serving analysis from cache")
		return report, nil
	}
	if a.reportCache != nil {
		a.incrementStat("misses")
	}

	left, err := a.parser.ParseStats(strings.NewReader(input.Left))
	if err != nil {
		a.incrementStat("error_count")
		return nil, domain.WrapEngineError(domain.ErrParse, "failed to parse left hemisphere report", runID, err)
	}
	right, err := a.parser.ParseStats(strings.NewReader(input.Right))
	if err != nil {
		a.incrementStat("error_count")
		return nil, domain.WrapEngineError(domain.ErrParse, "failed to parse right hemisphere report", runID, err)
	}

	report, err := a.analyze(ctx, runID, input.Subject, left, right)
	if err != nil {
		a.incrementStat("error_count")
		return nil, err
	}

	measures, err := a.brainMeasures(input)
	if err != nil {
		report.Warnings = append(report.Warnings, err.Error())
	} else if !measures.IsEmpty() {
		report.Measures = measures
	}

	a.setInCache(key, report)
	return report, nil
}

// AnalyzeMaps runs the pipeline over already-parsed hemisphere maps
func (a *AnalyzerService) AnalyzeMaps(ctx context.Context, subject string, left, right domain.HemisphereMap) (*domain.AnalysisReport, error) {
	a.incrementStat("total_requests")

	report, err := a.analyze(ctx, uuid.New().String(), subject, left, right)
	if err != nil {
		a.incrementStat("error_count")
		return nil, err
	}
	return report, nil
}

// BatchAnalyze analyzes several subjects concurrently, bounded by the worker
// count. Failed subjects are reported in the error map and do not stop the others.
func (a *AnalyzerService) BatchAnalyze(ctx context.Context, inputs []*AnalysisInput) ([]*domain.AnalysisReport, map[int]error) {
	reports := make([]*domain.AnalysisReport, len(inputs))
	failures := make(map[int]error)
	if len(inputs) == 0 {
		return reports, failures
	}

	a.logger.WithField("batch_size", len(inputs)).Info("Starting batch analysis")

	sem := semaphore.NewWeighted(int64(a.config.Workers))
	var wg sync.WaitGroup
	var mu sync.Mutex

	for i, input := range inputs {
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			for j := i; j < len(inputs); j++ {
				failures[j] = domain.WrapEngineError(domain.ErrCancelled, "batch analysis cancelled", "", err)
			}
			mu.Unlock()
			break
		}

		i, input := i, input
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			report, err := a.Analyze(ctx, input)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures[i] = err
				return
			}
			reports[i] = report
		}()
	}

	wg.Wait()

	a.logger.WithFields(logrus.Fields{
		"batch_size": len(inputs),
		"successful": len(inputs) - len(failures),
		"failed":     len(failures),
	}).Info("Completed batch analysis")

	return reports, failures
}

// InvalidateCache drops every cached report
func (a *AnalyzerService) InvalidateCache() {
	if a.reportCache == nil {
		return
	}
	a.reportCache.Purge()
	a.logger.Info("Invalidated report cache")
}

// GetCacheStats returns report cache statistics
func (a *AnalyzerService) GetCacheStats() CacheStats {
	a.statsMu.RLock()
	defer a.statsMu.RUnlock()
	return a.stats
}

func (a *AnalyzerService) analyze(ctx context.Context, runID, subject string, left, right domain.HemisphereMap) (*domain.AnalysisReport, error) {
	startTime := time.Now()

	a.logger.WithFields(logrus.Fields{
		"run_id":        runID,
		"subject":       subject,
		"left_regions":  len(left),
		"right_regions": len(right),
	}).Info("Starting structural index analysis")

	warnings, err := a.checkInput(runID, left, right)
	if err != nil {
		return nil, err
	}

	results, err := a.engine.EvaluateAll(ctx, left, right)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.WrapEngineError(domain.ErrCancelled, "analysis cancelled", runID, err)
		}
		return nil, domain.WrapEngineError(domain.ErrInternalEngine, "index evaluation failed", runID, err)
	}

	report := &domain.AnalysisReport{
		RunID:     runID,
		Subject:   subject,
		CreatedAt: time.Now().UTC(),
		Indices:   results,
		Summary:   a.summarizer.Summarize(results),
		Overall:   OverallScore(results),
		Warnings:  warnings,
	}
	report.ProcessingTimeMs = time.Since(startTime).Milliseconds()

	a.logger.WithFields(logrus.Fields{
		"run_id":          runID,
		"subject":         subject,
		"overall_score":   report.Overall.Score,
		"top_strengths":   len(report.Summary.TopStrengths),
		"warnings":        len(warnings),
		"processing_time": time.Since(startTime),
	}).Info("Completed structural index analysis")

	return report, nil
}

// checkInput collects data-quality warnings. In strict mode an empty or
// non-finite hemisphere is an error instead.
func (a *AnalyzerService) checkInput(runID string, left, right domain.HemisphereMap) ([]string, error) {
	var warnings []string

	for _, side := range []hemisphereInput{
		{domain.LEFT, left},
		{domain.RIGHT, right},
	} {
		if len(side.regions) == 0 {
			if a.config.StrictValidation {
				return nil, domain.WrapEngineError(domain.ErrValidation,
					fmt.Sprintf("%s hemisphere report has no stats table", side.name()), runID, domain.ErrNoUsableData)
			}
			warnings = append(warnings, fmt.Sprintf("%s hemisphere report has no usable regional data", side.name()))
			continue
		}

		if err := dkt.Finite(side.hemi, side.regions); err != nil {
			if a.config.StrictValidation {
				return nil, domain.WrapEngineError(domain.ErrValidation, "report holds non-finite measurements", runID, err)
			}
			a.logger.WithError(err).WithField("run_id", runID).Warn("Non-finite measurements will propagate as undetermined indices")
			warnings = append(warnings, err.Error())
		}

		if missing := missingReferenceRegions(side.regions); len(missing) > 0 {
			warnings = append(warnings, fmt.Sprintf("%s hemisphere is missing %d reference regions: %s",
				side.name(), len(missing), strings.Join(missing, ", ")))
		}
	}

	return warnings, nil
}

type hemisphereInput struct {
	hemi    domain.Hemisphere
	regions domain.HemisphereMap
}

func (h hemisphereInput) name() string {
	return strings.ToLower(h.hemi.String())
}

// brainMeasures collects whole-brain measures from the report headers.
// Dedicated aparc reports take precedence over the DKT headers.
func (a *AnalyzerService) brainMeasures(input *AnalysisInput) (*domain.BrainMeasures, error) {
	measures := &domain.BrainMeasures{}

	meanThickness := func(texts ...string) (float64, error) {
		for _, text := range texts {
			if text == "" {
				continue
			}
			parsed, err := a.parser.ParseMeasures(strings.NewReader(text))
			if err != nil {
				return 0, err
			}
			if v := finiteMeasure(parsed, "MeanThickness"); v != 0 {
				return v, nil
			}
		}
		return 0, nil
	}

	var err error
	if measures.LeftMeanThickness, err = meanThickness(input.LeftAparc, input.Left); err != nil {
		return nil, fmt.Errorf("failed to read left hemisphere measures: %w", err)
	}
	if measures.RightMeanThickness, err = meanThickness(input.RightAparc, input.Right); err != nil {
		return nil, fmt.Errorf("failed to read right hemisphere measures: %w", err)
	}

	if input.Aseg != "" {
		parsed, err := a.parser.ParseMeasures(strings.NewReader(input.Aseg))
		if err != nil {
			return nil, fmt.Errorf("failed to read aseg measures: %w", err)
		}
		measures.EstimatedTIV = finiteMeasure(parsed, "eTIV")
		measures.BrainSegVolume = finiteMeasure(parsed, "BrainSegVol")
		measures.CortexVolume = finiteMeasure(parsed, "CortexVol")
		measures.CerebralWhiteMatterVol = finiteMeasure(parsed, "CerebralWhiteMatterVol")
	}

	return measures, nil
}

// finiteMeasure returns the value of key, or zero when it is absent or not a number
func finiteMeasure(measures []domain.GlobalMeasure, key string) float64 {
	v, ok := dkt.MeasureValue(measures, key)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func (a *AnalyzerService) getFromCache(key string) *domain.AnalysisReport {
	if a.reportCache == nil {
		return nil
	}
	report, ok := a.reportCache.Get(key)
	if !ok {
		return nil
	}

	cached := report.Clone()
	cached.Cached = true
	return cached
}

func (a *AnalyzerService) setInCache(key string, report *domain.AnalysisReport) {
	if a.reportCache == nil {
		return
	}
	a.reportCache.Add(key, report.Clone())
}

func (a *AnalyzerService) incrementStat(statName string) {
	a.statsMu.Lock()
	defer a.statsMu.Unlock()

	switch statName {
	case "hits":
		a.stats.Hits++
	case "misses":
		a.stats.Misses++
	case "total_requests":
		a.stats.TotalRequests++
	case "error_count":
		a.stats.ErrorCount++
	}
}

// cacheKey hashes every report text with length prefixes so that moving
// bytes between fields changes the key
func cacheKey(input *AnalysisInput) string {
	h := sha256.New()
	for _, part := range []string{input.Subject, input.Left, input.Right, input.LeftAparc, input.RightAparc, input.Aseg} {
		fmt.Fprintf(h, "%d:", len(part))
		h.Write([]byte(part))
	}
	return hex.EncodeToString(h.Sum(nil))
}

func missingReferenceRegions(regions domain.HemisphereMap) []string {
	var missing []string
	for _, name := range domain.AdultMaleReference.Regions() {
		if _, ok := regions[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
