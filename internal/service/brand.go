package service

import (
	"context"
	"sort"
	"time"

	"github.com/Harshitk-cp/brandlens/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BrandConfig tunes the extraction pipeline.
type BrandConfig struct {
	// CallTimeout bounds each candidate-source call. Zero means no limit.
	CallTimeout time.Duration
	// Concurrency caps concurrent per-candidate validations.
	Concurrency int
	// Normalize maps candidates to dedup keys. Nil means exact match.
	Normalize domain.NormalizeFunc
}

// BrandService extracts and scores brand mentions in a prompt.
type BrandService struct {
	sources   []CandidateSource
	validator *ValidationService
	cfg       BrandConfig
	logger    *zap.Logger
}

func NewBrandService(sources []CandidateSource, validator *ValidationService, cfg BrandConfig, logger *zap.Logger) *BrandService {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &BrandService{
		sources:   sources,
		validator: validator,
		cfg:       cfg,
		logger:    logger,
	}
}

// Extract runs every source, merges their candidates, validates and scores
// each unique candidate, and returns them sorted by confidence descending.
// Source and oracle failures degrade to empty results; Extract never fails.
func (s *BrandService) Extract(ctx context.Context, prompt string) *domain.ExtractionResult {
	lists := make(map[domain.Source][]string, len(s.sources))
	reports := make([]domain.SourceReport, 0, len(s.sources))

	for _, src := range s.sources {
		names, err := s.collect(ctx, src, prompt)
		report := domain.SourceReport{Source: src.Source(), Candidates: names}
		if err != nil {
			s.logger.Warn("candidate source failed",
				zap.String("source", string(src.Source())),
				zap.Error(err))
			report.Error = err.Error()
			report.Candidates = nil
			names = nil
		}
		if report.Candidates == nil {
			report.Candidates = []string{}
		}
		lists[src.Source()] = append(lists[src.Source()], names...)
		reports = append(reports, report)
	}

	set := domain.NewCandidateSet(lists, s.cfg.Normalize)
	keys := set.Keys()
	scores := make([]domain.BrandScore, len(keys))

	g := new(errgroup.Group)
	g.SetLimit(s.cfg.Concurrency)
	for i, key := range keys {
		g.Go(func() error {
			verdict := s.validator.Validate(ctx, set.Name(key))
			scores[i] = ScoreCandidate(set, key, verdict)
			s.logger.Debug("scored candidate",
				zap.String("brand", scores[i].Brand),
				zap.Float64("confidence", scores[i].Confidence),
				zap.Bool("valid", verdict.Valid))
			return nil
		})
	}
	_ = g.Wait()

	SortByConfidence(scores)

	return &domain.ExtractionResult{
		Brands:        scores,
		SourceReports: reports,
	}
}

func (s *BrandService) collect(ctx context.Context, src CandidateSource, prompt string) ([]string, error) {
	if s.cfg.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.CallTimeout)
		defer cancel()
	}
	return src.Candidates(ctx, prompt)
}

// SortByConfidence orders scores highest first. Ties keep their input order.
func SortByConfidence(scores []domain.BrandScore) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Confidence > scores[j].Confidence
	})
}
