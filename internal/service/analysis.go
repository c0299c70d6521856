package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Harshitk-cp/brandlens/internal/domain"
	"github.com/Harshitk-cp/brandlens/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
	MaxBatchSize     = 100
)

var (
	ErrPromptRequired   = errors.New("prompt is required")
	ErrAnalysisNotFound = errors.New("analysis not found")
	ErrBatchEmpty       = errors.New("at least one prompt is required")
	ErrBatchTooLarge    = errors.New("too many prompts in batch")
)

// AnalysisService runs both pipelines on a prompt and keeps the result.
type AnalysisService struct {
	store    domain.AnalysisStore
	brands   *BrandService
	category *CategoryService
	logger   *zap.Logger
}

func NewAnalysisService(s domain.AnalysisStore, brands *BrandService, category *CategoryService, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		store:    s,
		brands:   brands,
		category: category,
		logger:   logger,
	}
}

// Analyze extracts brands, resolves the category and persists the analysis.
func (s *AnalysisService) Analyze(ctx context.Context, tenantID uuid.UUID, prompt string) (*domain.Analysis, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrPromptRequired
	}

	extraction := s.brands.Extract(ctx, prompt)
	resolution := s.category.Resolve(ctx, prompt)

	a := &domain.Analysis{
		TenantID:         tenantID,
		Prompt:           prompt,
		Brands:           extraction.Brands,
		Category:         resolution.Category,
		CategoryStrategy: resolution.Strategy,
	}
	if err := s.store.Create(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info("prompt analyzed",
		zap.String("analysis_id", a.ID.String()),
		zap.Int("brands", len(a.Brands)),
		zap.String("category", a.Category),
		zap.String("strategy", string(a.CategoryStrategy)))
	return a, nil
}

// AnalyzeBatch analyzes prompts in order. It stops at the first store error.
func (s *AnalysisService) AnalyzeBatch(ctx context.Context, tenantID uuid.UUID, prompts []string) ([]domain.Analysis, error) {
	if len(prompts) == 0 {
		return nil, ErrBatchEmpty
	}
	if len(prompts) > MaxBatchSize {
		return nil, ErrBatchTooLarge
	}
	for _, p := range prompts {
		if strings.TrimSpace(p) == "" {
			return nil, ErrPromptRequired
		}
	}

	out := make([]domain.Analysis, 0, len(prompts))
	for _, p := range prompts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a, err := s.Analyze(ctx, tenantID, p)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, nil
}

func (s *AnalysisService) GetByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.Analysis, error) {
	a, err := s.store.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAnalysisNotFound
		}
		return nil, err
	}
	return a, nil
}

// List returns the tenant's most recent analyses. Limits outside
// (0, MaxListLimit] are clamped.
func (s *AnalysisService) List(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.Analysis, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}
	return s.store.ListByTenant(ctx, tenantID, limit)
}

// CategoryCounts returns how many of the tenant's analyses landed in each category.
func (s *AnalysisService) CategoryCounts(ctx context.Context, tenantID uuid.UUID) (map[string]int, error) {
	return s.store.CountByCategory(ctx, tenantID)
}
