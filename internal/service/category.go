package service

import (
	"context"
	"strings"
	"time"

	"github.com/Harshitk-cp/brandlens/internal/domain"
	"go.uber.org/zap"
)

// CategoryService resolves a prompt to one taxonomy category.
type CategoryService struct {
	taxonomy    *domain.Taxonomy
	llm         domain.LLMClient
	callTimeout time.Duration
	logger      *zap.Logger
}

func NewCategoryService(taxonomy *domain.Taxonomy, llm domain.LLMClient, callTimeout time.Duration, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		taxonomy:    taxonomy,
		llm:         llm,
		callTimeout: callTimeout,
		logger:      logger,
	}
}

// Resolve tries a keyword match on the prompt, then on the model's guess, and
// falls back to the default category. The model is only consulted when the
// prompt itself matches nothing.
func (s *CategoryService) Resolve(ctx context.Context, prompt string) domain.CategoryResolution {
	if name, kw, ok := s.DirectMatch(prompt); ok {
		return domain.CategoryResolution{
			Category:       name,
			Strategy:       domain.StrategyDirectMatch,
			MatchedKeyword: kw,
		}
	}

	res := domain.CategoryResolution{
		Category: domain.DefaultCategory,
		Strategy: domain.StrategyFallback,
	}

	guess, err := s.predict(ctx, prompt)
	if err != nil {
		s.logger.Warn("category prediction failed", zap.Error(err))
		res.ModelError = err.Error()
		return res
	}
	res.ModelGuess = guess

	if name, kw, ok := s.ModelMatch(guess); ok {
		res.Category = name
		res.Strategy = domain.StrategyModelMatch
		res.MatchedKeyword = kw
	}
	return res
}

// DirectMatch returns the first category whose keyword occurs in the prompt,
// case-insensitively, walking categories and keywords in declaration order.
func (s *CategoryService) DirectMatch(prompt string) (category, keyword string, ok bool) {
	lower := strings.ToLower(prompt)
	s.taxonomy.Each(func(c domain.TaxonomyCategory) bool {
		for _, kw := range c.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				category, keyword, ok = c.Name, kw, true
				return false
			}
		}
		return true
	})
	return category, keyword, ok
}

// ModelMatch returns the first category whose name or keyword occurs in the
// model's guess. keyword is empty when the name itself matched.
func (s *CategoryService) ModelMatch(guess string) (category, keyword string, ok bool) {
	g := strings.ToLower(strings.TrimSpace(guess))
	if g == "" {
		return "", "", false
	}
	s.taxonomy.Each(func(c domain.TaxonomyCategory) bool {
		if strings.Contains(g, strings.ToLower(c.Name)) {
			category, ok = c.Name, true
			return false
		}
		for _, kw := range c.Keywords {
			if strings.Contains(g, strings.ToLower(kw)) {
				category, keyword, ok = c.Name, kw, true
				return false
			}
		}
		return true
	})
	return category, keyword, ok
}

func (s *CategoryService) predict(ctx context.Context, prompt string) (string, error) {
	if s.llm == nil {
		return "", nil
	}
	if s.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.callTimeout)
		defer cancel()
	}
	return s.llm.PredictCategory(ctx, prompt)
}
