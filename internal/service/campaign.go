package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Harshitk-cp/brandlens/internal/domain"
	"go.uber.org/zap"
)

const campaignMethod = "SerpAPI Google News Search"

const campaignQuery = "%s latest marketing campaign OR advertisement OR brand promotion"

var (
	ErrBrandRequired     = errors.New("brand is required")
	ErrSearchUnavailable = errors.New("news search is not configured")
)

// CampaignService looks up recent marketing campaigns for a brand.
type CampaignService struct {
	news        domain.NewsSearcher
	callTimeout time.Duration
	logger      *zap.Logger
}

// NewCampaignService accepts a nil searcher; Insights then reports
// ErrSearchUnavailable.
func NewCampaignService(news domain.NewsSearcher, callTimeout time.Duration, logger *zap.Logger) *CampaignService {
	return &CampaignService{
		news:        news,
		callTimeout: callTimeout,
		logger:      logger,
	}
}

func (s *CampaignService) Insights(ctx context.Context, brand string) (*domain.CampaignReport, error) {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return nil, ErrBrandRequired
	}
	if s.news == nil {
		return nil, ErrSearchUnavailable
	}

	if s.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.callTimeout)
		defer cancel()
	}

	results, err := s.news.SearchNews(ctx, fmt.Sprintf(campaignQuery, brand))
	if err != nil {
		s.logger.Warn("campaign news search failed", zap.String("brand", brand), zap.Error(err))
		return nil, fmt.Errorf("search campaigns: %w", err)
	}

	campaigns := make([]domain.CampaignInsight, 0, len(results))
	for _, r := range results {
		campaigns = append(campaigns, domain.CampaignInsight{
			Title:   CampaignName(r.Title),
			Summary: r.Snippet,
			Source:  r.Source,
			Link:    r.Link,
			Date:    r.Date,
		})
	}

	return &domain.CampaignReport{
		Brand:           brand,
		Campaigns:       campaigns,
		ConfidenceScore: campaignConfidence(len(campaigns)),
		MethodUsed:      campaignMethod,
	}, nil
}

// CampaignName returns the single-quoted segment of a headline, or the
// headline itself when it has none.
func CampaignName(headline string) string {
	parts := strings.Split(headline, "'")
	if len(parts) >= 3 {
		if name := strings.TrimSpace(parts[1]); name != "" {
			return name
		}
	}
	return headline
}

func campaignConfidence(n int) float64 {
	switch {
	case n >= 2:
		return 0.9
	case n == 1:
		return 0.7
	default:
		return 0.5
	}
}
