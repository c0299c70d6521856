package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Harshitk-cp/brandlens/internal/domain"
	"github.com/Harshitk-cp/brandlens/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCampaignName(t *testing.T) {
	tests := []struct {
		headline string
		want     string
	}{
		{"Nike unveils 'Just Do It' revival", "Just Do It"},
		{"Pepsi returns to the Super Bowl", "Pepsi returns to the Super Bowl"},
		{"Dangling 'quote", "Dangling 'quote"},
		{"Nike's new ad lands", "Nike's new ad lands"},
		{"Empty '' quotes", "Empty '' quotes"},
	}
	for _, tt := range tests {
		if got := CampaignName(tt.headline); got != tt.want {
			t.Errorf("CampaignName(%q) = %q, want %q", tt.headline, got, tt.want)
		}
	}
}

func TestCampaignService_Insights(t *testing.T) {
	client := search.NewMockClient()
	query := "Nike latest marketing campaign OR advertisement OR brand promotion"
	client.News[query] = []domain.NewsResult{
		{Title: "Nike unveils 'Just Do It' revival", Source: "AdAge", Link: "https://a", Snippet: "A return"},
		{Title: "Nike Q3 ad spend", Source: "Reuters", Link: "https://b"},
	}
	s := NewCampaignService(client, 0, zap.NewNop())

	report, err := s.Insights(context.Background(), " Nike ")
	require.NoError(t, err)
	assert.Equal(t, "Nike", report.Brand)
	assert.Equal(t, 0.9, report.ConfidenceScore)
	assert.Equal(t, "SerpAPI Google News Search", report.MethodUsed)
	require.Len(t, report.Campaigns, 2)
	assert.Equal(t, "Just Do It", report.Campaigns[0].Title)
	assert.Equal(t, "A return", report.Campaigns[0].Summary)
	assert.Equal(t, []string{query}, client.NewsQueries)
}

func TestCampaignService_Confidence(t *testing.T) {
	assert.Equal(t, 0.5, campaignConfidence(0))
	assert.Equal(t, 0.7, campaignConfidence(1))
	assert.Equal(t, 0.9, campaignConfidence(5))
}

func TestCampaignService_Errors(t *testing.T) {
	s := NewCampaignService(nil, 0, zap.NewNop())
	_, err := s.Insights(context.Background(), "Nike")
	assert.ErrorIs(t, err, ErrSearchUnavailable)

	_, err = s.Insights(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrBrandRequired)

	client := search.NewMockClient()
	client.NewsError = errors.New("quota exhausted")
	s = NewCampaignService(client, 0, zap.NewNop())
	_, err = s.Insights(context.Background(), "Nike")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSearchUnavailable)
}
