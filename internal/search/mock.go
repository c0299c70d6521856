package search

import (
	"context"
	"sync"

	"github.com/Harshitk-cp/brandlens/internal/domain"
)

// MockClient answers searches from per-query tables. Queries with no entry
// get an empty response.
type MockClient struct {
	mu sync.Mutex

	Responses map[string]*domain.SearchResponse
	Errors    map[string]error

	News      map[string][]domain.NewsResult
	NewsError error

	Queries     []string
	NewsQueries []string
}

func NewMockClient() *MockClient {
	return &MockClient{
		Responses: make(map[string]*domain.SearchResponse),
		Errors:    make(map[string]error),
		News:      make(map[string][]domain.NewsResult),
	}
}

func (m *MockClient) Search(ctx context.Context, query string) (*domain.SearchResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Queries = append(m.Queries, query)
	if err := m.Errors[query]; err != nil {
		return nil, err
	}
	if r, ok := m.Responses[query]; ok {
		return r, nil
	}
	return &domain.SearchResponse{}, nil
}

func (m *MockClient) SearchNews(ctx context.Context, query string) ([]domain.NewsResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NewsQueries = append(m.NewsQueries, query)
	if m.NewsError != nil {
		return nil, m.NewsError
	}
	return m.News[query], nil
}

// QueryCount returns how many web searches ran.
func (m *MockClient) QueryCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Queries)
}
