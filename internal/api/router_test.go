package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Harshitk-cp/brandlens/internal/domain"
	"github.com/Harshitk-cp/brandlens/internal/llm"
	"github.com/Harshitk-cp/brandlens/internal/ner"
	"github.com/Harshitk-cp/brandlens/internal/search"
	"github.com/Harshitk-cp/brandlens/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memTenantStore struct {
	mu     sync.Mutex
	byHash map[string]*domain.Tenant
}

func (s *memTenantStore) Create(ctx context.Context, t *domain.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byHash[t.APIKeyHash]; ok {
		return store.ErrConflict
	}
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	s.byHash[t.APIKeyHash] = t
	return nil
}

func (s *memTenantStore) GetByAPIKeyHash(ctx context.Context, hash string) (*domain.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.byHash[hash]
	if !ok {
		return nil, store.ErrNotFound
	}
	return t, nil
}

type memAnalysisStore struct {
	mu    sync.Mutex
	items []domain.Analysis
}

func (s *memAnalysisStore) Create(ctx context.Context, a *domain.Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	s.items = append(s.items, *a)
	return nil
}

func (s *memAnalysisStore) GetByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.items {
		if a.ID == id && a.TenantID == tenantID {
			cp := a
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memAnalysisStore) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Analysis{}
	for i := len(s.items) - 1; i >= 0 && len(out) < limit; i-- {
		if s.items[i].TenantID == tenantID {
			out = append(out, s.items[i])
		}
	}
	return out, nil
}

func (s *memAnalysisStore) CountByCategory(ctx context.Context, tenantID uuid.UUID) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[string]int{}
	for _, a := range s.items {
		if a.TenantID == tenantID {
			counts[a.Category]++
		}
	}
	return counts, nil
}

type testServer struct {
	*httptest.Server
	llm    *llm.MockClient
	ner    *ner.MockRecognizer
	apiKey string
}

func newTestServer(t *testing.T, news domain.NewsSearcher) *testServer {
	t.Helper()
	llmClient := llm.NewMockClient()
	recognizer := ner.NewMockRecognizer()

	app := NewAppWithDeps(Deps{
		TenantStore:   &memTenantStore{byHash: map[string]*domain.Tenant{}},
		AnalysisStore: &memAnalysisStore{},
		Recognizer:    recognizer,
		LLM:           llmClient,
		News:          news,
		Taxonomy:      domain.DefaultTaxonomy(),
		Catalog:       domain.DefaultProductCatalog(),
	}, zap.NewNop())
	srv := httptest.NewServer(app.Router)
	t.Cleanup(func() {
		srv.Close()
		app.Close()
	})

	ts := &testServer{Server: srv, llm: llmClient, ner: recognizer}

	resp := ts.do(t, http.MethodPost, "/v1/tenants", "", map[string]string{"name": "acme"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		APIKey string `json:"api_key"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	_ = resp.Body.Close()
	ts.apiKey = created.APIKey
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, key string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	if key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestPublicEndpoints(t *testing.T) {
	ts := newTestServer(t, nil)

	for _, path := range []string{"/health", "/metrics", "/version"} {
		resp := ts.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"), path)
		_ = resp.Body.Close()
	}

	info := decode[map[string]string](t, ts.do(t, http.MethodGet, "/version", "", nil))
	assert.Equal(t, "brandlens", info["service"])
}

func TestAuthRequired(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := ts.do(t, http.MethodPost, "/v1/brands/extract", "", map[string]string{"prompt": "iPhone"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()

	resp = ts.do(t, http.MethodPost, "/v1/brands/extract", "bl_wrong", map[string]string{"prompt": "iPhone"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestExtractBrands(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.ner.Entities = []domain.Entity{{Text: "Samsung", Label: domain.EntityLabelOrg}}
	ts.llm.ExtractBrandsResponse = "Samsung, Apple"

	resp := ts.do(t, http.MethodPost, "/v1/brands/extract", ts.apiKey, map[string]string{
		"prompt": "Samsung Galaxy or Apple iPhone?",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decode[domain.ExtractionResult](t, resp)

	require.Len(t, res.Brands, 2)
	assert.Equal(t, "Samsung", res.Brands[0].Brand)
	assert.Equal(t, 1.0, res.Brands[0].Confidence)
	assert.Equal(t, "Apple", res.Brands[1].Brand)
	assert.Equal(t, 0.6, res.Brands[1].Confidence)
	assert.Len(t, res.SourceReports, 3)
}

func TestExtractBrands_EmptyPrompt(t *testing.T) {
	ts := newTestServer(t, nil)
	resp := ts.do(t, http.MethodPost, "/v1/brands/extract", ts.apiKey, map[string]string{"prompt": " "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestResolveCategory(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.llm.PredictCategoryResponse = "Entertainment"

	resp := ts.do(t, http.MethodPost, "/v1/categories/resolve", ts.apiKey, map[string]string{
		"prompt": "Best smartphone under $500",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decode[domain.CategoryResolution](t, resp)
	assert.Equal(t, "Electronics", res.Category)
	assert.Equal(t, domain.StrategyDirectMatch, res.Strategy)

	resp = ts.do(t, http.MethodPost, "/v1/categories/resolve", ts.apiKey, map[string]string{
		"prompt": "What should I watch tonight?",
	})
	res = decode[domain.CategoryResolution](t, resp)
	assert.Equal(t, "Entertainment", res.Category)
	assert.Equal(t, domain.StrategyModelMatch, res.Strategy)
}

func TestAnalysesLifecycle(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := ts.do(t, http.MethodPost, "/v1/analyses", ts.apiKey, map[string]string{
		"prompt": "Is the LG C3 OLED worth the upgrade from the LG CX?",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[domain.Analysis](t, resp)
	assert.Empty(t, created.Brands)
	assert.Equal(t, "Electronics", created.Category)

	resp = ts.do(t, http.MethodGet, "/v1/analyses/"+created.ID.String(), ts.apiKey, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[domain.Analysis](t, resp)
	assert.Equal(t, created.ID, got.ID)

	resp = ts.do(t, http.MethodPost, "/v1/analyses/batch", ts.apiKey, map[string][]string{
		"prompts": {"New MacBook deals", "Cheap sofa ideas"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	batch := decode[struct {
		Analyses []domain.Analysis `json:"analyses"`
	}](t, resp)
	require.Len(t, batch.Analyses, 2)
	assert.Equal(t, "Household", batch.Analyses[1].Category)

	resp = ts.do(t, http.MethodGet, "/v1/analyses?limit=2", ts.apiKey, nil)
	list := decode[struct {
		Analyses []domain.Analysis `json:"analyses"`
	}](t, resp)
	assert.Len(t, list.Analyses, 2)

	resp = ts.do(t, http.MethodGet, "/v1/analyses/categories", ts.apiKey, nil)
	counts := decode[struct {
		Categories map[string]int `json:"categories"`
	}](t, resp)
	assert.Equal(t, 1, counts.Categories["Household"])

	resp = ts.do(t, http.MethodGet, "/v1/analyses/"+uuid.NewString(), ts.apiKey, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	resp = ts.do(t, http.MethodGet, "/v1/analyses/not-a-uuid", ts.apiKey, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestCampaigns(t *testing.T) {
	ts := newTestServer(t, nil)
	resp := ts.do(t, http.MethodGet, "/v1/brands/Nike/campaigns", ts.apiKey, nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	_ = resp.Body.Close()

	news := search.NewMockClient()
	news.News["Nike latest marketing campaign OR advertisement OR brand promotion"] = []domain.NewsResult{
		{Title: "Nike drops 'Winning Mindset' spot", Source: "AdWeek"},
	}
	ts = newTestServer(t, news)
	resp = ts.do(t, http.MethodGet, "/v1/brands/Nike/campaigns", ts.apiKey, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	report := decode[domain.CampaignReport](t, resp)
	assert.Equal(t, 0.7, report.ConfidenceScore)
	require.Len(t, report.Campaigns, 1)
	assert.Equal(t, "Winning Mindset", report.Campaigns[0].Title)
}
