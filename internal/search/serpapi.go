package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Harshitk-cp/brandlens/internal/domain"
	"github.com/tidwall/gjson"
)

const (
	DefaultEndpoint = "https://serpapi.com/search.json"

	webResultCount  = 3
	newsResultCount = 5
)

// SerpAPIClient queries SerpAPI's Google and Google News engines.
type SerpAPIClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func NewSerpAPIClient(apiKey, endpoint string) *SerpAPIClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &SerpAPIClient{
		apiKey:     apiKey,
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
}

// Search runs a Google web search and keeps the knowledge-graph type and the
// organic result titles.
func (c *SerpAPIClient) Search(ctx context.Context, query string) (*domain.SearchResponse, error) {
	body, err := c.get(ctx, "google", query, webResultCount)
	if err != nil {
		return nil, err
	}

	out := &domain.SearchResponse{
		KnowledgeGraphType: gjson.GetBytes(body, "knowledge_graph.type").String(),
	}
	gjson.GetBytes(body, "organic_results").ForEach(func(_, r gjson.Result) bool {
		out.OrganicResults = append(out.OrganicResults, domain.OrganicResult{
			Title:   r.Get("title").String(),
			Link:    r.Get("link").String(),
			Snippet: r.Get("snippet").String(),
		})
		return true
	})
	return out, nil
}

// SearchNews runs a Google News search.
func (c *SerpAPIClient) SearchNews(ctx context.Context, query string) ([]domain.NewsResult, error) {
	body, err := c.get(ctx, "google_news", query, newsResultCount)
	if err != nil {
		return nil, err
	}

	var out []domain.NewsResult
	gjson.GetBytes(body, "news_results").ForEach(func(_, r gjson.Result) bool {
		if len(out) >= newsResultCount {
			return false
		}
		out = append(out, domain.NewsResult{
			Title:   r.Get("title").String(),
			Link:    r.Get("link").String(),
			Snippet: r.Get("snippet").String(),
			Source:  sourceName(r.Get("source")),
			Date:    r.Get("date").String(),
		})
		return true
	})
	return out, nil
}

// sourceName accepts both the flat and the object form of a news source.
func sourceName(v gjson.Result) string {
	if v.IsObject() {
		return v.Get("name").String()
	}
	return v.String()
}

func (c *SerpAPIClient) get(ctx context.Context, engine, query string, num int) ([]byte, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("engine", engine)
	params.Set("api_key", c.apiKey)
	params.Set("num", strconv.Itoa(num))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned status %d: %s", resp.StatusCode, string(body))
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("search API returned invalid JSON")
	}
	if msg := gjson.GetBytes(body, "error"); msg.Exists() {
		return nil, fmt.Errorf("search API error: %s", msg.String())
	}
	return body, nil
}
