package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerpAPIClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Samsung brand", q.Get("q"))
		assert.Equal(t, "google", q.Get("engine"))
		assert.Equal(t, "key-1", q.Get("api_key"))
		assert.Equal(t, "3", q.Get("num"))
		_, _ = w.Write([]byte(`{
			"knowledge_graph": {"type": "Company", "title": "Samsung"},
			"organic_results": [
				{"title": "Samsung US | Mobile", "link": "https://samsung.com"},
				{"title": "Samsung - Wikipedia"}
			]
		}`))
	}))
	defer srv.Close()

	c := NewSerpAPIClient("key-1", srv.URL)
	resp, err := c.Search(context.Background(), "Samsung brand")
	require.NoError(t, err)
	assert.Equal(t, "Company", resp.KnowledgeGraphType)
	require.Len(t, resp.OrganicResults, 2)
	assert.Equal(t, "Samsung US | Mobile", resp.OrganicResults[0].Title)
	assert.Equal(t, "https://samsung.com", resp.OrganicResults[0].Link)
}

func TestSerpAPIClient_SearchNoPanel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"search_metadata":{"status":"Success"}}`))
	}))
	defer srv.Close()

	resp, err := NewSerpAPIClient("k", srv.URL).Search(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, resp.KnowledgeGraphType)
	assert.Empty(t, resp.OrganicResults)
}

func TestSerpAPIClient_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"http status", http.StatusUnauthorized, `{"error":"Invalid API key"}`, "status 401"},
		{"api error", http.StatusOK, `{"error":"Your searches for the month are exhausted"}`, "exhausted"},
		{"invalid json", http.StatusOK, `<html>`, "invalid JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewSerpAPIClient("k", srv.URL).Search(context.Background(), "q")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSerpAPIClient_SearchNews(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "google_news", q.Get("engine"))
		assert.Equal(t, "5", q.Get("num"))
		_, _ = w.Write([]byte(`{"news_results": [
			{"title": "Nike launches 'Winning Isn't for Everyone'", "link": "https://a", "source": {"name": "AdAge"}, "date": "1 day ago"},
			{"title": "Nike Q3", "link": "https://b", "source": "Reuters", "snippet": "Results"}
		]}`))
	}))
	defer srv.Close()

	got, err := NewSerpAPIClient("k", srv.URL).SearchNews(context.Background(), "Nike campaign")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "AdAge", got[0].Source)
	assert.Equal(t, "1 day ago", got[0].Date)
	assert.Equal(t, "Reuters", got[1].Source)
	assert.Equal(t, "Results", got[1].Snippet)
}
