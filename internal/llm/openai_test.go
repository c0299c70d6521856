package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaClient_ExtractBrands(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ollamaChatPath, r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  Samsung, LG \n"}}]}`))
	}))
	defer srv.Close()

	c := NewOllamaClient(srv.URL+"/", "")
	out, err := c.ExtractBrands(context.Background(), "Samsung QLED vs LG OLED?")
	require.NoError(t, err)

	assert.Equal(t, "Samsung, LG", out)
	assert.Equal(t, ollamaModel, got.Model)
	require.Len(t, got.Messages, 1)
	assert.True(t, strings.Contains(got.Messages[0].Content, "Samsung QLED vs LG OLED?"))
}

func TestOpenAIClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"slow down"}}`))
	}))
	defer srv.Close()

	c := newCompatibleClient(ProviderOpenAI, srv.URL, "sk-test", "gpt-test")
	_, err := c.PredictCategory(context.Background(), "Which TV?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestOpenAIClient_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := newCompatibleClient(ProviderCerebras, srv.URL, "k", "m")
	_, err := c.ExtractBrands(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestGeminiClient_PredictCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "g-key", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Electronics\n"}]}}]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient("g-key", "gemini-test")
	c.baseURL = srv.URL
	out, err := c.PredictCategory(context.Background(), "best phone")
	require.NoError(t, err)
	assert.Equal(t, "Electronics", out)
}

func TestAnthropicClient_ExtractBrands(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "a-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"Sony, Philips"}]}`))
	}))
	defer srv.Close()

	c := NewAnthropicClient("a-key", "")
	c.url = srv.URL
	out, err := c.ExtractBrands(context.Background(), "Sony or Philips TV deals?")
	require.NoError(t, err)
	assert.Equal(t, "Sony, Philips", out)
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		apiKey   string
		opts     Options
		wantErr  bool
	}{
		{"openai with key", ProviderOpenAI, "k", Options{}, false},
		{"openai without key", ProviderOpenAI, "", Options{}, true},
		{"anthropic without key", ProviderAnthropic, "", Options{}, true},
		{"gemini with key", ProviderGemini, "k", Options{}, false},
		{"cerebras with key", ProviderCerebras, "k", Options{}, false},
		{"ollama", ProviderOllama, "", Options{OllamaBaseURL: "http://localhost:11434"}, false},
		{"ollama without url", ProviderOllama, "", Options{}, true},
		{"mock", ProviderMock, "", Options{}, false},
		{"unknown", "watson", "k", Options{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.provider, tt.apiKey, tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, c)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}
