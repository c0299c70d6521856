package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	openAIChatURL   = "https://api.openai.com/v1/chat/completions"
	openAIModel     = "gpt-4o-mini"
	cerebrasChatURL = "https://api.cerebras.ai/v1/chat/completions"
	cerebrasModel   = "llama-3.3-70b"
	ollamaChatPath  = "/v1/chat/completions"
	ollamaModel     = "phi3"
)

// OpenAIClient talks to any OpenAI-compatible chat completions endpoint.
// OpenAI, Cerebras and Ollama all share this wire format.
type OpenAIClient struct {
	name       string
	url        string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return newCompatibleClient(ProviderOpenAI, openAIChatURL, apiKey, orDefault(model, openAIModel))
}

func NewCerebrasClient(apiKey, model string) *OpenAIClient {
	return newCompatibleClient(ProviderCerebras, cerebrasChatURL, apiKey, orDefault(model, cerebrasModel))
}

// NewOllamaClient targets a local Ollama server. No API key is sent.
func NewOllamaClient(baseURL, model string) *OpenAIClient {
	url := strings.TrimSuffix(baseURL, "/") + ollamaChatPath
	return newCompatibleClient(ProviderOllama, url, "", orDefault(model, ollamaModel))
}

func newCompatibleClient(name, url, apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		name:       name,
		url:        url,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{},
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *OpenAIClient) complete(ctx context.Context, messages []chatMessage, temp float32) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temp,
	})
	if err != nil {
		return "", fmt.Errorf("marshal %s request: %w", c.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create %s request: %w", c.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s request failed: %w", c.name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s response: %w", c.name, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s API returned status %d: %s", c.name, resp.StatusCode, string(respBody))
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("unmarshal %s response: %w", c.name, err)
	}

	if result.Error != nil {
		return "", fmt.Errorf("%s API error: %s", c.name, result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%s API returned no choices", c.name)
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}

func (c *OpenAIClient) ExtractBrands(ctx context.Context, prompt string) (string, error) {
	messages := []chatMessage{
		{Role: "user", Content: fmt.Sprintf(brandExtractionPrompt, prompt)},
	}

	result, err := c.complete(ctx, messages, 0)
	if err != nil {
		return "", fmt.Errorf("extract brands: %w", err)
	}
	return result, nil
}

func (c *OpenAIClient) PredictCategory(ctx context.Context, prompt string) (string, error) {
	messages := []chatMessage{
		{Role: "user", Content: fmt.Sprintf(categoryPrompt, prompt)},
	}

	result, err := c.complete(ctx, messages, 0)
	if err != nil {
		return "", fmt.Errorf("predict category: %w", err)
	}
	return result, nil
}
