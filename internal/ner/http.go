package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Harshitk-cp/brandlens/internal/domain"
	"github.com/avast/retry-go/v4"
)

const entitiesPath = "/entities"

// HTTPClient calls an entity-recognition sidecar that exposes
// POST /entities {"text": "..."} -> {"entities": [...]}.
type HTTPClient struct {
	url        string
	attempts   uint
	delay      time.Duration
	httpClient *http.Client
}

func NewHTTPClient(serviceURL string, attempts uint) *HTTPClient {
	if attempts == 0 {
		attempts = 1
	}
	return &HTTPClient{
		url:        strings.TrimSuffix(serviceURL, "/") + entitiesPath,
		attempts:   attempts,
		delay:      100 * time.Millisecond,
		httpClient: &http.Client{},
	}
}

type entitiesRequest struct {
	Text string `json:"text"`
}

type entitiesResponse struct {
	Entities []domain.Entity `json:"entities"`
	Error    string          `json:"error,omitempty"`
}

// Recognize returns the entities found in text. Transport errors and 5xx
// responses are retried; 4xx responses are not.
func (c *HTTPClient) Recognize(ctx context.Context, text string) ([]domain.Entity, error) {
	body, err := json.Marshal(entitiesRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("marshal ner request: %w", err)
	}

	var entities []domain.Entity
	err = retry.Do(
		func() error {
			out, err := c.post(ctx, body)
			if err != nil {
				return err
			}
			entities = out
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return entities, nil
}

func (c *HTTPClient) post(ctx context.Context, body []byte) ([]domain.Entity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("create ner request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ner request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read ner response: %w", err)
	}

	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("ner service returned status %d: %s", resp.StatusCode, string(respBody))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, retry.Unrecoverable(fmt.Errorf("ner service returned status %d: %s", resp.StatusCode, string(respBody)))
	}

	var result entitiesResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, retry.Unrecoverable(fmt.Errorf("unmarshal ner response: %w", err))
	}
	if result.Error != "" {
		return nil, retry.Unrecoverable(fmt.Errorf("ner service error: %s", result.Error))
	}
	return result.Entities, nil
}
