package llm

import (
	"context"
	"sync"
)

// MockClient is a configurable LLM client for testing.
// Set the response fields to control what each method returns.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	ExtractBrandsResponse   string
	ExtractBrandsError      error
	PredictCategoryResponse string
	PredictCategoryError    error

	// Call tracking for assertions
	ExtractBrandsCalls   []string
	PredictCategoryCalls []string
}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (c *MockClient) ExtractBrands(ctx context.Context, prompt string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ExtractBrandsCalls = append(c.ExtractBrandsCalls, prompt)
	if c.ExtractBrandsError != nil {
		return "", c.ExtractBrandsError
	}
	return c.ExtractBrandsResponse, nil
}

func (c *MockClient) PredictCategory(ctx context.Context, prompt string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.PredictCategoryCalls = append(c.PredictCategoryCalls, prompt)
	if c.PredictCategoryError != nil {
		return "", c.PredictCategoryError
	}
	return c.PredictCategoryResponse, nil
}

// Reset clears all recorded calls and resets responses to defaults.
func (c *MockClient) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ExtractBrandsResponse = ""
	c.ExtractBrandsError = nil
	c.PredictCategoryResponse = ""
	c.PredictCategoryError = nil
	c.ExtractBrandsCalls = nil
	c.PredictCategoryCalls = nil
}
