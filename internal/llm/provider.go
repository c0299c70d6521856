package llm

import (
	"fmt"

	"github.com/Harshitk-cp/brandlens/internal/domain"
)

// Provider constants
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderCerebras  = "cerebras"
	ProviderOllama    = "ollama"
	ProviderMock      = "mock"
)

// Options carries provider settings beyond the API key.
type Options struct {
	Model         string
	OllamaBaseURL string
}

// NewClient creates an LLM client based on the provider name.
// Returns an error if the provider is unknown or the API key is empty
// (except for ollama and mock).
func NewClient(provider, apiKey string, opts Options) (domain.LLMClient, error) {
	switch provider {
	case ProviderOpenAI:
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for OpenAI provider")
		}
		return NewOpenAIClient(apiKey, opts.Model), nil

	case ProviderAnthropic:
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for Anthropic provider")
		}
		return NewAnthropicClient(apiKey, opts.Model), nil

	case ProviderGemini:
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return NewGeminiClient(apiKey, opts.Model), nil

	case ProviderCerebras:
		if apiKey == "" {
			return nil, fmt.Errorf("CEREBRAS_API_KEY is required for Cerebras provider")
		}
		return NewCerebrasClient(apiKey, opts.Model), nil

	case ProviderOllama:
		if opts.OllamaBaseURL == "" {
			return nil, fmt.Errorf("OLLAMA_BASE_URL is required for Ollama provider")
		}
		return NewOllamaClient(opts.OllamaBaseURL, opts.Model), nil

	case ProviderMock:
		return NewMockClient(), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (valid options: openai, anthropic, gemini, cerebras, ollama, mock)", provider)
	}
}
