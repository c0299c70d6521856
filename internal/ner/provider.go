package ner

import (
	"fmt"

	"github.com/Harshitk-cp/brandlens/internal/domain"
)

// Provider constants
const (
	ProviderHTTP = "http"
	ProviderMock = "mock"
)

// NewRecognizer creates an entity recognizer based on the provider name.
// Returns an error if the provider is unknown or the service URL is empty (except for mock).
func NewRecognizer(provider, serviceURL string, attempts uint) (domain.EntityRecognizer, error) {
	switch provider {
	case ProviderHTTP:
		if serviceURL == "" {
			return nil, fmt.Errorf("NER_SERVICE_URL is required for http NER provider")
		}
		return NewHTTPClient(serviceURL, attempts), nil

	case ProviderMock:
		return NewMockRecognizer(), nil

	default:
		return nil, fmt.Errorf("unknown NER provider: %s (valid options: http, mock)", provider)
	}
}
