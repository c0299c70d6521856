package ner

import (
	"context"
	"sync"

	"github.com/Harshitk-cp/brandlens/internal/domain"
)

// MockRecognizer returns canned entities for testing.
type MockRecognizer struct {
	mu sync.Mutex

	Entities []domain.Entity
	Err      error

	Calls []string
}

func NewMockRecognizer() *MockRecognizer {
	return &MockRecognizer{}
}

func (m *MockRecognizer) Recognize(ctx context.Context, text string) ([]domain.Entity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, text)
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]domain.Entity, len(m.Entities))
	copy(out, m.Entities)
	return out, nil
}
