package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Harshitk-cp/brandlens/internal/domain"
)

// CandidateSource proposes brand names for a prompt.
type CandidateSource interface {
	Source() domain.Source
	Candidates(ctx context.Context, prompt string) ([]string, error)
}

// EntitySource keeps organization and product spans from the entity recognizer.
type EntitySource struct {
	recognizer domain.EntityRecognizer
}

func NewEntitySource(r domain.EntityRecognizer) *EntitySource {
	return &EntitySource{recognizer: r}
}

func (s *EntitySource) Source() domain.Source { return domain.SourceEntity }

func (s *EntitySource) Candidates(ctx context.Context, prompt string) ([]string, error) {
	entities, err := s.recognizer.Recognize(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("recognize entities: %w", err)
	}

	var out []string
	for _, e := range entities {
		if e.Label == domain.EntityLabelOrg || e.Label == domain.EntityLabelProduct {
			out = append(out, e.Text)
		}
	}
	return out, nil
}

// ModelSource asks the language model for a brand list.
type ModelSource struct {
	llm domain.LLMClient
}

func NewModelSource(llm domain.LLMClient) *ModelSource {
	return &ModelSource{llm: llm}
}

func (s *ModelSource) Source() domain.Source { return domain.SourceModel }

func (s *ModelSource) Candidates(ctx context.Context, prompt string) ([]string, error) {
	raw, err := s.llm.ExtractBrands(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("extract brands: %w", err)
	}
	return ParseBrandList(raw), nil
}

// ParseBrandList splits model output on commas and newlines, trimming each
// token and dropping empties.
func ParseBrandList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// DictionarySource maps known product names in the prompt to their brands.
// It makes no external calls and never fails.
type DictionarySource struct {
	catalog *domain.ProductCatalog
	pattern *regexp.Regexp
}

func NewDictionarySource(catalog *domain.ProductCatalog) *DictionarySource {
	s := &DictionarySource{catalog: catalog}
	products := catalog.Products()
	if len(products) == 0 {
		return s
	}
	quoted := make([]string, len(products))
	for i, p := range products {
		quoted[i] = regexp.QuoteMeta(strings.ToLower(p))
	}
	s.pattern = regexp.MustCompile(`\b(` + strings.Join(quoted, "|") + `)\w*\b`)
	return s
}

func (s *DictionarySource) Source() domain.Source { return domain.SourceDictionary }

// Candidates returns one brand per product match, in prompt order. A brand
// matched by several products appears once per match.
func (s *DictionarySource) Candidates(_ context.Context, prompt string) ([]string, error) {
	return s.Resolve(prompt), nil
}

// Resolve is the synchronous form of Candidates.
func (s *DictionarySource) Resolve(prompt string) []string {
	if s.pattern == nil {
		return nil
	}
	var out []string
	for _, m := range s.pattern.FindAllStringSubmatch(strings.ToLower(prompt), -1) {
		if brand, ok := s.catalog.Brand(m[1]); ok {
			out = append(out, brand)
		}
	}
	return out
}
