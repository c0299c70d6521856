package domain

import "context"

// Entity is one span returned by the entity-recognition service.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

const (
	EntityLabelOrg     = "ORG"
	EntityLabelProduct = "PRODUCT"
)

type EntityRecognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
}

// LLMClient returns raw model text; callers own the parsing.
type LLMClient interface {
	// ExtractBrands answers with a comma-separated list of brand names.
	ExtractBrands(ctx context.Context, prompt string) (string, error)
	// PredictCategory answers with a short product-category guess.
	PredictCategory(ctx context.Context, prompt string) (string, error)
}

type OrganicResult struct {
	Title   string `json:"title"`
	Link    string `json:"link,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

// SearchResponse carries the fields of a web-search response that validation
// consults. KnowledgeGraphType is empty when the response has no panel.
type SearchResponse struct {
	KnowledgeGraphType string          `json:"knowledge_graph_type,omitempty"`
	OrganicResults     []OrganicResult `json:"organic_results,omitempty"`
}

type SearchClient interface {
	Search(ctx context.Context, query string) (*SearchResponse, error)
}

type NewsResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
	Date    string `json:"date"`
}

type NewsSearcher interface {
	SearchNews(ctx context.Context, query string) ([]NewsResult, error)
}
