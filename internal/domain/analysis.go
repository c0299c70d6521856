package domain

import (
	"time"

	"github.com/google/uuid"
)

type Tenant struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	APIKeyHash string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Analysis is a persisted brand and category labelling of one prompt.
type Analysis struct {
	ID               uuid.UUID          `json:"id"`
	TenantID         uuid.UUID          `json:"tenant_id,omitempty"`
	Prompt           string             `json:"prompt"`
	Brands           []BrandScore       `json:"brands"`
	Category         string             `json:"category"`
	CategoryStrategy ResolutionStrategy `json:"category_strategy"`
	CreatedAt        time.Time          `json:"created_at"`
}

type CampaignInsight struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Source  string `json:"source"`
	Link    string `json:"link"`
	Date    string `json:"date"`
}

type CampaignReport struct {
	Brand           string            `json:"brand"`
	Campaigns       []CampaignInsight `json:"campaigns"`
	ConfidenceScore float64           `json:"confidence_score"`
	MethodUsed      string            `json:"method_used"`
}
