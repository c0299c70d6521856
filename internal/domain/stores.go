package domain

import (
	"context"

	"github.com/google/uuid"
)

type TenantStore interface {
	Create(ctx context.Context, t *Tenant) error
	GetByAPIKeyHash(ctx context.Context, apiKeyHash string) (*Tenant, error)
}

type AnalysisStore interface {
	Create(ctx context.Context, a *Analysis) error
	GetByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*Analysis, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, limit int) ([]Analysis, error)
	CountByCategory(ctx context.Context, tenantID uuid.UUID) (map[string]int, error)
}
