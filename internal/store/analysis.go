package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Harshitk-cp/brandlens/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AnalysisStore struct {
	db *pgxpool.Pool
}

func NewAnalysisStore(db *pgxpool.Pool) *AnalysisStore {
	return &AnalysisStore{db: db}
}

func (s *AnalysisStore) Create(ctx context.Context, a *domain.Analysis) error {
	brands, err := json.Marshal(nonNilBrands(a.Brands))
	if err != nil {
		return fmt.Errorf("marshal brands: %w", err)
	}
	return s.db.QueryRow(ctx,
		`INSERT INTO analyses (tenant_id, prompt, brands, category, category_strategy)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		a.TenantID, a.Prompt, brands, a.Category, string(a.CategoryStrategy),
	).Scan(&a.ID, &a.CreatedAt)
}

func (s *AnalysisStore) GetByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (*domain.Analysis, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, tenant_id, prompt, brands, category, category_strategy, created_at
		 FROM analyses WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	)
	a, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *AnalysisStore) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.Analysis, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, tenant_id, prompt, brands, category, category_strategy, created_at
		 FROM analyses WHERE tenant_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		tenantID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Analysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *AnalysisStore) CountByCategory(ctx context.Context, tenantID uuid.UUID) (map[string]int, error) {
	rows, err := s.db.Query(ctx,
		`SELECT category, COUNT(*) FROM analyses
		 WHERE tenant_id = $1
		 GROUP BY category`,
		tenantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, err
		}
		counts[category] = n
	}
	return counts, rows.Err()
}

func scanAnalysis(row pgx.Row) (*domain.Analysis, error) {
	a := &domain.Analysis{}
	var brands []byte
	var strategy string
	if err := row.Scan(&a.ID, &a.TenantID, &a.Prompt, &brands, &a.Category, &strategy, &a.CreatedAt); err != nil {
		return nil, err
	}
	a.CategoryStrategy = domain.ResolutionStrategy(strategy)
	if err := json.Unmarshal(brands, &a.Brands); err != nil {
		return nil, fmt.Errorf("unmarshal brands: %w", err)
	}
	if a.Brands == nil {
		a.Brands = []domain.BrandScore{}
	}
	return a, nil
}

func nonNilBrands(b []domain.BrandScore) []domain.BrandScore {
	if b == nil {
		return []domain.BrandScore{}
	}
	return b
}
