package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Harshitk-cp/brandlens/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ValidationStrategies are the query templates tried in order for a candidate.
var ValidationStrategies = []string{
	"%s official website",
	"%s brand",
	"%s company",
}

// Knowledge-graph types that confirm a candidate on their own.
var brandEntityTypes = map[string]bool{
	"Organization": true,
	"Brand":        true,
	"Company":      true,
}

// ValidationConfig tunes the validation oracle.
type ValidationConfig struct {
	// Enabled is false when no search credential is configured.
	Enabled bool
	// CallTimeout bounds each search query. Zero means no per-call limit.
	CallTimeout time.Duration
	// RPS and Burst space search queries across all candidates.
	RPS   float64
	Burst int
	// CacheTTL keeps searched verdicts for reuse. Zero disables the cache.
	CacheTTL time.Duration
}

// ValidationService decides whether a candidate is a real brand by asking a
// web search oracle.
type ValidationService struct {
	client  domain.SearchClient
	cfg     ValidationConfig
	limiter *rate.Limiter
	logger  *zap.Logger

	mu    sync.Mutex
	cache map[string]cachedVerdict
	now   func() time.Time
}

type cachedVerdict struct {
	verdict domain.Verdict
	expires time.Time
}

func NewValidationService(client domain.SearchClient, cfg ValidationConfig, logger *zap.Logger) *ValidationService {
	limit := rate.Inf
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &ValidationService{
		client:  client,
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
		cache:   make(map[string]cachedVerdict),
		now:     time.Now,
	}
}

// Bypassed reports whether validation runs without a search oracle.
func (s *ValidationService) Bypassed() bool {
	return s.client == nil || !s.cfg.Enabled
}

// Validate returns the verdict for one candidate. It never fails: without a
// credential every candidate is valid, and failed queries count as no evidence.
func (s *ValidationService) Validate(ctx context.Context, candidate string) domain.Verdict {
	if s.Bypassed() {
		return domain.BypassVerdict()
	}

	if v, ok := s.cached(candidate); ok {
		return v
	}

	valid, evidence := EvaluateQueries(ctx, candidate, ValidationStrategies, s.query)
	v := domain.Verdict{Valid: valid, Mode: domain.ValidationSearched, Evidence: evidence}

	for _, e := range evidence {
		if e.Outcome == domain.EvidenceFailed {
			s.logger.Warn("validation query failed",
				zap.String("candidate", candidate),
				zap.String("query", e.Query),
				zap.String("error", e.Error))
		}
	}

	if cacheable(v) {
		s.store(candidate, v)
	}
	return v
}

// cacheable reports whether a verdict rests on complete evidence. A negative
// verdict with any failed query only says the oracle was unreachable.
func cacheable(v domain.Verdict) bool {
	if v.Valid {
		return true
	}
	for _, e := range v.Evidence {
		if e.Outcome == domain.EvidenceFailed {
			return false
		}
	}
	return true
}

// query is one rate-limited, time-bounded search.
func (s *ValidationService) query(ctx context.Context, q string) (*domain.SearchResponse, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for search slot: %w", err)
	}
	if s.cfg.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.CallTimeout)
		defer cancel()
	}
	return s.client.Search(ctx, q)
}

func (s *ValidationService) cached(candidate string) (domain.Verdict, bool) {
	if s.cfg.CacheTTL <= 0 {
		return domain.Verdict{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cache[candidate]
	if !ok {
		return domain.Verdict{}, false
	}
	if !s.now().Before(c.expires) {
		delete(s.cache, candidate)
		return domain.Verdict{}, false
	}
	return c.verdict, true
}

func (s *ValidationService) store(candidate string, v domain.Verdict) {
	if s.cfg.CacheTTL <= 0 || v.Mode != domain.ValidationSearched {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[candidate] = cachedVerdict{verdict: v, expires: s.now().Add(s.cfg.CacheTTL)}
}

// SearchFunc runs one search query.
type SearchFunc func(ctx context.Context, query string) (*domain.SearchResponse, error)

// EvaluateQueries tries each strategy in order and stops at the first positive
// evidence. Failed queries are recorded and skipped. It returns false once
// every strategy is exhausted.
func EvaluateQueries(ctx context.Context, candidate string, strategies []string, search SearchFunc) (bool, []domain.QueryEvidence) {
	evidence := make([]domain.QueryEvidence, 0, len(strategies))
	for _, tmpl := range strategies {
		q := fmt.Sprintf(tmpl, candidate)
		resp, err := search(ctx, q)
		if err != nil {
			evidence = append(evidence, domain.QueryEvidence{
				Query:   q,
				Outcome: domain.EvidenceFailed,
				Error:   err.Error(),
			})
			continue
		}

		outcome := ClassifyResponse(candidate, resp)
		evidence = append(evidence, domain.QueryEvidence{Query: q, Outcome: outcome})
		if outcome.Positive() {
			return true, evidence
		}
	}
	return false, evidence
}

// ClassifyResponse inspects one search response for evidence that candidate
// is a brand. The knowledge-graph panel is checked before the first organic
// title.
func ClassifyResponse(candidate string, resp *domain.SearchResponse) domain.EvidenceOutcome {
	if resp == nil {
		return domain.EvidenceNone
	}
	if brandEntityTypes[resp.KnowledgeGraphType] {
		return domain.EvidenceKnowledgeGraph
	}
	if len(resp.OrganicResults) > 0 {
		title := strings.ToLower(resp.OrganicResults[0].Title)
		if strings.Contains(title, strings.ToLower(candidate)) {
			return domain.EvidenceTitleMatch
		}
	}
	return domain.EvidenceNone
}
