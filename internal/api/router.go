package api

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/Harshitk-cp/brandlens/internal/api/handlers"
	mw "github.com/Harshitk-cp/brandlens/internal/api/middleware"
	"github.com/Harshitk-cp/brandlens/internal/buildconfig"
	"github.com/Harshitk-cp/brandlens/internal/config"
	"github.com/Harshitk-cp/brandlens/internal/domain"
	"github.com/Harshitk-cp/brandlens/internal/llm"
	"github.com/Harshitk-cp/brandlens/internal/ner"
	"github.com/Harshitk-cp/brandlens/internal/search"
	"github.com/Harshitk-cp/brandlens/internal/service"
	"github.com/Harshitk-cp/brandlens/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators the HTTP surface is built from.
type Deps struct {
	DB            Pinger
	TenantStore   domain.TenantStore
	AnalysisStore domain.AnalysisStore
	Recognizer    domain.EntityRecognizer
	LLM           domain.LLMClient
	// Search and News are nil when no search credential is configured.
	Search    domain.SearchClient
	News      domain.NewsSearcher
	Taxonomy  *domain.Taxonomy
	Catalog   *domain.ProductCatalog
	Normalize domain.NormalizeFunc
}

// App holds the router and the resources it owns.
type App struct {
	Router    *chi.Mux
	Metrics   *mw.Metrics
	startTime time.Time
	stop      chan struct{}
}

// NewApp wires clients from config and builds the router on top of db.
func NewApp(db *pgxpool.Pool, logger *zap.Logger) (*App, error) {
	llmProvider := config.LLMProvider()
	llmClient, err := llm.NewClient(llmProvider, config.LLMAPIKey(), llm.Options{
		Model:         config.LLMModel(),
		OllamaBaseURL: config.OllamaBaseURL(),
	})
	if err != nil {
		logger.Warn("LLM client initialization failed", zap.String("provider", llmProvider), zap.Error(err))
	} else {
		logger.Info("LLM client initialized", zap.String("provider", llmProvider))
	}

	nerProvider := config.NERProvider()
	recognizer, err := ner.NewRecognizer(nerProvider, config.NERServiceURL(), config.NERRetryAttempts())
	if err != nil {
		logger.Warn("NER client initialization failed", zap.String("provider", nerProvider), zap.Error(err))
	} else {
		logger.Info("NER client initialized", zap.String("provider", nerProvider))
	}

	normalize, err := service.NewNormalizer(config.BrandNormalization())
	if err != nil {
		return nil, err
	}

	deps := Deps{
		DB:            db,
		TenantStore:   store.NewTenantStore(db),
		AnalysisStore: store.NewAnalysisStore(db),
		Recognizer:    recognizer,
		LLM:           llmClient,
		Taxonomy:      domain.DefaultTaxonomy(),
		Catalog:       domain.DefaultProductCatalog(),
		Normalize:     normalize,
	}
	if key := config.SerpAPIKey(); key != "" {
		client := search.NewSerpAPIClient(key, config.SearchEndpoint())
		deps.Search = client
		deps.News = client
		logger.Info("search validation enabled")
	} else {
		logger.Info("SERPAPI_API_KEY not set; brand validation runs in bypass mode")
	}

	return NewAppWithDeps(deps, logger), nil
}

// NewAppWithDeps builds the router from explicit collaborators. Nil recognizer
// or LLM clients drop the matching candidate source.
func NewAppWithDeps(d Deps, logger *zap.Logger) *App {
	timeout := config.ExternalCallTimeout()

	sources := make([]service.CandidateSource, 0, 3)
	if d.Recognizer != nil {
		sources = append(sources, service.NewEntitySource(d.Recognizer))
	}
	if d.LLM != nil {
		sources = append(sources, service.NewModelSource(d.LLM))
	}
	sources = append(sources, service.NewDictionarySource(d.Catalog))

	validator := service.NewValidationService(d.Search, service.ValidationConfig{
		Enabled:     d.Search != nil,
		CallTimeout: timeout,
		RPS:         config.ValidationRPS(),
		Burst:       config.ValidationBurst(),
		CacheTTL:    config.ValidationCacheTTL(),
	}, logger)

	brandSvc := service.NewBrandService(sources, validator, service.BrandConfig{
		CallTimeout: timeout,
		Concurrency: config.ValidationConcurrency(),
		Normalize:   d.Normalize,
	}, logger)
	categorySvc := service.NewCategoryService(d.Taxonomy, d.LLM, timeout, logger)
	analysisSvc := service.NewAnalysisService(d.AnalysisStore, brandSvc, categorySvc, logger)
	campaignSvc := service.NewCampaignService(d.News, timeout, logger)

	tenantHandler := handlers.NewTenantHandler(d.TenantStore)
	brandHandler := handlers.NewBrandHandler(brandSvc)
	categoryHandler := handlers.NewCategoryHandler(categorySvc, d.Taxonomy)
	analysisHandler := handlers.NewAnalysisHandler(analysisSvc)
	campaignHandler := handlers.NewCampaignHandler(campaignSvc)

	r := chi.NewRouter()
	app := &App{
		Router:    r,
		Metrics:   &mw.Metrics{},
		startTime: time.Now(),
		stop:      make(chan struct{}),
	}

	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app.Metrics.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst(), app.stop))

	r.Get("/health", healthHandler(d.DB))
	r.Get("/metrics", app.metricsHandler())
	r.Get("/version", versionHandler)

	// Bootstrap endpoint; no auth.
	r.Post("/v1/tenants", tenantHandler.Create)

	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(d.TenantStore))

		r.Post("/brands/extract", brandHandler.Extract)
		r.Get("/brands/{name}/campaigns", campaignHandler.Get)

		r.Post("/categories/resolve", categoryHandler.Resolve)
		r.Get("/categories", categoryHandler.Taxonomy)

		r.Route("/analyses", func(r chi.Router) {
			r.Post("/", analysisHandler.Create)
			r.Get("/", analysisHandler.List)
			r.Post("/batch", analysisHandler.CreateBatch)
			r.Get("/categories", analysisHandler.CategoryCounts)
			r.Get("/{id}", analysisHandler.GetByID)
		})
	})

	return app
}

// Close stops background work owned by the app.
func (app *App) Close() {
	select {
	case <-app.stop:
	default:
		close(app.stop)
	}
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func versionHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(buildconfig.BuildInfo())
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"requests":       app.Metrics.Snapshot(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb": float64(memStats.Alloc) / 1024 / 1024,
				"sys_mb":   float64(memStats.Sys) / 1024 / 1024,
				"num_gc":   memStats.NumGC,
			},
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores and clients satisfy interfaces at compile time.
var (
	_ domain.TenantStore      = (*store.TenantStore)(nil)
	_ domain.AnalysisStore    = (*store.AnalysisStore)(nil)
	_ domain.LLMClient        = (*llm.OpenAIClient)(nil)
	_ domain.LLMClient        = (*llm.AnthropicClient)(nil)
	_ domain.LLMClient        = (*llm.GeminiClient)(nil)
	_ domain.LLMClient        = (*llm.MockClient)(nil)
	_ domain.EntityRecognizer = (*ner.HTTPClient)(nil)
	_ domain.EntityRecognizer = (*ner.MockRecognizer)(nil)
	_ domain.SearchClient     = (*search.SerpAPIClient)(nil)
	_ domain.NewsSearcher     = (*search.SerpAPIClient)(nil)
	_ domain.SearchClient     = (*search.MockClient)(nil)
	_ domain.NewsSearcher     = (*search.MockClient)(nil)
	_ Pinger                  = (*pgxpool.Pool)(nil)
)
