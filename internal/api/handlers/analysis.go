package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Harshitk-cp/brandlens/internal/api/middleware"
	"github.com/Harshitk-cp/brandlens/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AnalysisHandler struct {
	svc *service.AnalysisService
}

func NewAnalysisHandler(svc *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{svc: svc}
}

type batchRequest struct {
	Prompts []string `json:"prompts"`
}

func (h *AnalysisHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenant := middleware.TenantFromContext(r.Context())
	if tenant == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req promptRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.svc.Analyze(r.Context(), tenant.ID, req.Prompt)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *AnalysisHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	tenant := middleware.TenantFromContext(r.Context())
	if tenant == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req batchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.svc.AnalyzeBatch(r.Context(), tenant.ID, req.Prompts)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"analyses": out})
}

func (h *AnalysisHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	tenant := middleware.TenantFromContext(r.Context())
	if tenant == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid analysis id")
		return
	}

	a, err := h.svc.GetByID(r.Context(), id, tenant.ID)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *AnalysisHandler) List(w http.ResponseWriter, r *http.Request) {
	tenant := middleware.TenantFromContext(r.Context())
	if tenant == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	out, err := h.svc.List(r.Context(), tenant.ID, limit)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"analyses": out})
}

// CategoryCounts reports how the tenant's analyses are spread over categories.
func (h *AnalysisHandler) CategoryCounts(w http.ResponseWriter, r *http.Request) {
	tenant := middleware.TenantFromContext(r.Context())
	if tenant == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	counts, err := h.svc.CategoryCounts(r.Context(), tenant.ID)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": counts})
}

func writeAnalysisError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPromptRequired),
		errors.Is(err, service.ErrBatchEmpty),
		errors.Is(err, service.ErrBatchTooLarge):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAnalysisNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "failed to process analysis")
	}
}
