package handlers

import (
	"net/http"
	"strings"

	"github.com/Harshitk-cp/brandlens/internal/domain"
	"github.com/Harshitk-cp/brandlens/internal/service"
)

type CategoryHandler struct {
	svc      *service.CategoryService
	taxonomy *domain.Taxonomy
}

func NewCategoryHandler(svc *service.CategoryService, taxonomy *domain.Taxonomy) *CategoryHandler {
	return &CategoryHandler{svc: svc, taxonomy: taxonomy}
}

func (h *CategoryHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, service.ErrPromptRequired.Error())
		return
	}

	writeJSON(w, http.StatusOK, h.svc.Resolve(r.Context(), req.Prompt))
}

type taxonomyResponse struct {
	Categories []domain.TaxonomyCategory `json:"categories"`
	Default    string                    `json:"default"`
}

// Taxonomy lists the categories in resolution order.
func (h *CategoryHandler) Taxonomy(w http.ResponseWriter, r *http.Request) {
	cats := make([]domain.TaxonomyCategory, 0, h.taxonomy.Len())
	for i := 0; i < h.taxonomy.Len(); i++ {
		cats = append(cats, h.taxonomy.Category(i))
	}
	writeJSON(w, http.StatusOK, taxonomyResponse{Categories: cats, Default: domain.DefaultCategory})
}
