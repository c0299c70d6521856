package handlers

import (
	"net/http"
	"strings"

	"github.com/Harshitk-cp/brandlens/internal/service"
)

type BrandHandler struct {
	svc *service.BrandService
}

func NewBrandHandler(svc *service.BrandService) *BrandHandler {
	return &BrandHandler{svc: svc}
}

type promptRequest struct {
	Prompt string `json:"prompt"`
}

// Extract scores the brands in a prompt without persisting anything.
func (h *BrandHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, service.ErrPromptRequired.Error())
		return
	}

	writeJSON(w, http.StatusOK, h.svc.Extract(r.Context(), req.Prompt))
}
