package handlers

import (
	"errors"
	"net/http"

	"github.com/Harshitk-cp/brandlens/internal/service"
	"github.com/go-chi/chi/v5"
)

type CampaignHandler struct {
	svc *service.CampaignService
}

func NewCampaignHandler(svc *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{svc: svc}
}

func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Insights(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBrandRequired):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrSearchUnavailable):
			writeError(w, http.StatusServiceUnavailable, err.Error())
		default:
			writeError(w, http.StatusBadGateway, "campaign search failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, report)
}
