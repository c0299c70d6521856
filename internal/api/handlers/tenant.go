package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	"github.com/Harshitk-cp/brandlens/internal/api/middleware"
	"github.com/Harshitk-cp/brandlens/internal/domain"
	"github.com/Harshitk-cp/brandlens/internal/store"
)

// APIKeyPrefix marks keys issued by this service.
const APIKeyPrefix = "bl_"

type TenantHandler struct {
	store domain.TenantStore
}

func NewTenantHandler(store domain.TenantStore) *TenantHandler {
	return &TenantHandler{store: store}
}

type createTenantRequest struct {
	Name string `json:"name"`
}

type createTenantResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	APIKey string `json:"api_key"`
}

// Create registers a tenant and returns its API key. The key is shown once;
// only its hash is stored.
func (h *TenantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTenantRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	apiKey, err := GenerateAPIKey()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate API key")
		return
	}

	tenant := &domain.Tenant{
		Name:       name,
		APIKeyHash: middleware.HashAPIKey(apiKey),
	}

	if err := h.store.Create(r.Context(), tenant); err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "tenant already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create tenant")
		return
	}

	writeJSON(w, http.StatusCreated, createTenantResponse{
		ID:     tenant.ID.String(),
		Name:   tenant.Name,
		APIKey: apiKey,
	})
}

// GenerateAPIKey returns a random key with APIKeyPrefix.
func GenerateAPIKey() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return APIKeyPrefix + hex.EncodeToString(b), nil
}
