package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Harshitk-cp/brandlens/internal/domain"
	"github.com/Harshitk-cp/brandlens/internal/store"
)

type contextKey string

const tenantContextKey contextKey = "tenant"

func TenantFromContext(ctx context.Context) *domain.Tenant {
	t, _ := ctx.Value(tenantContextKey).(*domain.Tenant)
	return t
}

// WithTenant returns a copy of ctx carrying t.
func WithTenant(ctx context.Context, t *domain.Tenant) context.Context {
	return context.WithValue(ctx, tenantContextKey, t)
}

// APIKeyAuth resolves the bearer key to a tenant. Unknown keys get 401; a
// failing tenant lookup gets 500.
func APIKeyAuth(tenantStore domain.TenantStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				writeError(w, http.StatusUnauthorized, "missing or malformed authorization header")
				return
			}

			tenant, err := tenantStore.GetByAPIKeyHash(r.Context(), HashAPIKey(apiKey))
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					writeError(w, http.StatusUnauthorized, "invalid API key")
					return
				}
				writeError(w, http.StatusInternalServerError, "failed to authenticate")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), tenant)))
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// HashAPIKey returns the stored form of an API key.
func HashAPIKey(key string) string {
	h := sha256.Sum256([]byte(key))
	return hex.EncodeToString(h[:])
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
