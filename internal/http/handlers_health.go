package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/ovenside/storefront-api/internal/core"
)

const healthTimeout = 2 * time.Second

// HealthHandlers reports process liveness and store reachability.
type HealthHandlers struct {
	KV core.KVRepository
}

// Health handles GET/HEAD /healthz. The store check is advisory: a degraded
// store still answers 200 because the engine keeps serving from memory.
func (h *HealthHandlers) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		return
	}

	store := "ok"
	if h.KV != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		if err := h.KV.Health(ctx); err != nil {
			store = "degraded"
		}
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok", "store": store})
}
