package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ovenside/storefront-api/internal/domain/model"
	"github.com/ovenside/storefront-api/internal/service"
)

// CatalogHandlers provides HTTP handlers for the catalog mirror and the
// admin-gated mutations behind it.
type CatalogHandlers struct {
	Svc *service.CatalogService
}

// List handles GET /pizzas: refresh the mirror from the backend and return
// it. When the backend is down the last good mirror is served instead, so
// browsing keeps working through outages.
func (h *CatalogHandlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.Refresh(r.Context())
	if err != nil {
		stale := h.Svc.Items()
		if len(stale) == 0 {
			WriteAppError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]any{"pizzas": stale, "stale": true})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"pizzas": items})
}

// Create handles POST /pizzas.
func (h *CatalogHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCatalogItemRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	created, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

// Update handles PUT /pizzas/{id}.
func (h *CatalogHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := catalogIDFromPath(w, r)
	if !ok {
		return
	}
	var req model.UpdateCatalogItemRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	updated, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /pizzas/{id}.
func (h *CatalogHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := catalogIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func catalogIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("pizza id must be an integer"),
		})
		return 0, false
	}
	return id, true
}
