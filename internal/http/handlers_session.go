// Package httpx provides the JSON HTTP surface of the storefront API.
package httpx

import (
	"net/http"

	"github.com/ovenside/storefront-api/internal/service"
)

// SessionHandlers provides HTTP handlers for the mocked login flow.
type SessionHandlers struct {
	Sessions *service.SessionService
	Cart     *service.CartService
}

type loginRequest struct {
	Role   string `json:"role"`
	UserID string `json:"user_id"`
}

// Login handles POST /auth/login. Any non-empty user ID with a known role is
// accepted; the response carries the session plus the cart restored for that
// user.
func (h *SessionHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	sess, err := h.Sessions.Login(r.Context(), req.Role, req.UserID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"session": sess,
		"cart":    h.Cart.Cart(),
	})
}

// Logout handles POST /auth/logout.
func (h *SessionHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	sess := h.Sessions.Logout(r.Context())
	WriteJSON(w, http.StatusOK, map[string]any{"session": sess})
}

// Current handles GET /auth/session.
func (h *SessionHandlers) Current(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"session": h.Sessions.Current()})
}
