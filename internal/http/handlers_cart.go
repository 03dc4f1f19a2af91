package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ovenside/storefront-api/internal/domain/model"
	"github.com/ovenside/storefront-api/internal/service"
)

// CartHandlers provides HTTP handlers for cart and loyalty operations.
type CartHandlers struct {
	Cart *service.CartService
}

type addItemRequest struct {
	Item model.CatalogItem `json:"item"`
	// Quantity defaults to 1 when omitted (the list screen quick-add).
	Quantity int `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Get handles GET /cart, returning the cart plus the loyalty balance.
func (h *CartHandlers) Get(w http.ResponseWriter, r *http.Request) {
	points, err := h.Cart.Points(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"cart":   h.Cart.Cart(),
		"points": points,
	})
}

// AddItem handles POST /cart/items.
func (h *CartHandlers) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Item.ID == 0 {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "validation",
			Err:     errors.New("item.id is required"),
		})
		return
	}

	cart := h.Cart.AddItem(r.Context(), req.Item, req.Quantity)
	WriteJSON(w, http.StatusOK, map[string]any{"cart": cart})
}

// SetQuantity handles PUT /cart/items/{id}.
func (h *CartHandlers) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := itemIDFromPath(w, r)
	if !ok {
		return
	}
	var req setQuantityRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	cart := h.Cart.SetQuantity(r.Context(), id, req.Quantity)
	WriteJSON(w, http.StatusOK, map[string]any{"cart": cart})
}

// RemoveItem handles DELETE /cart/items/{id}.
func (h *CartHandlers) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemIDFromPath(w, r)
	if !ok {
		return
	}

	cart := h.Cart.RemoveItem(r.Context(), id)
	WriteJSON(w, http.StatusOK, map[string]any{"cart": cart})
}

// Discount handles POST /cart/discount.
func (h *CartHandlers) Discount(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"cart": h.Cart.ApplyDiscount()})
}

// Clear handles POST /cart/clear.
func (h *CartHandlers) Clear(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"cart": h.Cart.ClearCart(r.Context())})
}

// PlaceOrder handles POST /cart/order.
func (h *CartHandlers) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.Cart.PlaceOrder(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, receipt)
}

// RedeemReward handles POST /cart/reward.
func (h *CartHandlers) RedeemReward(w http.ResponseWriter, r *http.Request) {
	result, err := h.Cart.RedeemReward(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

func itemIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("item id must be an integer"),
		})
		return 0, false
	}
	return id, true
}
