package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"brocante/internal/model"
	"brocante/internal/store"
)

// CartHandler handles cart endpoints.
type CartHandler struct {
	DB *sql.DB
}

type addToCartRequest struct {
	ItemID int64 `json:"itemId"`
}

// List handles GET /api/cart.
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	h.respondWithCart(w, r, claims.UserID)
}

// Add handles POST /api/cart. Adding an item already in the cart is a
// no-op; the response is the cart either way.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req addToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ItemID == 0 {
		jsonError(w, http.StatusBadRequest, "itemId required")
		return
	}

	if err := store.AddToCart(r.Context(), h.DB, claims.UserID, req.ItemID); err != nil {
		storeError(w, err, "failed to add to cart")
		return
	}

	h.respondWithCart(w, r, claims.UserID)
}

// Remove handles DELETE /api/cart/{itemId}.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	itemID, err := strconv.ParseInt(r.PathValue("itemId"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := store.RemoveFromCart(r.Context(), h.DB, claims.UserID, itemID); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to remove from cart")
		return
	}

	h.respondWithCart(w, r, claims.UserID)
}

func (h *CartHandler) respondWithCart(w http.ResponseWriter, r *http.Request, userID int64) {
	items, err := store.ListCart(r.Context(), h.DB, userID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list cart")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{"items": items})
}
