package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"brocante/internal/model"
	"brocante/internal/store"
)

// OrdersHandler handles order endpoints.
type OrdersHandler struct {
	DB *sql.DB
}

// List handles GET /api/orders.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	orders, err := store.ListOrders(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{"orders": orders})
}

// Create handles POST /api/orders: settle the caller's cart into an
// order. There is no payload; the cart is implicit.
func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	order, err := store.CreateOrderFromCart(r.Context(), h.DB, claims.UserID)
	if err != nil {
		storeError(w, err, "failed to create order")
		return
	}

	slog.Info("order settled", "order", order.ID, "user", claims.Username, "total", order.Total)
	jsonResponse(w, http.StatusCreated, map[string]any{
		"orderId":           order.ID,
		"total":             order.Total,
		"status":            order.Status,
		"expected_delivery": order.ExpectedDelivery,
	})
}
