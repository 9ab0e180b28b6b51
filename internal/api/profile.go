package api

import (
	"database/sql"
	"net/http"

	"brocante/internal/model"
	"brocante/internal/store"
)

// ProfileHandler serves public seller profiles.
type ProfileHandler struct {
	DB *sql.DB
}

// Get handles GET /api/profile/{username}.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := store.GetUserByUsername(r.Context(), h.DB, r.PathValue("username"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if user == nil {
		jsonError(w, http.StatusNotFound, "profile not found")
		return
	}

	items, err := store.ListSellerItems(r.Context(), h.DB, user.ID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}

	reviews, err := store.ListSellerReviews(r.Context(), h.DB, user.ID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list reviews")
		return
	}
	if reviews == nil {
		reviews = []model.Review{}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"profile": user,
		"items":   items,
		"reviews": reviews,
	})
}
