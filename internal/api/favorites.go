package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"brocante/internal/model"
	"brocante/internal/store"
)

// FavoritesHandler handles favorites endpoints.
type FavoritesHandler struct {
	DB *sql.DB
}

// List handles GET /api/favorites.
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	favorites, err := store.ListFavorites(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list favorites")
		return
	}
	if favorites == nil {
		favorites = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{"favorites": favorites})
}

// Toggle handles POST /api/items/{id}/favorite, flipping membership.
func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	itemID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	favorited, err := store.ToggleFavorite(r.Context(), h.DB, claims.UserID, itemID)
	if err != nil {
		storeError(w, err, "failed to toggle favorite")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]bool{"favorited": favorited})
}
