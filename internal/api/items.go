package api

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"brocante/internal/imaging"
	"brocante/internal/model"
	"brocante/internal/store"
)

// placeholderImage is used when a listing is created without a photo.
const placeholderImage = "https://via.placeholder.com/400x500/cccccc/666666?text=Nouvel+Article"

// ItemsHandler handles catalog endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

type createItemRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Condition   string  `json:"condition"`
	Category    string  `json:"category"`
	Size        string  `json:"size"`
	Brand       string  `json:"brand"`
	Image       string  `json:"image"`
}

// List handles GET /api/items with optional search/category/condition/maxPrice filters.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.ItemFilter{
		Search:    q.Get("search"),
		Category:  q.Get("category"),
		Condition: q.Get("condition"),
	}
	if raw := q.Get("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid maxPrice")
			return
		}
		filter.MaxPrice = maxPrice
	}

	items, err := store.SearchItems(r.Context(), h.DB, filter)
	if err != nil {
		slog.Error("failed to search items", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{"items": items})
}

// Get handles GET /api/items/{id}, returning the item with its seller's
// reviews.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	reviews, err := store.ListSellerReviews(r.Context(), h.DB, item.SellerID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get reviews")
		return
	}
	if reviews == nil {
		reviews = []model.Review{}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"item":    item,
		"reviews": reviews,
	})
}

// Create handles POST /api/items. The image field accepts either an
// external URL or an inline data URL; inline photos are processed and
// stored in the database.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" || req.Condition == "" || req.Category == "" {
		jsonError(w, http.StatusBadRequest, "title, condition and category required")
		return
	}
	if req.Price <= 0 {
		jsonError(w, http.StatusBadRequest, "price must be positive")
		return
	}

	item := model.Item{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Condition:   req.Condition,
		Category:    req.Category,
		Size:        req.Size,
		Brand:       req.Brand,
		ImageURL:    req.Image,
		SellerID:    claims.UserID,
	}

	var photo *imaging.Photo
	if imaging.IsDataURL(req.Image) {
		var err error
		photo, err = imaging.ProcessDataURL(req.Image)
		if err != nil {
			jsonError(w, http.StatusBadRequest, fmt.Sprintf("invalid photo: %v", err))
			return
		}
		item.ImageURL = "" // filled in once the item ID is known
	}
	if item.ImageURL == "" && photo == nil {
		item.ImageURL = placeholderImage
	}

	created, err := store.CreateItem(r.Context(), h.DB, item)
	if err != nil {
		slog.Error("failed to create item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	if photo != nil {
		if err := store.SetItemImage(r.Context(), h.DB, created.ID, claims.UserID, photo.Data, photo.MIME); err != nil {
			slog.Error("failed to store item photo", "error", err, "item", created.ID)
			jsonError(w, http.StatusInternalServerError, "failed to store photo")
			return
		}
		created, err = store.GetItem(r.Context(), h.DB, created.ID)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, "failed to get item")
			return
		}
	}

	slog.Info("item listed", "item", created.ID, "seller", claims.Username)
	jsonResponse(w, http.StatusCreated, map[string]any{"item": created})
}

// UploadImage handles PUT /api/items/{id}/image. Only the owning seller
// may replace the photo.
func (h *ItemsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	photo, err := imaging.Process(r.Body)
	if err != nil {
		jsonError(w, http.StatusBadRequest, fmt.Sprintf("invalid photo: %v", err))
		return
	}
	r.Body.Close()

	if err := store.SetItemImage(r.Context(), h.DB, id, claims.UserID, photo.Data, photo.MIME); err != nil {
		storeError(w, err, "failed to store photo")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "photo updated"})
}

// GetImage handles GET /api/items/{id}/image, serving the stored photo.
func (h *ItemsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	data, mime, err := store.GetItemImage(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "failed to get photo")
		return
	}
	if len(data) == 0 {
		jsonError(w, http.StatusNotFound, "item has no stored photo")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(data)
}
