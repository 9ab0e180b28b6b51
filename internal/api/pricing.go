package api

import (
	"net/http"

	"brocante/internal/pricing"
)

// PricingHandler serves the deterministic listing-assistant heuristics.
type PricingHandler struct{}

type suggestPriceRequest struct {
	Category  string `json:"category"`
	Condition string `json:"condition"`
	Brand     string `json:"brand"`
}

type suggestDescriptionsRequest struct {
	Title string `json:"title"`
}

// SuggestPrice handles POST /api/pricing/suggest.
func (h *PricingHandler) SuggestPrice(w http.ResponseWriter, r *http.Request) {
	var req suggestPriceRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Category == "" || req.Condition == "" {
		jsonError(w, http.StatusBadRequest, "category and condition required")
		return
	}

	jsonResponse(w, http.StatusOK, pricing.SuggestPrice(req.Category, req.Condition, req.Brand))
}

// SuggestDescriptions handles POST /api/pricing/descriptions.
func (h *PricingHandler) SuggestDescriptions(w http.ResponseWriter, r *http.Request) {
	var req suggestDescriptionsRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		jsonError(w, http.StatusBadRequest, "title required")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"descriptions": pricing.SuggestDescriptions(req.Title),
	})
}
