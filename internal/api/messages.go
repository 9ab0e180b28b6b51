package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"brocante/internal/chat"
	"brocante/internal/store"
)

// MessagesHandler handles messaging and offer negotiation endpoints.
type MessagesHandler struct {
	DB *sql.DB
}

type sendMessageRequest struct {
	Content    string   `json:"content"`
	ItemID     *int64   `json:"itemId"`
	OfferPrice *float64 `json:"offerPrice"`
}

type offerResponseRequest struct {
	Action       string   `json:"action"`
	CounterPrice *float64 `json:"counterPrice"`
}

// List handles GET /api/messages: the caller's full log projected into
// conversation threads.
func (h *MessagesHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	log, err := store.ListMessagesForUser(r.Context(), h.DB, claims.UserID)
	if err != nil {
		slog.Error("failed to list messages", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list messages")
		return
	}

	conversations := chat.Build(claims.UserID, log)
	if conversations == nil {
		conversations = []chat.Conversation{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{"conversations": conversations})
}

// Send handles POST /api/messages/{username}: append a message, and with
// it an offer when offerPrice is set.
func (h *MessagesHandler) Send(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req sendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	receiver, err := store.GetUserByUsername(r.Context(), h.DB, r.PathValue("username"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if receiver == nil {
		jsonError(w, http.StatusNotFound, "user not found")
		return
	}

	_, err = store.CreateMessage(r.Context(), h.DB, claims.UserID, receiver.ID, req.Content, req.ItemID, req.OfferPrice)
	if err != nil {
		storeError(w, err, "failed to send message")
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]string{"message": "sent"})
}

// RespondToOffer handles POST /api/messages/offer/{id}: accept, decline
// or counter a pending offer.
func (h *MessagesHandler) RespondToOffer(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	messageID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	var req offerResponseRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	status, err := store.RespondToOffer(r.Context(), h.DB, claims.UserID, messageID, req.Action, req.CounterPrice)
	if err != nil {
		storeError(w, err, "failed to respond to offer")
		return
	}

	slog.Info("offer response", "message", messageID, "user", claims.Username, "status", status)
	jsonResponse(w, http.StatusOK, map[string]string{"status": string(status)})
}
