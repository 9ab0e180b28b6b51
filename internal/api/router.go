package api

import (
	"database/sql"
	"net/http"
	"time"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{DB: db}
	favoritesHandler := &FavoritesHandler{DB: db}
	cartHandler := &CartHandler{DB: db}
	ordersHandler := &OrdersHandler{DB: db}
	messagesHandler := &MessagesHandler{DB: db}
	profileHandler := &ProfileHandler{DB: db}
	pricingHandler := &PricingHandler{}

	authMW := AuthMiddleware(jwtSecret, db)

	// Public routes.
	mux.HandleFunc("GET /api/health", health)
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("GET /api/items/{id}/image", itemsHandler.GetImage)
	mux.HandleFunc("GET /api/profile/{username}", profileHandler.Get)

	// Session.
	mux.Handle("GET /api/auth/me", authMW(http.HandlerFunc(authHandler.Me)))
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Catalog writes.
	mux.Handle("POST /api/items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("PUT /api/items/{id}/image", authMW(http.HandlerFunc(itemsHandler.UploadImage)))

	// Favorites.
	mux.Handle("GET /api/favorites", authMW(http.HandlerFunc(favoritesHandler.List)))
	mux.Handle("POST /api/items/{id}/favorite", authMW(http.HandlerFunc(favoritesHandler.Toggle)))

	// Cart and orders.
	mux.Handle("GET /api/cart", authMW(http.HandlerFunc(cartHandler.List)))
	mux.Handle("POST /api/cart", authMW(http.HandlerFunc(cartHandler.Add)))
	mux.Handle("DELETE /api/cart/{itemId}", authMW(http.HandlerFunc(cartHandler.Remove)))
	mux.Handle("GET /api/orders", authMW(http.HandlerFunc(ordersHandler.List)))
	mux.Handle("POST /api/orders", authMW(http.HandlerFunc(ordersHandler.Create)))

	// Messaging and offers.
	mux.Handle("GET /api/messages", authMW(http.HandlerFunc(messagesHandler.List)))
	mux.Handle("POST /api/messages/{username}", authMW(http.HandlerFunc(messagesHandler.Send)))
	mux.Handle("POST /api/messages/offer/{id}", authMW(http.HandlerFunc(messagesHandler.RespondToOffer)))

	// Listing assistant.
	mux.Handle("POST /api/pricing/suggest", authMW(http.HandlerFunc(pricingHandler.SuggestPrice)))
	mux.Handle("POST /api/pricing/descriptions", authMW(http.HandlerFunc(pricingHandler.SuggestDescriptions)))

	return mux
}

// health handles GET /api/health.
func health(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
