package model

import "time"

// Item is a catalog entry owned by exactly one seller. Items are not
// edited after creation; deleting the seller cascades to the item.
type Item struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Condition   string    `json:"condition"`
	Category    string    `json:"category"`
	Size        string    `json:"size"`
	Brand       string    `json:"brand"`
	ImageURL    string    `json:"image_url"`
	SellerID    int64     `json:"seller_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Joined seller fields (not always populated).
	SellerUsername string  `json:"seller_username,omitempty"`
	SellerBio      string  `json:"seller_bio,omitempty"`
	SellerRating   float64 `json:"seller_rating,omitempty"`
	SellerReviews  int     `json:"seller_reviews,omitempty"`
}

// ItemFilter narrows a catalog search. Zero values mean "no filter".
type ItemFilter struct {
	Search    string
	Category  string
	Condition string
	MaxPrice  float64
}
