package model

import "time"

// Review is an append-only rating left on a seller's profile.
type Review struct {
	ID        int64     `json:"id"`
	SellerID  int64     `json:"seller_id"`
	Reviewer  string    `json:"reviewer"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
