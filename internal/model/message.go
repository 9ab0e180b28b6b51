package model

import (
	"strconv"
	"time"
)

// OfferStatus tracks the lifecycle of a price offer embedded in a message.
type OfferStatus string

// Offer statuses.
const (
	OfferPending   OfferStatus = "pending"
	OfferAccepted  OfferStatus = "accepted"
	OfferDeclined  OfferStatus = "declined"
	OfferCountered OfferStatus = "countered"
)

// Resolved reports whether the status permits no further transition.
// A countered row is resolved too: the counter-offer lives in a new row.
func (s OfferStatus) Resolved() bool {
	return s != OfferPending
}

// Offer is a price proposal attached to a message. Price and status are
// always set together; a message without an offer has a nil *Offer.
type Offer struct {
	Price  float64     `json:"price"`
	Status OfferStatus `json:"status"`
}

// Offer actions a receiver can take on a pending offer.
const (
	OfferActionAccept  = "accept"
	OfferActionDecline = "decline"
	OfferActionCounter = "counter"
)

// Message is one row of the append-only message log. Rows are never
// rewritten except for the offer status column; everything else, including
// outcome texts, is recorded by appending new rows.
type Message struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	Content    string    `json:"content,omitempty"`
	ItemID     *int64    `json:"item_id,omitempty"`
	Offer      *Offer    `json:"offer,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	// Joined fields (not always populated).
	SenderUsername   string  `json:"sender_username,omitempty"`
	ReceiverUsername string  `json:"receiver_username,omitempty"`
	ItemTitle        string  `json:"item_title,omitempty"`
	ItemImageURL     string  `json:"item_image_url,omitempty"`
	ItemPrice        float64 `json:"item_price,omitempty"`
}

// FormatPrice renders a price the way the UI displays it: 20 stays "20",
// 15.5 stays "15.5", no padded decimals.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
