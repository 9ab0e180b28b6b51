package model

import "time"

// Order is an immutable snapshot of a cart at checkout. Line prices are
// pinned at settlement time and never re-read from the catalog.
type Order struct {
	ID               string      `json:"id"`
	UserID           int64       `json:"user_id"`
	Total            float64     `json:"total"`
	Status           string      `json:"status"`
	ExpectedDelivery time.Time   `json:"expected_delivery"`
	CreatedAt        time.Time   `json:"created_at"`
	Items            []OrderLine `json:"items,omitempty"`
}

// OrderLine is one item of an order, pinned to its price at order time.
type OrderLine struct {
	ItemID   int64   `json:"id"`
	Title    string  `json:"title,omitempty"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image,omitempty"`
}

// Order statuses.
const (
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// DeliveryDelay is how far in the future the expected delivery date is
// set at settlement time.
const DeliveryDelay = 7 * 24 * time.Hour
