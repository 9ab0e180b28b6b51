package model

import "time"

// User is a marketplace member. Every user can both sell and buy.
// Rating and ReviewsCount are maintained externally and are never
// recomputed from review rows.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Bio          string    `json:"bio"`
	Rating       float64   `json:"rating"`
	ReviewsCount int       `json:"reviews_count"`
	CreatedAt    time.Time `json:"created_at"`
}
