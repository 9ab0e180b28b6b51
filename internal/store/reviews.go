package store

import (
	"context"
	"database/sql"
	"fmt"

	"brocante/internal/model"
)

// CreateReview appends a review to a seller's profile. Reviews are
// append-only; the seller's aggregate rating is maintained elsewhere.
func CreateReview(ctx context.Context, db *sql.DB, sellerID int64, reviewer string, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidArgument)
	}
	_, err := db.ExecContext(ctx,
		`INSERT INTO reviews (seller_id, reviewer, rating, comment) VALUES (?, ?, ?, ?)`,
		sellerID, reviewer, rating, comment,
	)
	if err != nil {
		return fmt.Errorf("creating review: %w", err)
	}
	return nil
}

// ListSellerReviews returns a seller's reviews, newest first.
func ListSellerReviews(ctx context.Context, db *sql.DB, sellerID int64) ([]model.Review, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, seller_id, reviewer, rating, comment, created_at
		 FROM reviews WHERE seller_id = ? ORDER BY created_at DESC, id DESC`, sellerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.SellerID, &rv.Reviewer, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
