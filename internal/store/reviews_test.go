package store

import (
	"context"
	"errors"
	"testing"

	"brocante/internal/db"
)

func TestCreateAndListReviews(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	bob := createTestUser(t, database, "bob")

	if err := CreateReview(ctx, database, bob.ID, "Julie M.", 5, "Super vendeur !"); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	CreateReview(ctx, database, bob.ID, "Marc L.", 4, "Envoi rapide")

	reviews, err := ListSellerReviews(ctx, database, bob.ID)
	if err != nil {
		t.Fatalf("ListSellerReviews: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	// Newest first.
	if reviews[0].Reviewer != "Marc L." {
		t.Errorf("expected newest review first, got %q", reviews[0].Reviewer)
	}
}

func TestCreateReviewRatingBounds(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	bob := createTestUser(t, database, "bob")

	if err := CreateReview(ctx, database, bob.ID, "Julie M.", 0, ""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for rating 0, got %v", err)
	}
	if err := CreateReview(ctx, database, bob.ID, "Julie M.", 6, ""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for rating 6, got %v", err)
	}
}
