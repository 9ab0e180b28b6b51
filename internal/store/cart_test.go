package store

import (
	"context"
	"errors"
	"testing"

	"brocante/internal/db"
)

func TestAddToCartIdempotent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")
	item := createTestItem(t, database, bob.ID, "Gants", 7)

	if err := AddToCart(ctx, database, alice.ID, item.ID); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	// Adding the same item again is a no-op, not an error.
	if err := AddToCart(ctx, database, alice.ID, item.ID); err != nil {
		t.Fatalf("AddToCart twice: %v", err)
	}

	cart, _ := ListCart(ctx, database, alice.ID)
	if len(cart) != 1 {
		t.Errorf("expected 1 cart entry, got %d", len(cart))
	}
}

func TestAddToCartUnknownItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")

	err := AddToCart(ctx, database, alice.ID, 999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveFromCart(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")
	item := createTestItem(t, database, bob.ID, "Ceinture", 6)

	AddToCart(ctx, database, alice.ID, item.ID)
	if err := RemoveFromCart(ctx, database, alice.ID, item.ID); err != nil {
		t.Fatalf("RemoveFromCart: %v", err)
	}
	// Removing an absent item stays quiet.
	if err := RemoveFromCart(ctx, database, alice.ID, item.ID); err != nil {
		t.Fatalf("RemoveFromCart twice: %v", err)
	}

	cart, _ := ListCart(ctx, database, alice.ID)
	if len(cart) != 0 {
		t.Errorf("expected empty cart, got %d items", len(cart))
	}
}
