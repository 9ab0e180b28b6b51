package store

import (
	"context"
	"database/sql"
	"testing"

	"brocante/internal/model"
)

func createTestUser(t *testing.T, db *sql.DB, username string) *model.User {
	t.Helper()
	user, err := CreateUser(context.Background(), db, username, username+"@example.com", "hash", "Bonjour")
	if err != nil {
		t.Fatalf("CreateUser(%s): %v", username, err)
	}
	return user
}

func createTestItem(t *testing.T, db *sql.DB, sellerID int64, title string, price float64) *model.Item {
	t.Helper()
	item, err := CreateItem(context.Background(), db, model.Item{
		Title:       title,
		Description: "Très peu porté",
		Price:       price,
		Condition:   "Bon état",
		Category:    "Vêtements",
		SellerID:    sellerID,
	})
	if err != nil {
		t.Fatalf("CreateItem(%s): %v", title, err)
	}
	return item
}

func ptrFloat(v float64) *float64 { return &v }

func ptrInt64(v int64) *int64 { return &v }
