package store

import (
	"context"
	"database/sql"
	"fmt"

	"brocante/internal/model"
)

// AddToCart puts an item in the user's cart. The cart is an idempotent
// set: adding an already-present pair is a no-op.
func AddToCart(ctx context.Context, db *sql.DB, userID, itemID int64) error {
	exists, err := ItemExists(ctx, db, itemID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: item %d", ErrNotFound, itemID)
	}

	_, err = db.ExecContext(ctx,
		`INSERT OR IGNORE INTO cart_items (user_id, item_id) VALUES (?, ?)`,
		userID, itemID,
	)
	if err != nil {
		return fmt.Errorf("adding to cart: %w", err)
	}
	return nil
}

// RemoveFromCart takes an item out of the user's cart.
func RemoveFromCart(ctx context.Context, db *sql.DB, userID, itemID int64) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE user_id = ? AND item_id = ?`,
		userID, itemID,
	)
	if err != nil {
		return fmt.Errorf("removing from cart: %w", err)
	}
	return nil
}

// ListCart returns the user's cart contents with current catalog prices.
func ListCart(ctx context.Context, db *sql.DB, userID int64) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT i.id, i.title, i.description, i.price, i.condition, i.category, i.size, i.brand,
		        i.image_url, i.seller_id, i.created_at
		 FROM cart_items c
		 JOIN items i ON i.id = c.item_id
		 WHERE c.user_id = ?
		 ORDER BY c.added_at, i.id`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing cart: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Price, &item.Condition,
			&item.Category, &item.Size, &item.Brand, &item.ImageURL, &item.SellerID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning cart item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
