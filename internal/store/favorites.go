package store

import (
	"context"
	"database/sql"
	"fmt"

	"brocante/internal/model"
)

// AddFavorite marks an item as favorited. Adding an already-present pair
// is a no-op, not an error.
func AddFavorite(ctx context.Context, db *sql.DB, userID, itemID int64) error {
	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO favorites (user_id, item_id) VALUES (?, ?)`,
		userID, itemID,
	)
	if err != nil {
		return fmt.Errorf("adding favorite: %w", err)
	}
	return nil
}

// RemoveFavorite unmarks an item. Removing an absent pair is a no-op.
func RemoveFavorite(ctx context.Context, db *sql.DB, userID, itemID int64) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND item_id = ?`,
		userID, itemID,
	)
	if err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}
	return nil
}

// IsFavorite reports whether the (user, item) pair is present.
func IsFavorite(ctx context.Context, db *sql.DB, userID, itemID int64) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM favorites WHERE user_id = ? AND item_id = ?`,
		userID, itemID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking favorite: %w", err)
	}
	return count > 0, nil
}

// ToggleFavorite flips favorite membership and returns the new state.
func ToggleFavorite(ctx context.Context, db *sql.DB, userID, itemID int64) (bool, error) {
	exists, err := ItemExists(ctx, db, itemID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, fmt.Errorf("%w: item %d", ErrNotFound, itemID)
	}

	favorited, err := IsFavorite(ctx, db, userID, itemID)
	if err != nil {
		return false, err
	}
	if favorited {
		return false, RemoveFavorite(ctx, db, userID, itemID)
	}
	return true, AddFavorite(ctx, db, userID, itemID)
}

// ListFavorites returns the user's favorited items with seller names.
func ListFavorites(ctx context.Context, db *sql.DB, userID int64) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT i.id, i.title, i.description, i.price, i.condition, i.category, i.size, i.brand,
		        i.image_url, i.seller_id, i.created_at, u.username
		 FROM favorites f
		 JOIN items i ON i.id = f.item_id
		 JOIN users u ON u.id = i.seller_id
		 WHERE f.user_id = ?
		 ORDER BY f.created_at DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Price, &item.Condition,
			&item.Category, &item.Size, &item.Brand, &item.ImageURL, &item.SellerID, &item.CreatedAt,
			&item.SellerUsername); err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
