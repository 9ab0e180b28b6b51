package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"brocante/internal/model"
)

// CreateItem creates a new catalog entry owned by sellerID.
func CreateItem(ctx context.Context, db *sql.DB, item model.Item) (*model.Item, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO items (title, description, price, condition, category, size, brand, image_url, seller_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.Title, item.Description, item.Price, item.Condition, item.Category,
		item.Size, item.Brand, item.ImageURL, item.SellerID,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID with its seller's public fields joined.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	item := &model.Item{}
	err := db.QueryRowContext(ctx,
		`SELECT i.id, i.title, i.description, i.price, i.condition, i.category, i.size, i.brand,
		        i.image_url, i.seller_id, i.created_at,
		        u.username, u.bio, u.rating, u.reviews_count
		 FROM items i
		 JOIN users u ON u.id = i.seller_id
		 WHERE i.id = ?`, id,
	).Scan(&item.ID, &item.Title, &item.Description, &item.Price, &item.Condition, &item.Category,
		&item.Size, &item.Brand, &item.ImageURL, &item.SellerID, &item.CreatedAt,
		&item.SellerUsername, &item.SellerBio, &item.SellerRating, &item.SellerReviews)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// SearchItems returns catalog entries matching the filter, newest first.
// The text search covers title, description and brand.
func SearchItems(ctx context.Context, db *sql.DB, filter model.ItemFilter) ([]model.Item, error) {
	query := `SELECT i.id, i.title, i.description, i.price, i.condition, i.category, i.size, i.brand,
	                 i.image_url, i.seller_id, i.created_at,
	                 u.username, u.rating, u.reviews_count
	          FROM items i
	          JOIN users u ON u.id = i.seller_id
	          WHERE 1=1`
	var args []any

	if filter.Search != "" {
		query += ` AND (LOWER(i.title) LIKE ? OR LOWER(i.description) LIKE ? OR LOWER(i.brand) LIKE ?)`
		term := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, term, term, term)
	}
	if filter.Category != "" {
		query += ` AND i.category = ?`
		args = append(args, filter.Category)
	}
	if filter.Condition != "" {
		query += ` AND i.condition = ?`
		args = append(args, filter.Condition)
	}
	if filter.MaxPrice > 0 {
		query += ` AND i.price <= ?`
		args = append(args, filter.MaxPrice)
	}

	query += ` ORDER BY i.created_at DESC, i.id DESC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Price, &item.Condition,
			&item.Category, &item.Size, &item.Brand, &item.ImageURL, &item.SellerID, &item.CreatedAt,
			&item.SellerUsername, &item.SellerRating, &item.SellerReviews); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListSellerItems returns all items owned by a seller, newest first.
func ListSellerItems(ctx context.Context, db *sql.DB, sellerID int64) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, title, description, price, condition, category, size, brand, image_url, seller_id, created_at
		 FROM items WHERE seller_id = ? ORDER BY created_at DESC, id DESC`, sellerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing seller items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Price, &item.Condition,
			&item.Category, &item.Size, &item.Brand, &item.ImageURL, &item.SellerID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning seller item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// SetItemImage stores a processed photo for an item and points image_url
// at the serving endpoint. Only the owning seller may replace the photo.
func SetItemImage(ctx context.Context, db *sql.DB, itemID, sellerID int64, image []byte, mime string) error {
	var ownerID int64
	err := db.QueryRowContext(ctx, `SELECT seller_id FROM items WHERE id = ?`, itemID).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: item %d", ErrNotFound, itemID)
	}
	if err != nil {
		return fmt.Errorf("checking item owner: %w", err)
	}
	if ownerID != sellerID {
		return fmt.Errorf("%w: only the seller can change the photo", ErrForbidden)
	}

	_, err = db.ExecContext(ctx,
		`UPDATE items SET image = ?, image_mime = ?, image_url = ? WHERE id = ?`,
		image, mime, fmt.Sprintf("/api/items/%d/image", itemID), itemID,
	)
	if err != nil {
		return fmt.Errorf("setting item image: %w", err)
	}
	return nil
}

// GetItemImage returns an item's stored photo and MIME type. Both are
// empty when the item only carries an external image URL.
func GetItemImage(ctx context.Context, db *sql.DB, itemID int64) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM items WHERE id = ?`, itemID,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", fmt.Errorf("%w: item %d", ErrNotFound, itemID)
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item image: %w", err)
	}
	return image, mime.String, nil
}

// ItemExists reports whether an item ID resolves.
func ItemExists(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items WHERE id = ?`, id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking item existence: %w", err)
	}
	return count > 0, nil
}
