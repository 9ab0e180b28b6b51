package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"brocante/internal/model"
)

// CreateOrderFromCart settles the user's cart into an immutable order:
// every line is pinned to the item's price at this moment, the cart is
// cleared, and all of it commits or none of it does. Fails with
// ErrInvalidState when the cart is empty.
func CreateOrderFromCart(ctx context.Context, db *sql.DB, userID int64) (*model.Order, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT i.id, i.price
		 FROM cart_items c
		 JOIN items i ON i.id = c.item_id
		 WHERE c.user_id = ?
		 ORDER BY c.added_at, i.id`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("reading cart: %w", err)
	}

	var lines []model.OrderLine
	var total float64
	for rows.Next() {
		var line model.OrderLine
		if err := rows.Scan(&line.ItemID, &line.Price); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning cart line: %w", err)
		}
		total += line.Price
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("reading cart: %w", err)
	}
	rows.Close()

	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty cart", ErrInvalidState)
	}

	order := &model.Order{
		ID:               uuid.NewString(),
		UserID:           userID,
		Total:            total,
		Status:           model.OrderStatusProcessing,
		ExpectedDelivery: time.Now().Add(model.DeliveryDelay),
		Items:            lines,
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (id, user_id, total, status, expected_delivery) VALUES (?, ?, ?, ?, ?)`,
		order.ID, userID, order.Total, order.Status, order.ExpectedDelivery,
	)
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	for _, line := range lines {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, item_id, price) VALUES (?, ?, ?)`,
			order.ID, line.ItemID, line.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("creating order line: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("clearing cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing order: %w", err)
	}

	return order, nil
}

// ListOrders returns the user's orders with their lines, newest first.
func ListOrders(ctx context.Context, db *sql.DB, userID int64) ([]model.Order, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT o.id, o.user_id, o.total, o.status, o.expected_delivery, o.created_at,
		        oi.item_id, oi.price, i.title, i.image_url
		 FROM orders o
		 JOIN order_items oi ON oi.order_id = o.id
		 JOIN items i ON i.id = oi.item_id
		 WHERE o.user_id = ?
		 ORDER BY o.created_at DESC, o.id, oi.rowid`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	index := make(map[string]int)
	for rows.Next() {
		var (
			o    model.Order
			line model.OrderLine
		)
		if err := rows.Scan(&o.ID, &o.UserID, &o.Total, &o.Status, &o.ExpectedDelivery, &o.CreatedAt,
			&line.ItemID, &line.Price, &line.Title, &line.ImageURL); err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}

		i, ok := index[o.ID]
		if !ok {
			i = len(orders)
			index[o.ID] = i
			orders = append(orders, o)
		}
		orders[i].Items = append(orders[i].Items, line)
	}
	return orders, rows.Err()
}
