package store

import (
	"context"
	"database/sql"
	"fmt"

	"brocante/internal/model"
)

// CreateMessage appends a row to the message log. A message must carry
// text, an offer, or both; an offer starts life as pending. Fails with
// ErrNotFound when the referenced item does not resolve.
func CreateMessage(ctx context.Context, db *sql.DB, senderID, receiverID int64, content string, itemID *int64, offerPrice *float64) (*model.Message, error) {
	if content == "" && offerPrice == nil {
		return nil, fmt.Errorf("%w: message needs text or an offer", ErrInvalidArgument)
	}
	if offerPrice != nil && *offerPrice <= 0 {
		return nil, fmt.Errorf("%w: offer price must be positive", ErrInvalidArgument)
	}
	if itemID != nil {
		exists, err := ItemExists(ctx, db, *itemID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: item %d", ErrNotFound, *itemID)
		}
	}

	var contentVal, statusVal sql.NullString
	if content != "" {
		contentVal = sql.NullString{String: content, Valid: true}
	}
	var priceVal sql.NullFloat64
	if offerPrice != nil {
		priceVal = sql.NullFloat64{Float64: *offerPrice, Valid: true}
		statusVal = sql.NullString{String: string(model.OfferPending), Valid: true}
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO messages (sender_id, receiver_id, content, item_id, offer_price, offer_status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		senderID, receiverID, contentVal, itemID, priceVal, statusVal,
	)
	if err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting message id: %w", err)
	}

	return GetMessage(ctx, db, id)
}

// GetMessage returns a message row by ID, or nil when absent.
func GetMessage(ctx context.Context, db *sql.DB, id int64) (*model.Message, error) {
	m, err := scanMessage(db.QueryRowContext(ctx,
		`SELECT id, sender_id, receiver_id, content, item_id, offer_price, offer_status, created_at
		 FROM messages WHERE id = ?`, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting message: %w", err)
	}
	return m, nil
}

// ListMessagesForUser returns the complete bidirectional log for a user
// in chronological order, ties broken by row order. Sender, receiver and
// item display fields are joined in for the conversation projection.
func ListMessagesForUser(ctx context.Context, db *sql.DB, userID int64) ([]model.Message, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT m.id, m.sender_id, m.receiver_id, m.content, m.item_id, m.offer_price, m.offer_status, m.created_at,
		        s.username, r.username, i.title, i.image_url, i.price
		 FROM messages m
		 JOIN users s ON s.id = m.sender_id
		 JOIN users r ON r.id = m.receiver_id
		 LEFT JOIN items i ON i.id = m.item_id
		 WHERE m.sender_id = ? OR m.receiver_id = ?
		 ORDER BY m.created_at ASC, m.id ASC`, userID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		var (
			m                    model.Message
			content, status      sql.NullString
			itemID               sql.NullInt64
			price                sql.NullFloat64
			itemTitle, itemImage sql.NullString
			itemPrice            sql.NullFloat64
		)
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &content, &itemID, &price, &status, &m.CreatedAt,
			&m.SenderUsername, &m.ReceiverUsername, &itemTitle, &itemImage, &itemPrice); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		m.Content = content.String
		if itemID.Valid {
			v := itemID.Int64
			m.ItemID = &v
		}
		if price.Valid {
			m.Offer = &model.Offer{Price: price.Float64, Status: model.OfferStatus(status.String)}
		}
		m.ItemTitle = itemTitle.String
		m.ItemImageURL = itemImage.String
		m.ItemPrice = itemPrice.Float64
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// RespondToOffer applies an accept, decline or counter action to a
// pending offer. The status update and the outcome message append happen
// in one transaction so a half-applied response is never observable, and
// concurrent responses to the same offer serialize on the write lock.
//
// Only the receiver of the offer-bearing message may respond; the
// original sender gets ErrForbidden. A resolved offer (accepted,
// declined or countered) gets ErrInvalidState.
func RespondToOffer(ctx context.Context, db *sql.DB, responderID, messageID int64, action string, counterPrice *float64) (model.OfferStatus, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	m, err := scanMessage(tx.QueryRowContext(ctx,
		`SELECT id, sender_id, receiver_id, content, item_id, offer_price, offer_status, created_at
		 FROM messages WHERE id = ?`, messageID,
	))
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("%w: offer %d", ErrNotFound, messageID)
	}
	if err != nil {
		return "", fmt.Errorf("reading offer: %w", err)
	}

	if m.Offer == nil {
		return "", fmt.Errorf("%w: message carries no offer", ErrInvalidState)
	}
	if m.SenderID == responderID {
		return "", fmt.Errorf("%w: cannot respond to your own offer", ErrForbidden)
	}
	if m.ReceiverID != responderID {
		return "", fmt.Errorf("%w: only the offer's receiver can respond", ErrForbidden)
	}
	if m.Offer.Status.Resolved() {
		return "", fmt.Errorf("%w: offer already %s", ErrInvalidState, m.Offer.Status)
	}

	var (
		newStatus model.OfferStatus
		outcome   string
	)
	switch action {
	case model.OfferActionAccept:
		newStatus = model.OfferAccepted
		outcome = fmt.Sprintf("Offre à %s€ acceptée", model.FormatPrice(m.Offer.Price))
	case model.OfferActionDecline:
		newStatus = model.OfferDeclined
		outcome = fmt.Sprintf("Offre à %s€ refusée", model.FormatPrice(m.Offer.Price))
	case model.OfferActionCounter:
		if counterPrice == nil || *counterPrice <= 0 {
			return "", fmt.Errorf("%w: counter price must be positive", ErrInvalidArgument)
		}
		newStatus = model.OfferCountered
	default:
		return "", fmt.Errorf("%w: unknown action %q", ErrInvalidArgument, action)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE messages SET offer_status = ? WHERE id = ?`,
		newStatus, m.ID,
	)
	if err != nil {
		return "", fmt.Errorf("updating offer status: %w", err)
	}

	// Record the outcome as a new row back to the original offerer:
	// a text message for accept/decline, a fresh pending offer for a
	// counter. History is only ever extended, never rewritten.
	if newStatus == model.OfferCountered {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO messages (sender_id, receiver_id, content, item_id, offer_price, offer_status)
			 VALUES (?, ?, NULL, ?, ?, ?)`,
			responderID, m.SenderID, m.ItemID, *counterPrice, model.OfferPending,
		)
	} else {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO messages (sender_id, receiver_id, content, item_id, offer_price, offer_status)
			 VALUES (?, ?, ?, ?, NULL, NULL)`,
			responderID, m.SenderID, outcome, m.ItemID,
		)
	}
	if err != nil {
		return "", fmt.Errorf("recording offer outcome: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing offer response: %w", err)
	}

	return newStatus, nil
}

// scanner covers *sql.Row for single-row message scans.
type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(row scanner) (*model.Message, error) {
	var (
		m               model.Message
		content, status sql.NullString
		itemID          sql.NullInt64
		price           sql.NullFloat64
	)
	err := row.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &content, &itemID, &price, &status, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.Content = content.String
	if itemID.Valid {
		v := itemID.Int64
		m.ItemID = &v
	}
	if price.Valid {
		m.Offer = &model.Offer{Price: price.Float64, Status: model.OfferStatus(status.String)}
	}
	return &m, nil
}
