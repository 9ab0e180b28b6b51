// Package chat derives conversation threads and offer annotations from
// the flat message log. It is a pure read-side projection: nothing here
// touches the database.
package chat

import (
	"sort"
	"strconv"
	"time"

	"brocante/internal/model"
)

// SelfSender is the sender tag used for messages authored by the viewer.
const SelfSender = "me"

// Item is the catalog context of an item-scoped conversation.
type Item struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
}

// Message is one log row normalized for a specific viewer.
type Message struct {
	ID     int64        `json:"id"`
	Sender string       `json:"sender"`
	Text   string       `json:"text,omitempty"`
	Time   time.Time    `json:"time"`
	Offer  *model.Offer `json:"offer,omitempty"`
}

// Conversation groups all messages between the viewer and one
// counterparty, optionally scoped to one item.
type Conversation struct {
	ID          string    `json:"id"`
	OtherUser   string    `json:"otherUser"`
	OtherUserID int64     `json:"otherUserId"`
	Item        *Item     `json:"item"`
	LastMessage string    `json:"lastMessage"`
	Timestamp   time.Time `json:"timestamp"`
	Messages    []Message `json:"messages"`
}

// Build partitions the viewer's complete bidirectional message log into
// conversation threads. Two rows share a thread iff they have the same
// counterparty and either reference the same item or neither references
// any item. Rows must be supplied in chronological order (ties broken by
// insertion order); message order within a thread is preserved as given.
//
// Threads are returned most-recent-first by the timestamp of their last
// message. LastMessage holds the last row's text, or an "Offre {price}€"
// placeholder when that row is a pure offer.
func Build(viewerID int64, log []model.Message) []Conversation {
	byKey := make(map[string]*Conversation)
	var order []*Conversation

	for _, m := range log {
		otherID := m.SenderID
		otherName := m.SenderUsername
		if m.SenderID == viewerID {
			otherID = m.ReceiverID
			otherName = m.ReceiverUsername
		}

		key := conversationKey(otherID, m.ItemID)
		conv, ok := byKey[key]
		if !ok {
			conv = &Conversation{
				ID:          key,
				OtherUser:   otherName,
				OtherUserID: otherID,
			}
			if m.ItemID != nil {
				conv.Item = &Item{
					ID:    *m.ItemID,
					Title: m.ItemTitle,
					Image: m.ItemImageURL,
					Price: m.ItemPrice,
				}
			}
			byKey[key] = conv
			order = append(order, conv)
		}

		// The last scanned row always wins the display fields. A row
		// with neither text nor offer cannot exist, so one of the two
		// branches always applies.
		if m.Content != "" {
			conv.LastMessage = m.Content
		} else if m.Offer != nil {
			conv.LastMessage = "Offre " + model.FormatPrice(m.Offer.Price) + "€"
		}
		conv.Timestamp = m.CreatedAt

		sender := otherName
		if m.SenderID == viewerID {
			sender = SelfSender
		}
		conv.Messages = append(conv.Messages, Message{
			ID:     m.ID,
			Sender: sender,
			Text:   m.Content,
			Time:   m.CreatedAt,
			Offer:  m.Offer,
		})
	}

	// Most-recent-first, stable so threads updated in the same instant
	// keep their first-seen order.
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Timestamp.After(order[j].Timestamp)
	})

	out := make([]Conversation, len(order))
	for i, c := range order {
		out[i] = *c
	}
	return out
}

// conversationKey builds the partition key: counterparty plus item scope,
// with "general" standing in for item-less threads.
func conversationKey(otherID int64, itemID *int64) string {
	if itemID == nil {
		return strconv.FormatInt(otherID, 10) + "-general"
	}
	return strconv.FormatInt(otherID, 10) + "-" + strconv.FormatInt(*itemID, 10)
}
