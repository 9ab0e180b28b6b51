package chat

import (
	"testing"
	"time"

	"brocante/internal/model"
)

func ptr(v int64) *int64 { return &v }

func msg(id, sender, receiver int64, content string, itemID *int64, at time.Time) model.Message {
	m := model.Message{
		ID:         id,
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
		ItemID:     itemID,
		CreatedAt:  at,
	}
	switch sender {
	case 1:
		m.SenderUsername = "alice"
	case 2:
		m.SenderUsername = "bob"
	case 3:
		m.SenderUsername = "carol"
	}
	switch receiver {
	case 1:
		m.ReceiverUsername = "alice"
	case 2:
		m.ReceiverUsername = "bob"
	case 3:
		m.ReceiverUsername = "carol"
	}
	return m
}

func TestBuildEmptyLog(t *testing.T) {
	convs := Build(1, nil)
	if len(convs) != 0 {
		t.Fatalf("expected empty conversation list, got %d", len(convs))
	}
}

func TestBuildPartitioning(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	log := []model.Message{
		msg(1, 1, 2, "about item 7", ptr(7), base),
		msg(2, 2, 1, "re: item 7", ptr(7), base.Add(time.Minute)),
		msg(3, 1, 2, "no item", nil, base.Add(2*time.Minute)),
		msg(4, 3, 1, "from carol", ptr(7), base.Add(3*time.Minute)),
	}

	convs := Build(1, log)
	if len(convs) != 3 {
		t.Fatalf("expected 3 conversations, got %d", len(convs))
	}

	// Same counterparty + same item groups together; item vs no-item
	// splits; a different counterparty on the same item splits too.
	byID := make(map[string]Conversation)
	for _, c := range convs {
		byID[c.ID] = c
	}
	if got := len(byID["2-7"].Messages); got != 2 {
		t.Errorf("expected 2 messages in bob/item-7 thread, got %d", got)
	}
	if got := len(byID["2-general"].Messages); got != 1 {
		t.Errorf("expected 1 message in bob/general thread, got %d", got)
	}
	if got := len(byID["3-7"].Messages); got != 1 {
		t.Errorf("expected 1 message in carol/item-7 thread, got %d", got)
	}
}

func TestBuildIdempotent(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	log := []model.Message{
		msg(1, 1, 2, "hello", ptr(7), base),
		msg(2, 2, 1, "hi", ptr(7), base.Add(time.Minute)),
		msg(3, 3, 1, "yo", nil, base.Add(2*time.Minute)),
	}

	a := Build(1, log)
	b := Build(1, log)

	if len(a) != len(b) {
		t.Fatalf("expected identical partitioning, got %d vs %d threads", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || len(a[i].Messages) != len(b[i].Messages) {
			t.Errorf("thread %d differs between runs: %v vs %v", i, a[i].ID, b[i].ID)
		}
	}
}

func TestBuildSenderNormalizedPerViewer(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	log := []model.Message{
		msg(1, 1, 2, "from alice", nil, base),
		msg(2, 2, 1, "from bob", nil, base.Add(time.Minute)),
	}

	asAlice := Build(1, log)
	if asAlice[0].Messages[0].Sender != SelfSender {
		t.Errorf("viewer's own message should be tagged %q, got %q", SelfSender, asAlice[0].Messages[0].Sender)
	}
	if asAlice[0].Messages[1].Sender != "bob" {
		t.Errorf("counterparty message should carry their name, got %q", asAlice[0].Messages[1].Sender)
	}

	// Same rows, other viewer: tags flip.
	asBob := Build(2, log)
	if asBob[0].Messages[0].Sender != "alice" {
		t.Errorf("expected 'alice', got %q", asBob[0].Messages[0].Sender)
	}
	if asBob[0].Messages[1].Sender != SelfSender {
		t.Errorf("expected %q, got %q", SelfSender, asBob[0].Messages[1].Sender)
	}
}

func TestBuildOfferPlaceholderAndRecency(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	offerMsg := msg(3, 2, 1, "", ptr(7), base.Add(2*time.Minute))
	offerMsg.Offer = &model.Offer{Price: 15.5, Status: model.OfferPending}

	log := []model.Message{
		msg(1, 1, 2, "old text", ptr(7), base),
		msg(2, 1, 3, "other thread", nil, base.Add(time.Minute)),
		offerMsg,
	}

	convs := Build(1, log)

	// The thread with the chronologically last row sorts first and shows
	// the synthesized offer placeholder.
	if convs[0].ID != "2-7" {
		t.Fatalf("expected most recent thread first, got %s", convs[0].ID)
	}
	if convs[0].LastMessage != "Offre 15.5€" {
		t.Errorf("expected offer placeholder, got %q", convs[0].LastMessage)
	}
	if !convs[0].Timestamp.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("expected timestamp of last row, got %v", convs[0].Timestamp)
	}
	if convs[0].Messages[1].Offer == nil || convs[0].Messages[1].Offer.Status != model.OfferPending {
		t.Error("expected offer annotation on the normalized message")
	}
}

func TestBuildItemContext(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	m := msg(1, 2, 1, "interested?", ptr(7), base)
	m.ItemTitle = "Robe Rouge"
	m.ItemImageURL = "http://img/7.jpg"
	m.ItemPrice = 25

	convs := Build(1, []model.Message{m})
	if convs[0].Item == nil {
		t.Fatal("expected item context on item-scoped thread")
	}
	if convs[0].Item.Title != "Robe Rouge" || convs[0].Item.Price != 25 {
		t.Errorf("unexpected item context: %+v", convs[0].Item)
	}

	general := Build(1, []model.Message{msg(2, 2, 1, "hi", nil, base)})
	if general[0].Item != nil {
		t.Error("expected nil item on general thread")
	}
}
