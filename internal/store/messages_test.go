package store

import (
	"context"
	"errors"
	"testing"

	"brocante/internal/db"
	"brocante/internal/model"
)

func TestCreateMessageTextOnly(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")

	m, err := CreateMessage(ctx, database, alice.ID, bob.ID, "Salut !", nil, nil)
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	if m.Content != "Salut !" {
		t.Errorf("expected content 'Salut !', got %q", m.Content)
	}
	if m.Offer != nil {
		t.Error("expected no offer on a plain text message")
	}
}

func TestCreateMessageOfferStartsPending(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")
	item := createTestItem(t, database, bob.ID, "Veste en cuir", 40)

	m, err := CreateMessage(ctx, database, alice.ID, bob.ID, "", ptrInt64(item.ID), ptrFloat(20))
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	if m.Offer == nil {
		t.Fatal("expected an offer on the message")
	}
	if m.Offer.Status != model.OfferPending {
		t.Errorf("expected pending offer, got %q", m.Offer.Status)
	}
	if m.Offer.Price != 20 {
		t.Errorf("expected offer price 20, got %v", m.Offer.Price)
	}
}

func TestCreateMessageRejectsEmpty(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")

	_, err := CreateMessage(ctx, database, alice.ID, bob.ID, "", nil, nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for empty message, got %v", err)
	}

	_, err = CreateMessage(ctx, database, alice.ID, bob.ID, "", nil, ptrFloat(-5))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for negative offer, got %v", err)
	}
}

func TestCreateMessageUnknownItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")

	_, err := CreateMessage(ctx, database, alice.ID, bob.ID, "Dispo ?", ptrInt64(999), nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown item, got %v", err)
	}
}

func TestAcceptOffer(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")
	item := createTestItem(t, database, bob.ID, "Sac à main", 30)

	offer, _ := CreateMessage(ctx, database, alice.ID, bob.ID, "", ptrInt64(item.ID), ptrFloat(25))

	status, err := RespondToOffer(ctx, database, bob.ID, offer.ID, model.OfferActionAccept, nil)
	if err != nil {
		t.Fatalf("RespondToOffer: %v", err)
	}
	if status != model.OfferAccepted {
		t.Errorf("expected accepted, got %q", status)
	}

	updated, _ := GetMessage(ctx, database, offer.ID)
	if updated.Offer.Status != model.OfferAccepted {
		t.Errorf("expected stored offer accepted, got %q", updated.Offer.Status)
	}

	// The outcome lands as a new text message from bob back to alice.
	log, _ := ListMessagesForUser(ctx, database, alice.ID)
	if len(log) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(log))
	}
	outcome := log[1]
	if outcome.SenderID != bob.ID || outcome.ReceiverID != alice.ID {
		t.Errorf("expected outcome bob->alice, got %d->%d", outcome.SenderID, outcome.ReceiverID)
	}
	if outcome.Content != "Offre à 25€ acceptée" {
		t.Errorf("expected acceptance text, got %q", outcome.Content)
	}
	if outcome.Offer != nil {
		t.Error("expected outcome message to carry no offer")
	}
}

func TestDeclineOffer(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")
	item := createTestItem(t, database, bob.ID, "Jean slim", 18)

	offer, _ := CreateMessage(ctx, database, alice.ID, bob.ID, "", ptrInt64(item.ID), ptrFloat(10.5))

	status, err := RespondToOffer(ctx, database, bob.ID, offer.ID, model.OfferActionDecline, nil)
	if err != nil {
		t.Fatalf("RespondToOffer: %v", err)
	}
	if status != model.OfferDeclined {
		t.Errorf("expected declined, got %q", status)
	}

	log, _ := ListMessagesForUser(ctx, database, alice.ID)
	if log[len(log)-1].Content != "Offre à 10.5€ refusée" {
		t.Errorf("expected refusal text, got %q", log[len(log)-1].Content)
	}
}

func TestCounterOfferChain(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")
	item := createTestItem(t, database, bob.ID, "Baskets Nike", 35)

	// Alice offers 20, Bob counters at 28, Alice accepts the counter.
	first, _ := CreateMessage(ctx, database, alice.ID, bob.ID, "", ptrInt64(item.ID), ptrFloat(20))

	status, err := RespondToOffer(ctx, database, bob.ID, first.ID, model.OfferActionCounter, ptrFloat(28))
	if err != nil {
		t.Fatalf("counter: %v", err)
	}
	if status != model.OfferCountered {
		t.Errorf("expected countered, got %q", status)
	}

	log, _ := ListMessagesForUser(ctx, database, alice.ID)
	if len(log) != 2 {
		t.Fatalf("expected 2 messages after counter, got %d", len(log))
	}
	counter := log[1]
	if counter.Offer == nil || counter.Offer.Status != model.OfferPending {
		t.Fatalf("expected a fresh pending counter-offer, got %+v", counter.Offer)
	}
	if counter.Offer.Price != 28 {
		t.Errorf("expected counter price 28, got %v", counter.Offer.Price)
	}
	if counter.SenderID != bob.ID || counter.ReceiverID != alice.ID {
		t.Errorf("expected counter bob->alice, got %d->%d", counter.SenderID, counter.ReceiverID)
	}
	if counter.ItemID == nil || *counter.ItemID != item.ID {
		t.Error("expected counter to stay attached to the item")
	}

	// The original offer is closed, not rewritten.
	orig, _ := GetMessage(ctx, database, first.ID)
	if orig.Offer.Status != model.OfferCountered {
		t.Errorf("expected original offer countered, got %q", orig.Offer.Status)
	}

	if _, err := RespondToOffer(ctx, database, alice.ID, counter.ID, model.OfferActionAccept, nil); err != nil {
		t.Fatalf("accepting counter: %v", err)
	}
	log, _ = ListMessagesForUser(ctx, database, alice.ID)
	if log[len(log)-1].Content != "Offre à 28€ acceptée" {
		t.Errorf("expected acceptance of counter, got %q", log[len(log)-1].Content)
	}
}

func TestRespondToOwnOffer(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")
	item := createTestItem(t, database, bob.ID, "Montre", 50)

	offer, _ := CreateMessage(ctx, database, alice.ID, bob.ID, "", ptrInt64(item.ID), ptrFloat(40))

	_, err := RespondToOffer(ctx, database, alice.ID, offer.ID, model.OfferActionAccept, nil)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for own offer, got %v", err)
	}
}

func TestRespondToResolvedOffer(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")
	item := createTestItem(t, database, bob.ID, "Écharpe", 12)

	offer, _ := CreateMessage(ctx, database, alice.ID, bob.ID, "", ptrInt64(item.ID), ptrFloat(8))
	RespondToOffer(ctx, database, bob.ID, offer.ID, model.OfferActionDecline, nil)

	_, err := RespondToOffer(ctx, database, bob.ID, offer.ID, model.OfferActionAccept, nil)
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState for resolved offer, got %v", err)
	}
}

func TestCounterWithoutPrice(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")
	item := createTestItem(t, database, bob.ID, "Pull en laine", 22)

	offer, _ := CreateMessage(ctx, database, alice.ID, bob.ID, "", ptrInt64(item.ID), ptrFloat(15))

	_, err := RespondToOffer(ctx, database, bob.ID, offer.ID, model.OfferActionCounter, nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for missing counter price, got %v", err)
	}
	_, err = RespondToOffer(ctx, database, bob.ID, offer.ID, model.OfferActionCounter, ptrFloat(0))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for zero counter price, got %v", err)
	}

	// A failed counter must not resolve the offer or append rows.
	orig, _ := GetMessage(ctx, database, offer.ID)
	if orig.Offer.Status != model.OfferPending {
		t.Errorf("expected offer still pending, got %q", orig.Offer.Status)
	}
	log, _ := ListMessagesForUser(ctx, database, alice.ID)
	if len(log) != 1 {
		t.Errorf("expected 1 message, got %d", len(log))
	}
}

func TestRespondToMissingOffer(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	bob := createTestUser(t, database, "bob")

	_, err := RespondToOffer(ctx, database, bob.ID, 404, model.OfferActionAccept, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRespondToPlainMessage(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")

	m, _ := CreateMessage(ctx, database, alice.ID, bob.ID, "Bonjour", nil, nil)

	_, err := RespondToOffer(ctx, database, bob.ID, m.ID, model.OfferActionAccept, nil)
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState for offer-less message, got %v", err)
	}
}

func TestListMessagesJoinsItemContext(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")
	item := createTestItem(t, database, bob.ID, "Robe d'été", 24)

	CreateMessage(ctx, database, alice.ID, bob.ID, "Toujours dispo ?", ptrInt64(item.ID), nil)

	log, err := ListMessagesForUser(ctx, database, alice.ID)
	if err != nil {
		t.Fatalf("ListMessagesForUser: %v", err)
	}
	if len(log) != 1 {
		t.Fatalf("expected 1 message, got %d", len(log))
	}
	m := log[0]
	if m.SenderUsername != "alice" || m.ReceiverUsername != "bob" {
		t.Errorf("expected joined usernames, got %q/%q", m.SenderUsername, m.ReceiverUsername)
	}
	if m.ItemTitle != "Robe d'été" {
		t.Errorf("expected joined item title, got %q", m.ItemTitle)
	}
	if m.ItemPrice != 24 {
		t.Errorf("expected joined item price 24, got %v", m.ItemPrice)
	}
}

func TestListMessagesExcludesThirdParties(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")
	carol := createTestUser(t, database, "carol")

	CreateMessage(ctx, database, alice.ID, bob.ID, "Pour bob", nil, nil)
	CreateMessage(ctx, database, bob.ID, carol.ID, "Pour carol", nil, nil)

	log, _ := ListMessagesForUser(ctx, database, alice.ID)
	if len(log) != 1 {
		t.Fatalf("expected alice to see 1 message, got %d", len(log))
	}
	if log[0].Content != "Pour bob" {
		t.Errorf("unexpected message leaked: %q", log[0].Content)
	}
}
