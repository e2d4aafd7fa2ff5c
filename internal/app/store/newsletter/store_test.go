package newsletter

import (
	"testing"

	"github.com/optimalsolutions/siteapi/internal/domain/models"
	"github.com/optimalsolutions/siteapi/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	if store == nil {
		t.Fatal("New() returned nil")
	}
}

func TestStore_Subscribe_NewEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sub, outcome, err := store.Subscribe(ctx, "reader@example.com", "", "203.0.113.5")
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if outcome != OutcomeCreated {
		t.Errorf("Subscribe() outcome = %v, want OutcomeCreated", outcome)
	}
	if sub.Status != models.SubscriberStatusActive {
		t.Errorf("Subscribe() status = %q, want %q", sub.Status, models.SubscriberStatusActive)
	}
	if sub.Source != DefaultSource {
		t.Errorf("Subscribe() source = %q, want %q", sub.Source, DefaultSource)
	}
	if sub.UnsubscribeToken == "" {
		t.Error("Subscribe() should assign an unsubscribe token")
	}
}

func TestStore_Subscribe_NormalizesEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sub, _, err := store.Subscribe(ctx, "  Reader@Example.COM ", "", "")
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if sub.Email != "reader@example.com" {
		t.Errorf("Subscribe() email = %q, want lowercased trimmed form", sub.Email)
	}
}

func TestStore_Subscribe_ActiveConflict(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, _, err := store.Subscribe(ctx, "reader@example.com", "", ""); err != nil {
		t.Fatalf("first Subscribe() error = %v", err)
	}

	_, outcome, err := store.Subscribe(ctx, "reader@example.com", "", "")
	if err != nil {
		t.Fatalf("second Subscribe() error = %v", err)
	}
	if outcome != OutcomeConflict {
		t.Errorf("second Subscribe() outcome = %v, want OutcomeConflict", outcome)
	}
}

func TestStore_Subscribe_ConflictIgnoresCase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, _, err := store.Subscribe(ctx, "reader@example.com", "", ""); err != nil {
		t.Fatalf("first Subscribe() error = %v", err)
	}

	_, outcome, err := store.Subscribe(ctx, "READER@example.com", "", "")
	if err != nil {
		t.Fatalf("second Subscribe() error = %v", err)
	}
	if outcome != OutcomeConflict {
		t.Errorf("Subscribe() with different casing outcome = %v, want OutcomeConflict", outcome)
	}
}

func TestStore_Subscribe_ReactivatesUnsubscribed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, _, err := store.Subscribe(ctx, "reader@example.com", "", "")
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if _, err := store.UnsubscribeByToken(ctx, first.UnsubscribeToken); err != nil {
		t.Fatalf("UnsubscribeByToken() error = %v", err)
	}

	again, outcome, err := store.Subscribe(ctx, "reader@example.com", "", "")
	if err != nil {
		t.Fatalf("resubscribe error = %v", err)
	}
	if outcome != OutcomeReactivated {
		t.Errorf("resubscribe outcome = %v, want OutcomeReactivated", outcome)
	}
	if again.ID != first.ID {
		t.Error("reactivation should reuse the existing record, not create a new one")
	}
	if again.Status != models.SubscriberStatusActive {
		t.Errorf("reactivated status = %q, want %q", again.Status, models.SubscriberStatusActive)
	}
	if again.UnsubscribedAt != nil {
		t.Error("reactivation should clear UnsubscribedAt")
	}
	if again.SubscribedAt.Before(first.SubscribedAt) {
		t.Error("reactivation should refresh SubscribedAt")
	}
}

func TestStore_UnsubscribeByToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sub, _, err := store.Subscribe(ctx, "reader@example.com", "", "")
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	got, err := store.UnsubscribeByToken(ctx, sub.UnsubscribeToken)
	if err != nil {
		t.Fatalf("UnsubscribeByToken() error = %v", err)
	}
	if got.Status != models.SubscriberStatusUnsubscribed {
		t.Errorf("status = %q, want %q", got.Status, models.SubscriberStatusUnsubscribed)
	}
	if got.UnsubscribedAt == nil {
		t.Error("UnsubscribeByToken() should set UnsubscribedAt")
	}
}

func TestStore_UnsubscribeByToken_UnknownToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.UnsubscribeByToken(ctx, "no-such-token")
	if err != mongo.ErrNoDocuments {
		t.Errorf("UnsubscribeByToken() error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_UnsubscribeByToken_AlreadyUnsubscribed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sub, _, err := store.Subscribe(ctx, "reader@example.com", "", "")
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if _, err := store.UnsubscribeByToken(ctx, sub.UnsubscribeToken); err != nil {
		t.Fatalf("first UnsubscribeByToken() error = %v", err)
	}

	// Second call is a no-op success
	got, err := store.UnsubscribeByToken(ctx, sub.UnsubscribeToken)
	if err != nil {
		t.Fatalf("second UnsubscribeByToken() error = %v", err)
	}
	if got.Status != models.SubscriberStatusUnsubscribed {
		t.Errorf("status = %q, want %q", got.Status, models.SubscriberStatusUnsubscribed)
	}
}

func TestStore_GetByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, _, err := store.Subscribe(ctx, "reader@example.com", "footer-form", ""); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	got, err := store.GetByEmail(ctx, "Reader@Example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if got.Source != "footer-form" {
		t.Errorf("GetByEmail() source = %q, want %q", got.Source, "footer-form")
	}
}

func TestStore_List_FilterByStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a, _, err := store.Subscribe(ctx, "a@example.com", "", "")
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if _, _, err := store.Subscribe(ctx, "b@example.com", "", ""); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if _, err := store.UnsubscribeByToken(ctx, a.UnsubscribeToken); err != nil {
		t.Fatalf("UnsubscribeByToken() error = %v", err)
	}

	active, err := store.List(ctx, models.SubscriberStatusActive)
	if err != nil {
		t.Fatalf("List(active) error = %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("List(active) returned %d subscribers, want 1", len(active))
	}
	if active[0].Email != "b@example.com" {
		t.Errorf("List(active) returned wrong subscriber %q", active[0].Email)
	}

	all, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List() returned %d subscribers, want 2", len(all))
	}
}
