package contacts

import (
	"testing"

	"github.com/optimalsolutions/siteapi/internal/domain/models"
	"github.com/optimalsolutions/siteapi/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	if store == nil {
		t.Fatal("New() returned nil")
	}
}

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	contact, err := store.Create(ctx, CreateInput{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Company:         "Acme Corp",
		ServiceInterest: "web-development",
		Message:         "We need a new marketing site.",
		IPAddress:       "203.0.113.10",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if contact.ID.IsZero() {
		t.Error("Create() should assign an ID")
	}
	if contact.Status != models.ContactStatusNew {
		t.Errorf("Create() status = %q, want %q", contact.Status, models.ContactStatusNew)
	}
	if contact.CreatedAt.IsZero() {
		t.Error("Create() should set CreatedAt")
	}
}

func TestStore_GetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, CreateInput{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hello",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Email != "jane@example.com" {
		t.Errorf("GetByID() email = %q, want %q", got.Email, "jane@example.com")
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if err != mongo.ErrNoDocuments {
		t.Errorf("GetByID() error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, CreateInput{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hello",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.UpdateStatus(ctx, created.ID, models.ContactStatusRead); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Status != models.ContactStatusRead {
		t.Errorf("status = %q, want %q", got.Status, models.ContactStatusRead)
	}
	if got.UpdatedAt.Before(got.CreatedAt) {
		t.Error("UpdateStatus() should advance UpdatedAt")
	}
}

func TestStore_UpdateStatus_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.UpdateStatus(ctx, primitive.NewObjectID(), models.ContactStatusArchived)
	if err != mongo.ErrNoDocuments {
		t.Errorf("UpdateStatus() error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if _, err := store.Create(ctx, CreateInput{Name: "Someone", Email: email, Message: "Hi"}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	all, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List() returned %d contacts, want 3", len(all))
	}

	// Newest first
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.After(all[i-1].CreatedAt) {
			t.Error("List() should return newest first")
		}
	}
}

func TestStore_List_FilterByStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, CreateInput{Name: "A", Email: "a@example.com", Message: "Hi"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := store.Create(ctx, CreateInput{Name: "B", Email: "b@example.com", Message: "Hi"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := store.UpdateStatus(ctx, created.ID, models.ContactStatusReplied); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	replied, err := store.List(ctx, models.ContactStatusReplied)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(replied) != 1 {
		t.Fatalf("List(replied) returned %d contacts, want 1", len(replied))
	}
	if replied[0].ID != created.ID {
		t.Errorf("List(replied) returned wrong contact")
	}
}

func TestStore_List_EmptyReturnsSlice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	all, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if all == nil {
		t.Error("List() should return an empty slice, not nil")
	}
}
