package ratelimit

import (
	"testing"
	"time"

	"github.com/optimalsolutions/siteapi/internal/testutil"
)

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db, "api", 100, 15*time.Minute)
	if store == nil {
		t.Fatal("New() returned nil")
	}
}

func TestEnsureIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := EnsureIndexes(ctx, db); err != nil {
		t.Fatalf("EnsureIndexes() error = %v", err)
	}

	// Should be idempotent
	if err := EnsureIndexes(ctx, db); err != nil {
		t.Fatalf("EnsureIndexes() second call error = %v", err)
	}
}

func TestStore_Check_AllowsWithinBudget(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db, "api", 3, time.Minute)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 1; i <= 3; i++ {
		res, err := store.Check(ctx, "203.0.113.1")
		if err != nil {
			t.Fatalf("Check() #%d error = %v", i, err)
		}
		if !res.Allowed {
			t.Fatalf("Check() #%d allowed = false, want true", i)
		}
		if want := 3 - i; res.Remaining != want {
			t.Errorf("Check() #%d remaining = %d, want %d", i, res.Remaining, want)
		}
	}
}

func TestStore_Check_DeniesOverBudget(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db, "api", 2, time.Minute)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 2; i++ {
		if _, err := store.Check(ctx, "203.0.113.1"); err != nil {
			t.Fatalf("Check() error = %v", err)
		}
	}

	res, err := store.Check(ctx, "203.0.113.1")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if res.Allowed {
		t.Error("Check() over budget allowed = true, want false")
	}
	if res.Remaining != 0 {
		t.Errorf("Check() over budget remaining = %d, want 0", res.Remaining)
	}
	if res.RetryAfter <= 0 {
		t.Errorf("Check() over budget RetryAfter = %v, want > 0", res.RetryAfter)
	}
	if res.RetryAfter > time.Minute {
		t.Errorf("Check() RetryAfter = %v, should not exceed the window", res.RetryAfter)
	}
}

func TestStore_Check_ClientsCountedSeparately(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db, "api", 1, time.Minute)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Check(ctx, "203.0.113.1"); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	res, err := store.Check(ctx, "203.0.113.2")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !res.Allowed {
		t.Error("Check() for a different client should be allowed")
	}
}

func TestStore_Check_ScopesCountedSeparately(t *testing.T) {
	db := testutil.SetupTestDB(t)
	api := New(db, "api", 1, time.Minute)
	contact := New(db, "contact", 1, time.Minute)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := api.Check(ctx, "203.0.113.1"); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	res, err := contact.Check(ctx, "203.0.113.1")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !res.Allowed {
		t.Error("Check() in a different scope should be allowed")
	}
}

func TestStore_Check_WindowResets(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db, "api", 1, 50*time.Millisecond)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Check(ctx, "203.0.113.1"); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	res, err := store.Check(ctx, "203.0.113.1")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if res.Allowed {
		t.Fatal("second Check() in window should be denied")
	}

	time.Sleep(60 * time.Millisecond)

	res, err = store.Check(ctx, "203.0.113.1")
	if err != nil {
		t.Fatalf("Check() after window error = %v", err)
	}
	if !res.Allowed {
		t.Error("Check() after the window expired should be allowed")
	}
}

func TestStore_Reset(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db, "api", 1, time.Minute)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Check(ctx, "203.0.113.1"); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if err := store.Reset(ctx, "203.0.113.1"); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	res, err := store.Check(ctx, "203.0.113.1")
	if err != nil {
		t.Fatalf("Check() after Reset error = %v", err)
	}
	if !res.Allowed {
		t.Error("Check() after Reset should be allowed")
	}
}
