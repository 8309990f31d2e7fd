package userstore_test

import (
	"testing"

	userstore "github.com/gatherpoint/gatherpoint/internal/app/store/users"
	"github.com/gatherpoint/gatherpoint/internal/domain/faults"
	"github.com/gatherpoint/gatherpoint/internal/testutil"
)

func TestStore_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, "acct1", "  Sarah ", "Johnson", "United States", "1990-04-02", "Sarah@Example.COM")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID != "acct1" {
		t.Errorf("id: got %q, want the account id", created.ID)
	}
	if created.FirstName != "Sarah" {
		t.Errorf("firstName: got %q, want trimmed %q", created.FirstName, "Sarah")
	}
	if created.Email != "sarah@example.com" {
		t.Errorf("email: got %q, want lowercased", created.Email)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	got, err := store.GetByID(ctx, "acct1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Email != created.Email {
		t.Errorf("round trip email: got %q, want %q", got.Email, created.Email)
	}
}

func TestStore_Create_Duplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, "acct1", "Sarah", "Johnson", "", "", "sarah@example.com"); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := store.Create(ctx, "acct1", "Someone", "Else", "", "", "other@example.com")
	if faults.KindOf(err) != faults.KindConflict {
		t.Errorf("duplicate Create: got %v, want a conflict fault", err)
	}
}

func TestStore_ProfileByID_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	profile, err := store.ProfileByID(ctx, "no-such-account")
	if err != nil {
		t.Fatalf("ProfileByID failed: %v", err)
	}
	if profile != nil {
		t.Errorf("missing profile must be nil, got %+v", profile)
	}

	_, err = store.GetByID(ctx, "no-such-account")
	if !faults.IsNotFound(err) {
		t.Errorf("GetByID for missing profile: got %v, want a not-found fault", err)
	}
}
