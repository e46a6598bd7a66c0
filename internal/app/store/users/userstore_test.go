package userstore_test

import (
	"errors"
	"testing"

	userstore "github.com/orma-ai/ormasite/internal/app/store/users"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"github.com/orma-ai/ormasite/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create_NormalizesFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		FullName:   "  Site Admin  ",
		Email:      "Admin@ORMA.ai",
		AuthMethod: "Password",
		Role:       models.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Email != "admin@orma.ai" {
		t.Errorf("Email: got %q, want lowercased", created.Email)
	}
	if created.FullName != "Site Admin" {
		t.Errorf("FullName: got %q, want trimmed", created.FullName)
	}
	if created.AuthMethod != models.AuthMethodPassword {
		t.Errorf("AuthMethod: got %q, want %q", created.AuthMethod, models.AuthMethodPassword)
	}
	if created.Status != models.UserStatusActive {
		t.Errorf("Status: got %q, want active default", created.Status)
	}
}

func TestStore_Create_RejectsNonAdminRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.User{
		FullName:   "Visitor",
		Email:      "v@test.com",
		AuthMethod: models.AuthMethodPassword,
		Role:       "editor",
	})
	if err == nil {
		t.Fatal("expected error for non-admin role")
	}
}

func TestStore_GetByEmail_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.User{
		FullName:   "Site Admin",
		Email:      "admin@orma.ai",
		AuthMethod: models.AuthMethodPassword,
		Role:       models.RoleAdmin,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.GetByEmail(ctx, "ADMIN@Orma.AI")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if got.Email != "admin@orma.ai" {
		t.Errorf("Email: got %q", got.Email)
	}

	_, err = store.GetByEmail(ctx, "missing@orma.ai")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("missing user: got %v, want ErrNoDocuments", err)
	}
}

func TestStore_UpdateLastLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		FullName:   "Site Admin",
		Email:      "admin@orma.ai",
		AuthMethod: models.AuthMethodPassword,
		Role:       models.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.LastLogin != nil {
		t.Fatal("LastLogin set before any login")
	}

	if err := store.UpdateLastLogin(ctx, created.ID); err != nil {
		t.Fatalf("UpdateLastLogin failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.LastLogin == nil {
		t.Error("LastLogin not recorded")
	}
}

func TestStore_Count(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Count on empty collection: got %d, want 0", n)
	}

	fx.CreateUser(ctx, "Site Admin", "admin@orma.ai", "hash")

	n, err = store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Count: got %d, want 1", n)
	}
}
