package bootstrap

import (
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"github.com/orma-ai/ormasite/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestSeedAdminUser_CreatesNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{OrmaMongoDatabase: db}
	cfg := AppConfig{
		AdminEmail:    "admin@orma.ai",
		AdminPassword: "correct-horse-battery",
		AdminName:     "מנהל מערכת",
	}

	if err := seedAdminUser(ctx, cfg, deps, testLogger()); err != nil {
		t.Fatalf("seedAdminUser failed: %v", err)
	}

	var user models.User
	err := db.Collection("users").FindOne(ctx, bson.M{"email": "admin@orma.ai"}).Decode(&user)
	if err != nil {
		t.Fatalf("failed to find seeded user: %v", err)
	}

	if user.Role != models.RoleAdmin {
		t.Errorf("expected role %q, got %q", models.RoleAdmin, user.Role)
	}
	if user.Status != models.UserStatusActive {
		t.Errorf("expected status %q, got %q", models.UserStatusActive, user.Status)
	}
	if user.AuthMethod != models.AuthMethodPassword {
		t.Errorf("expected auth method %q, got %q", models.AuthMethodPassword, user.AuthMethod)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct-horse-battery")); err != nil {
		t.Error("seeded password hash does not match configured password")
	}
}

func TestSeedAdminUser_SkipsWhenUsersExist(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	existing := models.User{
		ID:         primitive.NewObjectID(),
		FullName:   "Existing Admin",
		FullNameCI: text.Fold("Existing Admin"),
		Email:      "existing@orma.ai",
		EmailCI:    text.Fold("existing@orma.ai"),
		Role:       models.RoleAdmin,
		AuthMethod: models.AuthMethodPassword,
		Status:     models.UserStatusActive,
		CreatedAt:  now,
	}
	if _, err := db.Collection("users").InsertOne(ctx, existing); err != nil {
		t.Fatalf("failed to create existing user: %v", err)
	}

	deps := DBDeps{OrmaMongoDatabase: db}
	cfg := AppConfig{
		AdminEmail:    "admin@orma.ai",
		AdminPassword: "irrelevant",
	}

	if err := seedAdminUser(ctx, cfg, deps, testLogger()); err != nil {
		t.Fatalf("seedAdminUser failed: %v", err)
	}

	n, err := db.Collection("users").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 user after seeding skip, got %d", n)
	}
}

func TestSeedAdminUser_SkipsWhenUnconfigured(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{OrmaMongoDatabase: db}

	if err := seedAdminUser(ctx, AppConfig{}, deps, testLogger()); err != nil {
		t.Fatalf("seedAdminUser failed: %v", err)
	}

	n, err := db.Collection("users").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no users without admin credentials, got %d", n)
	}
}
