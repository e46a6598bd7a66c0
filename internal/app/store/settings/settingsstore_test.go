package settingsstore_test

import (
	"testing"

	settingsstore "github.com/orma-ai/ormasite/internal/app/store/settings"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"github.com/orma-ai/ormasite/internal/testutil"
)

func TestStore_Get_NoSettings(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := settingsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	settings, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	// Zero value, not an error
	if settings.IsConfigured() {
		t.Errorf("expected unconfigured settings, got %+v", settings)
	}
	if settings.CompanyEmail != "" {
		t.Errorf("CompanyEmail: got %q, want empty", settings.CompanyEmail)
	}
	if settings.StatsHoursSaved != nil {
		t.Errorf("StatsHoursSaved: got %v, want nil", *settings.StatsHoursSaved)
	}
}

func TestStore_Save_NewSettings(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := settingsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	hours := 1200
	settings := models.SiteSettings{
		CompanyPhone:    "03-1234567",
		CompanyEmail:    "hello@orma.ai",
		LinkedInURL:     "https://linkedin.com/company/orma-ai",
		WhatsAppNumber:  "972501234567",
		StatsHoursSaved: &hours,
	}

	if err := store.Save(ctx, settings); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	saved, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if !saved.IsConfigured() {
		t.Fatal("expected configured settings after save")
	}
	if saved.CompanyPhone != "03-1234567" {
		t.Errorf("CompanyPhone: got %q, want %q", saved.CompanyPhone, "03-1234567")
	}
	if saved.CompanyEmail != "hello@orma.ai" {
		t.Errorf("CompanyEmail: got %q, want %q", saved.CompanyEmail, "hello@orma.ai")
	}
	if saved.StatsHoursSaved == nil || *saved.StatsHoursSaved != 1200 {
		t.Errorf("StatsHoursSaved: got %v, want 1200", saved.StatsHoursSaved)
	}
	if saved.StatsProcesses != nil {
		t.Errorf("StatsProcesses: got %v, want nil", *saved.StatsProcesses)
	}
	if saved.UpdatedAt == nil {
		t.Error("UpdatedAt not set by Save")
	}
}

func TestStore_Save_IsSingleton(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := settingsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Save(ctx, models.SiteSettings{CompanyEmail: "first@orma.ai"}); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := store.Save(ctx, models.SiteSettings{CompanyEmail: "second@orma.ai"}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	count, err := db.Collection("site_settings").CountDocuments(ctx, map[string]any{})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if count != 1 {
		t.Errorf("document count: got %d, want 1", count)
	}

	saved, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if saved.CompanyEmail != "second@orma.ai" {
		t.Errorf("CompanyEmail: got %q, want %q", saved.CompanyEmail, "second@orma.ai")
	}
}

func TestStore_Save_ClearsStats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := settingsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	hours := 500
	if err := store.Save(ctx, models.SiteSettings{StatsHoursSaved: &hours}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Saving with a nil stat clears the previously stored value.
	if err := store.Save(ctx, models.SiteSettings{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	saved, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if saved.StatsHoursSaved != nil {
		t.Errorf("StatsHoursSaved: got %v, want nil after clearing save", *saved.StatsHoursSaved)
	}
}

func TestStore_Exists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := settingsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	exists, err := store.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("Exists: got true before any save")
	}

	if err := store.Save(ctx, models.SiteSettings{CompanyEmail: "hello@orma.ai"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	exists, err = store.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("Exists: got false after save")
	}
}
