package siteadmin_test

import (
	"testing"

	uierrors "github.com/orma-ai/ormasite/internal/app/features/errors"
	"github.com/orma-ai/ormasite/internal/app/features/siteadmin"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"github.com/orma-ai/ormasite/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*siteadmin.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return siteadmin.NewHandler(db, uierrors.NewErrorLogger(logger), logger), testutil.NewFixtures(t, db)
}

func TestHandleSave_PersistsAndRedirects(t *testing.T) {
	handler, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewFormRequest("/admin/settings", map[string]string{
		"company_phone":       "03-1234567",
		"company_email":       "hello@orma.ai",
		"linkedin_url":        "https://linkedin.com/company/orma-ai",
		"whatsapp_number":     "972501234567",
		"stats_hours_saved":   "6200",
		"stats_processes":     "150",
		"stats_organizations": "",
	})
	rec := testutil.NewRecorder()

	handler.HandleSave(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/admin/settings?saved=1")

	var settings models.SiteSettings
	if err := fx.DB().Collection("site_settings").FindOne(ctx, bson.M{"singleton": true}).Decode(&settings); err != nil {
		t.Fatalf("failed to find settings singleton: %v", err)
	}
	if settings.CompanyEmail != "hello@orma.ai" {
		t.Errorf("company email: got %q", settings.CompanyEmail)
	}
	if settings.StatsHoursSaved == nil || *settings.StatsHoursSaved != 6200 {
		t.Errorf("stats_hours_saved not persisted: %v", settings.StatsHoursSaved)
	}
	if settings.StatsProcesses == nil || *settings.StatsProcesses != 150 {
		t.Errorf("stats_processes not persisted: %v", settings.StatsProcesses)
	}
	if settings.StatsOrganizations != nil {
		t.Errorf("empty stat input must store nil, got %d", *settings.StatsOrganizations)
	}
	if settings.UpdatedAt == nil {
		t.Error("expected updated_at to be set")
	}
}

func TestHandleSave_SecondSaveKeepsSingleDocument(t *testing.T) {
	handler, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, phone := range []string{"03-1111111", "03-2222222"} {
		req := testutil.NewFormRequest("/admin/settings", map[string]string{
			"company_phone": phone,
		})
		rec := testutil.NewRecorder()
		handler.HandleSave(rec.ResponseRecorder, req)
		rec.AssertRedirect(t, "/admin/settings?saved=1")
	}

	n, err := fx.DB().Collection("site_settings").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected a single settings document, got %d", n)
	}

	var settings models.SiteSettings
	if err := fx.DB().Collection("site_settings").FindOne(ctx, bson.M{"singleton": true}).Decode(&settings); err != nil {
		t.Fatalf("failed to find settings: %v", err)
	}
	if settings.CompanyPhone != "03-2222222" {
		t.Errorf("expected last save to win, got %q", settings.CompanyPhone)
	}
}

func TestHandleSave_RejectsNonNumericStats(t *testing.T) {
	handler, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewFormRequest("/admin/settings", map[string]string{
		"stats_hours_saved": "הרבה",
	})
	rec := testutil.NewRecorder()

	// The error path re-renders the form, which may panic in tests
	// without a booted template engine.
	func() {
		defer func() { _ = recover() }()
		handler.HandleSave(rec.ResponseRecorder, req)
	}()

	if loc := rec.Header().Get("Location"); loc != "" {
		t.Errorf("expected no redirect on bad input, got %q", loc)
	}
	n, err := fx.DB().Collection("site_settings").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("bad input must not be saved, found %d documents", n)
	}
}
