package contact_test

import (
	"testing"

	"github.com/orma-ai/ormasite/internal/app/features/contact"
	uierrors "github.com/orma-ai/ormasite/internal/app/features/errors"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"github.com/orma-ai/ormasite/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*contact.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return contact.NewHandler(db, uierrors.NewErrorLogger(logger), logger), testutil.NewFixtures(t, db)
}

func TestSubmit_CreatesLeadAndRedirects(t *testing.T) {
	handler, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewFormRequest("/contact", map[string]string{
		"full_name":      "דנה לוי",
		"email":          "Dana@Example.com",
		"phone":          "050-1234567",
		"company":        "חברת לוגיסטיקה",
		"role":           `סמנכ"לית תפעול`,
		"company_size":   "200+",
		"challenge_area": "אוטומציה",
		"message":        "רוצים לחסוך זמן",
		"utm_source":     "linkedin",
		"utm_medium":     "cpc",
		"utm_campaign":   "q3",
	})
	rec := testutil.NewRecorder()

	handler.Submit(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/contact/thanks")

	var lead models.Lead
	err := fx.DB().Collection("leads").FindOne(ctx, bson.M{"email": "dana@example.com"}).Decode(&lead)
	if err != nil {
		t.Fatalf("failed to find created lead: %v", err)
	}
	if lead.Status != models.LeadStatusNew {
		t.Errorf("expected status %q, got %q", models.LeadStatusNew, lead.Status)
	}
	if !lead.IsEnterprise {
		t.Error("expected 200+ lead to be flagged enterprise")
	}
	if lead.UTMSource != "linkedin" || lead.UTMMedium != "cpc" || lead.UTMCampaign != "q3" {
		t.Errorf("UTM fields not persisted: %q %q %q", lead.UTMSource, lead.UTMMedium, lead.UTMCampaign)
	}
}

func TestSubmit_SmallCompanyNotEnterprise(t *testing.T) {
	handler, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewFormRequest("/contact", map[string]string{
		"full_name":    "יואב כהן",
		"email":        "yoav@example.com",
		"company_size": "11-50",
	})
	rec := testutil.NewRecorder()

	handler.Submit(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/contact/thanks")

	var lead models.Lead
	if err := fx.DB().Collection("leads").FindOne(ctx, bson.M{"email": "yoav@example.com"}).Decode(&lead); err != nil {
		t.Fatalf("failed to find created lead: %v", err)
	}
	if lead.IsEnterprise {
		t.Error("11-50 lead must not be flagged enterprise")
	}
}

func TestSubmit_MissingNameRerendersForm(t *testing.T) {
	handler, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.NewFormRequest("/contact", map[string]string{
		"email": "no-name@example.com",
	})
	rec := testutil.NewRecorder()

	// The validation path re-renders the form, which may panic in tests
	// without a booted template engine.
	func() {
		defer func() { _ = recover() }()
		handler.Submit(rec.ResponseRecorder, req)
	}()

	if loc := rec.Header().Get("Location"); loc != "" {
		t.Errorf("expected no redirect on validation failure, got %q", loc)
	}
	n, err := fx.DB().Collection("leads").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no lead stored, got %d", n)
	}
}
