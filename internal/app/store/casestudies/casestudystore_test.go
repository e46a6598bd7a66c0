package casestudystore_test

import (
	"errors"
	"testing"

	casestudystore "github.com/orma-ai/ormasite/internal/app/store/casestudies"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"github.com/orma-ai/ormasite/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestDeriveSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Alpha Beta", "alpha-beta"},
		{"Alpha   Beta", "alpha-beta"},
		{"  Alpha Beta  ", "alpha-beta"},
		{"ALPHA", "alpha"},
		{"אוטומציה בלוגיסטיקה", "אוטומציה-בלוגיסטיקה"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := casestudystore.DeriveSlug(tt.title); got != tt.want {
			t.Errorf("DeriveSlug(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestStore_Create_DerivesSlugWhenBlank(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := casestudystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.CaseStudy{Title: "Alpha Beta"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Slug != "alpha-beta" {
		t.Errorf("Slug: got %q, want %q", created.Slug, "alpha-beta")
	}

	// Caller-supplied slug is stored as given.
	created, err = store.Create(ctx, models.CaseStudy{Title: "Gamma", Slug: "custom-slug"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Slug != "custom-slug" {
		t.Errorf("Slug: got %q, want %q", created.Slug, "custom-slug")
	}
}

func TestStore_Create_RequiresTitle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := casestudystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.CaseStudy{Title: "   "})
	if !errors.Is(err, casestudystore.ErrMissingTitle) {
		t.Errorf("blank title: got %v, want ErrMissingTitle", err)
	}
}

func TestStore_Update_LeavesFlagsAlone(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := casestudystore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cs := fx.CreateCaseStudy(ctx, "Old Title", "old-title", true, true)

	cs.Title = "New Title"
	cs.Slug = "new-title"
	cs.Tools = []string{"Make", "n8n"}
	cs.Metrics = []models.Metric{{Value: "40%", Label: "חיסכון בזמן"}}
	if err := store.Update(ctx, cs); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, cs.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "New Title" || got.Slug != "new-title" {
		t.Errorf("draft fields not updated: %+v", got)
	}
	if len(got.Tools) != 2 || len(got.Metrics) != 1 {
		t.Errorf("tools/metrics not updated: %+v", got)
	}
	// Published and featured flags are owned by SetPublished/SetFeatured.
	if !got.IsPublished || !got.IsFeatured {
		t.Errorf("visibility flags changed by Update: published=%v featured=%v", got.IsPublished, got.IsFeatured)
	}
}

func TestStore_SetFeatured_IsIsolated(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := casestudystore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cs := fx.CreateCaseStudy(ctx, "Study", "study", true, false)

	if err := store.SetFeatured(ctx, cs.ID, true); err != nil {
		t.Fatalf("SetFeatured failed: %v", err)
	}

	got, err := store.GetByID(ctx, cs.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !got.IsFeatured {
		t.Error("IsFeatured not set")
	}
	if !got.IsPublished {
		t.Error("IsPublished changed by SetFeatured")
	}
	if got.Title != "Study" {
		t.Errorf("Title changed by SetFeatured: %q", got.Title)
	}
}

func TestStore_GetBySlug_PublishedOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := casestudystore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateCaseStudy(ctx, "Published", "published", true, false)
	fx.CreateCaseStudy(ctx, "Draft", "draft", false, false)

	got, err := store.GetBySlug(ctx, "published")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if got.Title != "Published" {
		t.Errorf("Title: got %q, want %q", got.Title, "Published")
	}

	// Drafts are invisible by slug even though the document exists.
	_, err = store.GetBySlug(ctx, "draft")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("draft lookup: got %v, want ErrNoDocuments", err)
	}

	_, err = store.GetBySlug(ctx, "missing")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("missing lookup: got %v, want ErrNoDocuments", err)
	}
}

func TestStore_ListFeatured_LimitAndVisibility(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := casestudystore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateCaseStudy(ctx, "A", "a", true, true)
	fx.CreateCaseStudy(ctx, "B", "b", true, true)
	fx.CreateCaseStudy(ctx, "C", "c", true, true)
	fx.CreateCaseStudy(ctx, "D", "d", true, true)
	fx.CreateCaseStudy(ctx, "FeaturedDraft", "fd", false, true)
	fx.CreateCaseStudy(ctx, "PlainPublished", "pp", true, false)

	featured, err := store.ListFeatured(ctx, 3)
	if err != nil {
		t.Fatalf("ListFeatured failed: %v", err)
	}
	if len(featured) != 3 {
		t.Fatalf("ListFeatured returned %d, want 3", len(featured))
	}
	for _, cs := range featured {
		if !cs.IsPublished || !cs.IsFeatured {
			t.Errorf("non-visible study in featured list: %+v", cs)
		}
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := casestudystore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cs := fx.CreateCaseStudy(ctx, "Doomed", "doomed", true, false)

	n, err := store.Delete(ctx, cs.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted count: got %d, want 1", n)
	}

	n, err = store.Delete(ctx, cs.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if n != 0 {
		t.Errorf("deleted count on missing study: got %d, want 0", n)
	}
}
