package faqadmin_test

import (
	"testing"

	uierrors "github.com/orma-ai/ormasite/internal/app/features/errors"
	"github.com/orma-ai/ormasite/internal/app/features/faqadmin"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"github.com/orma-ai/ormasite/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*faqadmin.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return faqadmin.NewHandler(db, uierrors.NewErrorLogger(logger), logger), testutil.NewFixtures(t, db)
}

func faqOrder(t *testing.T, fx *testutil.Fixtures, id primitive.ObjectID) int {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	var faq models.FAQ
	if err := fx.DB().Collection("faqs").FindOne(ctx, bson.M{"_id": id}).Decode(&faq); err != nil {
		t.Fatalf("failed to find faq: %v", err)
	}
	return faq.Order
}

func TestHandleCreate_AppendsAtEnd(t *testing.T) {
	handler, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateFAQ(ctx, "שאלה ראשונה", 0, true)
	fx.CreateFAQ(ctx, "שאלה שנייה", 1, true)

	req := testutil.NewFormRequest("/admin/faqs/new", map[string]string{
		"question": "שאלה שלישית",
		"answer":   "תשובה",
	})
	rec := testutil.NewRecorder()

	handler.HandleCreate(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/admin/faqs")

	var created models.FAQ
	if err := fx.DB().Collection("faqs").FindOne(ctx, bson.M{"question": "שאלה שלישית"}).Decode(&created); err != nil {
		t.Fatalf("failed to find created faq: %v", err)
	}
	if created.Order != 2 {
		t.Errorf("expected order 2 for appended faq, got %d", created.Order)
	}
	if created.IsPublished {
		t.Error("new faq must start unpublished")
	}
}

func TestHandleMove_DownSwapsNeighbors(t *testing.T) {
	handler, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first := fx.CreateFAQ(ctx, "ראשונה", 0, true)
	second := fx.CreateFAQ(ctx, "שנייה", 1, true)
	third := fx.CreateFAQ(ctx, "שלישית", 2, true)

	req := testutil.NewFormRequest("/admin/faqs/"+first.ID.Hex()+"/move", map[string]string{
		"dir": "down",
	})
	req = testutil.WithChiURLParam(req, "id", first.ID.Hex())
	rec := testutil.NewRecorder()

	handler.HandleMove(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/admin/faqs")

	if got := faqOrder(t, fx, first.ID); got != 1 {
		t.Errorf("moved faq order: got %d, want 1", got)
	}
	if got := faqOrder(t, fx, second.ID); got != 0 {
		t.Errorf("neighbor order: got %d, want 0", got)
	}
	if got := faqOrder(t, fx, third.ID); got != 2 {
		t.Errorf("bystander order: got %d, want 2", got)
	}
}

func TestHandleMove_TopEdgeIsNoOp(t *testing.T) {
	handler, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first := fx.CreateFAQ(ctx, "ראשונה", 0, true)
	fx.CreateFAQ(ctx, "שנייה", 1, true)

	req := testutil.NewFormRequest("/admin/faqs/"+first.ID.Hex()+"/move", map[string]string{
		"dir": "up",
	})
	req = testutil.WithChiURLParam(req, "id", first.ID.Hex())
	rec := testutil.NewRecorder()

	handler.HandleMove(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/admin/faqs")

	if got := faqOrder(t, fx, first.ID); got != 0 {
		t.Errorf("edge move must not change order, got %d", got)
	}
}

func TestHandleTogglePublished_SetsExplicitValue(t *testing.T) {
	handler, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	faq := fx.CreateFAQ(ctx, "שאלה", 0, false)

	req := testutil.NewFormRequest("/admin/faqs/"+faq.ID.Hex()+"/publish", map[string]string{
		"value": "1",
	})
	req = testutil.WithChiURLParam(req, "id", faq.ID.Hex())
	rec := testutil.NewRecorder()

	handler.HandleTogglePublished(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/admin/faqs")

	var updated models.FAQ
	if err := fx.DB().Collection("faqs").FindOne(ctx, bson.M{"_id": faq.ID}).Decode(&updated); err != nil {
		t.Fatalf("failed to find faq: %v", err)
	}
	if !updated.IsPublished {
		t.Error("expected faq to be published")
	}
}

func TestHandleDelete_RemovesFAQ(t *testing.T) {
	handler, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	faq := fx.CreateFAQ(ctx, "שאלה", 0, true)

	req := testutil.NewFormRequest("/admin/faqs/"+faq.ID.Hex()+"/delete", nil)
	req = testutil.WithChiURLParam(req, "id", faq.ID.Hex())
	rec := testutil.NewRecorder()

	handler.HandleDelete(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/admin/faqs")

	n, err := fx.DB().Collection("faqs").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected faq deleted, %d remain", n)
	}
}
