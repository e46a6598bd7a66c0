// internal/app/features/faqadmin/actions.go
package faqadmin

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	uierrors "github.com/orma-ai/ormasite/internal/app/features/errors"
	faqstore "github.com/orma-ai/ormasite/internal/app/store/faqs"
	"github.com/orma-ai/ormasite/internal/app/system/timeouts"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func backToFAQs(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/admin/faqs", http.StatusSeeOther)
}

// HandleCreate appends a new FAQ at the end of the list.
// POST /admin/faqs/new
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse faq form failed", err, "הטופס שנשלח אינו תקין.", "/admin/faqs")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := faqstore.New(h.DB).Create(ctx, models.FAQ{
		Question: r.PostFormValue("question"),
		Answer:   r.PostFormValue("answer"),
	})
	if errors.Is(err, faqstore.ErrMissingFields) {
		uierrors.RenderBadRequest(w, r, "נא למלא שאלה ותשובה.", "/admin/faqs")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create faq failed", err, "לא ניתן לשמור את השאלה.", "/admin/faqs")
		return
	}

	h.Log.Info("faq created",
		zap.String("faq_id", created.ID.Hex()),
		zap.Int("order", created.Order),
	)

	backToFAQs(w, r)
}

// HandleUpdate saves the question and answer of an FAQ.
// POST /admin/faqs/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.faqID(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse faq form failed", err, "הטופס שנשלח אינו תקין.", "/admin/faqs")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := faqstore.New(h.DB).Update(ctx, oid, r.PostFormValue("question"), r.PostFormValue("answer"))
	if errors.Is(err, faqstore.ErrMissingFields) {
		uierrors.RenderBadRequest(w, r, "נא למלא שאלה ותשובה.", "/admin/faqs")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update faq failed", err, "לא ניתן לשמור את השאלה.", "/admin/faqs")
		return
	}

	backToFAQs(w, r)
}

// HandleTogglePublished flips only the published flag.
// POST /admin/faqs/{id}/publish
func (h *Handler) HandleTogglePublished(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.faqID(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse toggle form failed", err, "הטופס שנשלח אינו תקין.", "/admin/faqs")
		return
	}
	value := r.PostFormValue("value") == "1"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := faqstore.New(h.DB).SetPublished(ctx, oid, value); err != nil {
		h.ErrLog.LogServerError(w, r, "toggle faq published failed", err, "לא ניתן לעדכן את הסטטוס.", "/admin/faqs")
		return
	}

	backToFAQs(w, r)
}

// HandleMove moves an FAQ one position up or down by swapping order values
// with its neighbor in the given direction. At the edges the move is a
// no-op rather than an error.
// POST /admin/faqs/{id}/move with form field dir=up|down
func (h *Handler) HandleMove(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.faqID(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse move form failed", err, "הטופס שנשלח אינו תקין.", "/admin/faqs")
		return
	}
	dir := r.PostFormValue("dir")
	if dir != "up" && dir != "down" {
		uierrors.RenderBadRequest(w, r, "כיוון הזזה שגוי.", "/admin/faqs")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := faqstore.New(h.DB)

	faqs, err := store.ListByOrder(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list faqs failed", err, "אירעה שגיאה.", "/admin/faqs")
		return
	}

	idx := indexOf(faqs, oid)
	if idx < 0 {
		uierrors.RenderNotFound(w, r, "השאלה לא נמצאה.", "/admin/faqs")
		return
	}

	other := idx - 1
	if dir == "down" {
		other = idx + 1
	}
	if other < 0 || other >= len(faqs) {
		backToFAQs(w, r)
		return
	}

	if err := store.Swap(ctx, faqs[idx], faqs[other]); err != nil {
		// A torn swap leaves a duplicated order value; the list screen
		// normalizes on its next load.
		h.ErrLog.LogServerError(w, r, "swap faq order failed", err, "לא ניתן להזיז את השאלה.", "/admin/faqs")
		return
	}

	h.Log.Info("faq moved",
		zap.String("faq_id", oid.Hex()),
		zap.String("dir", dir),
	)

	backToFAQs(w, r)
}

// HandleDelete removes an FAQ. The remaining order gap closes on the next
// list load via Normalize.
// POST /admin/faqs/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.faqID(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := faqstore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete faq failed", err, "לא ניתן למחוק את השאלה.", "/admin/faqs")
		return
	}
	if n == 0 {
		uierrors.RenderNotFound(w, r, "השאלה לא נמצאה.", "/admin/faqs")
		return
	}

	h.Log.Info("faq deleted", zap.String("faq_id", oid.Hex()))

	backToFAQs(w, r)
}

func indexOf(faqs []models.FAQ, id primitive.ObjectID) int {
	for i := range faqs {
		if faqs[i].ID == id {
			return i
		}
	}
	return -1
}
