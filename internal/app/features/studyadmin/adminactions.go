// internal/app/features/studyadmin/adminactions.go
package studyadmin

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	uierrors "github.com/orma-ai/ormasite/internal/app/features/errors"
	casestudystore "github.com/orma-ai/ormasite/internal/app/store/casestudies"
	"github.com/orma-ai/ormasite/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleTogglePublished flips the published flag.
// POST /admin/case-studies/{id}/publish
func (h *Handler) HandleTogglePublished(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "published")
}

// HandleToggleFeatured flips the featured flag.
// POST /admin/case-studies/{id}/feature
func (h *Handler) HandleToggleFeatured(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "featured")
}

// toggle handles both single-flag toggles. The desired value arrives as
// form field "value" ("1" or "0") so the toggle is idempotent rather than a
// blind flip.
func (h *Handler) toggle(w http.ResponseWriter, r *http.Request, flag string) {
	oid, ok := h.studyID(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse toggle form failed", err, "הטופס שנשלח אינו תקין.", "/admin/case-studies")
		return
	}
	value := r.PostFormValue("value") == "1"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := casestudystore.New(h.DB)
	var err error
	if flag == "published" {
		err = store.SetPublished(ctx, oid, value)
	} else {
		err = store.SetFeatured(ctx, oid, value)
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "toggle case study flag failed", err, "לא ניתן לעדכן את הסטטוס.", "/admin/case-studies")
		return
	}

	h.Log.Info("case study flag toggled",
		zap.String("case_study_id", oid.Hex()),
		zap.String("flag", flag),
		zap.Bool("value", value),
	)

	http.Redirect(w, r, "/admin/case-studies", http.StatusSeeOther)
}

// HandleDelete removes a case study. The list page wraps this in a
// confirmation dialog; the endpoint itself deletes immediately.
// POST /admin/case-studies/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.studyID(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := casestudystore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete case study failed", err, "לא ניתן למחוק את סיפור ההצלחה.", "/admin/case-studies")
		return
	}
	if n == 0 {
		uierrors.RenderNotFound(w, r, "סיפור ההצלחה לא נמצא.", "/admin/case-studies")
		return
	}

	h.Log.Info("case study deleted", zap.String("case_study_id", oid.Hex()))

	http.Redirect(w, r, "/admin/case-studies", http.StatusSeeOther)
}
