// internal/app/features/studyadmin/adminedit.go
package studyadmin

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/orma-ai/ormasite/internal/app/features/errors"
	casestudystore "github.com/orma-ai/ormasite/internal/app/store/casestudies"
	"github.com/orma-ai/ormasite/internal/app/system/timeouts"
	"github.com/orma-ai/ormasite/internal/app/system/viewdata"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// editorVM is the view model for the case-study editor form, shared by the
// new and edit screens.
type editorVM struct {
	viewdata.BaseVM

	Study models.CaseStudy
	IsNew bool
	Error string
}

func (h *Handler) renderEditor(w http.ResponseWriter, r *http.Request, cs models.CaseStudy, isNew bool, errMsg string) {
	title := "עריכת סיפור הצלחה"
	if isNew {
		title = "סיפור הצלחה חדש"
	}

	templates.Render(w, r, "studyadmin_edit", editorVM{
		BaseVM: viewdata.NewBaseVM(r, h.DB, title, "/admin/case-studies"),
		Study:  cs,
		IsNew:  isNew,
		Error:  errMsg,
	})
}

// ServeNew displays the empty editor form.
// GET /admin/case-studies/new
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	h.renderEditor(w, r, models.CaseStudy{}, true, "")
}

// HandleCreate creates a case study from the editor form. New studies start
// unpublished and unfeatured; the slug is derived from the title when the
// slug field is left blank.
// POST /admin/case-studies/new
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse case study form failed", err, "הטופס שנשלח אינו תקין.", "/admin/case-studies")
		return
	}

	cs := studyFromForm(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := casestudystore.New(h.DB).Create(ctx, cs)
	if errors.Is(err, casestudystore.ErrMissingTitle) {
		h.renderEditor(w, r, cs, true, "נא למלא כותרת.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create case study failed", err, "לא ניתן לשמור את סיפור ההצלחה.", "/admin/case-studies")
		return
	}

	h.Log.Info("case study created",
		zap.String("case_study_id", created.ID.Hex()),
		zap.String("slug", created.Slug),
	)

	http.Redirect(w, r, "/admin/case-studies/"+created.ID.Hex(), http.StatusSeeOther)
}

// ServeEdit displays the editor form for an existing study.
// GET /admin/case-studies/{id}
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.studyID(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	cs, err := casestudystore.New(h.DB).GetByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		uierrors.RenderNotFound(w, r, "סיפור ההצלחה לא נמצא.", "/admin/case-studies")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "get case study failed", err, "אירעה שגיאה בטעינת סיפור ההצלחה.", "/admin/case-studies")
		return
	}

	h.renderEditor(w, r, cs, false, "")
}

// HandleUpdate saves the draft fields of an existing study. The published
// and featured flags are controlled by their own toggle endpoints and are
// untouched here.
// POST /admin/case-studies/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.studyID(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse case study form failed", err, "הטופס שנשלח אינו תקין.", "/admin/case-studies")
		return
	}

	cs := studyFromForm(r)
	cs.ID = oid

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := casestudystore.New(h.DB).Update(ctx, cs)
	if errors.Is(err, casestudystore.ErrMissingTitle) {
		h.renderEditor(w, r, cs, false, "נא למלא כותרת.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "update case study failed", err, "לא ניתן לשמור את סיפור ההצלחה.", "/admin/case-studies")
		return
	}

	h.Log.Info("case study updated", zap.String("case_study_id", oid.Hex()))

	http.Redirect(w, r, "/admin/case-studies/"+oid.Hex(), http.StatusSeeOther)
}
