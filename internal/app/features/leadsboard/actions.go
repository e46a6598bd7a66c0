// internal/app/features/leadsboard/actions.go
package leadsboard

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	uierrors "github.com/orma-ai/ormasite/internal/app/features/errors"
	leadstore "github.com/orma-ai/ormasite/internal/app/store/leads"
	"github.com/orma-ai/ormasite/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// leadID parses the {id} URL parameter, rendering the error page itself on
// failure.
func (h *Handler) leadID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "מזהה ליד שגוי.", "/admin/leads")
		return primitive.NilObjectID, false
	}
	return oid, true
}

// backToList redirects to the dashboard preserving the current search and
// status filter carried in the form.
func backToList(w http.ResponseWriter, r *http.Request) {
	dest := "/admin/leads"
	if ret := r.PostFormValue("return"); ret != "" && ret[0] == '/' {
		dest = ret
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// HandleStatus updates a single lead's pipeline status.
// POST /admin/leads/{id}/status
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.leadID(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse status form failed", err, "הטופס שנשלח אינו תקין.", "/admin/leads")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	status := r.PostFormValue("status")
	err := leadstore.New(h.DB).SetStatus(ctx, oid, status)
	if errors.Is(err, leadstore.ErrBadStatus) {
		uierrors.RenderBadRequest(w, r, "סטטוס לא מוכר.", "/admin/leads")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "set lead status failed", err, "לא ניתן לעדכן את הסטטוס.", "/admin/leads")
		return
	}

	h.Log.Info("lead status updated",
		zap.String("lead_id", oid.Hex()),
		zap.String("status", status),
	)

	backToList(w, r)
}

// HandleNotes replaces a lead's internal notes.
// POST /admin/leads/{id}/notes
func (h *Handler) HandleNotes(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.leadID(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse notes form failed", err, "הטופס שנשלח אינו תקין.", "/admin/leads")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := leadstore.New(h.DB).SetNotes(ctx, oid, r.PostFormValue("notes")); err != nil {
		h.ErrLog.LogServerError(w, r, "set lead notes failed", err, "לא ניתן לשמור את ההערות.", "/admin/leads")
		return
	}

	backToList(w, r)
}

// HandleDelete removes a lead.
// POST /admin/leads/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.leadID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := leadstore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete lead failed", err, "לא ניתן למחוק את הליד.", "/admin/leads")
		return
	}
	if n == 0 {
		uierrors.RenderNotFound(w, r, "הליד לא נמצא.", "/admin/leads")
		return
	}

	h.Log.Info("lead deleted", zap.String("lead_id", oid.Hex()))

	http.Redirect(w, r, "/admin/leads", http.StatusSeeOther)
}
