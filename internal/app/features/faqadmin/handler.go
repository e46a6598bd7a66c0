// internal/app/features/faqadmin/handler.go
package faqadmin

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/orma-ai/ormasite/internal/app/features/errors"
	faqstore "github.com/orma-ai/ormasite/internal/app/store/faqs"
	"github.com/orma-ai/ormasite/internal/app/system/timeouts"
	"github.com/orma-ai/ormasite/internal/app/system/viewdata"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the admin FAQ editor.
type Handler struct {
	DB     *mongo.Database
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		ErrLog: errLog,
		Log:    logger,
	}
}

// faqID parses the {id} URL parameter, rendering the error page itself on
// failure.
func (h *Handler) faqID(w http.ResponseWriter, r *http.Request, idHex string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		uierrors.RenderBadRequest(w, r, "מזהה שאלה שגוי.", "/admin/faqs")
		return primitive.NilObjectID, false
	}
	return oid, true
}

// ServeList displays the FAQ editor.
//
// Normalize runs before the read so gaps and duplicated order values left
// by torn reorders or deletions are healed every time the screen loads.
// Authorization: RequireRole("admin") middleware in routes.go ensures only
// admins reach this handler.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := faqstore.New(h.DB)

	if err := store.Normalize(ctx); err != nil {
		h.ErrLog.LogServerError(w, r, "normalize faq order failed", err, "אירעה שגיאה בטעינת השאלות.", "/admin/faqs")
		return
	}

	faqs, err := store.ListByOrder(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list faqs failed", err, "אירעה שגיאה בטעינת השאלות.", "/admin/faqs")
		return
	}

	data := struct {
		viewdata.BaseVM
		FAQs []models.FAQ
	}{
		BaseVM: viewdata.NewBaseVM(r, h.DB, "שאלות נפוצות – ניהול", "/admin/faqs"),
		FAQs:   faqs,
	}

	templates.Render(w, r, "faqadmin_list", data)
}
