// internal/app/features/home/handler.go
package home

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/orma-ai/ormasite/internal/app/features/errors"
	casestudystore "github.com/orma-ai/ormasite/internal/app/store/casestudies"
	faqstore "github.com/orma-ai/ormasite/internal/app/store/faqs"
	"github.com/orma-ai/ormasite/internal/app/system/timeouts"
	"github.com/orma-ai/ormasite/internal/app/system/viewdata"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// featuredLimit caps the case-study strip on the landing page.
const featuredLimit = 3

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	DB     *mongo.Database
	ErrLog *errors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *errors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		ErrLog: errLog,
		Log:    logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	featured, err := casestudystore.New(h.DB).ListFeatured(ctx, featuredLimit)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list featured case studies failed", err, "אירעה שגיאה בטעינת הדף.", "/")
		return
	}

	faqs, err := faqstore.New(h.DB).ListPublished(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list published faqs failed", err, "אירעה שגיאה בטעינת הדף.", "/")
		return
	}

	data := struct {
		viewdata.BaseVM
		Featured []models.CaseStudy
		FAQs     []models.FAQ
	}{
		BaseVM:   viewdata.NewBaseVM(r, h.DB, "ORMA.AI – ייעוץ והטמעת AI", "/"),
		Featured: featured,
		FAQs:     faqs,
	}

	templates.Render(w, r, "home", data)
}
