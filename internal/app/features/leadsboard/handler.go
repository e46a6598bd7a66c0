// internal/app/features/leadsboard/handler.go
package leadsboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/orma-ai/ormasite/internal/app/features/errors"
	leadstore "github.com/orma-ai/ormasite/internal/app/store/leads"
	"github.com/orma-ai/ormasite/internal/app/system/timeouts"
	"github.com/orma-ai/ormasite/internal/app/system/viewdata"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the admin leads dashboard.
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

// ServeList displays the leads dashboard.
//
// The pipeline is small enough to hold in memory, so search and status
// filtering happen over the full snapshot after the read. The stat cards
// always reflect the whole book, not the filtered view.
// Authorization: RequireRole("admin") middleware in routes.go ensures only
// admins reach this handler.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	term := query.Search(r, "q")
	status := query.Get(r, "status")
	if status == "" {
		status = "all"
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := leadstore.New(h.DB).List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list leads failed", err, "אירעה שגיאה בטעינת הלידים.", "/admin/leads")
		return
	}

	filtered := leadstore.Filter(all, term, status)

	data := struct {
		viewdata.BaseVM
		Leads    []models.Lead
		Stats    leadstore.Stats
		Query    string
		Status   string
		Statuses []string
	}{
		BaseVM:   viewdata.NewBaseVM(r, h.DB, "לידים", "/admin/leads"),
		Leads:    filtered,
		Stats:    leadstore.CountStats(all),
		Query:    term,
		Status:   status,
		Statuses: models.LeadStatuses,
	}

	templates.Render(w, r, "leads_list", data)
}
