// internal/app/features/siteadmin/handler.go
package siteadmin

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/orma-ai/ormasite/internal/app/features/errors"
	settingsstore "github.com/orma-ai/ormasite/internal/app/store/settings"
	"github.com/orma-ai/ormasite/internal/app/system/timeouts"
	"github.com/orma-ai/ormasite/internal/app/system/viewdata"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the admin site-settings editor.
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

type formVM struct {
	viewdata.BaseVM

	Form  models.SiteSettings
	Error string
	Saved bool
}

// ServeForm displays the settings editor.
// GET /admin/settings
// Authorization: RequireRole("admin") middleware in routes.go ensures only
// admins reach this handler.
func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	vm := formVM{
		BaseVM: viewdata.NewBaseVM(r, h.DB, "הגדרות אתר", "/admin/settings"),
		Saved:  r.URL.Query().Get("saved") == "1",
	}
	// BaseVM already carries the current settings for the layout; the form
	// edits the same document.
	vm.Form = vm.Settings

	templates.Render(w, r, "siteadmin_form", vm)
}

// HandleSave replaces the settings singleton with the posted form.
// POST /admin/settings
//
// The stat fields are numeric-or-absent: an empty input clears the stored
// value, anything else must parse as a whole number.
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse settings form failed", err, "הטופס שנשלח אינו תקין.", "/admin/settings")
		return
	}

	form := models.SiteSettings{
		CompanyPhone:   strings.TrimSpace(r.PostFormValue("company_phone")),
		CompanyEmail:   strings.TrimSpace(r.PostFormValue("company_email")),
		LinkedInURL:    strings.TrimSpace(r.PostFormValue("linkedin_url")),
		WhatsAppNumber: strings.TrimSpace(r.PostFormValue("whatsapp_number")),
	}

	for _, stat := range []struct {
		field string
		dst   **int
	}{
		{"stats_hours_saved", &form.StatsHoursSaved},
		{"stats_processes", &form.StatsProcesses},
		{"stats_organizations", &form.StatsOrganizations},
	} {
		raw := strings.TrimSpace(r.PostFormValue(stat.field))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.renderFormWithError(w, r, form, "נתוני המספרים חייבים להיות מספרים שלמים.")
			return
		}
		*stat.dst = &n
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := settingsstore.New(h.DB).Save(ctx, form); err != nil {
		h.ErrLog.LogServerError(w, r, "save site settings failed", err, "לא ניתן לשמור את ההגדרות.", "/admin/settings")
		return
	}

	h.Log.Info("site settings saved")

	http.Redirect(w, r, "/admin/settings?saved=1", http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, form models.SiteSettings, msg string) {
	templates.Render(w, r, "siteadmin_form", formVM{
		BaseVM: viewdata.NewBaseVM(r, h.DB, "הגדרות אתר", "/admin/settings"),
		Form:   form,
		Error:  msg,
	})
}
