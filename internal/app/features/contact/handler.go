// internal/app/features/contact/handler.go
package contact

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/orma-ai/ormasite/internal/app/features/errors"
	leadstore "github.com/orma-ai/ormasite/internal/app/store/leads"
	"github.com/orma-ai/ormasite/internal/app/system/timeouts"
	"github.com/orma-ai/ormasite/internal/app/system/viewdata"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the contact page and receives lead submissions.
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

// formVM carries the contact form state, including values to re-fill after
// a validation failure and the attribution fields captured from the URL.
type formVM struct {
	viewdata.BaseVM

	Lead           models.Lead
	CompanySizes   []string
	ChallengeAreas []string
	Error          string
}

func (h *Handler) newFormVM(r *http.Request, lead models.Lead, errMsg string) formVM {
	return formVM{
		BaseVM:         viewdata.NewBaseVM(r, h.DB, "צור קשר", "/"),
		Lead:           lead,
		CompanySizes:   models.CompanySizes,
		ChallengeAreas: models.ChallengeAreas,
		Error:          errMsg,
	}
}

// ServeForm handles GET /contact.
//
// UTM parameters present on the URL are copied into the form as hidden
// fields so they survive the round trip to the POST.
func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lead := models.Lead{
		UTMSource:   q.Get("utm_source"),
		UTMMedium:   q.Get("utm_medium"),
		UTMCampaign: q.Get("utm_campaign"),
	}

	templates.Render(w, r, "contact", h.newFormVM(r, lead, ""))
}

// Submit handles POST /contact.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse contact form failed", err, "הטופס שנשלח אינו תקין.", "/contact")
		return
	}

	lead := models.Lead{
		FullName:      r.PostFormValue("full_name"),
		Email:         r.PostFormValue("email"),
		Phone:         r.PostFormValue("phone"),
		Company:       r.PostFormValue("company"),
		Role:          r.PostFormValue("role"),
		CompanySize:   r.PostFormValue("company_size"),
		ChallengeArea: r.PostFormValue("challenge_area"),
		Message:       r.PostFormValue("message"),
		UTMSource:     r.PostFormValue("utm_source"),
		UTMMedium:     r.PostFormValue("utm_medium"),
		UTMCampaign:   r.PostFormValue("utm_campaign"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := leadstore.New(h.DB).Create(ctx, lead)
	switch {
	case errors.Is(err, leadstore.ErrMissingName):
		templates.Render(w, r, "contact", h.newFormVM(r, lead, "נא למלא שם מלא."))
		return
	case errors.Is(err, leadstore.ErrMissingEmail):
		templates.Render(w, r, "contact", h.newFormVM(r, lead, "נא למלא כתובת אימייל."))
		return
	case errors.Is(err, leadstore.ErrBadCompanySize):
		templates.Render(w, r, "contact", h.newFormVM(r, lead, "נא לבחור גודל חברה מהרשימה."))
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "create lead failed", err, "לא הצלחנו לשמור את הפנייה. נסו שוב.", "/contact")
		return
	}

	h.Log.Info("lead created",
		zap.String("lead_id", created.ID.Hex()),
		zap.String("company_size", created.CompanySize),
		zap.Bool("is_enterprise", created.IsEnterprise),
		zap.String("utm_source", created.UTMSource),
	)

	http.Redirect(w, r, "/contact/thanks", http.StatusSeeOther)
}

// ServeThanks handles GET /contact/thanks.
func (h *Handler) ServeThanks(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, h.DB, "תודה על פנייתך", "/"),
	}

	templates.Render(w, r, "contact_thanks", data)
}
