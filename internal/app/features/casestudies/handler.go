// internal/app/features/casestudies/handler.go
package casestudies

import (
	"context"
	"errors"
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/orma-ai/ormasite/internal/app/features/errors"
	casestudystore "github.com/orma-ai/ormasite/internal/app/store/casestudies"
	"github.com/orma-ai/ormasite/internal/app/system/htmlsanitize"
	"github.com/orma-ai/ormasite/internal/app/system/timeouts"
	"github.com/orma-ai/ormasite/internal/app/system/viewdata"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the public case-study pages.
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

// ServeList handles GET /case-studies.
//
// An optional ?industry= query filters the grid; the chip row offers the
// distinct industries of the published studies plus an "all" chip.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	published, err := casestudystore.New(h.DB).ListPublished(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list published case studies failed", err, "אירעה שגיאה בטעינת הדף.", "/")
		return
	}

	industry := query.Get(r, "industry")

	industries := make([]string, 0, len(published))
	seen := make(map[string]bool)
	for _, cs := range published {
		if cs.Industry != "" && !seen[cs.Industry] {
			seen[cs.Industry] = true
			industries = append(industries, cs.Industry)
		}
	}

	studies := published
	if industry != "" {
		studies = studies[:0:0]
		for _, cs := range published {
			if cs.Industry == industry {
				studies = append(studies, cs)
			}
		}
	}

	data := struct {
		viewdata.BaseVM
		Studies    []models.CaseStudy
		Industries []string
		Industry   string
	}{
		BaseVM:     viewdata.NewBaseVM(r, h.DB, "סיפורי הצלחה", "/"),
		Studies:    studies,
		Industries: industries,
		Industry:   industry,
	}

	templates.Render(w, r, "casestudy_list", data)
}

// sectionVM is one rendered long-form section of a case study.
type sectionVM struct {
	Heading string
	Body    template.HTML
}

// ServeDetail handles GET /case-studies/{slug}.
//
// Only published studies resolve; a draft slug renders the 404 page just
// like an unknown one.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	cs, err := casestudystore.New(h.DB).GetBySlug(ctx, slug)
	if errors.Is(err, mongo.ErrNoDocuments) {
		uierrors.RenderNotFound(w, r, "סיפור ההצלחה שחיפשת לא נמצא.", "/case-studies")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "get case study by slug failed", err, "אירעה שגיאה בטעינת הדף.", "/case-studies")
		return
	}

	sections := make([]sectionVM, 0, 4)
	for _, sec := range []struct {
		heading string
		body    string
	}{
		{"האתגר", cs.Challenge},
		{"הפתרון", cs.Solution},
		{"התהליך", cs.Process},
		{"התוצאות", cs.Results},
	} {
		if sec.body == "" {
			continue
		}
		sections = append(sections, sectionVM{
			Heading: sec.heading,
			Body:    template.HTML(htmlsanitize.Sanitize(sec.body)),
		})
	}

	data := struct {
		viewdata.BaseVM
		Study    models.CaseStudy
		Sections []sectionVM
	}{
		BaseVM:   viewdata.NewBaseVM(r, h.DB, cs.Title, "/case-studies"),
		Study:    cs,
		Sections: sections,
	}

	templates.Render(w, r, "casestudy_detail", data)
}
