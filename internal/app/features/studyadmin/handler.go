// internal/app/features/studyadmin/handler.go
package studyadmin

import (
	"net/http"
	"strings"

	uierrors "github.com/orma-ai/ormasite/internal/app/features/errors"
	"github.com/orma-ai/ormasite/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the admin case-study editor.
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

// studyID parses the {id} URL parameter, rendering the error page itself on
// failure.
func (h *Handler) studyID(w http.ResponseWriter, r *http.Request, idHex string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		uierrors.RenderBadRequest(w, r, "מזהה סיפור הצלחה שגוי.", "/admin/case-studies")
		return primitive.NilObjectID, false
	}
	return oid, true
}

// studyFromForm builds a CaseStudy draft from the posted editor form.
// Tools arrive as repeated "tools" inputs; metrics as parallel
// "metric_value"/"metric_label" inputs. Blank rows are dropped.
func studyFromForm(r *http.Request) models.CaseStudy {
	cs := models.CaseStudy{
		Title:     r.PostFormValue("title"),
		Slug:      strings.TrimSpace(r.PostFormValue("slug")),
		Industry:  r.PostFormValue("industry"),
		Challenge: r.PostFormValue("challenge"),
		Solution:  r.PostFormValue("solution"),
		Process:   r.PostFormValue("process"),
		Results:   r.PostFormValue("results"),
	}

	for _, tool := range r.PostForm["tools"] {
		if t := strings.TrimSpace(tool); t != "" {
			cs.Tools = append(cs.Tools, t)
		}
	}

	values := r.PostForm["metric_value"]
	labels := r.PostForm["metric_label"]
	for i := range values {
		value := strings.TrimSpace(values[i])
		label := ""
		if i < len(labels) {
			label = strings.TrimSpace(labels[i])
		}
		if value == "" && label == "" {
			continue
		}
		cs.Metrics = append(cs.Metrics, models.Metric{Value: value, Label: label})
	}

	return cs
}
