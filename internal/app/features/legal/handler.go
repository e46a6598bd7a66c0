// internal/app/features/legal/handler.go
package legal

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/orma-ai/ormasite/internal/app/system/viewdata"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the static legal pages.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:  db,
		Log: logger,
	}
}

// ServePrivacy handles GET /privacy.
func (h *Handler) ServePrivacy(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, h.DB, "מדיניות פרטיות", "/"),
	}

	templates.Render(w, r, "legal_privacy", data)
}

// ServeTerms handles GET /terms.
func (h *Handler) ServeTerms(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, h.DB, "תנאי שימוש", "/"),
	}

	templates.Render(w, r, "legal_terms", data)
}
