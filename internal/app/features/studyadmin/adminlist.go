// internal/app/features/studyadmin/adminlist.go
package studyadmin

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	casestudystore "github.com/orma-ai/ormasite/internal/app/store/casestudies"
	"github.com/orma-ai/ormasite/internal/app/system/timeouts"
	"github.com/orma-ai/ormasite/internal/app/system/viewdata"
	"github.com/orma-ai/ormasite/internal/domain/models"
)

// ServeList displays all case studies, drafts included, newest first.
// Authorization: RequireRole("admin") middleware in routes.go ensures only
// admins reach this handler.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	studies, err := casestudystore.New(h.DB).List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list case studies failed", err, "אירעה שגיאה בטעינת הרשימה.", "/admin/case-studies")
		return
	}

	data := struct {
		viewdata.BaseVM
		Studies []models.CaseStudy
	}{
		BaseVM:  viewdata.NewBaseVM(r, h.DB, "סיפורי הצלחה – ניהול", "/admin/case-studies"),
		Studies: studies,
	}

	templates.Render(w, r, "studyadmin_list", data)
}
