// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/orma-ai/ormasite/internal/app/system/auth"
	"go.uber.org/zap"
)

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeLogout handles GET /logout.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(w, r); err != nil {
		// Cookie may already be gone. Log and continue to the redirect.
		h.Log.Warn("sign out failed", zap.Error(err))
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
