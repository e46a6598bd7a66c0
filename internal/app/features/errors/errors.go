// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/orma-ai/ormasite/internal/app/system/authz"
)

// pageData is the basic view model for error pages.
type pageData struct {
	Title      string
	IsLoggedIn bool
	Role       string
	UserName   string
	Message    string
	BackURL    string
}

// Handler is the errors feature handler.
// No DB needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Forbidden renders a friendly "access denied" page.
// GET /forbidden
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	role, name, _, signedIn := authz.UserCtx(r)

	data := pageData{
		Title:      "אין הרשאה",
		IsLoggedIn: signedIn,
		Role:       role,
		UserName:   name,
		Message:    "אין לך הרשאה לצפות בדף זה.",
		BackURL:    "/",
	}

	templates.Render(w, r, "error_forbidden", data)
}

// Unauthorized renders a friendly "sign in required" page.
// GET /unauthorized
func (h *Handler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	role, name, _, signedIn := authz.UserCtx(r)

	data := pageData{
		Title:      "נדרשת התחברות",
		IsLoggedIn: signedIn,
		Role:       role,
		UserName:   name,
		Message:    "יש להתחבר כדי להמשיך.",
		BackURL:    "/login",
	}

	templates.Render(w, r, "error_forbidden", data)
}

// NotFound renders the branded 404 page. Wired as the router's NotFound
// handler so unknown URLs get the same shell as the rest of the site.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderNotFound(w, r, "הדף שחיפשת לא נמצא.", "/")
}
