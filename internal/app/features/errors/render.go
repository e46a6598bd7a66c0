// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	nav "github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/orma-ai/ormasite/internal/app/system/auth"
)

func viewerData(r *http.Request) (role, name string, signed bool) {
	u, signed := auth.CurrentUser(r)
	if signed && u != nil {
		return u.Role, u.Name, true
	}
	return "", "", false
}

// RenderNotFound shows the 404 page with the given message.
// If backURL is empty, it resolves a safe back URL with a default fallback.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	role, name, signed := viewerData(r)
	if backURL == "" {
		backURL = nav.ResolveBackURL(r, "/")
	}

	data := pageData{
		Title:      "הדף לא נמצא",
		IsLoggedIn: signed,
		Role:       role,
		UserName:   name,
		Message:    msg,
		BackURL:    backURL,
	}

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_notfound", data)
}

// RenderBadRequest shows a friendly "invalid request" page.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	role, name, signed := viewerData(r)
	if backURL == "" {
		backURL = nav.ResolveBackURL(r, "/")
	}

	data := pageData{
		Title:      "בקשה שגויה",
		IsLoggedIn: signed,
		Role:       role,
		UserName:   name,
		Message:    msg,
		BackURL:    backURL,
	}

	w.WriteHeader(http.StatusBadRequest)
	templates.Render(w, r, "error_generic", data)
}

// RenderServerError shows a friendly "something went wrong" page.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	role, name, signed := viewerData(r)
	if backURL == "" {
		backURL = nav.ResolveBackURL(r, "/")
	}
	if msg == "" {
		msg = "אירעה שגיאה. נסו שוב מאוחר יותר."
	}

	data := pageData{
		Title:      "שגיאה",
		IsLoggedIn: signed,
		Role:       role,
		UserName:   name,
		Message:    msg,
		BackURL:    backURL,
	}

	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_generic", data)
}

// RenderForbidden shows a friendly access error page with a message.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	role, name, signed := viewerData(r)
	if backURL == "" {
		backURL = nav.ResolveBackURL(r, "/")
	}

	data := pageData{
		Title:      "אין הרשאה",
		IsLoggedIn: signed,
		Role:       role,
		UserName:   name,
		Message:    msg,
		BackURL:    backURL,
	}

	w.WriteHeader(http.StatusForbidden)
	templates.Render(w, r, "error_forbidden", data)
}
