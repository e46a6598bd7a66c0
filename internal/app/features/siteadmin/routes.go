// internal/app/features/siteadmin/routes.go
package siteadmin

import (
	"github.com/go-chi/chi/v5"
	"github.com/orma-ai/ormasite/internal/app/system/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireRole("admin"))

	r.Get("/", h.ServeForm)
	r.Post("/", h.HandleSave)
	return r
}
