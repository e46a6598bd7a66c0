// internal/app/features/faqadmin/routes.go
package faqadmin

import (
	"github.com/go-chi/chi/v5"
	"github.com/orma-ai/ormasite/internal/app/system/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireRole("admin"))

	r.Get("/", h.ServeList)
	r.Post("/new", h.HandleCreate)
	r.Post("/{id}", h.HandleUpdate)
	r.Post("/{id}/publish", h.HandleTogglePublished)
	r.Post("/{id}/move", h.HandleMove)
	r.Post("/{id}/delete", h.HandleDelete)
	return r
}
