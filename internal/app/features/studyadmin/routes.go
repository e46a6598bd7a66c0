// internal/app/features/studyadmin/routes.go
package studyadmin

import (
	"github.com/go-chi/chi/v5"
	"github.com/orma-ai/ormasite/internal/app/system/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireRole("admin"))

	r.Get("/", h.ServeList)
	r.Get("/new", h.ServeNew)
	r.Post("/new", h.HandleCreate)
	r.Get("/{id}", h.ServeEdit)
	r.Post("/{id}", h.HandleUpdate)
	r.Post("/{id}/publish", h.HandleTogglePublished)
	r.Post("/{id}/feature", h.HandleToggleFeatured)
	r.Post("/{id}/delete", h.HandleDelete)
	return r
}
