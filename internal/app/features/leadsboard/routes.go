// internal/app/features/leadsboard/routes.go
package leadsboard

import (
	"github.com/go-chi/chi/v5"
	"github.com/orma-ai/ormasite/internal/app/system/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireRole("admin"))

	r.Get("/", h.ServeList)
	r.Post("/{id}/status", h.HandleStatus)
	r.Post("/{id}/notes", h.HandleNotes)
	r.Post("/{id}/delete", h.HandleDelete)
	return r
}
