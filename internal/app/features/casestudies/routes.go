// internal/app/features/casestudies/routes.go
package casestudies

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{slug}", h.ServeDetail)
	return r
}
