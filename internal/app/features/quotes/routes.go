// internal/app/features/quotes/routes.go
package quotes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the quotes router.
//
// When mounted at /api/quotes:
//   - POST   /api/quotes                           - submit quote request (public)
//   - GET    /api/quotes                           - list requests, ?status= (gated)
//   - GET    /api/quotes/{identifier}              - one request (gated)
//   - PATCH  /api/quotes/{identifier}/status       - status transition (gated)
//   - DELETE /api/quotes/{identifier}              - delete (gated)
func Routes(h *Handler, gate func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)

	r.Group(func(gr chi.Router) {
		gr.Use(gate)
		gr.Get("/", h.List)
		gr.Get("/{identifier}", h.Get)
		gr.Patch("/{identifier}/status", h.UpdateStatus)
		gr.Delete("/{identifier}", h.Delete)
	})

	return r
}
