// internal/app/features/contacts/routes.go
package contacts

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the contacts router.
//
// When mounted at /api/contacts:
//   - POST   /api/contacts                           - submit contact form (public)
//   - GET    /api/contacts                           - list leads, ?status= (gated)
//   - GET    /api/contacts/{identifier}              - one lead (gated)
//   - PATCH  /api/contacts/{identifier}/status       - status transition (gated)
//   - DELETE /api/contacts/{identifier}              - delete (gated)
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
