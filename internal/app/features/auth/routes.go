// internal/app/features/auth/routes.go
package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the auth router.
//
// When mounted at /api/auth:
//   - POST /api/auth/login           - issue a bearer token
//   - GET  /api/auth/me              - authenticated identity (gated)
//   - POST /api/auth/logout          - stateless acknowledgement (gated)
//   - PUT  /api/auth/change-password - rotate password (gated)
func Routes(h *Handler, gate func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/login", h.Login)

	r.Group(func(gr chi.Router) {
		gr.Use(gate)
		gr.Get("/me", h.Me)
		gr.Post("/logout", h.Logout)
		gr.Put("/change-password", h.ChangePassword)
	})

	return r
}
