// internal/app/features/homepage/routes.go
package homepage

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the homepage router.
//
// When mounted at /api/homepage:
//   - GET    /api/homepage                        - content, default materialized (public)
//   - POST   /api/homepage                        - explicit one-time create (gated)
//   - PUT    /api/homepage/hero                   - patch hero section (gated)
//   - PUT    /api/homepage/about                  - patch about section (gated)
//   - PUT    /api/homepage/contact-cta            - patch contact CTA section (gated)
//   - POST   /api/homepage/services               - add-or-update embedded service (gated)
//   - DELETE /api/homepage/services/{identifier}  - delete embedded service (gated)
func Routes(h *Handler, gate func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Get)

	r.Group(func(gr chi.Router) {
		gr.Use(gate)
		gr.Post("/", h.Create)
		gr.Put("/hero", h.PatchHero)
		gr.Put("/about", h.PatchAbout)
		gr.Put("/contact-cta", h.PatchContactCTA)
		gr.Post("/services", h.UpsertService)
		gr.Delete("/services/{identifier}", h.DeleteService)
	})

	return r
}
