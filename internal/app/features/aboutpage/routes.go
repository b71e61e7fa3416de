// internal/app/features/aboutpage/routes.go
package aboutpage

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the about-page router.
//
// When mounted at /api/about:
//   - GET    /api/about                          - content, default materialized (public)
//   - POST   /api/about                          - explicit one-time create (gated)
//   - PUT    /api/about/story                    - patch story section (gated)
//   - PUT    /api/about/leadership               - patch leadership section (gated)
//   - POST   /api/about/team                     - add-or-update team member (gated)
//   - DELETE /api/about/team/{identifier}        - delete team member (gated)
//   - POST   /api/about/values                   - add-or-update company value (gated)
//   - DELETE /api/about/values/{identifier}      - delete company value (gated)
//   - POST   /api/about/stats                    - append stat (gated)
//   - PUT    /api/about/stats/{index}            - replace stat by index (gated)
//   - DELETE /api/about/stats/{index}            - delete stat by index (gated)
func Routes(h *Handler, gate func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Get)

	r.Group(func(gr chi.Router) {
		gr.Use(gate)
		gr.Post("/", h.Create)
		gr.Put("/story", h.PatchStory)
		gr.Put("/leadership", h.PatchLeadership)
		gr.Post("/team", h.UpsertTeamMember)
		gr.Delete("/team/{identifier}", h.DeleteTeamMember)
		gr.Post("/values", h.UpsertValue)
		gr.Delete("/values/{identifier}", h.DeleteValue)
		gr.Post("/stats", h.AddStat)
		gr.Put("/stats/{index}", h.UpdateStat)
		gr.Delete("/stats/{index}", h.DeleteStat)
	})

	return r
}
