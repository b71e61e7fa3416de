// internal/app/features/testimonials/routes.go
package testimonials

import (
	"net/http"

	"github.com/buildright/buildright-api/internal/app/features/crud"
)

// Routes returns the testimonials router.
//
// When mounted at /api/testimonials:
//   - GET    /api/testimonials                            - active testimonials (public)
//   - GET    /api/testimonials/admin/all                  - every testimonial (gated)
//   - POST   /api/testimonials                            - create (gated)
//   - PUT    /api/testimonials/{identifier}               - partial update (gated)
//   - DELETE /api/testimonials/{identifier}               - delete (gated)
//   - PATCH  /api/testimonials/{identifier}/toggle-active (gated)
//   - PATCH  /api/testimonials/reorder                    - batch order update (gated)
func Routes(h *Handler, gate func(http.Handler) http.Handler) http.Handler {
	return crud.Routes(crud.Handlers{
		ListPublic: h.ListPublic,
		ListAdmin:  h.ListAdmin,
		Create:     h.Create,
		Update:     h.Update,
		Delete:     h.Delete,
		Toggle:     h.Toggle,
		Reorder:    h.Reorder,
	}, gate)
}
