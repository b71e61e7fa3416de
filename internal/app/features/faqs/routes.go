// internal/app/features/faqs/routes.go
package faqs

import (
	"net/http"

	"github.com/buildright/buildright-api/internal/app/features/crud"
)

// Routes returns the FAQ router.
//
// When mounted at /api/faqs:
//   - GET    /api/faqs                            - active FAQs (public)
//   - GET    /api/faqs/admin/all                  - every FAQ (gated)
//   - POST   /api/faqs                            - create (gated)
//   - PUT    /api/faqs/{identifier}               - partial update (gated)
//   - DELETE /api/faqs/{identifier}               - delete (gated)
//   - PATCH  /api/faqs/{identifier}/toggle-active (gated)
//   - PATCH  /api/faqs/reorder                    - batch order update (gated)
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
