// internal/app/features/trustedby/routes.go
package trustedby

import (
	"net/http"

	"github.com/buildright/buildright-api/internal/app/features/crud"
)

// Routes returns the trusted-by router.
//
// When mounted at /api/trusted-by:
//   - GET    /api/trusted-by                            - active entries (public)
//   - GET    /api/trusted-by/admin/all                  - every entry (gated)
//   - POST   /api/trusted-by                            - create (gated)
//   - PUT    /api/trusted-by/{identifier}               - partial update (gated)
//   - DELETE /api/trusted-by/{identifier}               - delete (gated)
//   - PATCH  /api/trusted-by/{identifier}/toggle-active (gated)
//   - PATCH  /api/trusted-by/reorder                    - batch order update (gated)
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
