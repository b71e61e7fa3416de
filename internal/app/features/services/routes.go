// internal/app/features/services/routes.go
package services

import (
	"net/http"

	"github.com/buildright/buildright-api/internal/app/features/crud"
)

// Routes returns the services router.
//
// When mounted at /api/services:
//   - GET    /api/services                          - active services (public)
//   - GET    /api/services/{identifier}             - one active service by id or slug (public)
//   - GET    /api/services/admin/all                - every service (gated)
//   - POST   /api/services                          - create (gated)
//   - PUT    /api/services/{identifier}             - partial update (gated)
//   - DELETE /api/services/{identifier}             - delete + media cleanup (gated)
//   - PATCH  /api/services/{identifier}/toggle-active (gated)
//   - PATCH  /api/services/reorder                  - batch order update (gated)
func Routes(h *Handler, gate func(http.Handler) http.Handler) http.Handler {
	return crud.Routes(crud.Handlers{
		ListPublic: h.ListPublic,
		GetPublic:  h.GetPublic,
		ListAdmin:  h.ListAdmin,
		Create:     h.Create,
		Update:     h.Update,
		Delete:     h.Delete,
		Toggle:     h.Toggle,
		Reorder:    h.Reorder,
	}, gate)
}
