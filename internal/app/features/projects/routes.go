// internal/app/features/projects/routes.go
package projects

import (
	"net/http"

	"github.com/buildright/buildright-api/internal/app/features/crud"
	"github.com/go-chi/chi/v5"
)

// Routes returns the projects router.
//
// When mounted at /api/projects:
//   - GET    /api/projects                            - active projects (public, ?category=)
//   - GET    /api/projects/categories                 - distinct categories (public)
//   - GET    /api/projects/category/{category}        - active projects in a category (public)
//   - GET    /api/projects/{identifier}               - one active project (public)
//   - GET    /api/projects/admin/all                  - every project (gated)
//   - POST   /api/projects                            - create (gated)
//   - PUT    /api/projects/{identifier}               - partial update (gated)
//   - DELETE /api/projects/{identifier}               - delete + media cleanup (gated)
//   - PATCH  /api/projects/{identifier}/toggle-active (gated)
func Routes(h *Handler, gate func(http.Handler) http.Handler) http.Handler {
	return crud.Routes(crud.Handlers{
		ListPublic: h.ListPublic,
		GetPublic:  h.GetPublic,
		ListAdmin:  h.ListAdmin,
		Create:     h.Create,
		Update:     h.Update,
		Delete:     h.Delete,
		Toggle:     h.Toggle,
		Public: func(r chi.Router) {
			r.Get("/categories", h.Categories)
			r.Get("/category/{category}", h.ListByCategory)
		},
	}, gate)
}
