// internal/app/features/blogs/routes.go
package blogs

import (
	"net/http"

	"github.com/buildright/buildright-api/internal/app/features/crud"
	"github.com/go-chi/chi/v5"
)

// Routes returns the blogs router.
//
// When mounted at /api/blogs:
//   - GET    /api/blogs                            - published posts, paged (public)
//   - GET    /api/blogs/category/{category}        - published posts in a category (public)
//   - GET    /api/blogs/{identifier}               - one published post, increments views (public)
//   - GET    /api/blogs/{identifier}/related       - related published posts (public)
//   - GET    /api/blogs/admin/all                  - every post (gated)
//   - POST   /api/blogs                            - create (gated)
//   - PUT    /api/blogs/{identifier}               - partial update (gated)
//   - DELETE /api/blogs/{identifier}               - delete + media cleanup (gated)
//   - PATCH  /api/blogs/{identifier}/toggle-active - flip published (gated)
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
			r.Get("/category/{category}", h.ListByCategory)
			r.Get("/{identifier}/related", h.Related)
		},
	}, gate)
}
