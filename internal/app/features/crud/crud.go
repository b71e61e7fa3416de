// Package crud wires the shared route shape of collection-backed content
// resources.
//
// Every resource exposes the same surface: public reads, a gated admin
// list, gated mutations, and optional toggle/reorder routes. Literal paths
// (/admin/all, /reorder, /category/...) are registered before the
// parametric /{identifier} routes so they are never swallowed by them.
package crud

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers enumerates a resource's route handlers. Nil entries are simply
// not mounted, so thin resources (no toggle, no reorder) reuse the same
// factory.
type Handlers struct {
	ListPublic http.HandlerFunc // GET /
	GetPublic  http.HandlerFunc // GET /{identifier}
	ListAdmin  http.HandlerFunc // GET /admin/all (gated)
	Create     http.HandlerFunc // POST / (gated)
	Update     http.HandlerFunc // PUT /{identifier} (gated)
	Delete     http.HandlerFunc // DELETE /{identifier} (gated)
	Toggle     http.HandlerFunc // PATCH /{identifier}/toggle-active (gated)
	Reorder    http.HandlerFunc // PATCH /reorder (gated)

	// Public registers resource-specific public routes (category lookups,
	// related items). Runs before the parametric routes are mounted.
	Public func(r chi.Router)
	// Admin registers resource-specific gated routes (status transitions).
	Admin func(r chi.Router)
}

// Routes builds the resource router. gate is the access-gate middleware
// applied to every administrative route.
func Routes(h Handlers, gate func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	if h.ListPublic != nil {
		r.Get("/", h.ListPublic)
	}
	if h.ListAdmin != nil {
		r.With(gate).Get("/admin/all", h.ListAdmin)
	}
	if h.Reorder != nil {
		r.With(gate).Patch("/reorder", h.Reorder)
	}
	if h.Public != nil {
		h.Public(r)
	}
	if h.Admin != nil {
		r.Group(func(ar chi.Router) {
			ar.Use(gate)
			h.Admin(ar)
		})
	}

	if h.GetPublic != nil {
		r.Get("/{identifier}", h.GetPublic)
	}
	if h.Create != nil {
		r.With(gate).Post("/", h.Create)
	}
	if h.Update != nil {
		r.With(gate).Put("/{identifier}", h.Update)
	}
	if h.Delete != nil {
		r.With(gate).Delete("/{identifier}", h.Delete)
	}
	if h.Toggle != nil {
		r.With(gate).Patch("/{identifier}/toggle-active", h.Toggle)
	}

	return r
}
