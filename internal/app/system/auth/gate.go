// internal/app/system/auth/gate.go
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/buildright/buildright-api/internal/app/system/jsonutil"
	"github.com/buildright/buildright-api/internal/domain/models"
	"go.uber.org/zap"
)

// ctxKey is private so only this package can attach the identity; handlers
// read it back through AdminFrom, keeping the dependency on authentication
// explicit at the call site.
type ctxKey struct{}

// WithAdmin returns a context carrying the resolved admin identity.
// Exported for tests that exercise gated handlers directly.
func WithAdmin(ctx context.Context, admin *models.Admin) context.Context {
	return context.WithValue(ctx, ctxKey{}, admin)
}

// AdminFrom returns the authenticated admin attached by RequireAdmin.
func AdminFrom(ctx context.Context) (*models.Admin, bool) {
	admin, ok := ctx.Value(ctxKey{}).(*models.Admin)
	return admin, ok
}

// RequireAdmin returns middleware that gates a route group behind bearer
// token authentication.
//
// The middleware extracts the token from the Authorization header
// ("Bearer <token>"), resolves it through the auth service, and attaches
// the admin to the request context. Unauthenticated requests are
// short-circuited with 401 before any route logic runs.
func RequireAdmin(svc *Service, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				jsonutil.Fail(w, http.StatusUnauthorized, "missing Authorization header")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				jsonutil.Fail(w, http.StatusUnauthorized, "invalid Authorization format (expected: Bearer <token>)")
				return
			}

			admin, err := svc.ResolveToken(r.Context(), parts[1])
			if err != nil {
				logger.Debug("access gate rejected request",
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
				jsonutil.Fail(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), admin)))
		})
	}
}

// RequireRole returns middleware for role-restricted routes. No current
// route distinguishes roles beyond "is an admin"; this exists so a future
// role split does not change the gate's shape.
func RequireRole(svc *Service, logger *zap.Logger, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	gate := RequireAdmin(svc, logger)

	return func(next http.Handler) http.Handler {
		return gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin, _ := AdminFrom(r.Context())
			if admin == nil {
				jsonutil.Fail(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			if _, ok := allowed[admin.Role]; !ok {
				jsonutil.Fail(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
