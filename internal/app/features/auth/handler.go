// internal/app/features/auth/handler.go
package auth

import (
	"net/http"

	"github.com/buildright/buildright-api/internal/app/system/apperr"
	"github.com/buildright/buildright-api/internal/app/system/auth"
	"github.com/buildright/buildright-api/internal/app/system/jsonutil"
	"github.com/buildright/buildright-api/internal/domain/models"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler serves the authentication endpoints.
type Handler struct {
	svc      *auth.Service
	errs     *apperr.Writer
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates a new auth Handler.
func NewHandler(svc *auth.Service, errs *apperr.Writer, logger *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		errs:     errs,
		validate: validator.New(),
		logger:   logger,
	}
}

func userPayload(admin *models.Admin) UserPayload {
	return UserPayload{
		ID:    admin.ID.Hex(),
		Email: admin.Email,
		Name:  admin.Name,
		Role:  admin.Role,
	}
}

// Login verifies credentials and issues a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.errs.Write(w, r, err)
		return
	}

	admin, token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	h.logger.Info("admin logged in", zap.String("email", admin.Email))
	jsonutil.OK(w, LoginPayload{Token: token, User: userPayload(admin)})
}

// Me returns the authenticated identity.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	admin, ok := auth.AdminFrom(r.Context())
	if !ok {
		jsonutil.Fail(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}
	jsonutil.OK(w, userPayload(admin))
}

// Logout acknowledges the client discarding its token. Authentication is
// stateless, so there is nothing to revoke server-side.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	jsonutil.OKMessage(w, "Logged out successfully", nil)
}

// ChangePassword re-verifies the current password before setting a new one.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	admin, ok := auth.AdminFrom(r.Context())
	if !ok {
		jsonutil.Fail(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	var req ChangePasswordRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.errs.Write(w, r, err)
		return
	}

	if err := h.svc.ChangePassword(r.Context(), admin, req.CurrentPassword, req.NewPassword); err != nil {
		h.errs.Write(w, r, err)
		return
	}

	h.logger.Info("admin changed password", zap.String("email", admin.Email))
	jsonutil.OKMessage(w, "Password updated successfully", nil)
}
