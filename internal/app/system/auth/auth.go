// Package auth implements the auth service and the access gate.
//
// Authentication is stateless: every request carries a bearer token, the
// token embeds only the admin's id, and the identity is re-fetched from the
// credential store on every gated request. There is no session state.
package auth

import (
	"context"
	"time"

	"github.com/buildright/buildright-api/internal/app/store/admins"
	"github.com/buildright/buildright-api/internal/app/system/apperr"
	"github.com/buildright/buildright-api/internal/app/system/authutil"
	"github.com/buildright/buildright-api/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// invalidCredentials is returned for both unknown email and wrong password.
// The two cases are deliberately indistinguishable to the client so the
// login endpoint cannot be used to enumerate accounts.
var invalidCredentials = apperr.New(apperr.Unauthorized, "Invalid credentials")

// Service verifies credentials and issues/resolves bearer tokens.
type Service struct {
	admins *admins.Store
	secret string
	expiry time.Duration
	logger *zap.Logger
}

// NewService creates an auth service backed by the admin credential store.
func NewService(store *admins.Store, secret string, expiry time.Duration, logger *zap.Logger) *Service {
	return &Service{admins: store, secret: secret, expiry: expiry, logger: logger}
}

// Login verifies the email/password pair and issues a bearer token.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Admin, string, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err == mongo.ErrNoDocuments {
		// Burn a hash comparison anyway so the two failure paths take
		// comparable time.
		authutil.CheckPassword(password, authutil.DummyHash)
		return nil, "", invalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if !admin.Active {
		s.logger.Warn("login attempt for disabled admin", zap.String("email", admin.Email))
		return nil, "", invalidCredentials
	}

	if !authutil.CheckPassword(password, admin.PasswordHash) {
		return nil, "", invalidCredentials
	}

	token, err := IssueToken(s.secret, admin.ID.Hex(), s.expiry)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

// ResolveToken verifies a bearer token and re-fetches the admin it names.
// A token for a deleted or disabled account is rejected even if unexpired.
func (s *Service) ResolveToken(ctx context.Context, token string) (*models.Admin, error) {
	adminID, err := ParseToken(s.secret, token)
	if err != nil {
		// Expired vs. malformed is logged here but not surfaced.
		s.logger.Debug("token verification failed", zap.Error(err))
		return nil, apperr.New(apperr.Unauthorized, "invalid or expired token")
	}

	oid, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		return nil, apperr.New(apperr.Unauthorized, "invalid or expired token")
	}

	admin, err := s.admins.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.New(apperr.Unauthorized, "invalid or expired token")
	}
	if err != nil {
		return nil, err
	}
	if !admin.Active {
		return nil, apperr.New(apperr.Unauthorized, "invalid or expired token")
	}
	return admin, nil
}

// ChangePassword re-verifies the current password before accepting the new one.
func (s *Service) ChangePassword(ctx context.Context, admin *models.Admin, current, next string) error {
	if !authutil.CheckPassword(current, admin.PasswordHash) {
		return apperr.New(apperr.Unauthorized, "Current password is incorrect")
	}
	if err := authutil.ValidatePassword(next); err != nil {
		return apperr.New(apperr.BadRequest, err.Error())
	}
	hash, err := authutil.HashPassword(next)
	if err != nil {
		return err
	}
	return s.admins.UpdatePasswordHash(ctx, admin.ID, hash)
}
