// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"
	"strings"

	"github.com/buildright/buildright-api/internal/app/store/admins"
	"github.com/buildright/buildright-api/internal/app/system/authutil"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Startup runs once after DB connections and schema/index setup are
// complete, but before the HTTP handler is built and requests are served.
//
// Returning a non-nil error will abort startup and prevent the server
// from starting. The context will be cancelled if the process is asked
// to shut down while Startup is running.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	// Seed admin account if configured
	if appCfg.SeedAdminEmail != "" {
		if err := ensureSeedAdmin(ctx, deps, appCfg, logger); err != nil {
			logger.Error("failed to seed admin account", zap.Error(err))
			return err
		}
	}

	return nil
}

// ensureSeedAdmin creates the configured admin account if no account with
// that email exists yet. An existing account is left untouched, including
// its password.
func ensureSeedAdmin(ctx context.Context, deps DBDeps, appCfg AppConfig, logger *zap.Logger) error {
	store := admins.New(deps.MongoDatabase)
	email := strings.ToLower(strings.TrimSpace(appCfg.SeedAdminEmail))

	existing, err := store.GetByEmail(ctx, email)
	if err == nil {
		logger.Debug("seed admin already exists",
			zap.String("email", email),
			zap.String("admin_id", existing.ID.Hex()))
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	hash, err := authutil.HashPassword(appCfg.SeedAdminPassword)
	if err != nil {
		return err
	}

	name := appCfg.SeedAdminName
	if name == "" {
		name = "Admin"
	}

	admin, err := store.Create(ctx, admins.CreateInput{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
	})
	if err != nil {
		return err
	}

	logger.Info("created seed admin account",
		zap.String("email", email),
		zap.String("admin_id", admin.ID.Hex()))
	return nil
}
