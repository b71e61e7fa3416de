// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/buildright/buildright-api/internal/app/system/indexes"
	"github.com/buildright/buildright-api/internal/app/system/media"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// ConnectDB connects to MongoDB and initializes the media backend.
//
// WAFFLE calls this after configuration is loaded but before EnsureSchema
// and Startup. Clients established here are stored in DBDeps for use in
// handlers and later lifecycle hooks.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	// Configure MongoDB connection pool
	poolCfg := wafflemongo.DefaultPoolConfig()
	if appCfg.MongoMaxPoolSize > 0 {
		poolCfg.MaxPoolSize = appCfg.MongoMaxPoolSize
	}
	if appCfg.MongoMinPoolSize > 0 {
		poolCfg.MinPoolSize = appCfg.MongoMinPoolSize
	}

	client, err := wafflemongo.ConnectWithPool(ctx, appCfg.MongoURI, appCfg.MongoDatabase, poolCfg)
	if err != nil {
		return DBDeps{}, err
	}

	db := client.Database(appCfg.MongoDatabase)

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
		zap.Uint64("max_pool_size", poolCfg.MaxPoolSize),
		zap.Uint64("min_pool_size", poolCfg.MinPoolSize),
	)

	// Initialize the media backend. Cloudinary when configured, otherwise
	// an in-memory store so the service can run without credentials.
	var mediaStore media.Store
	if appCfg.CloudinaryCloudName != "" {
		cld, err := media.NewCloudinary(appCfg.CloudinaryCloudName, appCfg.CloudinaryAPIKey, appCfg.CloudinaryAPISecret, logger)
		if err != nil {
			return DBDeps{}, fmt.Errorf("failed to initialize cloudinary: %w", err)
		}
		mediaStore = cld
		logger.Info("initialized cloudinary media store",
			zap.String("cloud_name", appCfg.CloudinaryCloudName),
		)
	} else {
		mediaStore = media.NewFake()
		logger.Warn("cloudinary not configured; uploaded images are held in memory only")
	}

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: db,
		Media:         mediaStore,
	}, nil
}

// EnsureSchema sets up indexes as needed.
//
// This runs after ConnectDB succeeds but before Startup and before the
// HTTP handler is built. The context has a timeout based on
// coreCfg.IndexBootTimeout.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("ensuring database indexes")
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("failed to ensure indexes", zap.Error(err))
		return err
	}

	logger.Info("database schema ensured successfully")
	return nil
}
