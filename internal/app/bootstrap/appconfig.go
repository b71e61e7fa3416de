// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level, and request body size limits. AppConfig is
// where everything specific to this application lives.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in pool (default: 100)
	MongoMinPoolSize uint64 // Minimum connections to keep warm (default: 10)

	// JWT authentication configuration
	JWTSecret string        // Secret key for signing admin tokens (must be strong in production)
	JWTExpiry time.Duration // Token lifetime (default: 24h)

	// ClientURL is the origin of the public frontend, used for CORS.
	// Blank allows any origin.
	ClientURL string

	// Rate limiting configuration for public endpoints
	RateLimitEnabled bool          // Enable per-IP rate limiting (default: true)
	RateLimitMax     int           // Max requests per IP per window (default: 100)
	RateLimitWindow  time.Duration // Fixed window length (default: 15m)

	// Cloudinary configuration for image uploads.
	// When the cloud name is blank, uploads fall back to an in-memory
	// store so the service can run locally without credentials.
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// Admin seeding configuration
	SeedAdminEmail    string // Email of admin account to create on startup (blank disables seeding)
	SeedAdminPassword string // Initial password for the seeded admin
	SeedAdminName     string // Display name for the seeded admin
}
