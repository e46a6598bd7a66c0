// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//   - Database connection timeouts
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: ormasite-session)
	SessionDomain string // Cookie domain (blank means current host)

	// CSRF protection
	CSRFKey string // Secret for CSRF token generation (32 bytes recommended)

	// Base URL for OAuth callbacks and absolute links
	BaseURL string // e.g., "https://orma.ai" or "http://localhost:3000"

	// Google OAuth configuration (optional; login is password-only if unset)
	GoogleClientID     string
	GoogleClientSecret string

	// Admin bootstrap: seeds the first admin account when the users
	// collection is empty and both email and password are provided.
	AdminEmail    string
	AdminPassword string
	AdminName     string
}
