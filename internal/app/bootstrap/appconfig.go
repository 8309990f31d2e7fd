// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging, CORS); AppConfig is where
// everything specific to GatherPoint lives.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Token configuration for the mobile client API
	TokenSigningKey string        // Secret key for signing access tokens (must be strong in production)
	TokenTTL        time.Duration // Access token lifetime

	// MinPasswordLength is enforced at sign-up.
	MinPasswordLength int

	// SeedSampleData loads the sample community/course catalog on startup
	// when the collections are empty. Intended for dev and demo environments.
	SeedSampleData bool
}
