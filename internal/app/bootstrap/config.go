// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for GatherPoint.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, token_signing_key, etc.
//   - Environment variables: GATHERPOINT_MONGO_URI, GATHERPOINT_TOKEN_SIGNING_KEY, etc.
//   - Command-line flags: --mongo_uri, --token_signing_key, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "gatherpoint", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "token_signing_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Access token signing key (must be strong in production)"},
	{Name: "token_ttl", Default: "168h", Desc: "Access token lifetime (e.g., 24h, 168h)"},

	{Name: "min_password_length", Default: 6, Desc: "Minimum password length accepted at sign-up"},

	{Name: "seed_sample_data", Default: false, Desc: "Seed sample groups/courses on startup when collections are empty"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "GATHERPOINT", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		TokenSigningKey: appValues.String("token_signing_key"),
		TokenTTL:        appValues.Duration("token_ttl", 168*time.Hour),

		MinPasswordLength: appValues.Int("min_password_length"),

		SeedSampleData: appValues.Bool("seed_sample_data"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// GatherPoint validates the MongoDB URI format to catch configuration
// errors early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if coreCfg.Env == "prod" && appCfg.TokenSigningKey == "dev-only-change-me-please-0123456789ABCDEF" {
		return fmt.Errorf("token_signing_key must be set in production")
	}
	if appCfg.MinPasswordLength < 1 {
		return fmt.Errorf("min_password_length must be at least 1")
	}

	return nil
}
