// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	authfeature "github.com/gatherpoint/gatherpoint/internal/app/features/auth"
	coursesfeature "github.com/gatherpoint/gatherpoint/internal/app/features/courses"
	discussionsfeature "github.com/gatherpoint/gatherpoint/internal/app/features/discussions"
	groupsfeature "github.com/gatherpoint/gatherpoint/internal/app/features/groups"
	healthfeature "github.com/gatherpoint/gatherpoint/internal/app/features/health"
	messagingfeature "github.com/gatherpoint/gatherpoint/internal/app/features/messaging"
	profilefeature "github.com/gatherpoint/gatherpoint/internal/app/features/profile"
	videosfeature "github.com/gatherpoint/gatherpoint/internal/app/features/videos"
	"github.com/gatherpoint/gatherpoint/internal/app/system/auth"
	"github.com/gatherpoint/gatherpoint/internal/app/system/identity"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. GatherPoint serves a JSON API for its
// mobile client: identity endpoints issue bearer tokens, and the token
// middleware loads the signed-in user into the request context for every
// route that needs one.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens, err := auth.NewTokens(appCfg.TokenSigningKey, appCfg.TokenTTL, logger)
	if err != nil {
		logger.Error("token service init failed", zap.Error(err))
		return nil, err
	}

	provider := identity.NewService(deps.MongoDatabase, identity.Options{
		MinPasswordLength: appCfg.MinPasswordLength,
	}, logger)

	r := chi.NewRouter()

	// Global auth middleware: loads the SessionUser into context when a
	// valid bearer token is presented. Individual routes decide whether
	// a signed-in user is required.
	r.Use(tokens.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Identity: sign-up, sign-in, sign-out, password reset
	authHandler := authfeature.NewHandler(provider, tokens, deps.MongoDatabase, logger)
	r.Mount("/auth", authfeature.Routes(authHandler))

	// Signed-in user's profile
	profileHandler := profilefeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/profile", profilefeature.Routes(profileHandler))

	// Community groups and memberships
	groupsHandler := groupsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/groups", groupsfeature.Routes(groupsHandler))

	// Discussion threads and replies
	discussionsHandler := discussionsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/discussions", discussionsfeature.Routes(discussionsHandler))

	// Courses, quizzes, and per-user progress
	coursesHandler := coursesfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/courses", coursesfeature.Routes(coursesHandler))

	// Watch catalog
	videosHandler := videosfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/videos", videosfeature.Routes(videosHandler))

	// Messaging is a placeholder in the client; the API mirrors that.
	messagingHandler := messagingfeature.NewHandler(logger)
	r.Mount("/messaging", messagingfeature.Routes(messagingHandler))

	return r, nil
}
