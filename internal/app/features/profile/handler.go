// Package profile serves the signed-in user's profile.
package profile

import (
	"net/http"

	userstore "github.com/gatherpoint/gatherpoint/internal/app/store/users"
	"github.com/gatherpoint/gatherpoint/internal/app/system/auth"
	"github.com/gatherpoint/gatherpoint/internal/app/system/httpjson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves profile endpoints.
type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

// NewHandler constructs the profile Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Users: userstore.New(db),
		Log:   logger,
	}
}

// Serve handles GET /profile for the signed-in user.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	profile, err := h.Users.GetByID(r.Context(), user.ID)
	if err != nil {
		httpjson.Fault(w, h.Log, "profile: fetch failed", err)
		return
	}

	httpjson.Respond(w, http.StatusOK, profile)
}
