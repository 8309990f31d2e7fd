// Package videos serves the standalone watch catalog.
package videos

import (
	"context"
	"net/http"

	videostore "github.com/gatherpoint/gatherpoint/internal/app/store/videos"
	"github.com/gatherpoint/gatherpoint/internal/app/system/httpjson"
	"github.com/gatherpoint/gatherpoint/internal/app/system/timeouts"
	"github.com/gatherpoint/gatherpoint/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves watch catalog endpoints.
type Handler struct {
	Videos *videostore.Store
	Log    *zap.Logger
}

// NewHandler constructs the videos Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Videos: videostore.New(db),
		Log:    logger,
	}
}

// ServeList handles GET /videos, title ascending. A store failure
// degrades to an empty list.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	videos, err := h.Videos.List(ctx)
	if err != nil {
		h.Log.Error("videos: list failed", zap.Error(err))
		videos = []models.WatchVideo{}
	}
	httpjson.Respond(w, http.StatusOK, videos)
}
