// Package messaging is the placeholder for the direct-messaging feature.
// The mobile client ships the screen as a stub; the API mirrors that.
package messaging

import (
	"net/http"

	"github.com/gatherpoint/gatherpoint/internal/app/system/httpjson"
	"go.uber.org/zap"
)

// Handler serves the messaging placeholder.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs the messaging Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// Serve handles GET /messaging.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "coming_soon"})
}
