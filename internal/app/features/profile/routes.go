// internal/app/features/profile/routes.go
package profile

import (
	"github.com/gatherpoint/gatherpoint/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the profile endpoints under whatever base path the caller
// chooses (typically "/profile" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)
	r.Get("/", h.Serve)
	return r
}
