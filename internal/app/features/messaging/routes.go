// internal/app/features/messaging/routes.go
package messaging

import "github.com/go-chi/chi/v5"

// Routes mounts the messaging placeholder under whatever base path the
// caller chooses (typically "/messaging" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	return r
}
