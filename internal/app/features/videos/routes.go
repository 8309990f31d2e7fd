// internal/app/features/videos/routes.go
package videos

import "github.com/go-chi/chi/v5"

// Routes mounts the watch catalog under whatever base path the caller
// chooses (typically "/videos" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}
