// internal/app/features/discussions/routes.go
package discussions

import (
	"github.com/gatherpoint/gatherpoint/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the discussion endpoints under whatever base path the
// caller chooses (typically "/discussions" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/{id}", h.ServeDetail)
	r.Get("/{id}/replies", h.ServeReplies)

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Post("/{id}/replies", h.HandleNewReply)
	})

	return r
}
