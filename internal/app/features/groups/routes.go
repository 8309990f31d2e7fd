// internal/app/features/groups/routes.go
package groups

import (
	"github.com/gatherpoint/gatherpoint/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the group endpoints under whatever base path the caller
// chooses (typically "/groups" from bootstrap). Browsing is open; joining,
// leaving, preferences, and posting require a signed-in user.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)

	// "/joined" must be declared before "/{id}" so chi does not treat
	// the literal as a group id.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Post("/", h.HandleCreate)
		pr.Get("/joined", h.ServeJoined)
	})

	r.Get("/{id}", h.ServeDetail)
	r.Get("/{id}/discussions", h.ServeDiscussions)

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Post("/{id}/join", h.HandleJoin)
		pr.Post("/{id}/leave", h.HandleLeave)
		pr.Get("/{id}/membership", h.ServeMembership)
		pr.Put("/{id}/notifications", h.HandleNotifications)
		pr.Post("/{id}/discussions", h.HandleNewDiscussion)
	})

	return r
}
