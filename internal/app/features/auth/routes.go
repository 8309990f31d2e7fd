// internal/app/features/auth/routes.go
package auth

import "github.com/go-chi/chi/v5"

// Routes mounts the identity endpoints under whatever base path the caller
// chooses (typically "/auth" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/signup", h.HandleSignUp)
	r.Post("/login", h.HandleLogin)
	r.Post("/logout", h.HandleLogout)
	r.Post("/resume", h.HandleResume)
	r.Post("/reset-password", h.HandleResetPassword)
	return r
}
