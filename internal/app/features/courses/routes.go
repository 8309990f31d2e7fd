// internal/app/features/courses/routes.go
package courses

import (
	"github.com/gatherpoint/gatherpoint/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the learning endpoints under whatever base path the caller
// chooses (typically "/courses" from bootstrap). The catalog is open;
// quizzes and progress are per-user and require sign-in.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)

	// "/completed" must be declared before "/{id}" so chi does not treat
	// the literal as a course id.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Get("/completed", h.ServeCompleted)
	})

	r.Get("/{id}", h.ServeDetail)
	r.Get("/{id}/quiz", h.ServeQuiz)

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Post("/{id}/quiz/attempts", h.HandleQuizAttempt)
		pr.Get("/{id}/progress", h.ServeProgress)
		pr.Put("/{id}/progress", h.HandleProgress)
		pr.Post("/{id}/videos/{videoID}/complete", h.HandleVideoComplete)
	})

	return r
}
