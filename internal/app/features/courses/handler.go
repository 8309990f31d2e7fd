// Package courses serves the learning endpoints: course catalog, the
// per-course quiz, quiz attempts, and per-user progress.
package courses

import (
	"context"
	"net/http"

	coursestore "github.com/gatherpoint/gatherpoint/internal/app/store/courses"
	progressstore "github.com/gatherpoint/gatherpoint/internal/app/store/progress"
	quizstore "github.com/gatherpoint/gatherpoint/internal/app/store/quizzes"
	"github.com/gatherpoint/gatherpoint/internal/app/system/auth"
	"github.com/gatherpoint/gatherpoint/internal/app/system/httpjson"
	"github.com/gatherpoint/gatherpoint/internal/app/system/timeouts"
	"github.com/gatherpoint/gatherpoint/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves course, quiz, and progress endpoints.
type Handler struct {
	Courses  *coursestore.Store
	Quizzes  *quizstore.Store
	Progress *progressstore.Store
	Log      *zap.Logger
}

// NewHandler constructs the courses Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Courses:  coursestore.New(db),
		Quizzes:  quizstore.New(db),
		Progress: progressstore.New(db),
		Log:      logger,
	}
}

// ServeList handles GET /courses. A store failure degrades to an empty
// list so the catalog screen never hard-fails.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	courses, err := h.Courses.List(ctx)
	if err != nil {
		h.Log.Error("courses: list failed", zap.Error(err))
		courses = []models.Course{}
	}
	httpjson.Respond(w, http.StatusOK, courses)
}

// ServeDetail handles GET /courses/{id}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	course, err := h.Courses.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fault(w, h.Log, "courses: fetch failed", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, course)
}

// ServeCompleted handles GET /courses/completed for the signed-in user.
func (h *Handler) ServeCompleted(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	courses, err := h.Progress.CompletedCourses(r.Context(), user.ID)
	if err != nil {
		h.Log.Error("courses: completed list failed", zap.String("user_id", user.ID), zap.Error(err))
		courses = []models.Course{}
	}
	httpjson.Respond(w, http.StatusOK, courses)
}

// quizView is the quiz without the correct answers or explanations. The
// client grades nothing locally, so the answer key never leaves the server.
type quizView struct {
	ID           string             `json:"id"`
	CourseID     string             `json:"courseId"`
	Questions    []quizQuestionView `json:"questions"`
	PassingScore float64            `json:"passingScore"`
}

type quizQuestionView struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// ServeQuiz handles GET /courses/{id}/quiz.
func (h *Handler) ServeQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.Quizzes.GetByCourse(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fault(w, h.Log, "courses: quiz fetch failed", err)
		return
	}

	view := quizView{
		ID:           quiz.ID,
		CourseID:     quiz.CourseID,
		PassingScore: quiz.PassingScore,
		Questions:    make([]quizQuestionView, len(quiz.Questions)),
	}
	for i, q := range quiz.Questions {
		view.Questions[i] = quizQuestionView{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.Options,
		}
	}

	httpjson.Respond(w, http.StatusOK, view)
}

type attemptRequest struct {
	Answers []int `json:"answers"`
}

// attemptResponse reports the graded result of a quiz submission.
type attemptResponse struct {
	Score  float64 `json:"score"`
	Passed bool    `json:"passed"`
}

// HandleQuizAttempt handles POST /courses/{id}/quiz/attempts. The answers
// slice may be shorter than the question list; missing answers score as
// wrong.
func (h *Handler) HandleQuizAttempt(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	var req attemptRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	attempt, err := h.Quizzes.SubmitAttempt(r.Context(), user.ID, chi.URLParam(r, "id"), req.Answers)
	if err != nil {
		httpjson.Fault(w, h.Log, "courses: quiz attempt failed", err)
		return
	}

	httpjson.Respond(w, http.StatusCreated, attemptResponse{
		Score:  attempt.Score,
		Passed: attempt.Passed,
	})
}

// ServeProgress handles GET /courses/{id}/progress for the signed-in user.
// A course never touched returns a zero-value record, not a 404.
func (h *Handler) ServeProgress(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	progress, err := h.Progress.Get(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Fault(w, h.Log, "courses: progress fetch failed", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, progress)
}

type progressRequest struct {
	CurrentVideoID *string `json:"currentVideoId"`
	TotalWatchTime *int    `json:"totalWatchTime"`
}

// HandleProgress handles PUT /courses/{id}/progress. Only the fields the
// client sends are written; everything else is preserved.
func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	var req progressRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	fields := bson.M{}
	if req.CurrentVideoID != nil {
		fields["currentVideoId"] = *req.CurrentVideoID
	}
	if req.TotalWatchTime != nil {
		fields["totalWatchTime"] = *req.TotalWatchTime
	}

	if err := h.Progress.Update(r.Context(), user.ID, chi.URLParam(r, "id"), fields); err != nil {
		httpjson.Fault(w, h.Log, "courses: progress update failed", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "updated"})
}

// HandleVideoComplete handles POST /courses/{id}/videos/{videoID}/complete.
// Completing the same video twice is a no-op.
func (h *Handler) HandleVideoComplete(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	err := h.Progress.MarkVideoCompleted(r.Context(), user.ID, chi.URLParam(r, "id"), chi.URLParam(r, "videoID"))
	if err != nil {
		httpjson.Fault(w, h.Log, "courses: video complete failed", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "completed"})
}
