package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/gatherpoint/gatherpoint/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	return WithChiURLParams(r, key, value)
}

// WithChiURLParams adds several chi URL parameters at once, given as
// alternating key/value pairs. Each call replaces the route context, so
// all parameters for a request must be set together.
func WithChiURLParams(r *http.Request, pairs ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(pairs); i += 2 {
		rctx.URLParams.Add(pairs[i], pairs[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateProfile creates a test user profile and returns it.
func (f *Fixtures) CreateProfile(ctx context.Context, firstName, lastName, email string) models.UserProfile {
	f.t.Helper()

	profile := models.UserProfile{
		ID:        primitive.NewObjectID().Hex(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, profile); err != nil {
		f.t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}

// CreateGroup creates a test group in the given category.
func (f *Fixtures) CreateGroup(ctx context.Context, name, category string) models.Group {
	f.t.Helper()

	group := models.Group{
		ID:          primitive.NewObjectID().Hex(),
		Title:       name,
		Description: "Test group description",
		Category:    category,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := f.db.Collection("groups").InsertOne(ctx, group); err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}
	return group
}

// CreateMinistry creates a test group in the ministries category.
func (f *Fixtures) CreateMinistry(ctx context.Context, name string) models.Group {
	f.t.Helper()
	return f.CreateGroup(ctx, name, models.CategoryMinistries)
}

// CreateForum creates a test group in the forums category.
func (f *Fixtures) CreateForum(ctx context.Context, name string) models.Group {
	f.t.Helper()
	return f.CreateGroup(ctx, name, models.CategoryForums)
}

// CreateDiscussion creates a test discussion in the given group.
func (f *Fixtures) CreateDiscussion(ctx context.Context, groupID, authorID, title string) models.Discussion {
	f.t.Helper()

	discussion := models.Discussion{
		ID:         primitive.NewObjectID().Hex(),
		GroupID:    groupID,
		AuthorID:   authorID,
		AuthorName: "Test Author",
		Title:      title,
		Content:    "Test discussion content",
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := f.db.Collection("discussions").InsertOne(ctx, discussion); err != nil {
		f.t.Fatalf("failed to create test discussion: %v", err)
	}
	return discussion
}

// CreateCourse creates a test course with the given videos.
func (f *Fixtures) CreateCourse(ctx context.Context, title string, videos ...models.CourseVideo) models.Course {
	f.t.Helper()

	course := models.Course{
		ID:          primitive.NewObjectID().Hex(),
		Title:       title,
		Description: "Test course description",
		Difficulty:  models.DifficultyBeginner,
		Videos:      videos,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := f.db.Collection("courses").InsertOne(ctx, course); err != nil {
		f.t.Fatalf("failed to create test course: %v", err)
	}
	return course
}

// CreateQuiz creates a test quiz for the given course. Each question takes
// four options with the correct answer at the given index.
func (f *Fixtures) CreateQuiz(ctx context.Context, courseID string, passingScore float64, correctAnswers ...int) models.Quiz {
	f.t.Helper()

	questions := make([]models.QuizQuestion, len(correctAnswers))
	for i, correct := range correctAnswers {
		questions[i] = models.QuizQuestion{
			ID:            primitive.NewObjectID().Hex(),
			Question:      "Test question",
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: correct,
		}
	}

	quiz := models.Quiz{
		ID:           primitive.NewObjectID().Hex(),
		CourseID:     courseID,
		Questions:    questions,
		PassingScore: passingScore,
	}

	if _, err := f.db.Collection("quizzes").InsertOne(ctx, quiz); err != nil {
		f.t.Fatalf("failed to create test quiz: %v", err)
	}
	return quiz
}

// CreateWatchVideo creates a standalone watch video.
func (f *Fixtures) CreateWatchVideo(ctx context.Context, title string) models.WatchVideo {
	f.t.Helper()

	video := models.WatchVideo{
		ID:       primitive.NewObjectID().Hex(),
		Title:    title,
		TitleCI:  text.Fold(title),
		VideoURL: "https://example.com/video",
		Channel:  "Test Channel",
	}

	if _, err := f.db.Collection("videos").InsertOne(ctx, video); err != nil {
		f.t.Fatalf("failed to create test watch video: %v", err)
	}
	return video
}
