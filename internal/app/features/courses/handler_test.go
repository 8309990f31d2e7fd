package courses_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gatherpoint/gatherpoint/internal/app/features/courses"
	"github.com/gatherpoint/gatherpoint/internal/testutil"
	"go.uber.org/zap"
)

func TestServeQuiz_HidesAnswerKey(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := courses.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "React Native Fundamentals")
	fixtures.CreateQuiz(ctx, course.ID, 70, 1, 3, 1)

	req := httptest.NewRequest("GET", "/courses/"+course.ID+"/quiz", nil)
	req = testutil.WithChiURLParam(req, "id", course.ID)
	rec := httptest.NewRecorder()

	handler.ServeQuiz(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	body := rec.Body.String()
	if strings.Contains(body, "correctAnswer") {
		t.Error("quiz response must not include the answer key")
	}
	if strings.Contains(body, "explanation") {
		t.Error("quiz response must not include explanations")
	}

	var view struct {
		Questions []struct {
			ID      string   `json:"id"`
			Options []string `json:"options"`
		} `json:"questions"`
		PassingScore float64 `json:"passingScore"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(view.Questions) != 3 {
		t.Errorf("questions: got %d, want 3", len(view.Questions))
	}
	if view.PassingScore != 70 {
		t.Errorf("passingScore: got %v, want 70", view.PassingScore)
	}
}

func TestHandleQuizAttempt(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := courses.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "React Native Fundamentals")
	fixtures.CreateQuiz(ctx, course.ID, 70, 1, 3, 1)
	user := testutil.SignedInUser()

	req := httptest.NewRequest("POST", "/courses/"+course.ID+"/quiz/attempts", strings.NewReader(`{"answers":[1,3,1]}`))
	req = testutil.WithUser(req, user)
	req = testutil.WithChiURLParam(req, "id", course.ID)
	rec := httptest.NewRecorder()

	handler.HandleQuizAttempt(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var result struct {
		Score  float64 `json:"score"`
		Passed bool    `json:"passed"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if result.Score != 100 || !result.Passed {
		t.Errorf("result: got score=%v passed=%v, want 100/true", result.Score, result.Passed)
	}

	// The pass is reflected in the user's progress.
	preq := testutil.NewAuthenticatedRequest("GET", "/courses/"+course.ID+"/progress", user)
	preq = testutil.WithChiURLParam(preq, "id", course.ID)
	prec := httptest.NewRecorder()

	handler.ServeProgress(prec, preq)

	var progress struct {
		IsCompleted bool `json:"isCompleted"`
	}
	if err := json.Unmarshal(prec.Body.Bytes(), &progress); err != nil {
		t.Fatalf("failed to parse progress: %v", err)
	}
	if !progress.IsCompleted {
		t.Error("a passing attempt must mark the course completed")
	}
}

func TestHandleVideoComplete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := courses.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	course := fixtures.CreateCourse(ctx, "React Native Fundamentals")
	user := testutil.SignedInUser()

	complete := func() int {
		req := testutil.NewAuthenticatedRequest("POST", "/courses/"+course.ID+"/videos/intro/complete", user)
		req = testutil.WithChiURLParams(req, "id", course.ID, "videoID", "intro")
		rec := httptest.NewRecorder()
		handler.HandleVideoComplete(rec, req)
		return rec.Code
	}

	if code := complete(); code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", code, http.StatusOK)
	}
	// Repeating the completion is accepted and stays idempotent.
	if code := complete(); code != http.StatusOK {
		t.Fatalf("repeat status: got %d, want %d", code, http.StatusOK)
	}

	req := testutil.NewAuthenticatedRequest("GET", "/courses/"+course.ID+"/progress", user)
	req = testutil.WithChiURLParam(req, "id", course.ID)
	rec := httptest.NewRecorder()

	handler.ServeProgress(rec, req)

	var progress struct {
		CompletedVideos []string `json:"completedVideos"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &progress); err != nil {
		t.Fatalf("failed to parse progress: %v", err)
	}
	if len(progress.CompletedVideos) != 1 || progress.CompletedVideos[0] != "intro" {
		t.Errorf("completedVideos: got %v, want [intro]", progress.CompletedVideos)
	}
}
