package discussions_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gatherpoint/gatherpoint/internal/app/features/discussions"
	membershipstore "github.com/gatherpoint/gatherpoint/internal/app/store/memberships"
	"github.com/gatherpoint/gatherpoint/internal/testutil"
	"go.uber.org/zap"
)

func TestHandleNewReply_RequiresMembership(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := discussions.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	group := fixtures.CreateMinistry(ctx, "Youth Ministry")
	thread := fixtures.CreateDiscussion(ctx, group.ID, "user1", "Retreat Planning")
	user := testutil.SignedInUser()

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/discussions/"+thread.ID+"/replies", strings.NewReader(`{"content":"count me in"}`))
		req = testutil.WithUser(req, user)
		req = testutil.WithChiURLParam(req, "id", thread.ID)
		rec := httptest.NewRecorder()
		handler.HandleNewReply(rec, req)
		return rec
	}

	if rec := post(); rec.Code != http.StatusForbidden {
		t.Fatalf("status for non-member: got %d, want %d", rec.Code, http.StatusForbidden)
	}

	if err := membershipstore.New(db).Join(ctx, user.ID, group.ID); err != nil {
		t.Fatalf("Join failed: %v", err)
	}

	rec := post()
	if rec.Code != http.StatusCreated {
		t.Fatalf("status for member: got %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var reply struct {
		Content    string `json:"content"`
		AuthorName string `json:"authorName"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &reply); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if reply.Content != "count me in" {
		t.Errorf("content: got %q, want %q", reply.Content, "count me in")
	}
	if reply.AuthorName != user.Name {
		t.Errorf("authorName: got %q, want %q", reply.AuthorName, user.Name)
	}
}

func TestServeReplies_UnknownDiscussion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := discussions.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("GET", "/discussions/missing/replies", nil)
	req = testutil.WithChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	handler.ServeReplies(rec, req)

	// A thread with no replies and an unknown thread both serve an empty
	// list; reply listing does not resolve the parent.
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body: got %q, want []", body)
	}
}
