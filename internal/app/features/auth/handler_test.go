package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authfeature "github.com/gatherpoint/gatherpoint/internal/app/features/auth"
	"github.com/gatherpoint/gatherpoint/internal/app/system/auth"
	"github.com/gatherpoint/gatherpoint/internal/app/system/identity"
	"github.com/gatherpoint/gatherpoint/internal/app/system/indexes"
	"github.com/gatherpoint/gatherpoint/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const testSigningKey = "test-signing-key-0123456789abcdef"

func setupHandler(t *testing.T) (*authfeature.Handler, *auth.Tokens, *mongo.Database) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.Ensure(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("index setup failed: %v", err)
	}

	tokens, err := auth.NewTokens(testSigningKey, time.Hour, zap.NewNop())
	if err != nil {
		t.Fatalf("token setup failed: %v", err)
	}

	provider := identity.NewService(db, identity.Options{}, zap.NewNop())
	return authfeature.NewHandler(provider, tokens, db, zap.NewNop()), tokens, db
}

func TestHandleSignUp(t *testing.T) {
	handler, tokens, _ := setupHandler(t)

	payload := `{"email":"sarah@example.com","password":"hunter22","firstName":"Sarah","lastName":"Johnson","country":"United States","birthdate":"1990-04-02"}`
	req := httptest.NewRequest("POST", "/auth/signup", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	handler.HandleSignUp(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		User  *struct {
			ID        string `json:"id"`
			FirstName string `json:"firstName"`
			Email     string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if resp.User == nil {
		t.Fatal("expected a profile in the sign-up response")
	}
	if resp.User.FirstName != "Sarah" {
		t.Errorf("firstName: got %q, want %q", resp.User.FirstName, "Sarah")
	}

	// The token must verify and carry the account id.
	sessionUser, err := tokens.Verify(resp.Token)
	if err != nil {
		t.Fatalf("token did not verify: %v", err)
	}
	if sessionUser.ID != resp.User.ID {
		t.Errorf("token subject: got %q, want %q", sessionUser.ID, resp.User.ID)
	}
	if sessionUser.Name != "Sarah Johnson" {
		t.Errorf("token name: got %q, want %q", sessionUser.Name, "Sarah Johnson")
	}
}

func TestHandleSignUp_DuplicateEmail(t *testing.T) {
	handler, _, _ := setupHandler(t)

	payload := `{"email":"sarah@example.com","password":"hunter22","firstName":"Sarah","lastName":"J"}`

	req := httptest.NewRequest("POST", "/auth/signup", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.HandleSignUp(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first sign-up failed: %d %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest("POST", "/auth/signup", strings.NewReader(payload))
	rec = httptest.NewRecorder()
	handler.HandleSignUp(rec, req)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate sign-up: got %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestHandleLogin(t *testing.T) {
	handler, _, _ := setupHandler(t)

	signup := `{"email":"sarah@example.com","password":"hunter22","firstName":"Sarah","lastName":"J"}`
	req := httptest.NewRequest("POST", "/auth/signup", strings.NewReader(signup))
	rec := httptest.NewRecorder()
	handler.HandleSignUp(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("sign-up failed: %d %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"email":"sarah@example.com","password":"hunter22"}`))
	rec = httptest.NewRecorder()
	handler.HandleLogin(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token in the login response")
	}

	req = httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"email":"sarah@example.com","password":"wrong"}`))
	rec = httptest.NewRecorder()
	handler.HandleLogin(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestHandleResetPassword(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest("POST", "/auth/reset-password", strings.NewReader(`{"email":"nobody@example.com"}`))
	rec := httptest.NewRecorder()

	handler.HandleResetPassword(rec, req)

	// Unknown emails get the same answer as known ones.
	if rec.Code != http.StatusAccepted {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusAccepted)
	}
}

func TestHandleResume(t *testing.T) {
	handler, tokens, _ := setupHandler(t)

	payload := `{"email":"sarah@example.com","password":"hunter22","firstName":"Sarah","lastName":"Johnson"}`
	req := httptest.NewRequest("POST", "/auth/signup", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.HandleSignUp(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("sign-up status: got %d (body %s)", rec.Code, rec.Body.String())
	}

	var signedUp struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &signedUp); err != nil {
		t.Fatalf("failed to parse sign-up response: %v", err)
	}
	if signedUp.SessionID == "" {
		t.Fatal("expected a sessionId in the sign-up response")
	}

	resume := func(sessionID string) *httptest.ResponseRecorder {
		body := `{"sessionId":"` + sessionID + `"}`
		req := httptest.NewRequest("POST", "/auth/resume", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.HandleResume(rec, req)
		return rec
	}

	rec = resume(signedUp.SessionID)
	if rec.Code != http.StatusOK {
		t.Fatalf("resume status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	var resumed struct {
		Token     string `json:"token"`
		SessionID string `json:"sessionId"`
		User      *struct {
			FirstName string `json:"firstName"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resumed); err != nil {
		t.Fatalf("failed to parse resume response: %v", err)
	}
	if resumed.SessionID != signedUp.SessionID {
		t.Errorf("resumed sessionId: got %q, want %q", resumed.SessionID, signedUp.SessionID)
	}
	if _, err := tokens.Verify(resumed.Token); err != nil {
		t.Errorf("resumed token did not verify: %v", err)
	}
	if resumed.User == nil || resumed.User.FirstName != "Sarah" {
		t.Errorf("resumed profile: got %+v, want firstName Sarah", resumed.User)
	}

	if rec := resume("no-such-session"); rec.Code != http.StatusUnauthorized {
		t.Errorf("resume of unknown session: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	// Logging out revokes the session record; resuming it afterwards fails.
	req = httptest.NewRequest("POST", "/auth/logout", nil)
	rec = httptest.NewRecorder()
	handler.HandleLogout(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("logout status: got %d, want %d", rec.Code, http.StatusNoContent)
	}

	if rec := resume(signedUp.SessionID); rec.Code != http.StatusUnauthorized {
		t.Errorf("resume of revoked session: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
