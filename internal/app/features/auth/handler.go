// Package auth exposes the identity endpoints for the mobile client:
// sign-up, sign-in, sign-out, and password reset requests. Successful
// sign-up and sign-in responses carry a bearer token the client presents
// on every subsequent request.
package auth

import (
	"errors"
	"net/http"

	userstore "github.com/gatherpoint/gatherpoint/internal/app/store/users"
	"github.com/gatherpoint/gatherpoint/internal/app/system/auth"
	"github.com/gatherpoint/gatherpoint/internal/app/system/httpjson"
	"github.com/gatherpoint/gatherpoint/internal/app/system/identity"
	"github.com/gatherpoint/gatherpoint/internal/domain/faults"
	"github.com/gatherpoint/gatherpoint/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the identity endpoints.
type Handler struct {
	Provider identity.Provider
	Tokens   *auth.Tokens
	Users    *userstore.Store
	Log      *zap.Logger
}

// NewHandler constructs the auth Handler.
func NewHandler(provider identity.Provider, tokens *auth.Tokens, db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Provider: provider,
		Tokens:   tokens,
		Users:    userstore.New(db),
		Log:      logger,
	}
}

// sessionResponse is the envelope returned by sign-up and sign-in.
type sessionResponse struct {
	Token     string              `json:"token"`
	SessionID string              `json:"sessionId"`
	User      *models.UserProfile `json:"user,omitempty"`
}

type signUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Country   string `json:"country"`
	Birthdate string `json:"birthdate"`
}

// HandleSignUp handles POST /auth/signup. Account creation and profile
// creation are two writes with no transaction between them: a profile
// write that fails leaves an account without a profile, and the client
// is expected to tolerate a nil profile.
func (h *Handler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	cred, err := h.Provider.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrEmailInUse):
			httpjson.Error(w, http.StatusConflict, "email already in use")
		case errors.Is(err, identity.ErrWeakPassword):
			httpjson.Error(w, http.StatusBadRequest, "password too short")
		case errors.Is(err, identity.ErrInvalidCredentials):
			httpjson.Error(w, http.StatusBadRequest, "invalid email")
		default:
			httpjson.Fault(w, h.Log, "auth: sign-up failed", err)
		}
		return
	}

	resp := sessionResponse{SessionID: cred.SessionID}

	profile, err := h.Users.Create(r.Context(), cred.UserID, req.FirstName, req.LastName, req.Country, req.Birthdate, cred.Email)
	if err != nil {
		h.Log.Error("auth: profile creation after sign-up failed",
			zap.String("user_id", cred.UserID), zap.Error(err))
	} else {
		resp.User = &profile
	}

	token, err := h.Tokens.Issue(cred.UserID, displayName(resp.User, cred.Email), cred.Email)
	if err != nil {
		httpjson.Fault(w, h.Log, "auth: token issue failed", err)
		return
	}
	resp.Token = token

	httpjson.Respond(w, http.StatusCreated, resp)
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin handles POST /auth/login. A missing profile does not block
// sign-in; the response simply omits the user object.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	cred, err := h.Provider.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			httpjson.Error(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		httpjson.Fault(w, h.Log, "auth: sign-in failed", err)
		return
	}

	resp := sessionResponse{SessionID: cred.SessionID}

	profile, err := h.Users.ProfileByID(r.Context(), cred.UserID)
	if err != nil {
		h.Log.Warn("auth: profile fetch after sign-in failed",
			zap.String("user_id", cred.UserID), zap.Error(err))
	} else {
		resp.User = profile
	}

	token, err := h.Tokens.Issue(cred.UserID, displayName(resp.User, cred.Email), cred.Email)
	if err != nil {
		httpjson.Fault(w, h.Log, "auth: token issue failed", err)
		return
	}
	resp.Token = token

	httpjson.Respond(w, http.StatusOK, resp)
}

// HandleLogout handles POST /auth/logout. Bearer tokens are not revocable,
// so logout revokes the provider-side session record and the client
// discards its token.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Provider.SignOut(r.Context()); err != nil {
		httpjson.Fault(w, h.Log, "auth: sign-out failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type resumeRequest struct {
	SessionID string `json:"sessionId"`
}

// HandleResume handles POST /auth/resume. The client restores a persisted
// session on launch by presenting the sessionId from its last sign-in and
// receives a fresh bearer token. Revoked and unknown sessions both come
// back 401.
func (h *Handler) HandleResume(w http.ResponseWriter, r *http.Request) {
	var req resumeRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	cred, err := h.Provider.Resume(r.Context(), req.SessionID)
	if err != nil {
		if faults.IsNotFound(err) {
			httpjson.Error(w, http.StatusUnauthorized, "session expired or revoked")
			return
		}
		httpjson.Fault(w, h.Log, "auth: session resume failed", err)
		return
	}

	resp := sessionResponse{SessionID: cred.SessionID}

	profile, err := h.Users.ProfileByID(r.Context(), cred.UserID)
	if err != nil {
		h.Log.Warn("auth: profile fetch after resume failed",
			zap.String("user_id", cred.UserID), zap.Error(err))
	} else {
		resp.User = profile
	}

	token, err := h.Tokens.Issue(cred.UserID, displayName(resp.User, cred.Email), cred.Email)
	if err != nil {
		httpjson.Fault(w, h.Log, "auth: token issue failed", err)
		return
	}
	resp.Token = token

	httpjson.Respond(w, http.StatusOK, resp)
}

type resetPasswordRequest struct {
	Email string `json:"email"`
}

// HandleResetPassword handles POST /auth/reset-password. The response is
// 202 whether or not the email is known.
func (h *Handler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	if err := h.Provider.ResetPassword(r.Context(), req.Email); err != nil {
		httpjson.Fault(w, h.Log, "auth: password reset failed", err)
		return
	}

	httpjson.Respond(w, http.StatusAccepted, map[string]string{"status": "reset requested"})
}

func displayName(profile *models.UserProfile, email string) string {
	if profile != nil && (profile.FirstName != "" || profile.LastName != "") {
		name := profile.FirstName
		if profile.LastName != "" {
			if name != "" {
				name += " "
			}
			name += profile.LastName
		}
		return name
	}
	return email
}
