// Package auth issues and verifies the bearer tokens the mobile client
// sends, and loads the signed-in user into the request context.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionUser is what the token middleware injects into r.Context().
type SessionUser struct {
	ID    string
	Name  string
	Email string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the signed-in user and a found flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// WithTestUser injects a user into the request context. Test helper;
// bypasses token verification.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// Tokens signs and verifies HS256 access tokens.
type Tokens struct {
	key []byte
	ttl time.Duration
	log *zap.Logger
}

// NewTokens constructs the token service. The signing key must be
// non-empty; short keys are accepted with a warning.
func NewTokens(signingKey string, ttl time.Duration, logger *zap.Logger) (*Tokens, error) {
	if signingKey == "" {
		return nil, fmt.Errorf("token signing key is empty; provide >=32 random chars")
	}
	if len(signingKey) < 32 {
		logger.Warn("token signing key is short; 32+ chars recommended",
			zap.Int("length", len(signingKey)))
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Tokens{key: []byte(signingKey), ttl: ttl, log: logger}, nil
}

// Issue signs an access token for the given user.
func (t *Tokens) Issue(userID, name, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"name":  name,
		"email": email,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(t.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.key)
}

// Verify parses and validates a token string and returns the SessionUser
// it carries.
func (t *Tokens) Verify(tokenString string) (*SessionUser, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.key, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("token missing subject")
	}
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	return &SessionUser{ID: sub, Name: name, Email: email}, nil
}

// LoadSessionUser injects the user into context when a valid bearer token
// is presented. Requests without a token (or with an invalid one) continue
// anonymously; RequireSignedIn decides whether that is acceptable.
func (t *Tokens) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := bearerToken(r); raw != "" {
			if u, err := t.Verify(raw); err == nil {
				r = WithTestUser(r, u)
			} else {
				t.log.Debug("bearer token rejected", zap.Error(err))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn ensures there is a user in context (set by
// LoadSessionUser) and responds 401 otherwise.
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
