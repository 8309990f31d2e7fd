// Package identity implements the account/session provider the rest of the
// app authenticates against: email/password sign-up and sign-in, sign-out,
// password reset requests, and a push-based session-change subscription.
package identity

import (
	"context"
	"errors"
)

// Credential identifies an authenticated account.
type Credential struct {
	UserID    string
	Email     string
	SessionID string
}

// Provider is the identity contract consumers depend on. The session store
// takes a Provider, not the concrete service, so tests can drive it with a
// fake.
//
// OnSessionChange invokes fn once immediately with the current session
// state (nil when signed out) and again on every subsequent sign-in or
// sign-out. The returned function unsubscribes.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (Credential, error)
	SignIn(ctx context.Context, email, password string) (Credential, error)
	SignOut(ctx context.Context) error
	Resume(ctx context.Context, sessionID string) (Credential, error)
	ResetPassword(ctx context.Context, email string) error
	OnSessionChange(fn func(*Credential)) (unsubscribe func())
}

// Sentinel causes carried inside the typed faults this package returns.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailInUse         = errors.New("email already in use")
	ErrWeakPassword       = errors.New("password too short")
	ErrNotSignedIn        = errors.New("no active session")
)
