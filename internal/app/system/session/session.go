// Package session holds the client-facing session state: who is signed in
// right now and whether that is known yet.
//
// The Store subscribes to the identity provider and mirrors its push
// notifications into an explicit state machine:
//
//	Uninitialized -> Subscribe() -> Loading -> first notification ->
//	ReadyAuthenticated | ReadyUnauthenticated
//
// After the first notification, transitions are driven solely by the
// provider; Logout is the only externally invoked trigger. Dependencies are
// injected so tests can drive the machine with a fake provider.
package session

import (
	"context"
	"strings"
	"sync"

	"github.com/gatherpoint/gatherpoint/internal/app/system/identity"
	"github.com/gatherpoint/gatherpoint/internal/app/system/timeouts"
	"github.com/gatherpoint/gatherpoint/internal/domain/models"
	"go.uber.org/zap"
)

// State is the session store's lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReadyAuthenticated
	StateReadyUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReadyAuthenticated:
		return "ready-authenticated"
	case StateReadyUnauthenticated:
		return "ready-unauthenticated"
	default:
		return "uninitialized"
	}
}

// User is the signed-in user as the session store sees it. Profile is nil
// when the profile fetch failed; that degrades the session, it does not
// fail it.
type User struct {
	ID      string
	Email   string
	Name    string
	Profile *models.UserProfile
}

// ProfileFetcher loads the profile document for an account id.
type ProfileFetcher interface {
	ProfileByID(ctx context.Context, id string) (*models.UserProfile, error)
}

// Store is the session state machine.
type Store struct {
	provider identity.Provider
	profiles ProfileFetcher
	log      *zap.Logger

	mu          sync.Mutex
	state       State
	user        *User
	unsubscribe func()
}

// NewStore constructs an unsubscribed store in StateUninitialized.
func NewStore(provider identity.Provider, profiles ProfileFetcher, logger *zap.Logger) *Store {
	return &Store{
		provider: provider,
		profiles: profiles,
		log:      logger,
		state:    StateUninitialized,
	}
}

// Subscribe attaches to the provider. The provider fires the callback once
// immediately with current session state, which moves the store out of
// Loading. Subsequent notifications keep the store in sync. Calling
// Subscribe more than once is a no-op.
func (s *Store) Subscribe() {
	s.mu.Lock()
	if s.state != StateUninitialized {
		s.mu.Unlock()
		return
	}
	s.state = StateLoading
	s.mu.Unlock()

	s.unsubscribe = s.provider.OnSessionChange(s.onSessionChange)
}

// Close detaches from the provider.
func (s *Store) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Snapshot returns the current state and user. The user is nil unless the
// state is ReadyAuthenticated.
func (s *Store) Snapshot() (State, *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.user
}

// Logout signs out via the provider. The resulting state change arrives
// through the provider's notification, not directly here.
func (s *Store) Logout(ctx context.Context) error {
	return s.provider.SignOut(ctx)
}

func (s *Store) onSessionChange(cred *identity.Credential) {
	if cred == nil {
		s.mu.Lock()
		s.state = StateReadyUnauthenticated
		s.user = nil
		s.mu.Unlock()
		return
	}

	u := &User{
		ID:    cred.UserID,
		Email: cred.Email,
		Name:  displayName(cred.Email),
	}

	// Profile fetch is a side effect of the transition; failure degrades
	// to an authenticated user with no profile. No retry.
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Short())
	defer cancel()
	profile, err := s.profiles.ProfileByID(ctx, cred.UserID)
	if err != nil {
		s.log.Warn("profile fetch failed during sign-in",
			zap.String("user_id", cred.UserID),
			zap.Error(err))
	} else {
		u.Profile = profile
		if profile != nil && profile.FirstName != "" {
			u.Name = strings.TrimSpace(profile.FirstName + " " + profile.LastName)
		}
	}

	s.mu.Lock()
	s.state = StateReadyAuthenticated
	s.user = u
	s.mu.Unlock()
}

// displayName falls back to the email local part, then a generic label.
func displayName(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	if email != "" {
		return email
	}
	return "User"
}
