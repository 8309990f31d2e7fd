package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/gatherpoint/gatherpoint/internal/app/system/identity"
	"github.com/gatherpoint/gatherpoint/internal/app/system/session"
	"github.com/gatherpoint/gatherpoint/internal/domain/models"
	"go.uber.org/zap"
)

// fakeProvider drives the session store without a database.
type fakeProvider struct {
	mu        sync.Mutex
	current   *identity.Credential
	listeners []func(*identity.Credential)
}

func (f *fakeProvider) SignUp(ctx context.Context, email, password string) (identity.Credential, error) {
	return f.signIn(email)
}

func (f *fakeProvider) SignIn(ctx context.Context, email, password string) (identity.Credential, error) {
	return f.signIn(email)
}

func (f *fakeProvider) signIn(email string) (identity.Credential, error) {
	cred := identity.Credential{UserID: "uid-" + email, Email: email, SessionID: "sess"}
	f.mu.Lock()
	f.current = &cred
	fns := append([]func(*identity.Credential){}, f.listeners...)
	f.mu.Unlock()
	for _, fn := range fns {
		fn(&cred)
	}
	return cred, nil
}

func (f *fakeProvider) SignOut(ctx context.Context) error {
	f.mu.Lock()
	f.current = nil
	fns := append([]func(*identity.Credential){}, f.listeners...)
	f.mu.Unlock()
	for _, fn := range fns {
		fn(nil)
	}
	return nil
}

func (f *fakeProvider) Resume(ctx context.Context, sessionID string) (identity.Credential, error) {
	f.mu.Lock()
	current := f.current
	f.mu.Unlock()
	if current == nil {
		return identity.Credential{}, errors.New("no session")
	}
	return *current, nil
}

func (f *fakeProvider) ResetPassword(ctx context.Context, email string) error { return nil }

func (f *fakeProvider) OnSessionChange(fn func(*identity.Credential)) func() {
	f.mu.Lock()
	f.listeners = append(f.listeners, fn)
	current := f.current
	f.mu.Unlock()
	fn(current)
	return func() {}
}

// fakeProfiles returns a canned profile or error.
type fakeProfiles struct {
	profile *models.UserProfile
	err     error
}

func (f *fakeProfiles) ProfileByID(ctx context.Context, id string) (*models.UserProfile, error) {
	return f.profile, f.err
}

func TestSubscribe_SignedOut(t *testing.T) {
	store := session.NewStore(&fakeProvider{}, &fakeProfiles{}, zap.NewNop())

	if st, _ := store.Snapshot(); st != session.StateUninitialized {
		t.Fatalf("initial state = %v, want uninitialized", st)
	}

	store.Subscribe()

	st, u := store.Snapshot()
	if st != session.StateReadyUnauthenticated {
		t.Errorf("state = %v, want ready-unauthenticated", st)
	}
	if u != nil {
		t.Errorf("user = %+v, want nil", u)
	}
}

func TestSubscribe_PersistedSession(t *testing.T) {
	// A provider that already has a session when the store subscribes
	// models an app relaunch with a stored sign-in.
	p := &fakeProvider{current: &identity.Credential{UserID: "uid-1", Email: "sarah@example.com"}}
	profiles := &fakeProfiles{profile: &models.UserProfile{
		ID: "uid-1", FirstName: "Sarah", LastName: "Johnson",
	}}
	store := session.NewStore(p, profiles, zap.NewNop())

	store.Subscribe()

	st, u := store.Snapshot()
	if st != session.StateReadyAuthenticated {
		t.Fatalf("state = %v, want ready-authenticated", st)
	}
	if u == nil || u.Profile == nil {
		t.Fatalf("user = %+v, want user with profile", u)
	}
	if u.Name != "Sarah Johnson" {
		t.Errorf("Name = %q, want %q", u.Name, "Sarah Johnson")
	}
}

func TestSignInThenLogout(t *testing.T) {
	p := &fakeProvider{}
	store := session.NewStore(p, &fakeProfiles{}, zap.NewNop())
	store.Subscribe()

	if _, err := p.SignIn(context.Background(), "mike@example.com", "pw"); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	st, u := store.Snapshot()
	if st != session.StateReadyAuthenticated || u == nil {
		t.Fatalf("after sign-in: state=%v user=%+v", st, u)
	}
	if u.Name != "mike" {
		t.Errorf("Name = %q, want email local part %q", u.Name, "mike")
	}

	if err := store.Logout(context.Background()); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	st, u = store.Snapshot()
	if st != session.StateReadyUnauthenticated || u != nil {
		t.Errorf("after logout: state=%v user=%+v, want ready-unauthenticated/nil", st, u)
	}
}

func TestProfileFetchFailureDegrades(t *testing.T) {
	p := &fakeProvider{current: &identity.Credential{UserID: "uid-1", Email: "sarah@example.com"}}
	profiles := &fakeProfiles{err: errors.New("store unreachable")}
	store := session.NewStore(p, profiles, zap.NewNop())

	store.Subscribe()

	st, u := store.Snapshot()
	if st != session.StateReadyAuthenticated {
		t.Fatalf("state = %v, want ready-authenticated despite profile failure", st)
	}
	if u == nil {
		t.Fatal("user is nil, want authenticated user")
	}
	if u.Profile != nil {
		t.Errorf("Profile = %+v, want nil", u.Profile)
	}
}

func TestSubscribeTwiceIsNoop(t *testing.T) {
	p := &fakeProvider{}
	store := session.NewStore(p, &fakeProfiles{}, zap.NewNop())
	store.Subscribe()
	store.Subscribe()

	if len(p.listeners) != 1 {
		t.Errorf("listeners = %d, want 1", len(p.listeners))
	}
}
