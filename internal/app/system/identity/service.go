// internal/app/system/identity/service.go
package identity

import (
	"context"
	"strings"
	"sync"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/gatherpoint/gatherpoint/internal/app/system/normalize"
	"github.com/gatherpoint/gatherpoint/internal/domain/faults"
	"github.com/gatherpoint/gatherpoint/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Options configures the Service.
type Options struct {
	// MinPasswordLength is enforced at sign-up. Zero means the default of 6.
	MinPasswordLength int
}

// Service is the Mongo-backed Provider. It also tracks the process's
// current session, the way a client SDK holds the signed-in user, and
// notifies subscribers on every sign-in and sign-out.
type Service struct {
	accounts *mongo.Collection
	sessions *mongo.Collection
	resets   *mongo.Collection
	log      *zap.Logger

	minPasswordLength int

	mu        sync.Mutex
	current   *Credential
	listeners map[int]func(*Credential)
	nextID    int
}

var _ Provider = (*Service)(nil)

// NewService constructs the identity service on the given database.
func NewService(db *mongo.Database, opts Options, logger *zap.Logger) *Service {
	minLen := opts.MinPasswordLength
	if minLen <= 0 {
		minLen = 6
	}
	return &Service{
		accounts:          db.Collection("accounts"),
		sessions:          db.Collection("sessions"),
		resets:            db.Collection("passwordResets"),
		log:               logger,
		minPasswordLength: minLen,
		listeners:         map[int]func(*Credential){},
	}
}

// SignUp creates an account and signs it in.
func (s *Service) SignUp(ctx context.Context, email, password string) (Credential, error) {
	const op = "identity.SignUp"

	email = normalize.Email(email)
	if email == "" || !strings.Contains(email, "@") {
		return Credential{}, faults.InvalidArgument(op, ErrInvalidCredentials)
	}
	if len(password) < s.minPasswordLength {
		return Credential{}, faults.InvalidArgument(op, ErrWeakPassword)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Credential{}, faults.Unavailable(op, err)
	}

	acct := models.Account{
		ID:           uuid.NewString(),
		Email:        email,
		EmailCI:      email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.accounts.InsertOne(ctx, acct); err != nil {
		if wafflemongo.IsDup(err) {
			return Credential{}, faults.Conflict(op, ErrEmailInUse)
		}
		return Credential{}, faults.FromMongo(op, err)
	}

	return s.openSession(ctx, op, acct)
}

// SignIn verifies the password and opens a session.
func (s *Service) SignIn(ctx context.Context, email, password string) (Credential, error) {
	const op = "identity.SignIn"

	email = normalize.Email(email)

	var acct models.Account
	err := s.accounts.FindOne(ctx, bson.M{"email_ci": email}).Decode(&acct)
	if err == mongo.ErrNoDocuments {
		return Credential{}, faults.PermissionDenied(op, ErrInvalidCredentials)
	}
	if err != nil {
		return Credential{}, faults.FromMongo(op, err)
	}

	if bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(password)) != nil {
		return Credential{}, faults.PermissionDenied(op, ErrInvalidCredentials)
	}

	return s.openSession(ctx, op, acct)
}

// SignOut revokes the current session. Signing out while signed out is a
// no-op, matching the provider contract.
func (s *Service) SignOut(ctx context.Context) error {
	const op = "identity.SignOut"

	s.mu.Lock()
	cred := s.current
	s.mu.Unlock()
	if cred == nil {
		return nil
	}

	now := time.Now().UTC()
	_, err := s.sessions.UpdateByID(ctx, cred.SessionID, bson.M{
		"$set": bson.M{"revoked_at": now},
	})
	if err != nil {
		return faults.FromMongo(op, err)
	}

	s.setCurrent(nil)
	return nil
}

// ResetPassword records a reset request for the given email. Unknown emails
// succeed quietly so the endpoint does not leak which addresses exist.
func (s *Service) ResetPassword(ctx context.Context, email string) error {
	const op = "identity.ResetPassword"

	email = normalize.Email(email)

	err := s.accounts.FindOne(ctx, bson.M{"email_ci": email}).Err()
	if err == mongo.ErrNoDocuments {
		s.log.Info("password reset requested for unknown email")
		return nil
	}
	if err != nil {
		return faults.FromMongo(op, err)
	}

	reset := models.PasswordReset{
		ID:        uuid.NewString(),
		Email:     email,
		Token:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.resets.InsertOne(ctx, reset); err != nil {
		return faults.FromMongo(op, err)
	}

	s.log.Info("password reset recorded", zap.String("reset_id", reset.ID))
	return nil
}

// Resume restores a persisted session by id, the way a client relaunch
// restores its stored sign-in. Revoked or unknown sessions return NotFound.
func (s *Service) Resume(ctx context.Context, sessionID string) (Credential, error) {
	const op = "identity.Resume"

	var sess models.Session
	err := s.sessions.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&sess)
	if err != nil {
		return Credential{}, faults.FromMongo(op, err)
	}
	if sess.RevokedAt != nil {
		return Credential{}, faults.NotFound(op, ErrNotSignedIn)
	}

	var acct models.Account
	if err := s.accounts.FindOne(ctx, bson.M{"_id": sess.AccountID}).Decode(&acct); err != nil {
		return Credential{}, faults.FromMongo(op, err)
	}

	cred := Credential{UserID: acct.ID, Email: acct.Email, SessionID: sess.ID}
	s.setCurrent(&cred)
	return cred, nil
}

// OnSessionChange subscribes fn to session-state changes. fn fires once
// immediately with the current state.
func (s *Service) OnSessionChange(fn func(*Credential)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	current := s.current
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Service) openSession(ctx context.Context, op string, acct models.Account) (Credential, error) {
	sess := models.Session{
		ID:        uuid.NewString(),
		AccountID: acct.ID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.sessions.InsertOne(ctx, sess); err != nil {
		return Credential{}, faults.FromMongo(op, err)
	}

	cred := Credential{UserID: acct.ID, Email: acct.Email, SessionID: sess.ID}
	s.setCurrent(&cred)
	return cred, nil
}

// setCurrent swaps the current credential and notifies listeners outside
// the lock.
func (s *Service) setCurrent(cred *Credential) {
	s.mu.Lock()
	s.current = cred
	fns := make([]func(*Credential), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(cred)
	}
}
