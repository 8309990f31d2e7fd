// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/gatherpoint/gatherpoint/internal/app/system/normalize"
	"github.com/gatherpoint/gatherpoint/internal/domain/faults"
	"github.com/gatherpoint/gatherpoint/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store reads and writes user profile documents.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var ErrProfileExists = errors.New("profile already exists for this account")

// Create writes the profile document at sign-up. The document id is the
// account id; profiles are immutable afterward.
func (s *Store) Create(ctx context.Context, accountID string, firstName, lastName, country, birthdate, email string) (models.UserProfile, error) {
	const op = "userstore.Create"

	profile := models.UserProfile{
		ID:        accountID,
		FirstName: normalize.Name(firstName),
		LastName:  normalize.Name(lastName),
		Country:   normalize.Name(country),
		Birthdate: birthdate,
		Email:     normalize.Email(email),
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, profile); err != nil {
		if wafflemongo.IsDup(err) {
			return models.UserProfile{}, faults.Conflict(op, ErrProfileExists)
		}
		return models.UserProfile{}, faults.FromMongo(op, err)
	}
	return profile, nil
}

// GetByID returns the profile for an account id.
func (s *Store) GetByID(ctx context.Context, id string) (models.UserProfile, error) {
	const op = "userstore.GetByID"

	var profile models.UserProfile
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&profile); err != nil {
		return models.UserProfile{}, faults.FromMongo(op, err)
	}
	return profile, nil
}

// ProfileByID adapts GetByID to the session store's ProfileFetcher: a
// missing profile is not an error there, just an absent profile.
func (s *Store) ProfileByID(ctx context.Context, id string) (*models.UserProfile, error) {
	profile, err := s.GetByID(ctx, id)
	if faults.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
