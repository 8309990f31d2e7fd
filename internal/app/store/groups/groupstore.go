// internal/app/store/groups/groupstore.go
package groupstore

import (
	"context"
	"errors"
	"time"

	"github.com/gatherpoint/gatherpoint/internal/app/system/normalize"
	"github.com/gatherpoint/gatherpoint/internal/domain/faults"
	"github.com/gatherpoint/gatherpoint/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store reads and writes group documents.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("groups")}
}

var errBadCategory = errors.New(`category must be "ministries" or "forums"`)

// List returns all groups, newest first.
func (s *Store) List(ctx context.Context) ([]models.Group, error) {
	const op = "groupstore.List"

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, faults.FromMongo(op, err)
	}
	defer cur.Close(ctx)

	groups := []models.Group{}
	if err := cur.All(ctx, &groups); err != nil {
		return nil, faults.FromMongo(op, err)
	}
	return groups, nil
}

// GetByID returns one group.
func (s *Store) GetByID(ctx context.Context, id string) (models.Group, error) {
	const op = "groupstore.GetByID"

	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		return models.Group{}, faults.FromMongo(op, err)
	}
	return g, nil
}

// Create inserts a new group with zeroed counters.
func (s *Store) Create(ctx context.Context, title, description, image, category, country, language, createdBy string) (models.Group, error) {
	const op = "groupstore.Create"

	category = normalize.Category(category)
	if category != models.CategoryMinistries && category != models.CategoryForums {
		return models.Group{}, faults.InvalidArgument(op, errBadCategory)
	}

	g := models.Group{
		ID:          primitive.NewObjectID().Hex(),
		Title:       normalize.Name(title),
		Description: description,
		Image:       image,
		Category:    category,
		Country:     country,
		Language:    language,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   createdBy,
	}
	if _, err := s.c.InsertOne(ctx, g); err != nil {
		return models.Group{}, faults.FromMongo(op, err)
	}
	return g, nil
}
