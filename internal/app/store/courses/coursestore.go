// internal/app/store/courses/coursestore.go
package coursestore

import (
	"context"

	"github.com/gatherpoint/gatherpoint/internal/domain/faults"
	"github.com/gatherpoint/gatherpoint/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store reads the course catalog. Courses are authored out of band; the
// API only serves them.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("courses")}
}

// List returns all courses, newest first.
func (s *Store) List(ctx context.Context) ([]models.Course, error) {
	const op = "coursestore.List"

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, faults.FromMongo(op, err)
	}
	defer cur.Close(ctx)

	courses := []models.Course{}
	if err := cur.All(ctx, &courses); err != nil {
		return nil, faults.FromMongo(op, err)
	}
	return courses, nil
}

// GetByID returns one course with its embedded videos.
func (s *Store) GetByID(ctx context.Context, id string) (models.Course, error) {
	const op = "coursestore.GetByID"

	var c models.Course
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return models.Course{}, faults.FromMongo(op, err)
	}
	return c, nil
}
