// internal/app/store/videos/videostore.go
package videostore

import (
	"context"

	"github.com/gatherpoint/gatherpoint/internal/domain/faults"
	"github.com/gatherpoint/gatherpoint/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store reads the standalone watch catalog.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("videos")}
}

// List returns all watch videos ordered by title.
func (s *Store) List(ctx context.Context) ([]models.WatchVideo, error) {
	const op = "videostore.List"

	opts := options.Find().SetSort(bson.D{{Key: "title_ci", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, faults.FromMongo(op, err)
	}
	defer cur.Close(ctx)

	videos := []models.WatchVideo{}
	if err := cur.All(ctx, &videos); err != nil {
		return nil, faults.FromMongo(op, err)
	}
	return videos, nil
}
