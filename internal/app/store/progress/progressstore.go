// internal/app/store/progress/progressstore.go
package progressstore

import (
	"context"
	"time"

	"github.com/gatherpoint/gatherpoint/internal/domain/faults"
	"github.com/gatherpoint/gatherpoint/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store tracks per-user course progress. All writes are merges keyed by the
// composite "userID_courseID" id, so partial updates never clobber fields
// they do not name.
type Store struct {
	c       *mongo.Collection
	courses *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:       db.Collection("userProgress"),
		courses: db.Collection("courses"),
	}
}

// Get returns the progress record for (userID, courseID). A user who has
// never touched the course gets a zero-value record, not an error.
func (s *Store) Get(ctx context.Context, userID, courseID string) (models.UserProgress, error) {
	const op = "progressstore.Get"

	var p models.UserProgress
	err := s.c.FindOne(ctx, bson.M{"_id": models.ProgressID(userID, courseID)}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return models.UserProgress{
			ID:              models.ProgressID(userID, courseID),
			UserID:          userID,
			CourseID:        courseID,
			CompletedVideos: []string{},
		}, nil
	}
	if err != nil {
		return models.UserProgress{}, faults.FromMongo(op, err)
	}
	return p, nil
}

// Update merges the given fields into the progress record, creating it if
// absent. lastAccessed is always refreshed.
func (s *Store) Update(ctx context.Context, userID, courseID string, fields bson.M) error {
	const op = "progressstore.Update"

	set := bson.M{
		"userId":       userID,
		"courseId":     courseID,
		"lastAccessed": time.Now().UTC(),
	}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": models.ProgressID(userID, courseID)}, bson.M{"$set": set}, opts)
	if err != nil {
		return faults.FromMongo(op, err)
	}
	return nil
}

// MarkVideoCompleted appends the video to the user's completed list for the
// course. Marking the same video twice is a no-op.
func (s *Store) MarkVideoCompleted(ctx context.Context, userID, courseID, videoID string) error {
	p, err := s.Get(ctx, userID, courseID)
	if err != nil {
		return err
	}

	for _, id := range p.CompletedVideos {
		if id == videoID {
			return nil
		}
	}

	return s.Update(ctx, userID, courseID, bson.M{
		"completedVideos": append(p.CompletedVideos, videoID),
		"currentVideoId":  videoID,
	})
}

// CompletedCourses returns the courses the user has completed, resolved
// against the course collection. Progress rows whose course has since been
// deleted are skipped.
func (s *Store) CompletedCourses(ctx context.Context, userID string) ([]models.Course, error) {
	const op = "progressstore.CompletedCourses"

	cur, err := s.c.Find(ctx, bson.M{"userId": userID, "isCompleted": true})
	if err != nil {
		return nil, faults.FromMongo(op, err)
	}
	defer cur.Close(ctx)

	var rows []models.UserProgress
	if err := cur.All(ctx, &rows); err != nil {
		return nil, faults.FromMongo(op, err)
	}

	courses := make([]models.Course, 0, len(rows))
	for _, row := range rows {
		var course models.Course
		err := s.courses.FindOne(ctx, bson.M{"_id": row.CourseID}).Decode(&course)
		if err == mongo.ErrNoDocuments {
			continue
		}
		if err != nil {
			return nil, faults.FromMongo(op, err)
		}
		courses = append(courses, course)
	}
	return courses, nil
}
