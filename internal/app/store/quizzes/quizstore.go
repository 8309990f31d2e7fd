// internal/app/store/quizzes/quizstore.go
package quizstore

import (
	"context"
	"strconv"
	"time"

	"github.com/gatherpoint/gatherpoint/internal/domain/faults"
	"github.com/gatherpoint/gatherpoint/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store serves quizzes and records attempts. A submission that passes also
// merges the user's course progress (quizScore, isCompleted) — once set,
// isCompleted is never reset.
type Store struct {
	c        *mongo.Collection
	attempts *mongo.Collection
	progress *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:        db.Collection("quizzes"),
		attempts: db.Collection("quizAttempts"),
		progress: db.Collection("userProgress"),
	}
}

// GetByCourse returns the quiz for a course.
func (s *Store) GetByCourse(ctx context.Context, courseID string) (models.Quiz, error) {
	const op = "quizstore.GetByCourse"

	var q models.Quiz
	if err := s.c.FindOne(ctx, bson.M{"courseId": courseID}).Decode(&q); err != nil {
		return models.Quiz{}, faults.FromMongo(op, err)
	}
	return q, nil
}

// SubmitAttempt grades the answers against the course's quiz, appends an
// attempt record, and on a pass merges the user's progress. The attempt id
// carries a millisecond timestamp, so concurrent submissions never collide
// — and duplicates are never reconciled.
func (s *Store) SubmitAttempt(ctx context.Context, userID, courseID string, answers []int) (models.QuizAttempt, error) {
	const op = "quizstore.SubmitAttempt"

	quiz, err := s.GetByCourse(ctx, courseID)
	if err != nil {
		return models.QuizAttempt{}, err
	}

	score, passed := quiz.Grade(answers)
	now := time.Now().UTC()

	attempt := models.QuizAttempt{
		ID:          models.ProgressID(userID, courseID) + "_" + strconv.FormatInt(now.UnixMilli(), 10),
		UserID:      userID,
		CourseID:    courseID,
		QuizID:      quiz.ID,
		Answers:     answers,
		Score:       score,
		Passed:      passed,
		CompletedAt: now,
	}
	if _, err := s.attempts.InsertOne(ctx, attempt); err != nil {
		return models.QuizAttempt{}, faults.FromMongo(op, err)
	}

	if passed {
		id := models.ProgressID(userID, courseID)
		update := bson.M{"$set": bson.M{
			"userId":       userID,
			"courseId":     courseID,
			"quizScore":    score,
			"isCompleted":  true,
			"lastAccessed": now,
		}}
		opts := options.Update().SetUpsert(true)
		if _, err := s.progress.UpdateOne(ctx, bson.M{"_id": id}, update, opts); err != nil {
			return models.QuizAttempt{}, faults.FromMongo(op, err)
		}
	}

	return attempt, nil
}

// AttemptsByUser returns a user's attempts for a course, newest first.
func (s *Store) AttemptsByUser(ctx context.Context, userID, courseID string) ([]models.QuizAttempt, error) {
	const op = "quizstore.AttemptsByUser"

	opts := options.Find().SetSort(bson.D{{Key: "completedAt", Value: -1}})
	cur, err := s.attempts.Find(ctx, bson.M{"userId": userID, "courseId": courseID}, opts)
	if err != nil {
		return nil, faults.FromMongo(op, err)
	}
	defer cur.Close(ctx)

	attempts := []models.QuizAttempt{}
	if err := cur.All(ctx, &attempts); err != nil {
		return nil, faults.FromMongo(op, err)
	}
	return attempts, nil
}
