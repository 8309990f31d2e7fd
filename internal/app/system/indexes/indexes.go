// Package indexes creates the MongoDB indexes the stores rely on. Called
// once at startup from the EnsureSchema hook.
package indexes

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Ensure creates all indexes. Index creation is idempotent; existing
// indexes with the same definition are left alone.
func Ensure(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	specs := []struct {
		collection string
		models     []mongo.IndexModel
	}{
		{"accounts", []mongo.IndexModel{
			{Keys: bson.D{{Key: "email_ci", Value: 1}}, Options: options.Index().SetUnique(true)},
		}},
		{"sessions", []mongo.IndexModel{
			{Keys: bson.D{{Key: "account_id", Value: 1}}},
		}},
		{"groups", []mongo.IndexModel{
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		}},
		{"userGroupMemberships", []mongo.IndexModel{
			{Keys: bson.D{{Key: "userId", Value: 1}}},
			{Keys: bson.D{{Key: "groupId", Value: 1}}},
		}},
		{"discussions", []mongo.IndexModel{
			{Keys: bson.D{{Key: "groupId", Value: 1}, {Key: "createdAt", Value: -1}}},
		}},
		{"replies", []mongo.IndexModel{
			{Keys: bson.D{{Key: "discussionId", Value: 1}, {Key: "createdAt", Value: 1}}},
		}},
		{"courses", []mongo.IndexModel{
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		}},
		{"quizzes", []mongo.IndexModel{
			{Keys: bson.D{{Key: "courseId", Value: 1}}},
		}},
		{"userProgress", []mongo.IndexModel{
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "isCompleted", Value: 1}}},
		}},
		{"quizAttempts", []mongo.IndexModel{
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "courseId", Value: 1}}},
		}},
		{"videos", []mongo.IndexModel{
			{Keys: bson.D{{Key: "title_ci", Value: 1}}},
		}},
	}

	for _, spec := range specs {
		if _, err := db.Collection(spec.collection).Indexes().CreateMany(ctx, spec.models); err != nil {
			logger.Error("index creation failed",
				zap.String("collection", spec.collection),
				zap.Error(err))
			return err
		}
	}

	logger.Info("indexes ensured", zap.Int("collections", len(specs)))
	return nil
}
