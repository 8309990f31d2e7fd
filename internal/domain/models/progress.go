// internal/domain/models/progress.go
package models

import "time"

// UserProgress tracks one user's progress through one course. The document
// id is the composite "userID_courseID". Writes are merges: fields a caller
// does not set are preserved.
type UserProgress struct {
	ID              string    `bson:"_id" json:"-"`
	UserID          string    `bson:"userId" json:"userId"`
	CourseID        string    `bson:"courseId" json:"courseId"`
	CurrentVideoID  string    `bson:"currentVideoId,omitempty" json:"currentVideoId,omitempty"`
	CompletedVideos []string  `bson:"completedVideos" json:"completedVideos"`
	QuizScore       *float64  `bson:"quizScore,omitempty" json:"quizScore,omitempty"`
	IsCompleted     bool      `bson:"isCompleted" json:"isCompleted"`
	LastAccessed    time.Time `bson:"lastAccessed" json:"lastAccessed"`
	TotalWatchTime  int       `bson:"totalWatchTime" json:"totalWatchTime"` // seconds
}

// ProgressID returns the composite document id for (userID, courseID).
func ProgressID(userID, courseID string) string {
	return userID + "_" + courseID
}
