// internal/domain/models/course.go
package models

import "time"

// Course difficulty levels.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// CourseVideo is a lesson embedded in a Course, in playback order.
type CourseVideo struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	VideoURL    string `bson:"videoUrl" json:"videoUrl"`
	Duration    int    `bson:"duration" json:"duration"` // seconds
	Thumbnail   string `bson:"thumbnail" json:"thumbnail"`
}

// Course is a learning course with an ordered list of embedded videos.
type Course struct {
	ID            string        `bson:"_id" json:"id"`
	Title         string        `bson:"title" json:"title"`
	Description   string        `bson:"description" json:"description"`
	Thumbnail     string        `bson:"thumbnail" json:"thumbnail"`
	Instructor    string        `bson:"instructor" json:"instructor"`
	Category      string        `bson:"category" json:"category"`
	Difficulty    string        `bson:"difficulty" json:"difficulty"` // beginner | intermediate | advanced
	Videos        []CourseVideo `bson:"videos" json:"videos"`
	TotalDuration int           `bson:"totalDuration" json:"totalDuration"` // seconds
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}
