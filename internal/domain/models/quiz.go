// internal/domain/models/quiz.go
package models

import "time"

// QuizQuestion holds one multiple-choice question. CorrectAnswer is the
// index into Options.
type QuizQuestion struct {
	ID            string   `bson:"id" json:"id"`
	Question      string   `bson:"question" json:"question"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer int      `bson:"correctAnswer" json:"correctAnswer"`
	Explanation   string   `bson:"explanation,omitempty" json:"explanation,omitempty"`
}

// Quiz is the assessment for a course (one quiz per course).
type Quiz struct {
	ID           string         `bson:"_id" json:"id"`
	CourseID     string         `bson:"courseId" json:"courseId"`
	Questions    []QuizQuestion `bson:"questions" json:"questions"`
	PassingScore float64        `bson:"passingScore" json:"passingScore"` // percentage
}

// QuizAttempt is an append-only record of one quiz submission. The document
// id is "userID_courseID_millis", so concurrent submissions never collide
// and are never deduplicated.
type QuizAttempt struct {
	ID          string    `bson:"_id" json:"-"`
	UserID      string    `bson:"userId" json:"userId"`
	CourseID    string    `bson:"courseId" json:"courseId"`
	QuizID      string    `bson:"quizId" json:"quizId"`
	Answers     []int     `bson:"answers" json:"answers"` // selected option indices
	Score       float64   `bson:"score" json:"score"`
	Passed      bool      `bson:"passed" json:"passed"`
	CompletedAt time.Time `bson:"completedAt" json:"completedAt"`
}
