package models

import (
	"math"
	"testing"
)

func threeQuestionQuiz(passingScore float64) Quiz {
	return Quiz{
		ID:       "quiz",
		CourseID: "course",
		Questions: []QuizQuestion{
			{ID: "q1", Options: []string{"a", "b"}, CorrectAnswer: 1},
			{ID: "q2", Options: []string{"a", "b"}, CorrectAnswer: 0},
			{ID: "q3", Options: []string{"a", "b"}, CorrectAnswer: 1},
		},
		PassingScore: passingScore,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestGrade(t *testing.T) {
	quiz := threeQuestionQuiz(70)

	tests := []struct {
		name       string
		answers    []int
		wantScore  float64
		wantPassed bool
	}{
		{"all correct", []int{1, 0, 1}, 100, true},
		{"two of three", []int{1, 0, 0}, 66.67, false},
		{"none correct", []int{0, 1, 0}, 0, false},
		{"short answers score missing as wrong", []int{1, 0}, 66.67, false},
		{"empty answers", []int{}, 0, false},
		{"extra answers ignored", []int{1, 0, 1, 1, 1}, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, passed := quiz.Grade(tt.answers)
			if !almostEqual(score, tt.wantScore) {
				t.Errorf("score = %v, want %v", score, tt.wantScore)
			}
			if passed != tt.wantPassed {
				t.Errorf("passed = %v, want %v", passed, tt.wantPassed)
			}
		})
	}
}

func TestGrade_ExactThreshold(t *testing.T) {
	quiz := threeQuestionQuiz(100.0 * 2 / 3)

	score, passed := quiz.Grade([]int{1, 0, 0})
	if !almostEqual(score, 100.0*2/3) {
		t.Fatalf("score = %v, want %v", score, 100.0*2/3)
	}
	if !passed {
		t.Errorf("score equal to the passing score must pass")
	}
}

func TestGrade_NoQuestions(t *testing.T) {
	quiz := Quiz{PassingScore: 70}

	score, passed := quiz.Grade([]int{1, 2, 3})
	if score != 0 {
		t.Errorf("score = %v, want 0", score)
	}
	if passed {
		t.Errorf("an empty quiz with a positive passing score must not pass")
	}
}

func TestProgressID(t *testing.T) {
	if got := ProgressID("u1", "c2"); got != "u1_c2" {
		t.Errorf("ProgressID = %q, want %q", got, "u1_c2")
	}
}
