// internal/domain/models/quiz_grade.go
package models

// Grade scores a set of submitted answer indices against the quiz.
//
// Only positions present in both the answers slice and the questions slice
// are compared: a short answers slice scores the missing questions as
// wrong, and extra answers are ignored. The score is a percentage of the
// question count, and passing means score >= PassingScore.
func (q Quiz) Grade(answers []int) (score float64, passed bool) {
	if len(q.Questions) == 0 {
		return 0, 0 >= q.PassingScore
	}

	correct := 0
	for i, answer := range answers {
		if i >= len(q.Questions) {
			break
		}
		if answer == q.Questions[i].CorrectAnswer {
			correct++
		}
	}

	score = float64(correct) / float64(len(q.Questions)) * 100
	return score, score >= q.PassingScore
}
