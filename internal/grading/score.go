package grading

import (
	"github.com/Rohitkumarvora/examprep/internal/quiz"
)

// Score computes the final percentage in [0,100] for a finished session.
// Answers are keyed by question index; an absent entry counts as incorrect.
// The value is unrounded; display rounding is the caller's concern.
func Score(q quiz.Quiz, answers map[int]quiz.Answer) float64 {
	if len(q.Questions) == 0 {
		return 0
	}
	correct := 0
	for i, qq := range q.Questions {
		if Correct(qq, answers[i]) {
			correct++
		}
	}
	return float64(correct) / float64(len(q.Questions)) * 100
}
