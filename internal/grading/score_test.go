package grading

import (
	"math"
	"testing"

	"github.com/Rohitkumarvora/examprep/internal/quiz"
)

func threeSingleQuiz() quiz.Quiz {
	return quiz.Quiz{
		ID:    "t3",
		Title: "three",
		Questions: []quiz.Question{
			{Prompt: "q1", Options: []string{"a", "b"}, Kind: quiz.KindSingleChoice, Answer: quiz.Answer{Choice: "a"}},
			{Prompt: "q2", Options: []string{"a", "b"}, Kind: quiz.KindSingleChoice, Answer: quiz.Answer{Choice: "b"}},
			{Prompt: "q3", Options: []string{"a", "b"}, Kind: quiz.KindSingleChoice, Answer: quiz.Answer{Choice: "a"}},
		},
	}
}

func TestScoreNoAnswersIsZero(t *testing.T) {
	if got := Score(threeSingleQuiz(), map[int]quiz.Answer{}); got != 0 {
		t.Fatalf("score=%v want 0", got)
	}
}

func TestScoreAllCorrectIsHundred(t *testing.T) {
	got := Score(threeSingleQuiz(), map[int]quiz.Answer{
		0: {Choice: "a"},
		1: {Choice: "b"},
		2: {Choice: "a"},
	})
	if got != 100 {
		t.Fatalf("score=%v want 100", got)
	}
}

// One right, one wrong, one unanswered: exactly 1/3 of 100, unrounded.
func TestScoreOneOfThree(t *testing.T) {
	got := Score(threeSingleQuiz(), map[int]quiz.Answer{
		0: {Choice: "a"},
		1: {Choice: "a"},
	})
	want := 100.0 / 3.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("score=%v want %v", got, want)
	}
}

func TestScorePartialMatchingDoesNotBleed(t *testing.T) {
	q := quiz.Quiz{
		ID: "mix",
		Questions: []quiz.Question{
			{Prompt: "m", Options: []string{"X", "Y"}, Kind: quiz.KindMatching,
				Answer: quiz.Answer{Matches: map[string]string{"X": "1", "Y": "2"}}},
			{Prompt: "s", Options: []string{"a", "b"}, Kind: quiz.KindSingleChoice,
				Answer: quiz.Answer{Choice: "a"}},
		},
	}
	// Half-right matching scores zero for that question; the correct
	// single-choice next to it still counts.
	got := Score(q, map[int]quiz.Answer{
		0: {Matches: map[string]string{"X": "1", "Y": "wrong"}},
		1: {Choice: "a"},
	})
	if got != 50 {
		t.Fatalf("score=%v want 50", got)
	}
}

func TestScoreEmptyQuiz(t *testing.T) {
	if got := Score(quiz.Quiz{}, nil); got != 0 {
		t.Fatalf("score=%v want 0", got)
	}
}
