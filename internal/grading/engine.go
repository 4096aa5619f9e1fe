package grading

import (
	"github.com/Rohitkumarvora/examprep/internal/quiz"
)

// Strategy holds the completeness and correctness rules for one question
// kind. Strategies are pure; a zero-value submitted answer is simply
// incomplete/incorrect, never an error.
type Strategy interface {
	// Complete reports whether the answer is filled in enough for its
	// correctness to be revealed.
	Complete(optionCount int, a quiz.Answer) bool
	// Correct compares a submitted answer against the key.
	Correct(key, submitted quiz.Answer) bool
}

var strategies = map[quiz.Kind]Strategy{
	quiz.KindSingleChoice:   singleChoiceStrategy{},
	quiz.KindMultipleChoice: multiChoiceStrategy{},
	quiz.KindMatching:       matchingStrategy{},
}

// For returns the strategy for a kind, or nil for unknown kinds.
func For(k quiz.Kind) Strategy { return strategies[k] }

// Complete applies the question's kind strategy to the submitted answer.
func Complete(q quiz.Question, a quiz.Answer) bool {
	s := For(q.Kind)
	if s == nil {
		return false
	}
	return s.Complete(len(q.Options), a)
}

// Correct applies the question's kind strategy against its answer key.
func Correct(q quiz.Question, a quiz.Answer) bool {
	s := For(q.Kind)
	if s == nil {
		return false
	}
	return s.Correct(q.Answer, a)
}

type singleChoiceStrategy struct{}

func (singleChoiceStrategy) Complete(_ int, a quiz.Answer) bool {
	return a.Choice != ""
}

func (singleChoiceStrategy) Correct(key, submitted quiz.Answer) bool {
	return submitted.Choice != "" && submitted.Choice == key.Choice
}

type multiChoiceStrategy struct{}

func (multiChoiceStrategy) Complete(_ int, a quiz.Answer) bool {
	return len(a.Choices) > 0
}

// Correct is order-insensitive set equality; duplicates in the submission
// collapse, so ["A","A"] never equals ["A","B"].
func (multiChoiceStrategy) Correct(key, submitted quiz.Answer) bool {
	return setEqual(toSet(submitted.Choices), toSet(key.Choices))
}

type matchingStrategy struct{}

// Complete requires every option to have a chosen term: no partial credit
// means no partial reveal either.
func (matchingStrategy) Complete(optionCount int, a quiz.Answer) bool {
	return optionCount > 0 && len(a.Matches) == optionCount
}

func (matchingStrategy) Correct(key, submitted quiz.Answer) bool {
	if len(key.Matches) == 0 || len(submitted.Matches) != len(key.Matches) {
		return false
	}
	for k, want := range key.Matches {
		if submitted.Matches[k] != want {
			return false
		}
	}
	return true
}

func toSet(ss []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ss))
	for _, s := range ss {
		m[s] = struct{}{}
	}
	return m
}

func setEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
