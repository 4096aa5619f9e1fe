package quiz

import (
	"errors"
	"fmt"
)

// ErrMalformedQuiz marks structural validation failures. Callers must not
// install a quiz as a session until Validate passes.
var ErrMalformedQuiz = errors.New("malformed quiz")

// Validate checks a quiz is well-formed: at least one question, every
// question has options, the answer shape matches the kind, and matching
// questions carry exactly one mapping entry per option.
func Validate(q Quiz) error {
	if q.ID == "" {
		return fmt.Errorf("%w: missing id", ErrMalformedQuiz)
	}
	if len(q.Questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrMalformedQuiz)
	}
	for i, qq := range q.Questions {
		if err := validateQuestion(qq); err != nil {
			return fmt.Errorf("%w: question %d: %v", ErrMalformedQuiz, i, err)
		}
	}
	return nil
}

func validateQuestion(q Question) error {
	if !q.Kind.Valid() {
		return fmt.Errorf("unknown kind %q", q.Kind)
	}
	if q.Prompt == "" {
		return errors.New("empty prompt")
	}
	if len(q.Options) == 0 {
		return errors.New("no options")
	}
	if q.Answer.IsZero() {
		return errors.New("missing answer key")
	}
	if !q.Answer.MatchesKind(q.Kind) {
		return fmt.Errorf("answer shape does not match kind %q", q.Kind)
	}
	switch q.Kind {
	case KindSingleChoice:
		if !contains(q.Options, q.Answer.Choice) {
			return fmt.Errorf("answer %q not among options", q.Answer.Choice)
		}
	case KindMultipleChoice:
		for _, c := range q.Answer.Choices {
			if !contains(q.Options, c) {
				return fmt.Errorf("answer %q not among options", c)
			}
		}
	case KindMatching:
		if len(q.Answer.Matches) != len(q.Options) {
			return fmt.Errorf("matching answer has %d entries for %d options",
				len(q.Answer.Matches), len(q.Options))
		}
		for _, opt := range q.Options {
			if _, ok := q.Answer.Matches[opt]; !ok {
				return fmt.Errorf("matching answer missing entry for option %q", opt)
			}
		}
	}
	return nil
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
