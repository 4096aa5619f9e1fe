package session

import (
	"context"
	"errors"

	"github.com/Rohitkumarvora/examprep/internal/quiz"
)

var (
	// ErrInvalidAnswerShape means a submitted answer does not match the
	// question's kind (e.g. a bare choice for a matching question). A
	// contract violation by the caller; state is never mutated.
	ErrInvalidAnswerShape = errors.New("answer shape does not match question kind")

	// ErrAnswerIncomplete means reveal was requested before the current
	// answer satisfied the completeness rule. Expected and recoverable.
	ErrAnswerIncomplete = errors.New("answer incomplete")
)

// State is the durable progress record for one quiz. The maps are sparse:
// an absent index means unanswered / not revealed.
type State struct {
	CurrentIndex int                 `json:"current_index"`
	Answers      map[int]quiz.Answer `json:"answers"`
	Revealed     map[int]bool        `json:"revealed"`
	Finished     bool                `json:"finished"`
}

// NewState is the state of a freshly entered quiz.
func NewState() State {
	return State{
		Answers:  map[int]quiz.Answer{},
		Revealed: map[int]bool{},
	}
}

// Store is the durable session boundary, keyed by quiz id. Load never fails
// on absence: a missing or unreadable record is a fresh session. Writes are
// last-write-wins; the single-writer event model does the sequencing.
type Store interface {
	Load(ctx context.Context, quizID string) (State, error)
	Save(ctx context.Context, quizID string, st State) error
	Reset(ctx context.Context, quizID string) error
}

// normalize repairs nil maps after deserialization so callers can index
// freely.
func normalize(st State) State {
	if st.Answers == nil {
		st.Answers = map[int]quiz.Answer{}
	}
	if st.Revealed == nil {
		st.Revealed = map[int]bool{}
	}
	return st
}
