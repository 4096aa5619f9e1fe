package session

import (
	"context"
	"fmt"

	"github.com/Rohitkumarvora/examprep/internal/grading"
	"github.com/Rohitkumarvora/examprep/internal/quiz"
)

// Engine drives one user's progress through one quiz: navigation, answer
// submission, reveal gating, finish, and restart. All state lives in the
// Store; the engine itself is stateless and safe to rebuild per request.
type Engine struct {
	quiz  quiz.Quiz
	store Store
}

// NewEngine binds a quiz to a session store. The quiz must validate; a
// malformed quiz never becomes a session.
func NewEngine(q quiz.Quiz, store Store) (*Engine, error) {
	if err := quiz.Validate(q); err != nil {
		return nil, err
	}
	return &Engine{quiz: q, store: store}, nil
}

// Quiz returns the bound quiz, answer keys included.
func (e *Engine) Quiz() quiz.Quiz { return e.quiz }

// State loads the current session state, a fresh one if none is stored.
// A persisted index that no longer fits the question count (e.g. the quiz
// shrank) is clamped to the last question.
func (e *Engine) State(ctx context.Context) (State, error) {
	st, err := e.store.Load(ctx, e.quiz.ID)
	if err != nil {
		return State{}, err
	}
	if max := len(e.quiz.Questions) - 1; st.CurrentIndex > max {
		st.CurrentIndex = max
	}
	return st, nil
}

// GoTo moves the current index by direction (+1 or -1). A move that would
// leave [0, N-1] is silently ignored: the boundary is a disabled button,
// not an error.
func (e *Engine) GoTo(ctx context.Context, direction int) (State, error) {
	st, err := e.State(ctx)
	if err != nil {
		return State{}, err
	}
	next := st.CurrentIndex + direction
	if next < 0 || next >= len(e.quiz.Questions) {
		return st, nil
	}
	st.CurrentIndex = next
	if err := e.store.Save(ctx, e.quiz.ID, st); err != nil {
		return State{}, err
	}
	return st, nil
}

// SubmitAnswer records an answer for the question at index. The answer's
// shape must match the question's kind; a mismatch is a contract violation
// and leaves state untouched.
func (e *Engine) SubmitAnswer(ctx context.Context, index int, a quiz.Answer) (State, error) {
	q, err := e.question(index)
	if err != nil {
		return State{}, err
	}
	if !a.MatchesKind(q.Kind) {
		return State{}, fmt.Errorf("%w: question %d expects %s", ErrInvalidAnswerShape, index, q.Kind)
	}
	st, err := e.State(ctx)
	if err != nil {
		return State{}, err
	}
	st.Answers[index] = a
	if err := e.store.Save(ctx, e.quiz.ID, st); err != nil {
		return State{}, err
	}
	return st, nil
}

// RevealResult is what the reveal action discloses for one question.
type RevealResult struct {
	Correct     bool        `json:"correct"`
	Answer      quiz.Answer `json:"answer"`
	Explanation string      `json:"explanation,omitempty"`
	State       State       `json:"state"`
}

// Reveal marks the question revealed and returns its verdict, key and
// explanation. The current answer must be complete first. Revealing an
// already-revealed question is a no-op that returns the same verdict.
func (e *Engine) Reveal(ctx context.Context, index int) (RevealResult, error) {
	q, err := e.question(index)
	if err != nil {
		return RevealResult{}, err
	}
	st, err := e.State(ctx)
	if err != nil {
		return RevealResult{}, err
	}
	ans := st.Answers[index]
	if !st.Revealed[index] {
		if !grading.Complete(q, ans) {
			return RevealResult{}, fmt.Errorf("%w: question %d", ErrAnswerIncomplete, index)
		}
		st.Revealed[index] = true
		if err := e.store.Save(ctx, e.quiz.ID, st); err != nil {
			return RevealResult{}, err
		}
	}
	return RevealResult{
		Correct:     grading.Correct(q, ans),
		Answer:      q.Answer,
		Explanation: q.Explanation,
		State:       st,
	}, nil
}

// Finish marks the session complete. No gate: finishing early is allowed
// and unanswered questions simply score as incorrect.
func (e *Engine) Finish(ctx context.Context) (State, error) {
	st, err := e.State(ctx)
	if err != nil {
		return State{}, err
	}
	st.Finished = true
	if err := e.store.Save(ctx, e.quiz.ID, st); err != nil {
		return State{}, err
	}
	return st, nil
}

// Restart wipes the session back to its initial state.
func (e *Engine) Restart(ctx context.Context) (State, error) {
	if err := e.store.Reset(ctx, e.quiz.ID); err != nil {
		return State{}, err
	}
	return NewState(), nil
}

// Progress is the revealed fraction as a percentage. Derived, never stored.
func (e *Engine) Progress(st State) float64 {
	n := len(e.quiz.Questions)
	if n == 0 {
		return 0
	}
	revealed := 0
	for _, ok := range st.Revealed {
		if ok {
			revealed++
		}
	}
	return float64(revealed) / float64(n) * 100
}

// Score is the final percentage for this session's answers.
func (e *Engine) Score(st State) float64 {
	return grading.Score(e.quiz, st.Answers)
}

func (e *Engine) question(index int) (quiz.Question, error) {
	if index < 0 || index >= len(e.quiz.Questions) {
		return quiz.Question{}, fmt.Errorf("question index %d out of range", index)
	}
	return e.quiz.Questions[index], nil
}
