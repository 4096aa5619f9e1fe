package session

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Rohitkumarvora/examprep/internal/quiz"
)

func testQuiz() quiz.Quiz {
	return quiz.Quiz{
		ID:    "test-quiz",
		Title: "t",
		Questions: []quiz.Question{
			{Prompt: "q1", Options: []string{"a", "b"}, Kind: quiz.KindSingleChoice,
				Answer: quiz.Answer{Choice: "a"}, Explanation: "because a"},
			{Prompt: "q2", Options: []string{"a", "b"}, Kind: quiz.KindSingleChoice,
				Answer: quiz.Answer{Choice: "b"}},
			{Prompt: "q3", Options: []string{"X", "Y"}, Kind: quiz.KindMatching,
				Answer: quiz.Answer{Matches: map[string]string{"X": "1", "Y": "2"}}},
		},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(testQuiz(), NewInMemoryStore())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func TestNewEngineRejectsMalformedQuiz(t *testing.T) {
	_, err := NewEngine(quiz.Quiz{ID: "empty"}, NewInMemoryStore())
	if !errors.Is(err, quiz.ErrMalformedQuiz) {
		t.Fatalf("expected ErrMalformedQuiz, got %v", err)
	}
}

func TestFreshStateIsInitial(t *testing.T) {
	e := newTestEngine(t)
	st, err := e.State(context.Background())
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if st.CurrentIndex != 0 || st.Finished || len(st.Answers) != 0 || len(st.Revealed) != 0 {
		t.Fatalf("fresh state not initial: %+v", st)
	}
}

func TestGoToBounds(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	// back at the first question: silently ignored
	st, err := e.GoTo(ctx, -1)
	if err != nil {
		t.Fatalf("goto: %v", err)
	}
	if st.CurrentIndex != 0 {
		t.Fatalf("index=%d want 0", st.CurrentIndex)
	}

	for want := 1; want <= 2; want++ {
		st, err = e.GoTo(ctx, 1)
		if err != nil {
			t.Fatalf("goto: %v", err)
		}
		if st.CurrentIndex != want {
			t.Fatalf("index=%d want %d", st.CurrentIndex, want)
		}
	}

	// forward past the last question: silently ignored
	st, err = e.GoTo(ctx, 1)
	if err != nil {
		t.Fatalf("goto: %v", err)
	}
	if st.CurrentIndex != 2 {
		t.Fatalf("index=%d want 2", st.CurrentIndex)
	}
}

func TestSubmitAnswerShapeChecked(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	// a mapping for a single-choice question is a contract violation
	_, err := e.SubmitAnswer(ctx, 0, quiz.Answer{Matches: map[string]string{"a": "b"}})
	if !errors.Is(err, ErrInvalidAnswerShape) {
		t.Fatalf("expected ErrInvalidAnswerShape, got %v", err)
	}
	st, err := e.State(ctx)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if len(st.Answers) != 0 {
		t.Fatal("failed submit must not mutate state")
	}

	if _, err := e.SubmitAnswer(ctx, 0, quiz.Answer{Choice: "a"}); err != nil {
		t.Fatalf("valid submit: %v", err)
	}
	st, _ = e.State(ctx)
	if st.Answers[0].Choice != "a" {
		t.Fatalf("answer not stored: %+v", st.Answers)
	}
}

func TestRevealGatedOnCompleteness(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	// matching question, partial mapping: reveal blocked
	if _, err := e.SubmitAnswer(ctx, 2, quiz.Answer{Matches: map[string]string{"X": "1"}}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	_, err := e.Reveal(ctx, 2)
	if !errors.Is(err, ErrAnswerIncomplete) {
		t.Fatalf("expected ErrAnswerIncomplete, got %v", err)
	}
	st, _ := e.State(ctx)
	if st.Revealed[2] {
		t.Fatal("failed reveal must not set the flag")
	}

	// complete the mapping, reveal succeeds
	if _, err := e.SubmitAnswer(ctx, 2, quiz.Answer{Matches: map[string]string{"X": "1", "Y": "2"}}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	res, err := e.Reveal(ctx, 2)
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if !res.Correct {
		t.Fatal("expected correct verdict")
	}
	if !res.State.Revealed[2] {
		t.Fatal("revealed flag not set")
	}

	// idempotent on the second call
	res2, err := e.Reveal(ctx, 2)
	if err != nil {
		t.Fatalf("second reveal: %v", err)
	}
	if !res2.Correct || !res2.State.Revealed[2] {
		t.Fatalf("second reveal changed outcome: %+v", res2)
	}
}

func TestRevealDisclosesKeyAndExplanation(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	if _, err := e.SubmitAnswer(ctx, 0, quiz.Answer{Choice: "b"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	res, err := e.Reveal(ctx, 0)
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if res.Correct {
		t.Fatal("wrong answer reported correct")
	}
	if res.Answer.Choice != "a" || res.Explanation != "because a" {
		t.Fatalf("key/explanation not disclosed: %+v", res)
	}
}

func TestEarlyFinishScoresUnansweredAsIncorrect(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	// answer q1 correctly, q2 incorrectly, leave q3 alone, finish
	if _, err := e.SubmitAnswer(ctx, 0, quiz.Answer{Choice: "a"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := e.SubmitAnswer(ctx, 1, quiz.Answer{Choice: "a"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	st, err := e.Finish(ctx)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if !st.Finished {
		t.Fatal("finished flag not set")
	}
	got := e.Score(st)
	want := 100.0 / 3.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("score=%v want %v", got, want)
	}
}

func TestFinishWithNothingAnswered(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	st, err := e.Finish(ctx)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if got := e.Score(st); got != 0 {
		t.Fatalf("score=%v want 0", got)
	}
}

func TestRestartReturnsInitialState(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	if _, err := e.SubmitAnswer(ctx, 0, quiz.Answer{Choice: "a"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := e.Reveal(ctx, 0); err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if _, err := e.GoTo(ctx, 1); err != nil {
		t.Fatalf("goto: %v", err)
	}
	if _, err := e.Finish(ctx); err != nil {
		t.Fatalf("finish: %v", err)
	}

	if _, err := e.Restart(ctx); err != nil {
		t.Fatalf("restart: %v", err)
	}
	st, err := e.State(ctx)
	if err != nil {
		t.Fatalf("state after restart: %v", err)
	}
	if st.CurrentIndex != 0 || st.Finished || len(st.Answers) != 0 || len(st.Revealed) != 0 {
		t.Fatalf("state after restart not initial: %+v", st)
	}
}

func TestProgressDerivedFromRevealed(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	st, _ := e.State(ctx)
	if got := e.Progress(st); got != 0 {
		t.Fatalf("progress=%v want 0", got)
	}

	if _, err := e.SubmitAnswer(ctx, 0, quiz.Answer{Choice: "a"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	res, err := e.Reveal(ctx, 0)
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	want := 100.0 / 3.0
	if got := e.Progress(res.State); math.Abs(got-want) > 1e-9 {
		t.Fatalf("progress=%v want %v", got, want)
	}
}
