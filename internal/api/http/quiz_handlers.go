package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Rohitkumarvora/examprep/internal/genai"
	"github.com/Rohitkumarvora/examprep/internal/quiz"
	"github.com/Rohitkumarvora/examprep/internal/session"
)

// Generator is the quiz-generation boundary as the handlers see it.
type Generator interface {
	GenerateQuiz(ctx context.Context, topic string, count int) (quiz.Quiz, error)
}

func ListQuizzesHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.List(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, list)
	}
}

// GetQuizHandler serves the delivery view: answer keys and explanations
// stripped, matching term pools included so the client can render dropdowns
// in the pinned order.
func GetQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		q, err := store.Get(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		pools := map[int][]string{}
		for i, qq := range q.Questions {
			if qq.Kind == quiz.KindMatching {
				pools[i] = quiz.TermPool(q, i)
			}
		}
		writeJSON(w, struct {
			quiz.Quiz
			TermPools map[int][]string `json:"term_pools,omitempty"`
		}{Quiz: q.Delivery(), TermPools: pools})
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quiz.ErrNotFound):
		http.Error(w, err.Error(), 404)
	case errors.Is(err, quiz.ErrMalformedQuiz), errors.Is(err, session.ErrInvalidAnswerShape):
		http.Error(w, err.Error(), 400)
	case errors.Is(err, session.ErrAnswerIncomplete):
		http.Error(w, err.Error(), 409)
	case errors.Is(err, genai.ErrGeneration):
		http.Error(w, err.Error(), 502)
	default:
		http.Error(w, err.Error(), 500)
	}
}
