package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Rohitkumarvora/examprep/internal/genai"
	"github.com/Rohitkumarvora/examprep/internal/quiz"
)

// GenerateQuizHandler runs the external generation call and installs the
// result in the catalog. On any failure nothing is installed.
func GenerateQuizHandler(gen Generator, store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Topic        string `json:"topic"`
			NumQuestions int    `json:"num_questions"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		req.Topic = strings.TrimSpace(req.Topic)
		if req.Topic == "" {
			http.Error(w, "topic required", 400)
			return
		}
		if req.NumQuestions < genai.MinQuestions || req.NumQuestions > genai.MaxQuestions {
			http.Error(w, "num_questions must be between 3 and 15", 400)
			return
		}
		q, err := gen.GenerateQuiz(r.Context(), req.Topic, req.NumQuestions)
		if err != nil {
			writeErr(w, err)
			return
		}
		if err := store.Put(r.Context(), q); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, q.Summary())
	}
}
