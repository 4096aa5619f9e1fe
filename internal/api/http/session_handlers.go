package http

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Rohitkumarvora/examprep/internal/quiz"
	"github.com/Rohitkumarvora/examprep/internal/session"
)

// stateView is the session payload every session operation returns.
type stateView struct {
	State    session.State `json:"state"`
	Progress float64       `json:"progress"`
}

// withEngine loads the quiz and hands a ready engine to fn. Keeps the
// per-request engine construction in one place.
func withEngine(qstore quiz.Store, sstore session.Store,
	fn func(w http.ResponseWriter, r *http.Request, e *session.Engine)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		q, err := qstore.Get(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		e, err := session.NewEngine(q, sstore)
		if err != nil {
			writeErr(w, err)
			return
		}
		fn(w, r, e)
	}
}

func SessionStateHandler(qstore quiz.Store, sstore session.Store) http.HandlerFunc {
	return withEngine(qstore, sstore, func(w http.ResponseWriter, r *http.Request, e *session.Engine) {
		st, err := e.State(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, stateView{State: st, Progress: e.Progress(st)})
	})
}

func NavigateHandler(qstore quiz.Store, sstore session.Store) http.HandlerFunc {
	return withEngine(qstore, sstore, func(w http.ResponseWriter, r *http.Request, e *session.Engine) {
		var req struct {
			Direction int `json:"direction"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.Direction != 1 && req.Direction != -1 {
			http.Error(w, "direction must be 1 or -1", 400)
			return
		}
		st, err := e.GoTo(r.Context(), req.Direction)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, stateView{State: st, Progress: e.Progress(st)})
	})
}

func SubmitAnswerHandler(qstore quiz.Store, sstore session.Store) http.HandlerFunc {
	return withEngine(qstore, sstore, func(w http.ResponseWriter, r *http.Request, e *session.Engine) {
		var req struct {
			Index  int         `json:"index"`
			Answer quiz.Answer `json:"answer"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		st, err := e.SubmitAnswer(r.Context(), req.Index, req.Answer)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, stateView{State: st, Progress: e.Progress(st)})
	})
}

func RevealHandler(qstore quiz.Store, sstore session.Store) http.HandlerFunc {
	return withEngine(qstore, sstore, func(w http.ResponseWriter, r *http.Request, e *session.Engine) {
		var req struct {
			Index int `json:"index"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		res, err := e.Reveal(r.Context(), req.Index)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, res)
	})
}

func FinishHandler(qstore quiz.Store, sstore session.Store) http.HandlerFunc {
	return withEngine(qstore, sstore, func(w http.ResponseWriter, r *http.Request, e *session.Engine) {
		st, err := e.Finish(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		score := e.Score(st)
		writeJSON(w, struct {
			State        session.State `json:"state"`
			Score        float64       `json:"score"`
			DisplayScore int           `json:"display_score"`
		}{State: st, Score: score, DisplayScore: int(math.Round(score))})
	})
}

func RestartHandler(qstore quiz.Store, sstore session.Store) http.HandlerFunc {
	return withEngine(qstore, sstore, func(w http.ResponseWriter, r *http.Request, e *session.Engine) {
		st, err := e.Restart(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, stateView{State: st, Progress: e.Progress(st)})
	})
}

// Mount wires the API under the given router.
func Mount(r chi.Router, qstore quiz.Store, sstore session.Store, gen Generator) {
	r.Get("/quizzes", ListQuizzesHandler(qstore))
	r.Post("/quizzes/generate", GenerateQuizHandler(gen, qstore))
	r.Route("/quizzes/{quizID}", func(qr chi.Router) {
		qr.Get("/", GetQuizHandler(qstore))
		qr.Get("/session", SessionStateHandler(qstore, sstore))
		qr.Post("/session/navigate", NavigateHandler(qstore, sstore))
		qr.Post("/session/answers", SubmitAnswerHandler(qstore, sstore))
		qr.Post("/session/reveal", RevealHandler(qstore, sstore))
		qr.Post("/session/finish", FinishHandler(qstore, sstore))
		qr.Post("/session/restart", RestartHandler(qstore, sstore))
	})
}
