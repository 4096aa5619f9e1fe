package session

import (
	"context"
	"database/sql"
	"encoding/json"
)

// The four logical fields persisted per quiz id. Mirrors the original
// per-key layout (index, answers, revealed, finished stored independently).
const (
	fieldIndex    = "index"
	fieldAnswers  = "answers"
	fieldRevealed = "revealed"
	fieldFinished = "finished"
)

// SQLStore persists session state in the session_state table, one row per
// (quiz_id, field) with a JSON value. Works against sqlite and postgres.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Load returns the persisted state, or a fresh one when nothing (or nothing
// readable) is stored. A corrupt field falls back to its initial value
// rather than failing the load.
func (s *SQLStore) Load(ctx context.Context, quizID string) (State, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT field, value_json FROM session_state WHERE quiz_id=$1`, quizID)
	if err != nil {
		return State{}, err
	}
	defer rows.Close()

	st := NewState()
	for rows.Next() {
		var field, val string
		if err := rows.Scan(&field, &val); err != nil {
			return State{}, err
		}
		switch field {
		case fieldIndex:
			var idx int
			if json.Unmarshal([]byte(val), &idx) == nil && idx >= 0 {
				st.CurrentIndex = idx
			}
		case fieldAnswers:
			_ = json.Unmarshal([]byte(val), &st.Answers)
		case fieldRevealed:
			_ = json.Unmarshal([]byte(val), &st.Revealed)
		case fieldFinished:
			_ = json.Unmarshal([]byte(val), &st.Finished)
		}
	}
	if err := rows.Err(); err != nil {
		return State{}, err
	}
	return normalize(st), nil
}

func (s *SQLStore) Save(ctx context.Context, quizID string, st State) error {
	st = normalize(st)
	fields := map[string]interface{}{
		fieldIndex:    st.CurrentIndex,
		fieldAnswers:  st.Answers,
		fieldRevealed: st.Revealed,
		fieldFinished: st.Finished,
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	for field, v := range fields {
		buf, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO session_state (quiz_id, field, value_json)
			VALUES ($1,$2,$3)
			ON CONFLICT (quiz_id, field) DO UPDATE SET value_json=EXCLUDED.value_json`,
			quizID, field, string(buf)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLStore) Reset(ctx context.Context, quizID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM session_state WHERE quiz_id=$1`, quizID)
	return err
}
