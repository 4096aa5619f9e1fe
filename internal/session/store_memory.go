package session

import (
	"context"
	"sync"

	"github.com/Rohitkumarvora/examprep/internal/quiz"
)

type memoryStore struct {
	mu     sync.RWMutex
	states map[string]State
}

// NewInMemoryStore keeps sessions in process memory. Used by tests and by
// ephemeral (SESSION_BACKEND=memory) runs.
func NewInMemoryStore() Store {
	return &memoryStore{states: map[string]State{}}
}

func (m *memoryStore) Load(_ context.Context, quizID string) (State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.states[quizID]
	if !ok {
		return NewState(), nil
	}
	return normalize(copyState(st)), nil
}

func (m *memoryStore) Save(_ context.Context, quizID string, st State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[quizID] = copyState(st)
	return nil
}

func (m *memoryStore) Reset(_ context.Context, quizID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, quizID)
	return nil
}

func copyState(st State) State {
	out := st
	out.Answers = make(map[int]quiz.Answer, len(st.Answers))
	for k, v := range st.Answers {
		out.Answers[k] = v
	}
	out.Revealed = make(map[int]bool, len(st.Revealed))
	for k, v := range st.Revealed {
		out.Revealed[k] = v
	}
	return out
}
