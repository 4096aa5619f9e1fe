package quiz

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrNotFound is returned when a quiz id has no catalog entry.
var ErrNotFound = errors.New("quiz not found")

// Store is the quiz catalog: fixed mock exams seeded at boot plus any
// generated quizzes installed afterwards. Get returns the full quiz,
// answer keys included; handlers strip before delivery.
type Store interface {
	Put(ctx context.Context, q Quiz) error
	Get(ctx context.Context, id string) (Quiz, error)
	List(ctx context.Context) ([]Summary, error)
}

type memoryStore struct {
	mu      sync.RWMutex
	quizzes map[string]Quiz
}

func NewInMemoryStore() Store {
	return &memoryStore{quizzes: map[string]Quiz{}}
}

func (m *memoryStore) Put(_ context.Context, q Quiz) error {
	if err := Validate(q); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quizzes[q.ID] = q
	return nil
}

func (m *memoryStore) Get(_ context.Context, id string) (Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.quizzes[id]
	if !ok {
		return Quiz{}, ErrNotFound
	}
	return q, nil
}

func (m *memoryStore) List(_ context.Context) ([]Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Summary, 0, len(m.quizzes))
	for _, q := range m.quizzes {
		out = append(out, q.Summary())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
