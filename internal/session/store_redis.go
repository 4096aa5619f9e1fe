package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisStore keeps session state in one hash per quiz id, same four fields
// as the SQL layout. No TTL: sessions persist until restarted or cleared,
// which is the store's contract.
type RedisStore struct {
	rdb       *goredis.Client
	keyPrefix string
}

func NewRedisStore(addr string) (*RedisStore, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisStore{rdb: rdb, keyPrefix: "examprep:session:"}, nil
}

func (s *RedisStore) key(quizID string) string { return s.keyPrefix + quizID }

func (s *RedisStore) Load(ctx context.Context, quizID string) (State, error) {
	vals, err := s.rdb.HGetAll(ctx, s.key(quizID)).Result()
	if err != nil {
		return State{}, err
	}
	st := NewState()
	if v, ok := vals[fieldIndex]; ok {
		var idx int
		if json.Unmarshal([]byte(v), &idx) == nil && idx >= 0 {
			st.CurrentIndex = idx
		}
	}
	if v, ok := vals[fieldAnswers]; ok {
		_ = json.Unmarshal([]byte(v), &st.Answers)
	}
	if v, ok := vals[fieldRevealed]; ok {
		_ = json.Unmarshal([]byte(v), &st.Revealed)
	}
	if v, ok := vals[fieldFinished]; ok {
		_ = json.Unmarshal([]byte(v), &st.Finished)
	}
	return normalize(st), nil
}

func (s *RedisStore) Save(ctx context.Context, quizID string, st State) error {
	st = normalize(st)
	idx, _ := json.Marshal(st.CurrentIndex)
	ans, err := json.Marshal(st.Answers)
	if err != nil {
		return err
	}
	rev, err := json.Marshal(st.Revealed)
	if err != nil {
		return err
	}
	fin, _ := json.Marshal(st.Finished)
	return s.rdb.HSet(ctx, s.key(quizID),
		fieldIndex, string(idx),
		fieldAnswers, string(ans),
		fieldRevealed, string(rev),
		fieldFinished, string(fin),
	).Err()
}

func (s *RedisStore) Reset(ctx context.Context, quizID string) error {
	return s.rdb.Del(ctx, s.key(quizID)).Err()
}

func (s *RedisStore) Close() error { return s.rdb.Close() }
