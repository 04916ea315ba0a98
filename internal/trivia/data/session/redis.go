package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/milindvishnoi/FSND/picker"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "fsnd:trivia:quiz:"

// RedisStore keeps each session as a redis set of question ids
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a redis backed store. A non-positive ttl uses DefaultTTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func key(id string) string {
	return keyPrefix + id
}

// Load reads the set of asked ids. A missing key loads as an empty set.
func (s *RedisStore) Load(ctx context.Context, id string) (picker.IDSet, error) {
	members, err := s.client.SMembers(ctx, key(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("load quiz session %s: %w", id, err)
	}

	asked := make(picker.IDSet, len(members))
	for _, m := range members {
		qid, err := strconv.Atoi(m)
		if err != nil {
			return nil, fmt.Errorf("quiz session %s holds invalid id %q", id, m)
		}
		asked.Add(qid)
	}
	return asked, nil
}

// Add records questionID and resets the key's expiry.
func (s *RedisStore) Add(ctx context.Context, id string, questionID int) error {
	pipe := s.client.TxPipeline()
	pipe.SAdd(ctx, key(id), questionID)
	pipe.Expire(ctx, key(id), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("update quiz session %s: %w", id, err)
	}
	return nil
}

// Delete removes the session key and reports whether it existed.
func (s *RedisStore) Delete(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Del(ctx, key(id)).Result()
	if err != nil {
		return false, fmt.Errorf("delete quiz session %s: %w", id, err)
	}
	return n > 0, nil
}
