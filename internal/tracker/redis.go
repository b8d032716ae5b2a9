package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisHashClient is the subset of redis commands the store needs; keeping it
// small lets tests supply a fake without a running server.
type redisHashClient interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd
}

// RedisStore keeps each session's slots in a redis hash so several engine
// instances can serve the same dialogue host. One HSET writes all slots of a
// turn, preserving the atomic-update contract.
type RedisStore struct {
	client redisHashClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore requires a connected client; callers decide whether redis is
// configured at all and fall back to the memory store otherwise.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{
		client: client,
		prefix: "support:session:",
		ttl:    ttl,
	}
}

func (s *RedisStore) GetSlot(ctx context.Context, sessionID, name string) (string, bool, error) {
	value, err := s.client.HGet(ctx, s.prefix+sessionID, name).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *RedisStore) SetSlots(ctx context.Context, sessionID string, slots map[string]string) error {
	if len(slots) == 0 {
		return nil
	}
	key := s.prefix + sessionID
	values := make([]interface{}, 0, len(slots)*2)
	for name, value := range slots {
		values = append(values, name, value)
	}
	if err := s.client.HSet(ctx, key, values...).Err(); err != nil {
		return err
	}
	// Sliding expiry: any turn keeps the session alive.
	return s.client.Expire(ctx, key, s.ttl).Err()
}
