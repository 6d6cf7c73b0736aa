package ledger

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisKV backs the ledger with a Redis server.  SET is atomic on the
// server side, so the whole-list rewrite contract holds without extra
// coordination.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV wraps an already-connected Redis client.
func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

// Get returns the value under key, or (nil, nil) when the key is unset.
func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Put replaces the value under key with no expiration.
func (r *RedisKV) Put(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}
