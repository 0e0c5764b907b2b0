package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStoreInterface is the fast-path cache contract. A miss or an
// error is never treated as authoritative by callers.
type RedisStoreInterface interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// RedisStoreAdapter wraps the go-redis client behind the store contract.
type RedisStoreAdapter struct {
	client *redis.Client
}

func NewRedisStoreAdapter(client *redis.Client) *RedisStoreAdapter {
	return &RedisStoreAdapter{client: client}
}

func (a *RedisStoreAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	if a.client == nil {
		return "", false, nil
	}
	value, err := a.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (a *RedisStoreAdapter) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if a.client == nil {
		return nil
	}
	return a.client.Set(ctx, key, value, ttl).Err()
}
