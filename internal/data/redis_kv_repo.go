package data

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisKVRepo implements core.KVRepository on Redis. Values are written
// without TTL: cart snapshots and loyalty balances are durable state, not
// cache entries.
type RedisKVRepo struct {
	client redis.UniversalClient
}

// NewRedisKVRepo creates a new RedisKVRepo with the given Redis client.
func NewRedisKVRepo(client redis.UniversalClient) *RedisKVRepo {
	return &RedisKVRepo{client: client}
}

// Set stores a value under key, replacing any previous value.
func (r *RedisKVRepo) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	return r.client.Set(ctx, key, value, 0).Err()
}

// Get retrieves a value by key. A missing key returns (nil, nil).
func (r *RedisKVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Key doesn't exist
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	return []byte(result), nil
}

// Delete removes a key and reports whether it existed.
func (r *RedisKVRepo) Delete(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("key cannot be empty")
	}

	result, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis del: %w", err)
	}

	return result > 0, nil
}

// Health checks the health of the Redis connection.
func (r *RedisKVRepo) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
