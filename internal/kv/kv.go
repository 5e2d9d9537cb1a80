package kv

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Backend is a byte-level key-value namespace. Get returns (nil, nil) for a
// missing key so callers can treat misses and outages uniformly.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// NewBackend selects the namespace for addr: Redis when an address is set,
// the in-process memory backend when it is empty.
func NewBackend(addr, password string, db int) Backend {
	if addr == "" {
		return NewMemory()
	}
	return NewRedis(addr, password, db)
}

// RedisBackend wraps redis.Client but fails safe by swallowing connectivity errors.
type RedisBackend struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed namespace.
func NewRedis(addr, password string, db int) *RedisBackend {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &RedisBackend{client: redis.NewClient(opts)}
}

// Get returns value or nil if missing or redis unavailable.
func (b *RedisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	if b == nil || b.client == nil {
		return nil, nil
	}
	res, err := b.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		// fail safe: behave like a miss
		return nil, nil
	}
	return res, nil
}

// Set stores value without expiry, ignoring redis errors.
func (b *RedisBackend) Set(ctx context.Context, key string, value []byte) error {
	if b == nil || b.client == nil {
		return nil
	}
	if err := b.client.Set(ctx, key, value, 0).Err(); err != nil {
		// fail safe: ignore redis errors
		return nil
	}
	return nil
}

// Delete removes a key, ignoring redis errors.
func (b *RedisBackend) Delete(ctx context.Context, key string) error {
	if b == nil || b.client == nil {
		return nil
	}
	if err := b.client.Del(ctx, key).Err(); err != nil {
		return nil
	}
	return nil
}
