package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/shortly-go/internal/shortener"
)

const (
	forwardPrefix = "url:"
	reversePrefix = "reverse:"
)

// RedisStore is a Redis implementation of shortener.Store. The forward and
// reverse keyspaces are separated by key prefix.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed mapping store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) WriteForward(ctx context.Context, code, url string, ttl time.Duration) error {
	return r.client.Set(ctx, forwardPrefix+code, url, expiration(ttl)).Err()
}

func (r *RedisStore) ReadForward(ctx context.Context, code string) (string, error) {
	return r.get(ctx, forwardPrefix+code)
}

func (r *RedisStore) WriteReverse(ctx context.Context, url, code string, ttl time.Duration) error {
	return r.client.Set(ctx, reversePrefix+url, code, expiration(ttl)).Err()
}

func (r *RedisStore) ReadReverse(ctx context.Context, url string) (string, error) {
	return r.get(ctx, reversePrefix+url)
}

func (r *RedisStore) ExistsForward(ctx context.Context, code string) (bool, error) {
	n, err := r.client.Exists(ctx, forwardPrefix+code).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (r *RedisStore) TTLRemaining(ctx context.Context, code string) (time.Duration, error) {
	d, err := r.client.TTL(ctx, forwardPrefix+code).Result()
	if err != nil {
		return 0, err
	}

	// go-redis reports the -1/-2 reply markers as raw negative durations.
	switch d {
	case -1:
		return shortener.NoExpiry, nil
	case -2:
		return shortener.KeyMissing, nil
	}

	return d, nil
}

// Ping probes the connection, downgrading any fault to false.
func (r *RedisStore) Ping(ctx context.Context) bool {
	return r.client.Ping(ctx).Err() == nil
}

func (r *RedisStore) get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", shortener.ErrNotFound
		}

		return "", err
	}

	return val, nil
}

// expiration maps the NoExpiry sentinel onto redis's zero-means-persist
// convention.
func expiration(ttl time.Duration) time.Duration {
	if ttl == shortener.NoExpiry {
		return 0
	}

	return ttl
}

// Compile-time check.
var _ shortener.Store = (*RedisStore)(nil)
