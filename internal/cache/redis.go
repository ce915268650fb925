package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps entries as plain redis strings with an expiry.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to cfg.RedisAddress and pings it.
func NewRedisStore(ctx context.Context, cfg config.Cache) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: redis ping: %w", ErrOpeningBackend, err)
	}

	return &RedisStore{client: client}, nil
}

func (r *RedisStore) load(ctx context.Context, key entryKey) ([]byte, bool, error) {
	payload, err := r.client.Get(ctx, key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrReadingEntry, err)
	}
	return payload, true, nil
}

func (r *RedisStore) save(ctx context.Context, key entryKey, payload []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key.String(), payload, ttl).Err()
}

func (r *RedisStore) remove(ctx context.Context, key entryKey) error {
	return r.client.Del(ctx, key.String()).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
