package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sm8ta/webike_inventory/internal/core/ports"
)

var (
	_ ports.CachePort = (*RedisAdapter)(nil)
	_ ports.CachePort = NopCache{}
)

type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	res, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *RedisAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisAdapter) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// NopCache is used when no Redis address is configured. Every read is a miss.
type NopCache struct{}

func (NopCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, ports.ErrCacheMiss
}

func (NopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (NopCache) Delete(ctx context.Context, key string) error {
	return nil
}
