package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "site:stars:"

// Redis shares star counts between instances; keys expire after ttl.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) GetStars(ctx context.Context, repo string) (int, bool, error) {
	stars, err := r.client.Get(ctx, keyPrefix+repo).Int()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("redis get %s: %w", repo, err)
	}
	return stars, true, nil
}

func (r *Redis) SetStars(ctx context.Context, repo string, stars int) error {
	if err := r.client.Set(ctx, keyPrefix+repo, stars, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", repo, err)
	}
	return nil
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
