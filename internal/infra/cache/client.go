package cache

import (
	"context"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// NewClient connects to the cache database and pings it once.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.CacheDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to connect to redis")
	}
	return client, nil
}
