package configs

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// OpenRedis connects to REDIS_URL. It returns nil without error when no URL is configured.
func OpenRedis(ctx context.Context, env ENV) (*redis.Client, error) {
	if env.RedisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(env.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, env.RemoteTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}

	log.Println("OpenRedis: connected to", opts.Addr)
	return client, nil
}
