package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"student-portal-system/config"
)

// RDB is nil when Redis is disabled; callers that depend on it (feed change
// channel, login rate limiter) fall back to doing without.
var RDB *redis.Client

func InitRedis(log *slog.Logger) {
	cfg := config.Get().Redis
	if !cfg.Enable {
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		// Degrade rather than refuse to start: the portal works without
		// live updates and rate limiting.
		log.Warn("redis unreachable, live feed and rate limiting disabled", "error", err)
		return
	}
	RDB = client
}
