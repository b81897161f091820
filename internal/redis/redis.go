package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Limiter decides whether one more submission from key is allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

func NewClient(address, username, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     address,
		Username: username,
		Password: password,
		DB:       0,
	})
}

// WindowLimiter allows Limit submissions per key in each fixed Window.
// INCR and EXPIRE NX go out in one MULTI/EXEC, so a key never outlives its
// window even when an earlier expiry was lost.
type WindowLimiter struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

func NewWindowLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *WindowLimiter {
	return &WindowLimiter{client: client, prefix: prefix, limit: int64(limit), window: window}
}

func (l *WindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := fmt.Sprintf("%s:%s", l.prefix, key)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Error().Err(err).Str("key", k).Msg("rate limit counter failed")
		return false, err
	}
	return incr.Val() <= l.limit, nil
}

// NoopLimiter allows everything. Used when no Redis is configured.
type NoopLimiter struct{}

func (NoopLimiter) Allow(context.Context, string) (bool, error) { return true, nil }
