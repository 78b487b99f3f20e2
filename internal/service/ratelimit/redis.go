package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultWindow applies when a non-positive window is configured.
const DefaultWindow = time.Minute

// RedisWindow is a fixed-window limiter shared by every instance that talks
// to the same Redis.
type RedisWindow struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewRedisWindow allows limit requests per key in each window.
func NewRedisWindow(client *redis.Client, prefix string, limit int64, window time.Duration) *RedisWindow {
	if window <= 0 {
		window = DefaultWindow
	}
	return &RedisWindow{client: client, prefix: prefix, limit: limit, window: window, now: time.Now}
}

// NewRedisClient connects and pings Redis.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// Allow counts the request in the current window.
func (l *RedisWindow) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key, l.now())

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("redis rate limit: %w", err)
	}
	return incr.Val() <= l.limit, nil
}

func (l *RedisWindow) key(key string, at time.Time) string {
	return fmt.Sprintf("%s:ratelimit:%s:%d", l.prefix, key, at.UnixNano()/int64(l.window))
}
