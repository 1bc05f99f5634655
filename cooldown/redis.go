package cooldown

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisLedger keeps cooldowns as expiring redis keys, so several host
// processes share them
type RedisLedger struct {
	client *redis.Client
}

// NewRedisLedger connects to redisURL (redis://host:port/db) and checks the
// connection
func NewRedisLedger(ctx context.Context, redisURL string) (*RedisLedger, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	zap.S().Infow("connected to redis", "addr", opts.Addr)
	return &RedisLedger{client: client}, nil
}

// Acquire implements Ledger
func (r *RedisLedger) Acquire(ctx context.Context, key string, window time.Duration) (time.Duration, bool, error) {
	if window <= 0 {
		return 0, true, nil
	}
	ok, err := r.client.SetNX(ctx, key, time.Now().Unix(), window).Result()
	if err != nil {
		return 0, false, err
	}
	if ok {
		return 0, true, nil
	}

	ttl, err := r.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, false, err
	}
	// the key expired between the two commands
	if ttl <= 0 {
		ttl = time.Second
	}
	return ttl, false, nil
}

// Release implements Ledger
func (r *RedisLedger) Release(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Close closes the redis connection
func (r *RedisLedger) Close() error {
	return r.client.Close()
}
