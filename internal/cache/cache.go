// Package cache is a redis-backed view cache keyed by named scopes.
// When REDIS_ADDR is unset or redis is unreachable the cache runs
// disabled: reads miss, writes and invalidations are no-ops.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "greenstreet:"

type Redis struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.SugaredLogger
}

// NewFromEnv connects using REDIS_ADDR. A missing address or failed ping
// yields a disabled cache rather than an error; caching is an optimization,
// not a dependency.
func NewFromEnv(log *zap.SugaredLogger) *Redis {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	c := &Redis{ttl: 5 * time.Minute, log: log}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		log.Info("REDIS_ADDR not set, view cache disabled")
		return c
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unreachable, view cache disabled", "addr", addr, "error", err)
		return c
	}

	c.client = client
	log.Infow("view cache connected", "addr", addr)
	return c
}

func (c *Redis) Enabled() bool { return c != nil && c.client != nil }

// Get loads the cached value for a scope into dst. A disabled cache,
// a missing key, or a decode failure all read as a miss.
func (c *Redis) Get(ctx context.Context, scope string, dst any) bool {
	if !c.Enabled() {
		return false
	}
	raw, err := c.client.Get(ctx, keyPrefix+scope).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnw("cache read failed", "scope", scope, "error", err)
		}
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (c *Redis) Set(ctx context.Context, scope string, value any) {
	if !c.Enabled() {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, keyPrefix+scope, raw, c.ttl).Err(); err != nil {
		c.log.Warnw("cache write failed", "scope", scope, "error", err)
	}
}

// Invalidate deletes exactly the given scopes, nothing more.
func (c *Redis) Invalidate(ctx context.Context, scopes ...string) {
	if !c.Enabled() || len(scopes) == 0 {
		return
	}
	keys := make([]string, len(scopes))
	for i, s := range scopes {
		keys[i] = keyPrefix + s
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warnw("cache invalidation failed", "scopes", scopes, "error", err)
	}
}
