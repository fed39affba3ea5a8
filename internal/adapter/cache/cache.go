// Package cache wraps Redis as a fail-safe byte cache: when Redis is
// unreachable every read is a miss and every write is dropped.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client but fails safe by swallowing connectivity errors.
type Client struct {
	client  *redis.Client
	timeout time.Duration
	log     *slog.Logger
}

// New creates a new Redis-backed cache. Each call is bounded by timeout.
func New(logger *slog.Logger, addr, password string, db int, timeout time.Duration) *Client {
	return &Client{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		timeout: timeout,
		log:     logger.With("component", "cache"),
	}
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

// Get returns the value or nil if missing or Redis is unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		c.log.WarnContext(ctx, "cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		return nil, nil
	}
	return res, nil
}

// setIfNewer replaces KEYS[1] unless it already holds a JSON object whose
// "version" is at least ARGV[2]. Unparsable entries are overwritten.
var setIfNewer = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if cur then
  local ok, doc = pcall(cjson.decode, cur)
  if ok and type(doc) == 'table' then
    local v = tonumber(doc['version'])
    if v and v >= tonumber(ARGV[2]) then
      return 0
    end
  end
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
return 1
`)

// SetIfNewer stores value with TTL unless the key already holds an entry at
// version or later. value must be a JSON object with a numeric "version"
// field. Redis errors are logged and ignored.
func (c *Client) SetIfNewer(ctx context.Context, key string, value []byte, version int, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	stored, err := setIfNewer.Run(ctx, c.client, []string{key}, value, version, ttl.Milliseconds()).Int()
	if err != nil {
		c.log.WarnContext(ctx, "cache set failed", slog.String("key", key), slog.String("error", err.Error()))
		return nil
	}
	if stored == 0 {
		c.log.DebugContext(ctx, "cache set skipped, newer entry present",
			slog.String("key", key), slog.Int("version", version))
	}
	return nil
}

// Delete removes a key, ignoring Redis errors. A failed delete leaves the
// stale entry to expire with its TTL.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.WarnContext(ctx, "cache delete failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return nil
}

// Ping reports whether Redis answers. Used by the readiness probe only;
// the cache itself never fails a request.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying connections.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
