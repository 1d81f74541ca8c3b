package kvcache

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/minumaeng82-netizen/dasuDashboard/config"
)

// Client wraps Redis as the local key-value mirror of the record store and
// as the session-token blacklist. Every cache failure is non-fatal: reads
// degrade to a miss, writes to a no-op, so a dead Redis never takes a
// request down with it. A nil *Client behaves the same way.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// New connects to Redis and verifies the connection with a ping.
func New(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── record cache ──

const recordPrefix = "records:"

// GetRecords returns the cached JSON payload for a record kind.
// The second return is false on a miss or any cache failure.
func (c *Client) GetRecords(ctx context.Context, kind string) (string, bool) {
	if c == nil {
		return "", false
	}
	payload, err := c.rdb.Get(ctx, recordPrefix+kind).Result()
	if err != nil {
		if err != goredis.Nil {
			c.logger.Warn("record cache read failed", zap.String("kind", kind), zap.Error(err))
		}
		return "", false
	}
	return payload, true
}

// SetRecords overwrites the cached payload for a record kind.
func (c *Client) SetRecords(ctx context.Context, kind, payload string) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, recordPrefix+kind, payload, 0).Err(); err != nil {
		c.logger.Warn("record cache write failed", zap.String("kind", kind), zap.Error(err))
	}
}

// DropRecords removes the cached payload for a record kind, used when a
// cached entry fails to parse.
func (c *Client) DropRecords(ctx context.Context, kind string) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, recordPrefix+kind).Err(); err != nil {
		c.logger.Warn("record cache drop failed", zap.String("kind", kind), zap.Error(err))
	}
}

// ── token blacklist ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken revokes a JWT by its JTI until the token would expire.
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if c == nil || ttl <= 0 {
		return nil
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted reports whether a JTI has been revoked.
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	if c == nil {
		return false, nil
	}
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close releases the Redis connection.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
