package designations

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"modbot/internal/gateway"
	"modbot/internal/moderation"
)

// Cached puts a Redis TTL cache in front of a designation service.
// Designations change rarely relative to message volume, so a short TTL
// removes most lookups from the hot path. Cache failures fall through to the
// underlying service; they are logged, never surfaced.
type Cached struct {
	inner  moderation.DesignationService
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewCached(inner moderation.DesignationService, client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *Cached {
	return &Cached{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (c *Cached) HasDesignation(ctx context.Context, guildID, channelID gateway.Snowflake, d moderation.Designation) (bool, error) {
	k := cacheKey(guildID, channelID, d)

	cached, err := c.client.Get(ctx, k).Result()
	switch {
	case err == nil:
		return cached == "1", nil
	case err != redis.Nil:
		c.logger.WarnContext(ctx, "designation cache read failed", "key", k, "error", err)
	}

	has, err := c.inner.HasDesignation(ctx, guildID, channelID, d)
	if err != nil {
		return false, err
	}

	value := "0"
	if has {
		value = "1"
	}
	if err := c.client.Set(ctx, k, value, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "designation cache write failed", "key", k, "error", err)
	}
	return has, nil
}
