package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Zorochan404/adv-backend-sub001/internal/domain/topups"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const activeTopupsKey = "catalog:topups:active"

// TopupSource is the uncached catalog read.
type TopupSource interface {
	ListActiveTopups(ctx context.Context) ([]topups.Topup, error)
}

// TopupCache serves the active topup list from Redis, falling back to the
// source on a miss. A nil client disables caching.
type TopupCache struct {
	client *redis.Client
	source TopupSource
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewTopupCache(client *redis.Client, source TopupSource, ttl time.Duration, logger *zap.SugaredLogger) *TopupCache {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &TopupCache{client: client, source: source, ttl: ttl, logger: logger}
}

// NewClient parses a redis:// URL and pings the server.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func (c *TopupCache) ListActiveTopups(ctx context.Context) ([]topups.Topup, error) {
	if c.client == nil {
		return c.source.ListActiveTopups(ctx)
	}

	data, err := c.client.Get(ctx, activeTopupsKey).Bytes()
	if err == nil {
		var list []topups.Topup
		if jsonErr := json.Unmarshal(data, &list); jsonErr == nil {
			return list, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		// cache outage degrades to a direct read
		return c.source.ListActiveTopups(ctx)
	}

	list, err := c.source.ListActiveTopups(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(list)
	if err != nil {
		c.logger.Warnw("topup cache encode failed", "error", err.Error())
		return list, nil
	}
	if err := c.client.Set(ctx, activeTopupsKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warnw("topup cache write failed", "key", activeTopupsKey, "error", err.Error())
	}
	return list, nil
}
