package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/veritalaw/consult-scheduler/internal/models"
)

const rateKey = "hourly_rate:current"

// RateCache keeps the current hourly rate in redis so the pricing step
// does not hit the database on every booking. A nil cache (no redis
// configured) is valid and degrades to the DB read.
type RateCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRateCache(addr string) *RateCache {
	if addr == "" {
		return nil
	}

	return &RateCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    5 * time.Minute,
	}
}

func (c *RateCache) Get(ctx context.Context) (*models.HourlyRate, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, rateKey).Result()
	if err != nil {
		return nil, false
	}

	var r models.HourlyRate
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return nil, false
	}
	return &r, true
}

func (c *RateCache) Set(ctx context.Context, r *models.HourlyRate) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(r)
	if err != nil {
		return
	}
	c.client.Set(ctx, rateKey, raw, c.ttl)
}

func (c *RateCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	c.client.Del(ctx, rateKey)
}
